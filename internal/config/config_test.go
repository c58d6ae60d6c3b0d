package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/require"

	"github.com/tahx-org/tahx/internal/i18n"
	"github.com/tahx-org/tahx/internal/theme"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	c, v, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	require.NotNil(t, v)
	require.Equal(t, string(theme.Default), c.UI.Theme)
	require.True(t, c.UI.Grips)
	require.Equal(t, 1000, c.UI.TickMS)
	require.True(t, c.Audio.Enabled)
	require.Equal(t, "auto", c.Audio.Player)
	require.Equal(t, 44100, c.Audio.SampleRate)
	require.Equal(t, "info", c.Log.Level)
}

func TestLoadFileAndEnv(t *testing.T) {
	path := writeFile(t, `
[ui]
theme = "cyber"
language = "zh"
grips = false

[audio]
player = "none"
`)
	t.Setenv("TAHX_UI_THEME", "panjade")

	c, _, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "panjade", c.UI.Theme)
	require.Equal(t, theme.Panjade, c.Theme())
	require.Equal(t, i18n.Chinese, c.Language())
	require.False(t, c.UI.Grips)
	require.Equal(t, "none", c.Audio.Player)
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := writeFile(t, "[ui]\ntheme = \"neon\"\n")
	_, _, err := Load(path)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrInvalid))
	require.True(t, errors.Is(err, theme.ErrUnknownTheme))

	_, _, err = Load(writeFile(t, "[ui\n"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			UI:    UIConfig{Theme: "cyber", TickMS: 1000},
			Audio: AudioConfig{SampleRate: 44100},
			Log:   LogConfig{Level: "debug"},
		}
	}
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"valid", func(*Config) {}, true},
		{"language", func(c *Config) { c.UI.Language = "fr" }, false},
		{"tick too small", func(c *Config) { c.UI.TickMS = 10 }, false},
		{"sample rate", func(c *Config) { c.Audio.SampleRate = 1 }, false},
		{"level", func(c *Config) { c.Log.Level = "loud" }, false},
		{"empty theme is default", func(c *Config) { c.UI.Theme = "" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(&c)
			err := c.Validate()
			if tt.ok {
				require.NoError(t, err)
				return
			}
			require.True(t, errors.Is(err, ErrInvalid), "got %v", err)
		})
	}
}

func TestLanguageFromLocale(t *testing.T) {
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_MESSAGES", "")
	t.Setenv("LANG", "zh_CN.UTF-8")
	require.Equal(t, i18n.Chinese, Config{}.Language())

	t.Setenv("LANG", "en_GB.UTF-8")
	require.Equal(t, i18n.English, Config{}.Language())
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	want, _, err := Load(path)
	require.NoError(t, err)
	want.UI.Theme = "panyuliang"
	want.Audio.Enabled = false

	require.NoError(t, Save(path, want))
	got, _, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestChangeHandler(t *testing.T) {
	path := writeFile(t, "[ui]\ntheme = \"cyber\"\n")
	_, v, err := Load(path)
	require.NoError(t, err)

	var got []Config
	var errs []error
	handle := changeHandler(v, func(c Config, err error) {
		if err != nil {
			errs = append(errs, err)
			return
		}
		got = append(got, c)
	})

	require.NoError(t, os.WriteFile(path, []byte("[ui]\ntheme = \"panjade\"\n"), 0o600))
	require.NoError(t, v.ReadInConfig())
	handle(fsnotify.Event{Name: path, Op: fsnotify.Chmod})
	require.Empty(t, got)
	handle(fsnotify.Event{Name: path, Op: fsnotify.Write})
	require.Len(t, got, 1)
	require.Equal(t, "panjade", got[0].UI.Theme)

	require.NoError(t, os.WriteFile(path, []byte("[ui]\ntheme = \"nope\"\n"), 0o600))
	require.NoError(t, v.ReadInConfig())
	handle(fsnotify.Event{Name: path, Op: fsnotify.Write})
	require.Len(t, errs, 1)
	require.True(t, errors.Is(errs[0], ErrInvalid))
}
