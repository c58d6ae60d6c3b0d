package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/tahx-org/tahx/internal/i18n"
	"github.com/tahx-org/tahx/internal/theme"
	"github.com/tahx-org/tahx/internal/tone"
)

var ErrInvalid = errors.New("invalid config")

// Config holds application configuration.
type Config struct {
	UI    UIConfig    `mapstructure:"ui"`
	Audio AudioConfig `mapstructure:"audio"`
	Log   LogConfig   `mapstructure:"log"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Theme    string `mapstructure:"theme"`
	Language string `mapstructure:"language"`
	Grips    bool   `mapstructure:"grips"`
	TickMS   int    `mapstructure:"tick_ms"`
}

// AudioConfig holds feedback tone settings.
type AudioConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	Player     string `mapstructure:"player"`
	SampleRate int    `mapstructure:"sample_rate"`
}

// LogConfig holds the log file settings.
type LogConfig struct {
	Path  string `mapstructure:"path"`
	Level string `mapstructure:"level"`
}

// Path returns the config file location: explicit, then TAHX_CONFIG, then
// ~/.config/tahx/config.toml.
func Path(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if p := os.Getenv("TAHX_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "tahx", "config.toml")
}

// New returns a viper instance with defaults, env overrides (prefix TAHX_)
// and the config file at path. The file is not read yet.
func New(path string) *viper.Viper {
	v := viper.New()

	v.SetDefault("ui.theme", string(theme.Default))
	v.SetDefault("ui.language", "")
	v.SetDefault("ui.grips", true)
	v.SetDefault("ui.tick_ms", 1000)
	v.SetDefault("audio.enabled", true)
	v.SetDefault("audio.player", "auto")
	v.SetDefault("audio.sample_rate", tone.DefaultSampleRate)
	v.SetDefault("log.path", filepath.Join(os.Getenv("HOME"), ".local", "state", "tahx", "tahx.log"))
	v.SetDefault("log.level", "info")

	v.SetConfigType("toml")
	v.SetConfigFile(Path(path))

	v.SetEnvPrefix("TAHX")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	return v
}

// Load reads configuration from file and env. A missing file is not an error.
func Load(path string) (Config, *viper.Viper, error) {
	v := New(path)
	if err := v.ReadInConfig(); err != nil && !missing(err) {
		return Config{}, nil, fmt.Errorf("read config: %w", err)
	}
	c, err := Decode(v)
	if err != nil {
		return Config{}, nil, err
	}
	return c, v, nil
}

func missing(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)
}

// Decode unmarshals and validates the current state of v.
func Decode(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks every enumerated or bounded setting.
func (c Config) Validate() error {
	if _, err := theme.Parse(c.UI.Theme); err != nil {
		return fmt.Errorf("%w: ui.theme: %w", ErrInvalid, err)
	}
	if c.UI.Language != "" {
		if _, err := i18n.Parse(c.UI.Language); err != nil {
			return fmt.Errorf("%w: ui.language: %w", ErrInvalid, err)
		}
	}
	if c.UI.TickMS < 50 || c.UI.TickMS > 10000 {
		return fmt.Errorf("%w: ui.tick_ms %d out of range [50, 10000]", ErrInvalid, c.UI.TickMS)
	}
	if c.Audio.SampleRate < 8000 || c.Audio.SampleRate > 192000 {
		return fmt.Errorf("%w: audio.sample_rate %d out of range [8000, 192000]", ErrInvalid, c.Audio.SampleRate)
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %w", ErrInvalid, err)
	}
	return nil
}

// Theme returns the validated palette name.
func (c Config) Theme() theme.Name {
	n, _ := theme.Parse(c.UI.Theme)
	return n
}

// Language returns the configured language, or the one detected from the
// process locale when unset.
func (c Config) Language() i18n.Language {
	if c.UI.Language != "" {
		if lang, err := i18n.Parse(c.UI.Language); err == nil {
			return lang
		}
	}
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if loc := os.Getenv(key); loc != "" {
			return i18n.Detect(loc)
		}
	}
	return i18n.English
}

// Save writes the provided config to path, creating the directory if needed.
func Save(path string, cfg Config) error {
	path = Path(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("ui.theme", cfg.UI.Theme)
	v.Set("ui.language", cfg.UI.Language)
	v.Set("ui.grips", cfg.UI.Grips)
	v.Set("ui.tick_ms", cfg.UI.TickMS)
	v.Set("audio.enabled", cfg.Audio.Enabled)
	v.Set("audio.player", cfg.Audio.Player)
	v.Set("audio.sample_rate", cfg.Audio.SampleRate)
	v.Set("log.path", cfg.Log.Path)
	v.Set("log.level", cfg.Log.Level)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Watch re-decodes the file on every change and hands the result to fn.
// Invalid edits are delivered as errors; the caller keeps its last good
// config.
func Watch(v *viper.Viper, fn func(Config, error)) {
	v.OnConfigChange(changeHandler(v, fn))
	v.WatchConfig()
}

func changeHandler(v *viper.Viper, fn func(Config, error)) func(fsnotify.Event) {
	return func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		fn(Decode(v))
	}
}
