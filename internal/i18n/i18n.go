// Package i18n is a static key-value catalog for the deck's copy in English
// and Chinese.
package i18n

import (
	"embed"
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/language"
)

// Language is a supported UI language.
type Language string

const (
	English Language = "en"
	Chinese Language = "zh"
)

// Languages lists the supported languages; the first is the fallback.
var Languages = []Language{English, Chinese}

var ErrUnknownLanguage = errors.New("unknown language")

//go:embed locales/*.toml
var locales embed.FS

// Roadmap groups roadmap items by column.
type Roadmap struct {
	Todo  []string `toml:"todo"`
	Doing []string `toml:"doing"`
	Done  []string `toml:"done"`
}

type dictionary struct {
	Strings    map[string]string `toml:"strings"`
	Quotes     []string          `toml:"quotes"`
	AIExamples []string          `toml:"ai_examples"`
	Lifecycle  []string          `toml:"lifecycle"`
	Roadmap    Roadmap           `toml:"roadmap"`
}

// Catalog holds every language's dictionary.
type Catalog struct {
	dicts map[Language]dictionary
}

// Load decodes the embedded dictionaries.
func Load() (*Catalog, error) {
	c := &Catalog{dicts: make(map[Language]dictionary, len(Languages))}
	for _, lang := range Languages {
		path := "locales/" + string(lang) + ".toml"
		raw, err := locales.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		var d dictionary
		if _, err := toml.Decode(string(raw), &d); err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
		c.dicts[lang] = d
	}
	return c, nil
}

// MustLoad is Load for package init and tests.
func MustLoad() *Catalog {
	c, err := Load()
	if err != nil {
		panic(err)
	}
	return c
}

// T looks key up in lang, then in English, then returns the key.
func (c *Catalog) T(lang Language, key string) string {
	if v, ok := c.dicts[lang].Strings[key]; ok {
		return v
	}
	if v, ok := c.dicts[English].Strings[key]; ok {
		return v
	}
	return key
}

func (c *Catalog) Quotes(lang Language) []string     { return c.list(lang, func(d dictionary) []string { return d.Quotes }) }
func (c *Catalog) AIExamples(lang Language) []string { return c.list(lang, func(d dictionary) []string { return d.AIExamples }) }
func (c *Catalog) Lifecycle(lang Language) []string  { return c.list(lang, func(d dictionary) []string { return d.Lifecycle }) }

func (c *Catalog) Roadmap(lang Language) Roadmap {
	if d, ok := c.dicts[lang]; ok {
		return d.Roadmap
	}
	return c.dicts[English].Roadmap
}

func (c *Catalog) list(lang Language, pick func(dictionary) []string) []string {
	if d, ok := c.dicts[lang]; ok && len(pick(d)) > 0 {
		return pick(d)
	}
	return pick(c.dicts[English])
}

// Keys returns the string keys defined for lang.
func (c *Catalog) Keys(lang Language) []string {
	out := make([]string, 0, len(c.dicts[lang].Strings))
	for k := range c.dicts[lang].Strings {
		out = append(out, k)
	}
	return out
}

// Parse resolves an explicit language setting.
func Parse(s string) (Language, error) {
	switch Language(strings.ToLower(strings.TrimSpace(s))) {
	case English:
		return English, nil
	case Chinese:
		return Chinese, nil
	}
	return English, fmt.Errorf("%w %q", ErrUnknownLanguage, s)
}

// Next toggles between the supported languages.
func (l Language) Next() Language {
	for i, lang := range Languages {
		if lang == l {
			return Languages[(i+1)%len(Languages)]
		}
	}
	return English
}

var matcher = language.NewMatcher([]language.Tag{language.English, language.Chinese})

// Detect picks a language from a locale string such as "zh_CN.UTF-8" or a
// BCP 47 tag. Anything unrecognised is English.
func Detect(locale string) Language {
	locale = strings.TrimSpace(locale)
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	locale = strings.ReplaceAll(locale, "_", "-")
	if locale == "" || locale == "C" || locale == "POSIX" {
		return English
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return English
	}
	_, index, confidence := matcher.Match(tag)
	if confidence == language.No {
		return English
	}
	return Languages[index]
}
