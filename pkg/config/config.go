// Package config defines core configuration types for mdnote.
// These types are pure data structures with no dependency on how they are loaded.
package config

// ColorMode controls colored terminal output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// IsValid returns true if the color mode is known.
func (m ColorMode) IsValid() bool {
	switch m {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}

// Defaults for the render section.
const (
	DefaultEntryRoute = "/entries"
	DefaultWikiRoute  = "/wiki"
	DefaultLogLevel   = "info"
)

// RenderConfig controls HTML rendering.
type RenderConfig struct {
	// EntryRoute prefixes wiki-link hrefs outside a wiki.
	EntryRoute string `yaml:"entry_route"`

	// WikiRoute prefixes wiki-link hrefs when WikiSlug is set.
	WikiRoute string `yaml:"wiki_route"`

	// WikiSlug renders links as WikiRoute/<slug>/<id>.
	WikiSlug string `yaml:"wiki_slug,omitempty"`

	// DetectLanguage guesses a language class for untagged code blocks.
	DetectLanguage *bool `yaml:"detect_language,omitempty"`
}

// Config is the root configuration structure for mdnote.
type Config struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// Color controls styled output.
	Color ColorMode `yaml:"color"`

	// TitlesFile is a YAML file mapping entry ids to titles.
	TitlesFile string `yaml:"titles_file,omitempty"`

	// Backups keeps a copy of each file before fmt rewrites it.
	Backups *bool `yaml:"backups,omitempty"`

	// Exclude lists glob patterns of files and directories fmt skips when
	// walking directories.
	Exclude []string `yaml:"exclude,omitempty"`

	Render RenderConfig `yaml:"render"`

	// CLI-level options (not persisted to config files).

	// Write rewrites files in place.
	Write bool `yaml:"-"`

	// Check fails when a file is not normalized.
	Check bool `yaml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		LogLevel: DefaultLogLevel,
		Color:    ColorAuto,
		Backups:  Bool(false),
		Render: RenderConfig{
			EntryRoute:     DefaultEntryRoute,
			WikiRoute:      DefaultWikiRoute,
			DetectLanguage: Bool(true),
		},
	}
}

// BackupsEnabled reports whether fmt should back files up.
func (c *Config) BackupsEnabled() bool {
	return c.Backups != nil && *c.Backups
}

// LanguageDetection reports whether untagged code blocks get a detected
// language. Unset means enabled.
func (r RenderConfig) LanguageDetection() bool {
	return r.DetectLanguage == nil || *r.DetectLanguage
}

// Bool returns a pointer to b.
func Bool(b bool) *bool {
	return &b
}
