package configloader

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/yaklabco/mdnote/pkg/config"
)

// envVarPrefix is the prefix for all mdnote environment variables.
const envVarPrefix = "MDNOTE_"

// envSetter applies one environment value to a config.
type envSetter func(cfg *config.Config, value string) error

// envVar describes one supported environment variable.
type envVar struct {
	description string
	set         envSetter
}

func setString(field func(cfg *config.Config) *string) envSetter {
	return func(cfg *config.Config, value string) error {
		*field(cfg) = value
		return nil
	}
}

func setBool(field func(cfg *config.Config) **bool) envSetter {
	return func(cfg *config.Config, value string) error {
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean %q (expected true/false/1/0)", value)
		}
		*field(cfg) = config.Bool(b)
		return nil
	}
}

// splitList splits a comma-separated value, dropping empty items.
func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// envVars maps environment variable names (without prefix) to config fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envVars = map[string]envVar{
	"LOG_LEVEL": {
		"Log level: debug, info, warn, or error",
		setString(func(c *config.Config) *string { return &c.LogLevel }),
	},
	"COLOR": {
		"Colored output: auto, always, or never",
		func(c *config.Config, v string) error { c.Color = config.ColorMode(v); return nil },
	},
	"TITLES_FILE": {
		"YAML file mapping entry ids to titles",
		setString(func(c *config.Config) *string { return &c.TitlesFile }),
	},
	"EXCLUDE": {
		"Comma-separated glob patterns fmt skips when walking directories",
		func(c *config.Config, v string) error { c.Exclude = splitList(v); return nil },
	},
	"BACKUPS": {
		"Back files up before fmt --write: true or false",
		setBool(func(c *config.Config) **bool { return &c.Backups }),
	},
	"RENDER_ENTRY_ROUTE": {
		"Route prefix for wiki links outside a wiki",
		setString(func(c *config.Config) *string { return &c.Render.EntryRoute }),
	},
	"RENDER_WIKI_ROUTE": {
		"Route prefix for wiki links inside a wiki",
		setString(func(c *config.Config) *string { return &c.Render.WikiRoute }),
	},
	"RENDER_WIKI_SLUG": {
		"Wiki slug used to build wiki-link routes",
		setString(func(c *config.Config) *string { return &c.Render.WikiSlug }),
	},
	"RENDER_DETECT_LANGUAGE": {
		"Detect languages of untagged code blocks: true or false",
		setBool(func(c *config.Config) **bool { return &c.Render.DetectLanguage }),
	},
}

// LoadFromEnv applies MDNOTE_* overrides found through lookup to cfg.
// Empty values are ignored.
func LoadFromEnv(cfg *config.Config, lookup func(string) (string, bool)) error {
	if cfg == nil {
		return nil
	}

	for _, suffix := range envVarNames() {
		name := envVarPrefix + suffix
		value, ok := lookup(name)
		if !ok || value == "" {
			continue
		}
		if err := envVars[suffix].set(cfg, value); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}

func envVarNames() []string {
	names := make([]string, 0, len(envVars))
	for name := range envVars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ListEnvVars returns every supported environment variable with its description.
func ListEnvVars() map[string]string {
	out := make(map[string]string, len(envVars))
	for suffix, v := range envVars {
		out[envVarPrefix+suffix] = v.description
	}
	return out
}
