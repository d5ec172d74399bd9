package configloader

import (
	"slices"

	"github.com/yaklabco/mdnote/pkg/config"
)

// merge combines two configurations, with override taking precedence over base.
//   - Strings: override overwrites base if non-empty
//   - Pointers: override overwrites base if non-nil
//   - Slices: override replaces base if non-empty
//   - CLI-only booleans: override can only switch them on
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := base.Clone()

	if override.LogLevel != "" {
		result.LogLevel = override.LogLevel
	}
	if override.Color != "" {
		result.Color = override.Color
	}
	if override.TitlesFile != "" {
		result.TitlesFile = override.TitlesFile
	}
	if override.Backups != nil {
		result.Backups = config.Bool(*override.Backups)
	}
	if len(override.Exclude) > 0 {
		result.Exclude = slices.Clone(override.Exclude)
	}

	if override.Render.EntryRoute != "" {
		result.Render.EntryRoute = override.Render.EntryRoute
	}
	if override.Render.WikiRoute != "" {
		result.Render.WikiRoute = override.Render.WikiRoute
	}
	if override.Render.WikiSlug != "" {
		result.Render.WikiSlug = override.Render.WikiSlug
	}
	if override.Render.DetectLanguage != nil {
		result.Render.DetectLanguage = config.Bool(*override.Render.DetectLanguage)
	}

	if override.Write {
		result.Write = true
	}
	if override.Check {
		result.Check = true
	}

	return result
}

// MergeAll merges multiple configurations in order, with later configs taking precedence.
func MergeAll(configs ...*config.Config) *config.Config {
	if len(configs) == 0 {
		return nil
	}

	result := configs[0]
	for _, cfg := range configs[1:] {
		result = merge(result, cfg)
	}
	return result
}
