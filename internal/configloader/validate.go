package configloader

import (
	"fmt"
	"strings"

	"github.com/yaklabco/mdnote/pkg/config"
	"github.com/yaklabco/mdnote/pkg/runner"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the path to the invalid field (e.g., "render.entry_route").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string

	// FilePath is the config file containing the error (if known).
	FilePath string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string
	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	parts = append(parts, e.Message)

	return strings.Join(parts, ": ")
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues.
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// knownLogLevels lists valid log levels.
//
//nolint:gochecknoglobals // Read-only lookup table.
var knownLogLevels = map[string]bool{
	"debug":   true,
	"info":    true,
	"warn":    true,
	"warning": true,
	"error":   true,
}

// Validate checks a configuration for errors and warnings.
func Validate(cfg *config.Config) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		return result
	}

	if cfg.LogLevel != "" && !knownLogLevels[strings.ToLower(cfg.LogLevel)] {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "log_level",
			Value:   cfg.LogLevel,
			Message: fmt.Sprintf("invalid log level %q; must be one of: debug, info, warn, error", cfg.LogLevel),
		})
	}

	if cfg.Color != "" && !cfg.Color.IsValid() {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "color",
			Value:   cfg.Color,
			Message: fmt.Sprintf("invalid color mode %q; must be one of: auto, always, never", cfg.Color),
		})
	}

	validateRoute(result, "render.entry_route", cfg.Render.EntryRoute)
	validateRoute(result, "render.wiki_route", cfg.Render.WikiRoute)

	if strings.Contains(cfg.Render.WikiSlug, "/") {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "render.wiki_slug",
			Value:   cfg.Render.WikiSlug,
			Message: "wiki slug must not contain '/'",
		})
	}

	if _, err := runner.CompilePatterns(cfg.Exclude); err != nil {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "exclude",
			Value:   cfg.Exclude,
			Message: err.Error(),
		})
	}

	if cfg.Write && cfg.Check {
		result.Warnings = append(result.Warnings, ValidationError{
			Message: "--check ignores --write; no files will be modified",
		})
	}

	return result
}

func validateRoute(result *ValidationResult, field, route string) {
	if route == "" || strings.HasPrefix(route, "/") {
		return
	}
	result.Errors = append(result.Errors, ValidationError{
		Field:   field,
		Value:   route,
		Message: fmt.Sprintf("route %q must start with '/'", route),
	})
}

// ValidateWithFile validates configuration and includes file path in errors.
func ValidateWithFile(cfg *config.Config, filePath string) *ValidationResult {
	result := Validate(cfg)
	for i := range result.Errors {
		result.Errors[i].FilePath = filePath
	}
	for i := range result.Warnings {
		result.Warnings[i].FilePath = filePath
	}
	return result
}
