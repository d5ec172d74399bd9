// Package runner discovers markdown files and processes them concurrently.
package runner

import (
	"fmt"

	"github.com/gobwas/glob"
)

// Options controls discovery and concurrency.
type Options struct {
	// Paths are files or directories to process. Empty means ".".
	Paths []string

	// WorkingDir resolves relative Paths and anchors Exclude patterns.
	// Empty means the process working directory.
	WorkingDir string

	// Extensions are the lowercase extensions treated as markdown.
	// Empty means DefaultExtensions().
	Extensions []string

	// Exclude are glob patterns, relative to WorkingDir, of files and
	// directories to skip. "**" crosses directory boundaries.
	Exclude []string

	// Jobs bounds the number of concurrent workers. Zero or negative means
	// runtime.NumCPU().
	Jobs int
}

// DefaultExtensions returns the default set of markdown file extensions.
func DefaultExtensions() []string {
	return []string{".md", ".markdown"}
}

func (o Options) extensions() []string {
	if len(o.Extensions) == 0 {
		return DefaultExtensions()
	}
	return o.Extensions
}

func (o Options) paths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}

// CompilePatterns compiles exclude patterns with "/" as the separator.
func CompilePatterns(patterns []string) ([]glob.Glob, error) {
	globs := make([]glob.Glob, 0, len(patterns))
	for _, pattern := range patterns {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
		}
		globs = append(globs, g)
	}
	return globs, nil
}
