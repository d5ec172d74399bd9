package runner

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gobwas/glob"
)

// Discover expands opts.Paths into markdown files. Files named directly
// are kept whatever their extension; directories are walked recursively,
// skipping hidden entries. The result is sorted and free of duplicates.
func Discover(ctx context.Context, opts Options) ([]string, error) {
	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	excludes, err := CompilePatterns(opts.Exclude)
	if err != nil {
		return nil, err
	}

	d := &discoverer{workDir: workDir, extensions: opts.extensions(), excludes: excludes}
	for _, input := range opts.paths() {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("discovery cancelled: %w", err)
		}

		path := input
		if !filepath.IsAbs(path) {
			path = filepath.Join(workDir, path)
		}
		path = filepath.Clean(path)

		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", input, err)
		}

		if !info.IsDir() {
			d.add(input)
			continue
		}
		if err := d.walk(ctx, input, path); err != nil {
			return nil, err
		}
	}

	slices.Sort(d.files)
	return slices.Compact(d.files), nil
}

type discoverer struct {
	workDir    string
	extensions []string
	excludes   []glob.Glob
	files      []string
}

func (d *discoverer) add(path string) {
	d.files = append(d.files, path)
}

// walk adds markdown files under root. Paths are reported relative to the
// input as the user wrote it.
func (d *discoverer) walk(ctx context.Context, input, root string) error {
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if walkErr != nil {
			if os.IsPermission(walkErr) {
				return nil
			}
			return walkErr
		}

		if path != root && strings.HasPrefix(entry.Name(), ".") {
			if entry.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.excluded(path) {
			if entry.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if entry.IsDir() || !d.isMarkdown(path) {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return fmt.Errorf("relative path: %w", err)
		}
		d.add(filepath.Join(input, rel))
		return nil
	})
	if err != nil {
		return fmt.Errorf("walk directory %s: %w", input, err)
	}
	return nil
}

func (d *discoverer) isMarkdown(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return slices.Contains(d.extensions, ext)
}

// excluded matches path, relative to the working directory, against the
// exclude patterns. A pattern also matches the base name alone.
func (d *discoverer) excluded(path string) bool {
	if len(d.excludes) == 0 {
		return false
	}

	rel, err := filepath.Rel(d.workDir, path)
	if err != nil {
		rel = path
	}
	rel = filepath.ToSlash(rel)
	base := filepath.Base(path)

	for _, g := range d.excludes {
		if g.Match(rel) || g.Match(base) {
			return true
		}
	}
	return false
}

func resolveWorkDir(workDir string) (string, error) {
	if workDir == "" {
		return os.Getwd()
	}
	return filepath.Abs(workDir)
}
