// Package titles loads the entry id to title mapping used to resolve wiki
// links.
package titles

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// ErrNotFound is returned when a title file does not exist.
var ErrNotFound = errors.New("title file not found")

// Map maps entry ids to display titles.
type Map map[string]string

// document is the nested file layout. A file without an entries key is
// read as a flat id: title mapping.
type document struct {
	Entries map[string]string `yaml:"entries"`
}

// Parse decodes a title map from YAML. Empty input yields an empty map.
func Parse(data []byte) (Map, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Map{}, nil
	}

	var raw map[string]yaml.Node
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse titles: %w", err)
	}

	if _, nested := raw["entries"]; nested {
		var doc document
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parse titles: %w", err)
		}
		return toMap(doc.Entries), nil
	}

	var flat map[string]string
	if err := yaml.Unmarshal(data, &flat); err != nil {
		return nil, fmt.Errorf("parse titles: %w", err)
	}
	return toMap(flat), nil
}

func toMap(entries map[string]string) Map {
	out := make(Map, len(entries))
	for id, title := range entries {
		out[id] = title
	}
	return out
}

// LoadFile reads a title map from path.
func LoadFile(ctx context.Context, path string) (Map, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("load titles: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("read titles %s: %w", path, err)
	}

	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Lookup returns the title for id.
func (m Map) Lookup(id string) (string, bool) {
	title, ok := m[id]
	return title, ok
}

// IDs returns the entry ids in sorted order.
func (m Map) IDs() []string {
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Missing returns the ids in want that have no title, in order and without
// duplicates.
func (m Map) Missing(want []string) []string {
	var missing []string
	seen := make(map[string]bool, len(want))
	for _, id := range want {
		if _, ok := m[id]; ok || seen[id] {
			continue
		}
		seen[id] = true
		missing = append(missing, id)
	}
	return missing
}

// ToYAML encodes m in the nested layout.
func (m Map) ToYAML() ([]byte, error) {
	data, err := yaml.Marshal(document{Entries: m})
	if err != nil {
		return nil, fmt.Errorf("encode titles: %w", err)
	}
	return data, nil
}
