package titles_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdnote/pkg/titles"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data string
		want titles.Map
	}{
		{"empty", "", titles.Map{}},
		{"whitespace", "\n  \n", titles.Map{}},
		{"nested", "entries:\n  entry-1: First\n  entry-2: Second\n", titles.Map{"entry-1": "First", "entry-2": "Second"}},
		{"flat", "entry-1: First\n", titles.Map{"entry-1": "First"}},
		{"nested empty", "entries: {}\n", titles.Map{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := titles.Parse([]byte(tt.data))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	t.Parallel()

	for _, data := range []string{"- a\n- b\n", "a: [1, 2]\n", "entries: [x]\n"} {
		_, err := titles.Parse([]byte(data))
		require.Error(t, err, data)
	}
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "titles.yaml")
	require.NoError(t, os.WriteFile(path, []byte("entries:\n  x: Ex\n"), 0o600))

	m, err := titles.LoadFile(context.Background(), path)
	require.NoError(t, err)

	title, ok := m.Lookup("x")
	assert.True(t, ok)
	assert.Equal(t, "Ex", title)

	_, err = titles.LoadFile(context.Background(), filepath.Join(t.TempDir(), "none.yaml"))
	require.ErrorIs(t, err, titles.ErrNotFound)
}

func TestMap_Helpers(t *testing.T) {
	t.Parallel()

	m := titles.Map{"b": "Bee", "a": "Ay"}
	assert.Equal(t, []string{"a", "b"}, m.IDs())
	assert.Equal(t, []string{"c", "d"}, m.Missing([]string{"a", "c", "d", "c"}))

	data, err := m.ToYAML()
	require.NoError(t, err)

	back, err := titles.Parse(data)
	require.NoError(t, err)
	assert.Equal(t, m, back)
}
