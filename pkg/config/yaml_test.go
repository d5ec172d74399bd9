package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdnote/pkg/config"
)

func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, config.ColorAuto, cfg.Color)
	assert.Equal(t, "/entries", cfg.Render.EntryRoute)
	assert.Equal(t, "/wiki", cfg.Render.WikiRoute)
	assert.True(t, cfg.Render.LanguageDetection())
	assert.False(t, cfg.BackupsEnabled())
}

func TestColorMode_IsValid(t *testing.T) {
	t.Parallel()

	assert.True(t, config.ColorAlways.IsValid())
	assert.True(t, config.ColorNever.IsValid())
	assert.False(t, config.ColorMode("sometimes").IsValid())
}

func TestFromYAML(t *testing.T) {
	t.Parallel()

	data := []byte(`log_level: debug
color: never
titles_file: titles.yaml
backups: true
render:
  entry_route: /notes
  wiki_slug: garden
  detect_language: false
`)

	cfg, err := config.FromYAML(data)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, config.ColorNever, cfg.Color)
	assert.Equal(t, "titles.yaml", cfg.TitlesFile)
	assert.True(t, cfg.BackupsEnabled())
	assert.Equal(t, "/notes", cfg.Render.EntryRoute)
	assert.Empty(t, cfg.Render.WikiRoute)
	assert.Equal(t, "garden", cfg.Render.WikiSlug)
	assert.False(t, cfg.Render.LanguageDetection())
}

func TestFromYAML_Empty(t *testing.T) {
	t.Parallel()

	cfg, err := config.FromYAML([]byte("  \n"))
	require.NoError(t, err)
	assert.Equal(t, &config.Config{}, cfg)
}

func TestFromYAML_UnknownKey(t *testing.T) {
	t.Parallel()

	_, err := config.FromYAML([]byte("flavor: gfm\n"))
	require.Error(t, err)
}

func TestToYAML_RoundTrip(t *testing.T) {
	t.Parallel()

	original := config.NewConfig()
	original.Render.WikiSlug = "garden"
	original.Write = true

	data, err := original.ToYAML()
	require.NoError(t, err)
	assert.NotContains(t, string(data), "write")

	back, err := config.FromYAML(data)
	require.NoError(t, err)

	original.Write = false
	assert.Equal(t, original, back)
}

func TestToYAML_Nil(t *testing.T) {
	t.Parallel()

	var cfg *config.Config
	data, err := cfg.ToYAML()
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestTemplate(t *testing.T) {
	t.Parallel()

	data, err := config.Template()
	require.NoError(t, err)
	assert.Contains(t, string(data), "# mdnote configuration\n")
	assert.Contains(t, string(data), "entry_route: /entries")

	cfg, err := config.FromYAML(data)
	require.NoError(t, err)
	assert.Equal(t, config.NewConfig(), cfg)
}

func TestClone(t *testing.T) {
	t.Parallel()

	var nilCfg *config.Config
	assert.Nil(t, nilCfg.Clone())

	original := config.NewConfig()
	clone := original.Clone()
	require.NotSame(t, original, clone)
	assert.Equal(t, original, clone)

	*clone.Render.DetectLanguage = false
	*clone.Backups = true
	assert.True(t, original.Render.LanguageDetection())
	assert.False(t, original.BackupsEnabled())
}
