package pretty_test

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdnote/internal/ui/pretty"
	"github.com/yaklabco/mdnote/pkg/parser"
	"github.com/yaklabco/mdnote/pkg/textedit"
)

func TestNewStyles_ColorDisabled(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)
	require.NotNil(t, styles)
	assert.Equal(t, "test", styles.Bold.Render("test"))
	assert.Equal(t, "test", styles.BlockToken.Render("test"))
}

func TestIsColorEnabled(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	assert.True(t, pretty.IsColorEnabled("always", &buf))
	assert.False(t, pretty.IsColorEnabled("never", os.Stdout))
	assert.False(t, pretty.IsColorEnabled("auto", &buf), "buffers are never terminals")
}

func TestTerminalWidth_NotATerminal(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	assert.Equal(t, 100, pretty.TerminalWidth(&buf))
}

func TestTokenTable_Format(t *testing.T) {
	t.Parallel()

	table := pretty.NewTokenTable(pretty.NewStyles(false), 80)
	out := table.Format(parser.Tokenize("# Hi\n- a\n**b** [[x]]"))

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 9)
	assert.True(t, strings.HasPrefix(lines[0], "RANGE"))
	assert.Contains(t, lines[2], "heading")
	assert.Contains(t, lines[2], "h1")
	assert.Contains(t, lines[2], `"# Hi\n"`)
	assert.Contains(t, lines[3], "list-item")
	assert.Contains(t, lines[3], "bullet L0")
	assert.Equal(t, "5 tokens", lines[8])

	assert.Empty(t, table.Format(nil))
}

func TestTokenTable_TruncatesRaw(t *testing.T) {
	t.Parallel()

	table := pretty.NewTokenTable(pretty.NewStyles(false), 50)
	out := table.Format(parser.Tokenize(strings.Repeat("word ", 40)))

	for _, line := range strings.Split(strings.TrimSuffix(out, "\n"), "\n") {
		assert.LessOrEqual(t, len([]rune(line)), 50, line)
	}
	assert.Contains(t, out, "…")
}

func TestFormatFmtSummary(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)

	tests := []struct {
		name  string
		stats pretty.FmtStats
		want  string
	}{
		{"clean", pretty.FmtStats{FilesProcessed: 1}, "All files normalized (1 file checked)\n"},
		{"rewritten", pretty.FmtStats{FilesProcessed: 3, FilesChanged: 2}, "2 files reformatted (3 files checked)\n"},
		{"check", pretty.FmtStats{FilesProcessed: 2, FilesChanged: 1, Check: true}, "1 file not normalized (2 files checked)\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, styles.FormatFmtSummary(tt.stats))
		})
	}

	assert.Equal(t, "a.md: reformatted\n", styles.FormatFileStatus("a.md", "reformatted"))
}

func TestFormatDiff(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)
	assert.Empty(t, styles.FormatDiff(nil))

	diff := textedit.LineDiff("a.md", "* x\nkeep", "- x\nkeep")
	want := "diff --git a/a.md b/a.md\n" +
		"--- a/a.md\n" +
		"+++ b/a.md\n" +
		"@@ -1,2 +1,2 @@\n" +
		"-* x\n" +
		"+- x\n" +
		" keep\n"
	assert.Equal(t, want, styles.FormatDiff(diff))
}
