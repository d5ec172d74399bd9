package editor_test

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdnote/pkg/editor"
	"github.com/yaklabco/mdnote/pkg/render"
)

func newTestLogger(buf *bytes.Buffer) *log.Logger {
	return log.NewWithOptions(buf, log.Options{Level: log.DebugLevel})
}

func TestEditor_SessionID(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	first := editor.New(editor.NewState(""), newTestLogger(&buf))
	second := editor.New(editor.NewState(""), newTestLogger(&buf))

	_, err := uuid.Parse(first.ID())
	require.NoError(t, err)
	assert.NotEqual(t, first.ID(), second.ID())
	assert.Contains(t, buf.String(), first.ID())
}

func TestEditor_Dispatch(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	ed := editor.New(editor.NewState("- a"), newTestLogger(&buf))

	state := ed.Dispatch(editor.Key{Kind: editor.KeyFocus}, editor.Key{Kind: editor.KeyEnter})
	assert.Equal(t, "- a\n- ", state.Text())
	assert.Equal(t, 6, state.Cursor)
	assert.Equal(t, state, ed.State())

	assert.Equal(t, "<ul><li>a</li><li>"+render.CursorMarker+"</li></ul>", ed.HTML(render.Options{}))
	assert.Contains(t, buf.String(), "cursor=6")
}

func TestEditor_Complete(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	ed := editor.New(editor.NewState("see [[al"), newTestLogger(&buf))

	require.True(t, ed.Complete("alpha"))
	assert.Equal(t, "see [[alpha]]", ed.State().Text())
	assert.Equal(t, 13, ed.State().Cursor)

	assert.False(t, ed.Complete("beta"))
	assert.Equal(t, "see [[alpha]]", ed.State().Text())
}

func TestEditor_NilLogger(t *testing.T) {
	t.Parallel()

	ed := editor.New(editor.NewState("x"), nil)
	assert.NotEmpty(t, ed.ID())
	assert.Equal(t, "x", ed.Dispatch().Text())
}
