package editor

import (
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/yaklabco/mdnote/internal/logging"
	"github.com/yaklabco/mdnote/pkg/render"
)

// Editor holds the current state of one editing session.
type Editor struct {
	id     string
	logger *log.Logger
	state  State
}

// New creates an editor over state. A nil logger uses the default logger.
func New(state State, logger *log.Logger) *Editor {
	if logger == nil {
		logger = logging.Default()
	}

	id := uuid.NewString()
	logger = logger.With(logging.FieldSession, id)
	logger.Debug("editor session started",
		logging.FieldCursor, state.Cursor,
		logging.FieldBytes, len(state.Text()),
	)

	return &Editor{id: id, logger: logger, state: state}
}

// ID returns the session id.
func (e *Editor) ID() string {
	return e.id
}

// State returns the current state.
func (e *Editor) State() State {
	return e.state
}

// Dispatch applies keys in order and returns the resulting state.
func (e *Editor) Dispatch(keys ...Key) State {
	for _, key := range keys {
		before := e.state.Cursor
		e.state = e.state.Apply(key)
		e.logger.Debug("key",
			logging.FieldKey, key.String(),
			logging.FieldCursor, e.state.Cursor,
			logging.FieldCursorBefore, before,
		)
	}
	return e.state
}

// Complete replaces the wiki-link query under the cursor with a link to
// entryID. It reports false when the cursor is not inside an open link.
func (e *Editor) Complete(entryID string) bool {
	query, start, ok := WikiLinkTrigger(e.state.Text(), e.state.Cursor)
	if !ok {
		return false
	}

	e.state = CompleteWikiLink(e.state, start, entryID)
	e.logger.Debug("wiki link completed",
		logging.FieldQuery, query,
		logging.FieldEntry, entryID,
	)
	return true
}

// HTML renders the current state.
func (e *Editor) HTML(opts render.Options) string {
	return e.state.HTML(opts)
}
