// Package editor drives a markdown document through cursor edits.
//
// State is an immutable snapshot of a document, a cursor and focus. Every
// transition method returns a new State and leaves its receiver untouched,
// so hosts can keep previous states around and compare them freely.
package editor

import (
	"maps"

	"github.com/yaklabco/mdnote/pkg/cursor"
	"github.com/yaklabco/mdnote/pkg/mdast"
	"github.com/yaklabco/mdnote/pkg/parser"
	"github.com/yaklabco/mdnote/pkg/render"
	"github.com/yaklabco/mdnote/pkg/textedit"
)

// Direction is a cursor movement direction.
type Direction uint8

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// State is one snapshot of an editing session.
type State struct {
	Doc     *mdast.Document
	Cursor  int
	Focused bool

	// Titles resolves wiki-link ids. Nil means no resolution data.
	Titles map[string]string
}

// NewState parses text and places an unfocused cursor at its end.
func NewState(text string) State {
	return State{Doc: parser.Parse(text), Cursor: len(text)}
}

// Text returns the document source.
func (s State) Text() string {
	if s.Doc == nil {
		return ""
	}
	return mdast.ToText(s.Doc)
}

// with returns s carrying a new document and cursor.
func (s State) with(doc *mdast.Document, pos int) State {
	s.Doc = doc
	s.Cursor = pos
	return s
}

// Insert types text at the cursor.
func (s State) Insert(text string) State {
	return s.with(cursor.InsertText(s.Doc, s.Cursor, text))
}

// Backspace deletes the character before the cursor.
func (s State) Backspace() State {
	return s.with(cursor.Delete(s.Doc, s.Cursor, false))
}

// DeleteForward deletes the character after the cursor.
func (s State) DeleteForward() State {
	return s.with(cursor.Delete(s.Doc, s.Cursor, true))
}

// Enter splits the line at the cursor.
func (s State) Enter() State {
	return s.with(cursor.Enter(s.Doc, s.Cursor))
}

// Tab indents the list item under the cursor, or outdents it with shift.
func (s State) Tab(shift bool) State {
	return s.with(cursor.Tab(s.Doc, s.Cursor, shift))
}

// Move moves the cursor. ctrl only affects horizontal movement, where it
// jumps by word.
func (s State) Move(dir Direction, ctrl bool) State {
	doc := s.Doc
	if doc == nil {
		doc = mdast.NewDocument()
	}

	switch dir {
	case DirUp:
		s.Cursor = cursor.MoveUp(doc, s.Cursor)
	case DirDown:
		s.Cursor = cursor.MoveDown(doc, s.Cursor)
	case DirLeft:
		s.Cursor = cursor.MoveLeft(doc, s.Cursor, ctrl)
	case DirRight:
		s.Cursor = cursor.MoveRight(doc, s.Cursor, ctrl)
	}
	s.Doc = doc
	return s
}

// Focus shows the cursor and raw syntax around it.
func (s State) Focus() State {
	s.Focused = true
	return s
}

// Blur hides the cursor.
func (s State) Blur() State {
	s.Focused = false
	return s
}

// WithTitles returns s resolving wiki links against a copy of titles.
func (s State) WithTitles(titles map[string]string) State {
	s.Titles = maps.Clone(titles)
	return s
}

// SetCursor moves the cursor to pos, clamped to the document.
func (s State) SetCursor(pos int) State {
	s.Cursor = textedit.Clamp(pos, len(s.Text()))
	return s
}

// HTML renders the document. Unfocused states render without cursor or raw
// syntax. opts.Titles falls back to the state's titles.
func (s State) HTML(opts render.Options) string {
	if opts.Titles == nil {
		opts.Titles = s.Titles
	}

	pos := -1
	if s.Focused {
		pos = s.Cursor
	}
	return render.Render(s.Doc, pos, opts)
}
