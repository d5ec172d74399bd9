// Package cursor implements the editing operators of the note editor.
//
// Every operator takes a document and a byte offset and returns a new
// document and offset. Operators serialize the document, apply a text edit
// and parse the result again; the input document is never modified.
package cursor

import (
	"strings"

	"github.com/yaklabco/mdnote/pkg/mdast"
	"github.com/yaklabco/mdnote/pkg/textedit"
)

// ListContext describes the list item under a cursor.
type ListContext struct {
	// InList is false when the cursor is not inside a list item.
	InList bool

	Item *mdast.ListItem
	List *mdast.List

	// Empty is true when the item's content is blank.
	Empty bool

	// Before and After split the item content at the cursor.
	Before string
	After  string

	// LineStart is the offset of the item's line.
	LineStart int
}

// ListContextAt resolves the list item containing pos. A parent chain that
// cannot be walked to the root reports "not in list".
func ListContextAt(doc *mdast.Document, pos int) ListContext {
	if doc == nil {
		return ListContext{}
	}

	node := mdast.FindNodeAtPosition(doc, pos)
	if node == nil {
		return ListContext{}
	}

	chain, ok := mdast.Ancestors(doc, node)
	if !ok {
		return ListContext{}
	}

	var ctx ListContext
	for _, n := range append([]mdast.Node{node}, chain...) {
		switch typed := n.(type) {
		case *mdast.ListItem:
			if ctx.Item == nil {
				ctx.Item = typed
			}
		case *mdast.List:
			if ctx.Item != nil && ctx.List == nil {
				ctx.List = typed
			}
		}
	}
	if ctx.Item == nil {
		return ListContext{}
	}

	content := mdast.InlineText(ctx.Item.Children)
	split := textedit.Clamp(pos-ctx.Item.ContentStart, len(content))

	ctx.InList = true
	ctx.Empty = strings.TrimSpace(content) == ""
	ctx.Before = content[:split]
	ctx.After = content[split:]
	ctx.LineStart = ctx.Item.Start

	return ctx
}

// markerStart returns the offset of the item's marker.
func (c ListContext) markerStart() int {
	return c.Item.ContentStart - len(c.Item.Marker) - 1
}

// blockAt returns the top-level block containing pos, or nil.
func blockAt(doc *mdast.Document, pos int) mdast.Block {
	for _, block := range doc.Children {
		if mdast.Contains(block, pos) {
			return block
		}
	}
	return nil
}
