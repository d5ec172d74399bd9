package cursor

import (
	"strings"
	"unicode/utf8"

	"github.com/yaklabco/mdnote/pkg/mdast"
	"github.com/yaklabco/mdnote/pkg/parser"
	"github.com/yaklabco/mdnote/pkg/textedit"
)

// headingBreak closes a heading and opens a new paragraph.
const headingBreak = "\n\n"

// normalize serializes doc and parses it again so node offsets match the
// text the operator edits.
func normalize(doc *mdast.Document) (string, *mdast.Document) {
	if doc == nil {
		return "", mdast.NewDocument()
	}
	text := mdast.ToText(doc)
	return text, parser.Parse(text)
}

// apply performs edit on text and parses the result. The returned cursor
// indexes ToText of the returned document, which may differ from the edited
// text once it is normalized ("#F" serializes as "# F").
func apply(text string, edit textedit.TextEdit, cursor int) (*mdast.Document, int) {
	out, err := textedit.Apply(text, []textedit.TextEdit{edit})
	if err != nil {
		return parser.Parse(text), textedit.Clamp(cursor, len(text))
	}
	doc := parser.Parse(out)
	return doc, textedit.Remap(out, mdast.ToText(doc), cursor)
}

// InsertText inserts s at pos. The cursor moves to the end of the insertion.
func InsertText(doc *mdast.Document, pos int, s string) (*mdast.Document, int) {
	text, doc := normalize(doc)
	pos = textedit.Clamp(pos, len(text))
	if s == "" {
		return doc, pos
	}

	return apply(text, textedit.TextEdit{StartOffset: pos, EndOffset: pos, NewText: s}, pos+len(s))
}

// Delete removes one character before pos, or after pos when forward is set.
//
// Backspace directly after a list marker removes the whole marker. When the
// item has no content the line feed before it is removed too, joining the
// cursor to the end of the previous line.
func Delete(doc *mdast.Document, pos int, forward bool) (*mdast.Document, int) {
	text, doc := normalize(doc)
	pos = textedit.Clamp(pos, len(text))

	if forward {
		if pos == len(text) {
			return doc, pos
		}
		_, size := utf8.DecodeRuneInString(text[pos:])
		return apply(text, textedit.TextEdit{StartOffset: pos, EndOffset: pos + size}, pos)
	}

	if pos == 0 {
		return doc, 0
	}

	if ctx := ListContextAt(doc, pos); ctx.InList && pos == ctx.Item.ContentStart {
		start := ctx.markerStart()
		if ctx.Empty && ctx.Item.Start > 0 {
			start = ctx.Item.Start - 1
		}
		return apply(text, textedit.TextEdit{StartOffset: start, EndOffset: pos}, start)
	}

	_, size := utf8.DecodeLastRuneInString(text[:pos])
	return apply(text, textedit.TextEdit{StartOffset: pos - size, EndOffset: pos}, pos-size)
}

// Enter splits the block at pos.
//
// In a list item it continues the list with a fresh marker of the same type
// and level, or removes an empty item and leaves a blank line after the list.
// Inside or at the end of a heading it inserts a blank line so typing
// continues in a new paragraph. At the start of a heading it inserts a plain
// line feed, moving the heading down.
func Enter(doc *mdast.Document, pos int) (*mdast.Document, int) {
	text, doc := normalize(doc)
	pos = textedit.Clamp(pos, len(text))

	if ctx := ListContextAt(doc, pos); ctx.InList {
		item := ctx.Item
		switch {
		case ctx.Empty:
			edit := textedit.TextEdit{StartOffset: item.Start, EndOffset: item.End, NewText: "\n"}
			return apply(text, edit, item.Start+1)
		case pos >= item.ContentStart:
			insert := "\n" + mdast.ListMarker(item.ListType, item.Level)
			return apply(text, textedit.TextEdit{StartOffset: pos, EndOffset: pos, NewText: insert}, pos+len(insert))
		}
	}

	if heading, ok := blockAt(doc, pos).(*mdast.Heading); ok && pos > heading.Start {
		edit := textedit.TextEdit{StartOffset: pos, EndOffset: pos, NewText: headingBreak}
		return apply(text, edit, pos+len(headingBreak))
	}

	return apply(text, textedit.TextEdit{StartOffset: pos, EndOffset: pos, NewText: "\n"}, pos+1)
}

// Tab indents the list item at pos by one level, or outdents it when shift
// is set. An item is never indented more than one level past the list line
// directly above it. Outside a list Tab does nothing.
func Tab(doc *mdast.Document, pos int, shift bool) (*mdast.Document, int) {
	text, doc := normalize(doc)
	pos = textedit.Clamp(pos, len(text))

	if ctx := ListContextAt(doc, pos); !ctx.InList {
		return doc, pos
	}

	lines := mdast.BuildLines(text)
	line := lines.LineAt(pos)
	lineStart := lines.Line(line).StartOffset
	current := leadingSpaces(lines.Content(line))

	var indent int
	if shift {
		indent = max(current-mdast.IndentWidth, 0)
	} else {
		if line == 0 {
			return doc, pos
		}
		_, previous, ok := parser.ParseListMarker(lines.Content(line - 1))
		if !ok {
			return doc, pos
		}
		indent = min(current+mdast.IndentWidth, previous+mdast.IndentWidth)
	}

	if indent == current || (!shift && indent < current) {
		return doc, pos
	}

	edit := textedit.TextEdit{
		StartOffset: lineStart,
		EndOffset:   lineStart + current,
		NewText:     strings.Repeat(" ", indent),
	}
	return apply(text, edit, max(lineStart, pos+edit.Delta()))
}

func leadingSpaces(line string) int {
	return len(line) - len(strings.TrimLeft(line, " "))
}
