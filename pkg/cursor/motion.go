package cursor

import (
	"unicode"
	"unicode/utf8"

	"github.com/yaklabco/mdnote/pkg/mdast"
	"github.com/yaklabco/mdnote/pkg/textedit"
)

// MoveUp moves pos to the same column on the previous line. On the first
// line it moves to the start of the document.
func MoveUp(doc *mdast.Document, pos int) int {
	text := textOf(doc)
	lines := mdast.BuildLines(text)

	line, col := lines.Column(textedit.Clamp(pos, len(text)))
	if line == 0 {
		return 0
	}
	return lines.Offset(line-1, col)
}

// MoveDown moves pos to the same column on the next line. On the last line
// it moves to the end of the document.
func MoveDown(doc *mdast.Document, pos int) int {
	text := textOf(doc)
	lines := mdast.BuildLines(text)

	line, col := lines.Column(textedit.Clamp(pos, len(text)))
	if line == lines.Count()-1 {
		return len(text)
	}
	return lines.Offset(line+1, col)
}

// MoveLeft moves pos back one character, or to the start of the previous
// word when ctrl is set.
func MoveLeft(doc *mdast.Document, pos int, ctrl bool) int {
	text := textOf(doc)
	pos = textedit.Clamp(pos, len(text))

	if !ctrl {
		if pos == 0 {
			return 0
		}
		_, size := utf8.DecodeLastRuneInString(text[:pos])
		return pos - size
	}

	for pos > 0 {
		r, size := utf8.DecodeLastRuneInString(text[:pos])
		if !unicode.IsSpace(r) {
			break
		}
		pos -= size
	}
	for pos > 0 {
		r, size := utf8.DecodeLastRuneInString(text[:pos])
		if unicode.IsSpace(r) {
			break
		}
		pos -= size
	}
	return pos
}

// MoveRight moves pos forward one character, or to the end of the next word
// when ctrl is set.
func MoveRight(doc *mdast.Document, pos int, ctrl bool) int {
	text := textOf(doc)
	pos = textedit.Clamp(pos, len(text))

	if !ctrl {
		if pos == len(text) {
			return pos
		}
		_, size := utf8.DecodeRuneInString(text[pos:])
		return pos + size
	}

	for pos < len(text) {
		r, size := utf8.DecodeRuneInString(text[pos:])
		if !unicode.IsSpace(r) {
			break
		}
		pos += size
	}
	for pos < len(text) {
		r, size := utf8.DecodeRuneInString(text[pos:])
		if unicode.IsSpace(r) {
			break
		}
		pos += size
	}
	return pos
}

func textOf(doc *mdast.Document) string {
	if doc == nil {
		return ""
	}
	return mdast.ToText(doc)
}
