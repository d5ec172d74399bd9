package editor

import (
	"strings"

	"github.com/yaklabco/mdnote/pkg/parser"
	"github.com/yaklabco/mdnote/pkg/textedit"
)

const (
	wikiOpen  = "[["
	wikiClose = "]]"
)

// WikiLinkTrigger reports whether pos sits inside an unclosed "[[" on its
// line. It returns the text typed since the brackets and the offset of the
// opening bracket.
func WikiLinkTrigger(text string, pos int) (string, int, bool) {
	pos = textedit.Clamp(pos, len(text))

	lineStart := strings.LastIndexByte(text[:pos], '\n') + 1
	line := text[lineStart:pos]

	open := strings.LastIndex(line, wikiOpen)
	if open < 0 {
		return "", 0, false
	}

	query := line[open+len(wikiOpen):]
	if strings.Contains(query, wikiClose) {
		return "", 0, false
	}

	return query, lineStart + open, true
}

// CompleteWikiLink replaces the text between start and the cursor with a
// link to entryID and moves the cursor after it. A "]]" right after the
// cursor is absorbed. The state is returned unchanged when start does not
// precede the cursor.
func CompleteWikiLink(state State, start int, entryID string) State {
	text := state.Text()
	pos := textedit.Clamp(state.Cursor, len(text))
	if start < 0 || start > pos {
		return state
	}

	end := pos
	if strings.HasPrefix(text[pos:], wikiClose) {
		end += len(wikiClose)
	}

	link := wikiOpen + entryID + wikiClose
	out, err := textedit.NewEditBuilder().ReplaceRange(start, end, link).Apply(text)
	if err != nil {
		return state
	}

	state.Doc = parser.Parse(out)
	state.Cursor = start + len(link)
	return state
}
