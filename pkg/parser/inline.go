package parser

import (
	"strings"

	"github.com/yaklabco/mdnote/pkg/mdast"
)

// isInlineTrigger reports whether ch can open an inline construct.
func isInlineTrigger(ch byte) bool {
	switch ch {
	case '[', '*', '_', '~', '`':
		return true
	default:
		return false
	}
}

// matchInline tries the inline matchers at pos. A construct only matches
// when both of its delimiters are present on the same line.
func (t *tokenizer) matchInline(pos int) (mdast.Token, bool) {
	if pos >= len(t.content) || !isInlineTrigger(t.content[pos]) {
		return mdast.Token{}, false
	}

	switch t.content[pos] {
	case '[':
		if tok, ok := t.matchWikiLink(pos); ok {
			return tok, true
		}
		return t.matchLink(pos)
	case '*', '_':
		if tok, ok := t.matchDelimited(pos, mdast.TokBold, t.content[pos:pos+1]+t.content[pos:pos+1]); ok {
			return tok, true
		}
		return t.matchItalic(pos)
	case '~':
		return t.matchDelimited(pos, mdast.TokStrikethrough, "~~")
	case '`':
		return t.matchCode(pos)
	}

	return mdast.Token{}, false
}

// restOfLine returns content from pos up to, not including, the next line feed.
func (t *tokenizer) restOfLine(pos int) string {
	rest := t.content[pos:]
	if idx := strings.IndexByte(rest, '\n'); idx >= 0 {
		return rest[:idx]
	}
	return rest
}

// matchWikiLink matches [[id]] and [[id|display]]. Ids exclude ']' and '|'.
func (t *tokenizer) matchWikiLink(pos int) (mdast.Token, bool) {
	line := t.restOfLine(pos)
	if !strings.HasPrefix(line, "[[") {
		return mdast.Token{}, false
	}

	body := line[2:]
	closeIdx := strings.Index(body, "]]")
	if closeIdx <= 0 {
		return mdast.Token{}, false
	}

	inner := body[:closeIdx]
	entryID, display, hasDisplay := strings.Cut(inner, "|")
	if entryID == "" || strings.ContainsRune(entryID, ']') {
		return mdast.Token{}, false
	}
	if hasDisplay && (display == "" || strings.ContainsRune(display, ']')) {
		return mdast.Token{}, false
	}
	if !hasDisplay {
		display = entryID
	}

	end := pos + 2 + closeIdx + 2
	return mdast.Token{
		Kind:         mdast.TokWikiLink,
		Raw:          t.content[pos:end],
		Content:      display,
		Start:        pos,
		End:          end,
		ContentStart: pos + 2,
		EntryID:      entryID,
	}, true
}

// matchLink matches [text](href). Either part may be empty.
func (t *tokenizer) matchLink(pos int) (mdast.Token, bool) {
	line := t.restOfLine(pos)

	textEnd := strings.IndexByte(line, ']')
	if textEnd < 0 || textEnd+1 >= len(line) || line[textEnd+1] != '(' {
		return mdast.Token{}, false
	}

	hrefStart := textEnd + 2
	hrefLen := strings.IndexByte(line[hrefStart:], ')')
	if hrefLen < 0 {
		return mdast.Token{}, false
	}

	end := pos + hrefStart + hrefLen + 1
	return mdast.Token{
		Kind:         mdast.TokLink,
		Raw:          t.content[pos:end],
		Content:      line[1:textEnd],
		Start:        pos,
		End:          end,
		ContentStart: pos + 1,
		Href:         line[hrefStart : hrefStart+hrefLen],
	}, true
}

// matchDelimited matches delim, at least one character, then the first
// following occurrence of delim.
func (t *tokenizer) matchDelimited(pos int, kind mdast.TokenKind, delim string) (mdast.Token, bool) {
	line := t.restOfLine(pos)
	if !strings.HasPrefix(line, delim) || len(line) < 2*len(delim)+1 {
		return mdast.Token{}, false
	}

	closeIdx := strings.Index(line[len(delim)+1:], delim)
	if closeIdx < 0 {
		return mdast.Token{}, false
	}

	contentEnd := len(delim) + 1 + closeIdx
	end := pos + contentEnd + len(delim)
	return mdast.Token{
		Kind:         kind,
		Raw:          t.content[pos:end],
		Content:      line[len(delim):contentEnd],
		Start:        pos,
		End:          end,
		ContentStart: pos + len(delim),
		Marker:       delim,
	}, true
}

// matchItalic matches *text* or _text_ where text does not contain the delimiter.
func (t *tokenizer) matchItalic(pos int) (mdast.Token, bool) {
	line := t.restOfLine(pos)
	delim := line[0]

	closeIdx := strings.IndexByte(line[1:], delim)
	if closeIdx <= 0 {
		return mdast.Token{}, false
	}

	end := pos + closeIdx + 2
	return mdast.Token{
		Kind:         mdast.TokItalic,
		Raw:          t.content[pos:end],
		Content:      line[1 : closeIdx+1],
		Start:        pos,
		End:          end,
		ContentStart: pos + 1,
		Marker:       line[:1],
	}, true
}

// matchCode matches `code` with non-empty content.
func (t *tokenizer) matchCode(pos int) (mdast.Token, bool) {
	line := t.restOfLine(pos)

	closeIdx := strings.IndexByte(line[1:], '`')
	if closeIdx <= 0 {
		return mdast.Token{}, false
	}

	end := pos + closeIdx + 2
	return mdast.Token{
		Kind:         mdast.TokCode,
		Raw:          t.content[pos:end],
		Content:      line[1 : closeIdx+1],
		Start:        pos,
		End:          end,
		ContentStart: pos + 1,
		Marker:       "`",
	}, true
}
