package parser

import (
	"strings"

	"github.com/yaklabco/mdnote/pkg/mdast"
)

// tokenizer performs a single left-to-right pass over Markdown text.
// It produces a contiguous, non-overlapping token stream covering [0, len(content)).
type tokenizer struct {
	content string
	tokens  []mdast.Token
	pos     int

	// blocks enables line-start block matchers. Nested passes over heading,
	// list item, blockquote and emphasis content are inline-only.
	blocks bool
}

// Tokenize scans text into block and inline tokens. Concatenating the Raw
// field of every returned token reproduces text exactly.
func Tokenize(text string) []mdast.Token {
	return newTokenizer(text, true).run()
}

// TokenizeInline scans text using only the inline matchers. Offsets are
// relative to text; callers rebase them with mdast.RebaseTokens.
func TokenizeInline(text string) []mdast.Token {
	return newTokenizer(text, false).run()
}

func newTokenizer(text string, blocks bool) *tokenizer {
	const initialCapacityDivisor = 8 // reasonable initial capacity estimate
	return &tokenizer{
		content: text,
		tokens:  make([]mdast.Token, 0, len(text)/initialCapacityDivisor+1),
		blocks:  blocks,
	}
}

func (t *tokenizer) run() []mdast.Token {
	if len(t.content) == 0 {
		return nil
	}

	for t.pos < len(t.content) {
		if t.blocks && t.atLineStart() {
			if tok, ok := t.matchBlock(); ok {
				t.push(tok)
				continue
			}
		}

		if tok, ok := t.matchInline(t.pos); ok {
			t.push(tok)
			continue
		}

		t.consumeText()
	}

	return t.tokens
}

func (t *tokenizer) push(tok mdast.Token) {
	t.tokens = append(t.tokens, tok)
	t.pos = tok.End
}

func (t *tokenizer) atLineStart() bool {
	return t.pos == 0 || t.content[t.pos-1] == '\n'
}

// consumeText accumulates plain text until the next inline construct or
// through the next line feed, whichever comes first.
func (t *tokenizer) consumeText() {
	start := t.pos
	end := start

	for end < len(t.content) {
		ch := t.content[end]
		if ch == '\n' {
			end++
			break
		}
		if end > start && isInlineTrigger(ch) {
			if _, ok := t.matchInline(end); ok {
				break
			}
		}
		end++
	}

	raw := t.content[start:end]
	t.push(mdast.Token{
		Kind:         mdast.TokText,
		Raw:          raw,
		Content:      raw,
		Start:        start,
		End:          end,
		ContentStart: start,
	})
}

// lineBounds returns the end of the line starting at pos (index of the line
// feed or end of content) and the offset just past its line feed.
func (t *tokenizer) lineBounds(pos int) (int, int) {
	idx := strings.IndexByte(t.content[pos:], '\n')
	if idx < 0 {
		return len(t.content), len(t.content)
	}
	return pos + idx, pos + idx + 1
}

// matchBlock tries the block matchers in priority order at the current line start.
func (t *tokenizer) matchBlock() (mdast.Token, bool) {
	lineEnd, next := t.lineBounds(t.pos)
	line := t.content[t.pos:lineEnd]

	if tok, ok := t.matchHeading(line, next); ok {
		return tok, true
	}
	if tok, ok := t.matchCodeBlock(line, lineEnd); ok {
		return tok, true
	}
	if tok, ok := t.matchHR(line, next); ok {
		return tok, true
	}
	if tok, ok := t.matchBlockquote(line, next); ok {
		return tok, true
	}
	if tok, ok := t.matchListItem(line, next); ok {
		return tok, true
	}

	return mdast.Token{}, false
}

// matchHeading matches "#{1,6}" followed by optional spaces and non-blank content.
func (t *tokenizer) matchHeading(line string, next int) (mdast.Token, bool) {
	const maxHeadingLevel = 6

	level := 0
	for level < len(line) && level < maxHeadingLevel && line[level] == '#' {
		level++
	}
	if level == 0 {
		return mdast.Token{}, false
	}

	contentOffset := level
	for contentOffset < len(line) && isSpaceOrTab(line[contentOffset]) {
		contentOffset++
	}

	content := line[contentOffset:]
	if strings.TrimSpace(content) == "" {
		return mdast.Token{}, false
	}

	return mdast.Token{
		Kind:         mdast.TokHeading,
		Raw:          t.content[t.pos:next],
		Content:      content,
		Start:        t.pos,
		End:          next,
		ContentStart: t.pos + contentOffset,
		Level:        level,
		Marker:       line[:level],
	}, true
}

// matchCodeBlock matches a ``` fence, its body, and a closing ``` line.
func (t *tokenizer) matchCodeBlock(line string, lineEnd int) (mdast.Token, bool) {
	const fence = "```"

	if !strings.HasPrefix(line, fence) || lineEnd >= len(t.content) {
		return mdast.Token{}, false
	}

	language := line[len(fence):]
	if strings.ContainsRune(language, '`') {
		return mdast.Token{}, false
	}

	bodyStart := lineEnd + 1
	for lineStart := bodyStart; lineStart <= len(t.content); {
		closeEnd, closeNext := t.lineBounds(lineStart)
		if t.content[lineStart:closeEnd] == fence {
			body := ""
			if lineStart > bodyStart {
				body = t.content[bodyStart : lineStart-1]
			}
			return mdast.Token{
				Kind:         mdast.TokCodeBlock,
				Raw:          t.content[t.pos:closeNext],
				Content:      body,
				Start:        t.pos,
				End:          closeNext,
				ContentStart: bodyStart,
				Language:     language,
				Marker:       fence,
			}, true
		}
		if closeEnd >= len(t.content) {
			break
		}
		lineStart = closeNext
	}

	return mdast.Token{}, false
}

// matchHR matches three or more '-', '_' or '*' with optional trailing blanks.
func (t *tokenizer) matchHR(line string, next int) (mdast.Token, bool) {
	const minRuleLength = 3

	rule := strings.TrimRight(line, " \t")
	if len(rule) < minRuleLength {
		return mdast.Token{}, false
	}

	marker := rule[0]
	if marker != '-' && marker != '_' && marker != '*' {
		return mdast.Token{}, false
	}
	for i := 1; i < len(rule); i++ {
		if rule[i] != marker {
			return mdast.Token{}, false
		}
	}

	return mdast.Token{
		Kind:         mdast.TokHR,
		Raw:          t.content[t.pos:next],
		Content:      "",
		Start:        t.pos,
		End:          next,
		ContentStart: t.pos + len(line),
		Marker:       line,
	}, true
}

// matchBlockquote matches "> " followed by non-blank content on a single line.
func (t *tokenizer) matchBlockquote(line string, next int) (mdast.Token, bool) {
	if len(line) < 2 || line[0] != '>' || !isSpaceOrTab(line[1]) {
		return mdast.Token{}, false
	}

	contentOffset := 1
	for contentOffset < len(line) && isSpaceOrTab(line[contentOffset]) {
		contentOffset++
	}
	if contentOffset == len(line) {
		return mdast.Token{}, false
	}

	return mdast.Token{
		Kind:         mdast.TokBlockquote,
		Raw:          t.content[t.pos:next],
		Content:      line[contentOffset:],
		Start:        t.pos,
		End:          next,
		ContentStart: t.pos + contentOffset,
		Marker:       ">",
	}, true
}

// matchListItem matches optional indentation, a "-", "*", "+" or "N." marker and a space.
func (t *tokenizer) matchListItem(line string, next int) (mdast.Token, bool) {
	marker, indent, ok := ParseListMarker(line)
	if !ok {
		return mdast.Token{}, false
	}

	listType := mdast.ListBullet
	if isDigit(marker[0]) {
		listType = mdast.ListOrdered
	}

	contentOffset := indent + len(marker) + 1

	return mdast.Token{
		Kind:         mdast.TokListItem,
		Raw:          t.content[t.pos:next],
		Content:      line[contentOffset:],
		Start:        t.pos,
		End:          next,
		ContentStart: t.pos + contentOffset,
		Level:        indent / mdast.IndentWidth,
		Marker:       marker,
		ListType:     listType,
	}, true
}

// ParseListMarker reports whether line starts with a list marker. It returns
// the marker without its trailing space and the number of leading spaces.
func ParseListMarker(line string) (string, int, bool) {
	indent := 0
	for indent < len(line) && line[indent] == ' ' {
		indent++
	}

	rest := line[indent:]
	if rest == "" {
		return "", 0, false
	}

	markerLen := 0
	switch {
	case rest[0] == '-' || rest[0] == '*' || rest[0] == '+':
		markerLen = 1
	case isDigit(rest[0]):
		for markerLen < len(rest) && isDigit(rest[markerLen]) {
			markerLen++
		}
		if markerLen >= len(rest) || rest[markerLen] != '.' {
			return "", 0, false
		}
		markerLen++
	default:
		return "", 0, false
	}

	if markerLen >= len(rest) || rest[markerLen] != ' ' {
		return "", 0, false
	}

	return rest[:markerLen], indent, true
}

func isSpaceOrTab(ch byte) bool {
	return ch == ' ' || ch == '\t'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}
