package mdast

// TokenKind classifies the type of a token in the Markdown source.
type TokenKind uint16

// Token kinds. Inline kinds may appear anywhere; block kinds only at the start of a line.
const (
	TokText TokenKind = iota
	TokBold
	TokItalic
	TokStrikethrough
	TokCode
	TokLink
	TokWikiLink

	TokHeading
	TokListItem
	TokBlockquote
	TokCodeBlock
	TokHR
)

// String returns the lowercase name used in token dumps.
func (k TokenKind) String() string {
	switch k {
	case TokText:
		return "text"
	case TokBold:
		return "bold"
	case TokItalic:
		return "italic"
	case TokStrikethrough:
		return "strikethrough"
	case TokCode:
		return "code"
	case TokLink:
		return "link"
	case TokWikiLink:
		return "wiki-link"
	case TokHeading:
		return "heading"
	case TokListItem:
		return "list-item"
	case TokBlockquote:
		return "blockquote"
	case TokCodeBlock:
		return "code-block"
	case TokHR:
		return "hr"
	default:
		return "unknown"
	}
}

// IsInline reports whether tokens of this kind are grouped into paragraphs.
func (k TokenKind) IsInline() bool {
	return k <= TokWikiLink
}

// ListType distinguishes bullet and ordered list items.
type ListType uint8

const (
	ListBullet ListType = iota
	ListOrdered
)

// String returns "bullet" or "ordered".
func (t ListType) String() string {
	if t == ListOrdered {
		return "ordered"
	}
	return "bullet"
}

// Token is a classified span of Markdown source.
// Tokens produced by one tokenize pass are contiguous and cover the whole input.
type Token struct {
	// Kind classifies what this token represents.
	Kind TokenKind

	// Raw is the exact source substring, including a terminating line feed for
	// block tokens and text tokens that end a line.
	Raw string

	// Content is the payload with the syntax stripped.
	Content string

	// Start is the byte index where this token begins (inclusive).
	Start int

	// End is the byte index where this token ends (exclusive).
	End int

	// ContentStart is the byte index where Content begins in the source.
	ContentStart int

	// Level is the heading level (1-6) or list nesting depth.
	Level int

	// Marker is the delimiter or list marker as written ("**", "_", "-", "3.").
	Marker string

	// Href is the destination of a link.
	Href string

	// EntryID is the identifier of a wiki-link target.
	EntryID string

	// Language is the info string of a fenced code block.
	Language string

	// ListType is set for list item tokens.
	ListType ListType
}

// Len returns the length of this token in bytes.
func (t Token) Len() int {
	return t.End - t.Start
}

// HasNewline reports whether the token's raw text ends with a line feed.
func (t Token) HasNewline() bool {
	return len(t.Raw) > 0 && t.Raw[len(t.Raw)-1] == '\n'
}

// RebaseTokens returns a copy of tokens with every offset shifted by offset.
// Nested tokenize passes produce offsets relative to their input; callers
// rebase them onto the enclosing document.
func RebaseTokens(tokens []Token, offset int) []Token {
	out := make([]Token, len(tokens))
	for i, tok := range tokens {
		tok.Start += offset
		tok.End += offset
		tok.ContentStart += offset
		out[i] = tok
	}
	return out
}

// ValidateTokens checks that a token slice is valid:
// - Tokens are contiguous and non-overlapping.
// - Tokens cover the full content range [0, contentLen).
// - Each token's Raw length matches its span.
// Returns true if valid, false otherwise.
func ValidateTokens(tokens []Token, contentLen int) bool {
	if len(tokens) == 0 {
		return contentLen == 0
	}

	if tokens[0].Start != 0 {
		return false
	}

	if tokens[len(tokens)-1].End != contentLen {
		return false
	}

	for i := range tokens {
		if len(tokens[i].Raw) != tokens[i].Len() {
			return false
		}
		if i > 0 && tokens[i].Start != tokens[i-1].End {
			return false
		}
	}

	return true
}
