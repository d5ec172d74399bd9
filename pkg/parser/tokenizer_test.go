package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdnote/pkg/mdast"
)

func TestTokenize_Empty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Tokenize(""))
	assert.Empty(t, TokenizeInline(""))
}

func TestTokenize_ValidatesContiguous(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{"plain text", "Hello, world!"},
		{"heading", "# Hello"},
		{"heading with text", "# Hello\nWorld"},
		{"empty heading", "#   \ntext"},
		{"list", "- item 1\n- item 2"},
		{"nested list", "- a\n  - b\n    - c\n"},
		{"ordered list", "1. first\n2. second"},
		{"blockquote", "> quoted text"},
		{"bare quote marker", "> "},
		{"code fence", "```go\ncode\n```"},
		{"unclosed code fence", "```go\ncode"},
		{"empty code fence", "```\n```\n"},
		{"inline code", "Use `code` here"},
		{"emphasis", "*emphasis* and **strong**"},
		{"underscore emphasis", "_a_ and __b__"},
		{"strikethrough", "~~gone~~ still here"},
		{"link", "[text](url)"},
		{"wiki link", "see [[entry-1|Entry]] and [[entry-2]]"},
		{"unmatched delimiters", "**open and [[broken and `tick"},
		{"thematic break", "---"},
		{"blank lines", "a\n\n\nb\n"},
		{"unicode", "héllo **wörld** ✓\n- ünïcode"},
		{"mixed content", "# Title\n\nParagraph with *emphasis* and `code`.\n\n- list item\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tokens := Tokenize(tt.content)
			if !mdast.ValidateTokens(tokens, len(tt.content)) {
				for i, tok := range tokens {
					t.Logf("  token[%d]: kind=%v start=%d end=%d raw=%q",
						i, tok.Kind, tok.Start, tok.End, tok.Raw)
				}
				t.Fatal("tokens are not contiguous or do not cover content")
			}

			var b strings.Builder
			for _, tok := range tokens {
				b.WriteString(tok.Raw)
			}
			assert.Equal(t, tt.content, b.String())
		})
	}
}

func TestTokenize_Blocks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    mdast.Token
	}{
		{
			name:    "h1",
			content: "# Foo\n",
			want: mdast.Token{
				Kind: mdast.TokHeading, Raw: "# Foo\n", Content: "Foo",
				Start: 0, End: 6, ContentStart: 2, Level: 1, Marker: "#",
			},
		},
		{
			name:    "h6 without space",
			content: "######Six",
			want: mdast.Token{
				Kind: mdast.TokHeading, Raw: "######Six", Content: "Six",
				Start: 0, End: 9, ContentStart: 6, Level: 6, Marker: "######",
			},
		},
		{
			name:    "heading keeps trailing spaces",
			content: "## Foo  ",
			want: mdast.Token{
				Kind: mdast.TokHeading, Raw: "## Foo  ", Content: "Foo  ",
				Start: 0, End: 8, ContentStart: 3, Level: 2, Marker: "##",
			},
		},
		{
			name:    "code block",
			content: "```go\nx := 1\n```\n",
			want: mdast.Token{
				Kind: mdast.TokCodeBlock, Raw: "```go\nx := 1\n```\n", Content: "x := 1",
				Start: 0, End: 17, ContentStart: 6, Language: "go", Marker: "```",
			},
		},
		{
			name:    "hr",
			content: "***",
			want: mdast.Token{
				Kind: mdast.TokHR, Raw: "***", Start: 0, End: 3, ContentStart: 3, Marker: "***",
			},
		},
		{
			name:    "blockquote",
			content: "> quoted\n",
			want: mdast.Token{
				Kind: mdast.TokBlockquote, Raw: "> quoted\n", Content: "quoted",
				Start: 0, End: 9, ContentStart: 2, Marker: ">",
			},
		},
		{
			name:    "bullet",
			content: "- item",
			want: mdast.Token{
				Kind: mdast.TokListItem, Raw: "- item", Content: "item",
				Start: 0, End: 6, ContentStart: 2, Marker: "-", ListType: mdast.ListBullet,
			},
		},
		{
			name:    "nested ordered",
			content: "    12. item",
			want: mdast.Token{
				Kind: mdast.TokListItem, Raw: "    12. item", Content: "item",
				Start: 0, End: 12, ContentStart: 8, Level: 2, Marker: "12.", ListType: mdast.ListOrdered,
			},
		},
		{
			name:    "empty bullet",
			content: "- ",
			want: mdast.Token{
				Kind: mdast.TokListItem, Raw: "- ", Content: "",
				Start: 0, End: 2, ContentStart: 2, Marker: "-", ListType: mdast.ListBullet,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tokens := Tokenize(tt.content)
			require.Len(t, tokens, 1)
			assert.Equal(t, tt.want, tokens[0])
		})
	}
}

func TestTokenize_NotBlocks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{"blank heading", "#   "},
		{"hash only", "#"},
		{"quote without content", "> "},
		{"quote without space", ">quoted"},
		{"marker without space", "-item"},
		{"number without dot", "1 item"},
		{"short rule", "--"},
		{"mixed rule", "-_-"},
		{"unclosed fence", "```\ncode"},
		{"fence without body line", "```"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			for _, tok := range Tokenize(tt.content) {
				assert.True(t, tok.Kind.IsInline(), "unexpected %v token %q", tok.Kind, tok.Raw)
			}
		})
	}
}

func TestTokenize_BlocksOnlyAtLineStart(t *testing.T) {
	t.Parallel()

	tokens := Tokenize("text # not heading\n# heading")
	require.Len(t, tokens, 2)
	assert.Equal(t, mdast.TokText, tokens[0].Kind)
	assert.Equal(t, "text # not heading\n", tokens[0].Raw)
	assert.Equal(t, mdast.TokHeading, tokens[1].Kind)
	assert.Equal(t, 19, tokens[1].Start)
}

func TestTokenize_Inline(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		kinds   []mdast.TokenKind
		raws    []string
	}{
		{
			name:    "bold inside text",
			content: "Hello **world** !",
			kinds:   []mdast.TokenKind{mdast.TokText, mdast.TokBold, mdast.TokText},
			raws:    []string{"Hello ", "**world**", " !"},
		},
		{
			name:    "italic",
			content: "*a* b",
			kinds:   []mdast.TokenKind{mdast.TokItalic, mdast.TokText},
			raws:    []string{"*a*", " b"},
		},
		{
			name:    "strikethrough",
			content: "~~x~~",
			kinds:   []mdast.TokenKind{mdast.TokStrikethrough},
			raws:    []string{"~~x~~"},
		},
		{
			name:    "code",
			content: "a `b` c",
			kinds:   []mdast.TokenKind{mdast.TokText, mdast.TokCode, mdast.TokText},
			raws:    []string{"a ", "`b`", " c"},
		},
		{
			name:    "link",
			content: "[go](https://go.dev)",
			kinds:   []mdast.TokenKind{mdast.TokLink},
			raws:    []string{"[go](https://go.dev)"},
		},
		{
			name:    "wiki link before link",
			content: "[[id]][t](h)",
			kinds:   []mdast.TokenKind{mdast.TokWikiLink, mdast.TokLink},
			raws:    []string{"[[id]]", "[t](h)"},
		},
		{
			name:    "unmatched bold stays text",
			content: "**open",
			kinds:   []mdast.TokenKind{mdast.TokText},
			raws:    []string{"**open"},
		},
		{
			name:    "delimiters do not cross lines",
			content: "*a\nb*",
			kinds:   []mdast.TokenKind{mdast.TokText, mdast.TokText},
			raws:    []string{"*a\n", "b*"},
		},
		{
			name:    "text ends at newline",
			content: "a\nb",
			kinds:   []mdast.TokenKind{mdast.TokText, mdast.TokText},
			raws:    []string{"a\n", "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tokens := TokenizeInline(tt.content)
			kinds := make([]mdast.TokenKind, len(tokens))
			raws := make([]string, len(tokens))
			for i, tok := range tokens {
				kinds[i] = tok.Kind
				raws[i] = tok.Raw
			}
			assert.Equal(t, tt.kinds, kinds)
			assert.Equal(t, tt.raws, raws)
		})
	}
}

func TestTokenize_WikiLink(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		content     string
		wantOK      bool
		wantID      string
		wantDisplay string
	}{
		{"plain id", "[[entry-123]]", true, "entry-123", "entry-123"},
		{"with display", "[[entry-123|My Entry]]", true, "entry-123", "My Entry"},
		{"display keeps pipes", "[[a|b|c]]", true, "a", "b|c"},
		{"empty id", "[[]]", false, "", ""},
		{"empty display", "[[a|]]", false, "", ""},
		{"bracket in id", "[[a]b]]", false, "", ""},
		{"unclosed", "[[abc", false, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tokens := TokenizeInline(tt.content)
			require.NotEmpty(t, tokens)

			if !tt.wantOK {
				for _, tok := range tokens {
					assert.NotEqual(t, mdast.TokWikiLink, tok.Kind)
				}
				return
			}

			require.Len(t, tokens, 1)
			assert.Equal(t, mdast.TokWikiLink, tokens[0].Kind)
			assert.Equal(t, tt.wantID, tokens[0].EntryID)
			assert.Equal(t, tt.wantDisplay, tokens[0].Content)
		})
	}
}

func TestParseListMarker(t *testing.T) {
	t.Parallel()

	tests := []struct {
		line       string
		wantMarker string
		wantIndent int
		wantOK     bool
	}{
		{"- a", "-", 0, true},
		{"* a", "*", 0, true},
		{"+ a", "+", 0, true},
		{"  - a", "-", 2, true},
		{"1. a", "1.", 0, true},
		{"   42. a", "42.", 3, true},
		{"- ", "-", 0, true},
		{"-", "", 0, false},
		{"1.a", "", 0, false},
		{"a. b", "", 0, false},
		{"", "", 0, false},
		{"   ", "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			t.Parallel()

			marker, indent, ok := ParseListMarker(tt.line)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantMarker, marker)
			assert.Equal(t, tt.wantIndent, indent)
		})
	}
}

func TestRebaseTokens(t *testing.T) {
	t.Parallel()

	tokens := mdast.RebaseTokens(TokenizeInline("a **b**"), 10)
	require.Len(t, tokens, 2)
	assert.Equal(t, 10, tokens[0].Start)
	assert.Equal(t, 12, tokens[1].Start)
	assert.Equal(t, 14, tokens[1].ContentStart)
	assert.Equal(t, 17, tokens[1].End)
}

func FuzzTokenize(f *testing.F) {
	seeds := []string{
		"",
		"# Heading\n\nParagraph",
		"- a\n  - b\n1. c",
		"```go\ncode\n```",
		"**bold** *it* ~~s~~ `c` [l](h) [[w|d]]",
		"> quote\n---\n",
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, content string) {
		tokens := Tokenize(content)
		if !mdast.ValidateTokens(tokens, len(content)) {
			t.Fatalf("invalid token stream for %q", content)
		}
	})
}
