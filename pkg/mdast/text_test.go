package mdast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/mdnote/pkg/mdast"
)

func TestToText_HandBuilt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		node mdast.Node
		want string
	}{
		{
			name: "empty document",
			node: mdast.NewDocument(),
			want: "",
		},
		{
			name: "heading",
			node: &mdast.Heading{
				Level:    3,
				BlockEnd: mdast.BlockEnd{Newline: true},
				Children: []mdast.Inline{&mdast.Text{Text: "Title"}},
			},
			want: "### Title\n",
		},
		{
			name: "ordered item keeps level but not number",
			node: &mdast.ListItem{
				Level:    1,
				ListType: mdast.ListOrdered,
				Marker:   "7.",
				Children: []mdast.Inline{&mdast.Text{Text: "x"}},
			},
			want: "  1. x",
		},
		{
			name: "code block",
			node: &mdast.CodeBlock{Language: "go", Text: "a\nb"},
			want: "```go\na\nb\n```",
		},
		{
			name: "empty code block",
			node: &mdast.CodeBlock{},
			want: "```\n```",
		},
		{
			name: "code block with blank body",
			node: &mdast.CodeBlock{HasBody: true},
			want: "```\n\n```",
		},
		{
			name: "blockquote",
			node: &mdast.Blockquote{Children: []mdast.Inline{&mdast.Text{Text: "q"}}},
			want: "> q",
		},
		{
			name: "paragraph with inline nodes",
			node: &mdast.Paragraph{
				Children: []mdast.Inline{
					&mdast.Bold{Delim: "__", Children: []mdast.Inline{&mdast.Text{Text: "b"}}},
					&mdast.LineBreak{},
					&mdast.Italic{Delim: "*", Children: []mdast.Inline{&mdast.Text{Text: "i"}}},
					&mdast.Strikethrough{Children: []mdast.Inline{&mdast.Text{Text: "s"}}},
					&mdast.Code{Text: "c"},
					&mdast.Link{Text: "t", Href: ""},
				},
			},
			want: "__b__\n*i*~~s~~`c`[t]()",
		},
		{
			name: "wiki link with same display",
			node: &mdast.WikiLink{EntryID: "entry-1", Display: "entry-1"},
			want: "[[entry-1]]",
		},
		{
			name: "wiki link with display",
			node: &mdast.WikiLink{EntryID: "entry-1", Display: "First"},
			want: "[[entry-1|First]]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, mdast.ToText(tt.node))
		})
	}
}

func TestListMarker(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "- ", mdast.ListMarker(mdast.ListBullet, 0))
	assert.Equal(t, "    - ", mdast.ListMarker(mdast.ListBullet, 2))
	assert.Equal(t, "  1. ", mdast.ListMarker(mdast.ListOrdered, 1))
}

func TestInlineText(t *testing.T) {
	t.Parallel()

	inlines := []mdast.Inline{
		&mdast.Text{Text: "see "},
		&mdast.WikiLink{EntryID: "a", Display: "A"},
	}
	assert.Equal(t, "see [[a|A]]", mdast.InlineText(inlines))
	assert.Equal(t, "", mdast.InlineText(nil))
}
