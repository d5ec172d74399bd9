package render_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/mdnote/pkg/parser"
	"github.com/yaklabco/mdnote/pkg/render"
)

const cur = render.CursorMarker

func renderText(text string, cursorPos int, opts render.Options) string {
	return render.Render(parser.Parse(text), cursorPos, opts)
}

func TestRender(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		text   string
		cursor int
		want   string
	}{
		{"empty document", "", 0, "<p>" + cur + "</p>"},
		{"empty document unfocused", "", -1, ""},
		{"heading then cursor on new line", "# Foo\n", 6, "<h1>Foo</h1><p>" + cur + "</p>"},
		{"heading unfocused", "## Foo", -1, "<h2>Foo</h2>"},
		{"heading raw while cursor on line", "# Foo\ntext", 5, "<p># Foo" + cur + "</p><p>text</p>"},
		{"heading raw at line start", "# Foo\ntext", 0, "<p>" + cur + "# Foo</p><p>text</p>"},
		{"heading rendered once cursor leaves", "# Foo\ntext", 7, "<h1>Foo</h1><p>t" + cur + "ext</p>"},
		{"paragraph lines", "a\nb", -1, "<p>a</p><p>b</p>"},
		{"blank line collapses", "a\n\nb", -1, "<p>a</p><p>b</p>"},
		{"blank line with cursor", "a\n\nb", 2, "<p>a</p><p>" + cur + "</p><p>b</p>"},
		{"trailing newline collapses", "abc\n", 3, "<p>abc" + cur + "</p>"},
		{"cursor past content", "abc", 10, "<p>abc</p>" + cur},
		{"escapes text", "a < b & c", -1, "<p>a &lt; b &amp; c</p>"},
		{"bold rendered", "**b** x", -1, "<p><strong>b</strong> x</p>"},
		{"bold before cursor", "**b** x", 0, "<p>" + cur + "<strong>b</strong> x</p>"},
		{"bold at end of document stays rendered", "x **b**", 7, "<p>x <strong>b</strong>" + cur + "</p>"},
		{"italic raw inside", "*it* x", 2, "<p>*i" + cur + "t* x</p>"},
		{"italic raw at closing delimiter", "*it* x", 4, "<p>*it*" + cur + " x</p>"},
		{"strikethrough", "~~s~~", -1, "<p><del>s</del></p>"},
		{"inline code with cursor", "`ab`", 2, "<p><code>a" + cur + "b</code></p>"},
		{"link", "[go](https://go.dev)", -1, `<p><a href="https://go.dev">go</a></p>`},
		{"dangerous link", "[x](javascript:alert(1))", -1, `<p><a href="">x</a>)</p>`},
		{"blockquote", "> **q**", -1, "<blockquote><strong>q</strong></blockquote>"},
		{"hr", "---\nx", -1, "<hr><p>x</p>"},
		{"code block", "```go\nx := 1\n```", -1, `<pre><code class="language-go">x := 1</code></pre>`},
		{"code block cursor", "```txt\nab\n```", 8, `<pre><code class="language-txt">a` + cur + "b</code></pre>"},
		{"untagged code block detected", "```\npackage main\n```", -1, `<pre><code class="language-go">package main</code></pre>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, renderText(tt.text, tt.cursor, render.Options{}))
		})
	}
}

func TestRender_Lists(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		text   string
		cursor int
		want   string
	}{
		{"flat bullets", "- a\n- b", -1, "<ul><li>a</li><li>b</li></ul>"},
		{"ordered", "1. a\n2. b", -1, "<ol><li>a</li><li>b</li></ol>"},
		{
			"nested",
			"- a\n  - b\n  - c\n- d",
			-1,
			"<ul><li>a<ul><li>b</li><li>c</li></ul></li><li>d</li></ul>",
		},
		{
			"nested ordered under bullet",
			"- a\n  1. b",
			-1,
			"<ul><li>a<ol><li>b</li></ol></li></ul>",
		},
		{"cursor in empty item", "- a\n- ", 6, "<ul><li>a</li><li>" + cur + "</li></ul>"},
		{"cursor before marker", "- a", 0, "<ul><li>" + cur + "a</li></ul>"},
		{"cursor after text", "- ab", 4, "<ul><li>ab" + cur + "</li></ul>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, renderText(tt.text, tt.cursor, render.Options{}))
		})
	}
}

func TestRender_BoldShowsRawSyntaxNearCursor(t *testing.T) {
	t.Parallel()

	text := " **bold** normal"

	inside := renderText(text, 4, render.Options{})
	assert.NotContains(t, inside, "<strong>")
	assert.Contains(t, inside, "**b"+cur+"old**")

	closing := renderText(text, 9, render.Options{})
	assert.NotContains(t, closing, "<strong>")
	assert.Contains(t, closing, "**bold**")

	away := renderText(text, 12, render.Options{})
	assert.Contains(t, away, "<strong>bold</strong>")
}

func TestRender_WikiLinks(t *testing.T) {
	t.Parallel()

	titles := map[string]string{"entry-123": "My Entry"}

	tests := []struct {
		name string
		text string
		opts render.Options
		want string
	}{
		{
			name: "resolved title",
			text: "[[entry-123]]",
			opts: render.Options{Titles: titles},
			want: `<a href="/entries/entry-123" class="wiki-link">My Entry</a>`,
		},
		{
			name: "explicit display wins",
			text: "[[entry-123|Custom]]",
			opts: render.Options{Titles: titles},
			want: `<a href="/entries/entry-123" class="wiki-link">Custom</a>`,
		},
		{
			name: "unresolved id",
			text: "[[missing]]",
			opts: render.Options{Titles: titles},
			want: `<span class="wiki-link invalid">missing</span>`,
		},
		{
			name: "no title map",
			text: "[[missing]]",
			opts: render.Options{},
			want: `<a href="/entries/missing" class="wiki-link">missing</a>`,
		},
		{
			name: "wiki slug route",
			text: "[[entry-123]]",
			opts: render.Options{Titles: titles, WikiSlug: "garden"},
			want: `<a href="/wiki/garden/entry-123" class="wiki-link">My Entry</a>`,
		},
		{
			name: "custom entry route",
			text: "[[a b]]",
			opts: render.Options{EntryRoute: "/notes/"},
			want: `<a href="/notes/a%20b" class="wiki-link">a b</a>`,
		},
		{
			name: "title is escaped",
			text: "[[x]]",
			opts: render.Options{Titles: map[string]string{"x": "<b>"}},
			want: `<a href="/entries/x" class="wiki-link">&lt;b&gt;</a>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Contains(t, renderText(tt.text, -1, tt.opts), tt.want)
		})
	}
}

func TestRender_MarkerAppearsOnce(t *testing.T) {
	t.Parallel()

	text := "# T\n\n- a **b** `c`\n  - [[d]]\n> q\n---\n```\ncode\n```\nend *e*\n"
	for pos := 0; pos <= len(text)+2; pos++ {
		html := renderText(text, pos, render.Options{DisableLanguageDetection: true})
		assert.Equal(t, 1, strings.Count(html, cur), "cursor %d: %s", pos, html)
	}

	assert.NotContains(t, renderText(text, -1, render.Options{}), cur)
}
