// Package render converts a document tree to HTML for the note editor.
//
// The output contains at most one CursorMarker. Headings, bold and italic
// spans that the cursor touches are shown as raw Markdown so the user can
// edit their syntax in place.
package render

import (
	"strconv"
	"strings"

	"github.com/yaklabco/mdnote/pkg/langdetect"
	"github.com/yaklabco/mdnote/pkg/mdast"
)

// Render returns the HTML of doc with the cursor marker at cursorPos.
// A negative cursorPos renders without a marker and without raw spans.
func Render(doc *mdast.Document, cursorPos int, opts Options) string {
	if doc == nil {
		doc = mdast.NewDocument()
	}

	r := &renderer{
		opts:   opts,
		cursor: cursorPos,
		docLen: doc.End,
	}

	for _, block := range doc.Children {
		r.block(block)
	}

	if r.pending() {
		if doc.IsEmpty() || (doc.EndsWithNewline() && r.cursor >= r.docLen) {
			r.b.WriteString("<p>")
			r.marker()
			r.b.WriteString("</p>")
		} else {
			r.marker()
		}
	}

	return r.b.String()
}

type renderer struct {
	b        strings.Builder
	opts     Options
	cursor   int
	docLen   int
	inserted bool
}

// pending reports whether the marker still has to be written.
func (r *renderer) pending() bool {
	return r.cursor >= 0 && !r.inserted
}

func (r *renderer) marker() {
	r.b.WriteString(CursorMarker)
	r.inserted = true
}

// markAt writes the marker if the cursor is exactly at pos.
func (r *renderer) markAt(pos int) {
	if r.pending() && r.cursor == pos {
		r.marker()
	}
}

// markWithin writes the marker if the cursor is anywhere in [start, end].
func (r *renderer) markWithin(start, end int) {
	if r.pending() && r.cursor >= start && r.cursor <= end {
		r.marker()
	}
}

// text writes s, which starts at offset in the source, splitting it at the cursor.
func (r *renderer) text(s string, offset int) {
	if k := r.cursor - offset; r.pending() && k >= 0 && k <= len(s) {
		r.b.WriteString(escapeHTML(s[:k]))
		r.marker()
		r.b.WriteString(escapeHTML(s[k:]))
		return
	}
	r.b.WriteString(escapeHTML(s))
}

func (r *renderer) block(block mdast.Block) {
	switch node := block.(type) {
	case *mdast.Paragraph:
		r.paragraph(node)
	case *mdast.Heading:
		r.heading(node)
	case *mdast.List:
		r.list(node.Items)
	case *mdast.CodeBlock:
		r.codeBlock(node)
	case *mdast.Blockquote:
		r.b.WriteString("<blockquote>")
		r.container(node.Start, node.ContentStart, node.End, node.Children)
		r.b.WriteString("</blockquote>")
	case *mdast.ThematicBreak:
		r.b.WriteString("<hr>")
		r.markWithin(node.Start, node.End)
	}
}

// container writes inline content preceded by a syntax prefix [start, contentStart).
func (r *renderer) container(start, contentStart, end int, children []mdast.Inline) {
	if r.pending() && r.cursor >= start && r.cursor < contentStart {
		r.marker()
	}
	r.inlines(children)
	r.markWithin(start, end)
}

// paragraph writes one <p> per line. Empty lines are only written while
// the cursor is on them.
func (r *renderer) paragraph(p *mdast.Paragraph) {
	var line []mdast.Inline
	lineStart := p.Start

	flush := func(lineEnd int) {
		if len(line) == 0 {
			if r.pending() && r.cursor == lineStart {
				r.b.WriteString("<p>")
				r.marker()
				r.b.WriteString("</p>")
			}
			return
		}
		r.b.WriteString("<p>")
		r.inlines(line)
		r.markWithin(lineStart, lineEnd)
		r.b.WriteString("</p>")
	}

	for _, child := range p.Children {
		if br, ok := child.(*mdast.LineBreak); ok {
			flush(br.Start)
			line = nil
			lineStart = br.End
			continue
		}
		line = append(line, child)
	}
	flush(p.End)
}

// heading writes <hN>, or the raw Markdown line while the cursor is on it.
func (r *renderer) heading(h *mdast.Heading) {
	if r.cursor >= h.Start && r.cursor <= h.End {
		raw := strings.Repeat("#", h.Level) + " " + mdast.InlineText(h.Children)
		r.b.WriteString("<p>")
		r.text(raw, h.Start)
		r.b.WriteString("</p>")
		return
	}

	tag := "h" + strconv.Itoa(h.Level)
	r.b.WriteString("<" + tag + ">")
	r.inlines(h.Children)
	r.b.WriteString("</" + tag + ">")
}

func (r *renderer) codeBlock(cb *mdast.CodeBlock) {
	lang := ""
	if fields := strings.Fields(cb.Language); len(fields) > 0 {
		lang = fields[0]
	} else if !r.opts.DisableLanguageDetection {
		lang = langdetect.Detect(cb.Text)
	}

	r.b.WriteString("<pre><code")
	if lang != "" {
		r.b.WriteString(` class="language-` + escapeHTML(lang) + `"`)
	}
	r.b.WriteString(">")

	bodyStart := cb.Start + len("```") + len(cb.Language) + 1
	r.text(cb.Text, bodyStart)

	r.b.WriteString("</code></pre>")
	r.markWithin(cb.Start, cb.End)
}
