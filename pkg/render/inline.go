package render

import "github.com/yaklabco/mdnote/pkg/mdast"

func (r *renderer) inlines(nodes []mdast.Inline) {
	for _, n := range nodes {
		r.inline(n)
	}
}

// showRaw reports whether an emphasis span is shown as Markdown: the cursor
// is strictly inside it, or on its closing delimiter anywhere but the end
// of the document.
func (r *renderer) showRaw(start, end int) bool {
	return (r.cursor > start && r.cursor < end) || (r.cursor == end && end != r.docLen)
}

func (r *renderer) inline(n mdast.Inline) {
	start, end := n.Span()

	switch node := n.(type) {
	case *mdast.Text:
		r.text(node.Text, start)
		return
	case *mdast.LineBreak:
		r.b.WriteString("<br>")
	case *mdast.Bold:
		r.emphasis(node, "strong", node.Children)
	case *mdast.Italic:
		r.emphasis(node, "em", node.Children)
	case *mdast.Strikethrough:
		r.markAt(start)
		r.b.WriteString("<del>")
		r.inlines(node.Children)
		r.b.WriteString("</del>")
	case *mdast.Code:
		r.markAt(start)
		r.b.WriteString("<code>")
		r.text(node.Text, start+1)
		r.b.WriteString("</code>")
	case *mdast.Link:
		r.markAt(start)
		r.b.WriteString(`<a href="` + safeHref(node.Href) + `">`)
		r.b.WriteString(escapeHTML(node.Text))
		r.b.WriteString("</a>")
	case *mdast.WikiLink:
		r.markAt(start)
		r.wikiLink(node)
	}

	r.markWithin(start, end)
}

func (r *renderer) emphasis(n mdast.Inline, tag string, children []mdast.Inline) {
	start, end := n.Span()
	if r.showRaw(start, end) {
		r.text(mdast.ToText(n), start)
		return
	}

	r.markAt(start)
	r.b.WriteString("<" + tag + ">")
	r.inlines(children)
	r.b.WriteString("</" + tag + ">")
}

func (r *renderer) wikiLink(link *mdast.WikiLink) {
	label, valid := r.opts.resolveTitle(link.EntryID, link.Display)
	if !valid {
		r.b.WriteString(`<span class="wiki-link invalid">`)
		r.b.WriteString(escapeHTML(label))
		r.b.WriteString("</span>")
		return
	}

	r.b.WriteString(`<a href="` + escapeHTML(r.opts.WikiHref(link.EntryID)) + `" class="wiki-link">`)
	r.b.WriteString(escapeHTML(label))
	r.b.WriteString("</a>")
}
