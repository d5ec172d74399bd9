package render

import "github.com/yaklabco/mdnote/pkg/mdast"

// list writes a run of items. The first item sets the list type; every
// item followed by deeper items anchors a nested list inside its <li>.
func (r *renderer) list(items []*mdast.ListItem) {
	if len(items) == 0 {
		return
	}

	tag := "ul"
	if items[0].ListType == mdast.ListOrdered {
		tag = "ol"
	}

	r.b.WriteString("<" + tag + ">")
	for i := 0; i < len(items); {
		item := items[i]

		j := i + 1
		for j < len(items) && items[j].Level > item.Level {
			j++
		}

		r.b.WriteString("<li>")
		r.container(item.Start, item.ContentStart, item.End, item.Children)
		r.list(items[i+1 : j])
		r.b.WriteString("</li>")

		i = j
	}
	r.b.WriteString("</" + tag + ">")
}
