package mdast

import "strings"

// IndentWidth is the number of spaces per list nesting level.
const IndentWidth = 2

// OrderedMarker is the marker every ordered list item is written with.
const OrderedMarker = "1."

// BulletMarker is the marker every bullet list item is written with.
const BulletMarker = "-"

// ToText serializes n back into Markdown source. For any tree produced by
// the parser, parsing the result and serializing again yields the same
// string. Ordered items are always written as "1.", bullets as "-", and
// headings with a single space after the marker.
func ToText(n Node) string {
	var b strings.Builder
	writeNode(&b, n)
	return b.String()
}

// ListMarker returns the marker text, including its trailing space, for an
// item of the given type and level.
func ListMarker(listType ListType, level int) string {
	marker := BulletMarker
	if listType == ListOrdered {
		marker = OrderedMarker
	}
	return strings.Repeat(" ", level*IndentWidth) + marker + " "
}

func writeNode(b *strings.Builder, n Node) {
	switch node := n.(type) {
	case *Document:
		for _, child := range node.Children {
			writeNode(b, child)
		}
	case *Paragraph:
		writeInlines(b, node.Children)
		writeNewline(b, node.BlockEnd)
	case *Heading:
		b.WriteString(strings.Repeat("#", node.Level))
		b.WriteByte(' ')
		writeInlines(b, node.Children)
		writeNewline(b, node.BlockEnd)
	case *List:
		for _, item := range node.Items {
			writeNode(b, item)
		}
	case *ListItem:
		b.WriteString(ListMarker(node.ListType, node.Level))
		writeInlines(b, node.Children)
		writeNewline(b, node.BlockEnd)
	case *CodeBlock:
		b.WriteString("```")
		b.WriteString(node.Language)
		b.WriteByte('\n')
		if node.HasBody || node.Text != "" {
			b.WriteString(node.Text)
			b.WriteByte('\n')
		}
		b.WriteString("```")
		writeNewline(b, node.BlockEnd)
	case *Blockquote:
		b.WriteString("> ")
		writeInlines(b, node.Children)
		writeNewline(b, node.BlockEnd)
	case *ThematicBreak:
		b.WriteString(node.Marker)
		writeNewline(b, node.BlockEnd)
	case *Text:
		b.WriteString(node.Text)
	case *Bold:
		b.WriteString(node.Delim)
		writeInlines(b, node.Children)
		b.WriteString(node.Delim)
	case *Italic:
		b.WriteString(node.Delim)
		writeInlines(b, node.Children)
		b.WriteString(node.Delim)
	case *Strikethrough:
		b.WriteString("~~")
		writeInlines(b, node.Children)
		b.WriteString("~~")
	case *Code:
		b.WriteByte('`')
		b.WriteString(node.Text)
		b.WriteByte('`')
	case *Link:
		b.WriteByte('[')
		b.WriteString(node.Text)
		b.WriteString("](")
		b.WriteString(node.Href)
		b.WriteByte(')')
	case *WikiLink:
		b.WriteString("[[")
		b.WriteString(node.EntryID)
		if node.Display != "" && node.Display != node.EntryID {
			b.WriteByte('|')
			b.WriteString(node.Display)
		}
		b.WriteString("]]")
	case *LineBreak:
		b.WriteByte('\n')
	}
}

func writeInlines(b *strings.Builder, inlines []Inline) {
	for _, in := range inlines {
		writeNode(b, in)
	}
}

func writeNewline(b *strings.Builder, end BlockEnd) {
	if end.Newline {
		b.WriteByte('\n')
	}
}

// InlineText serializes a run of inline nodes.
func InlineText(inlines []Inline) string {
	var b strings.Builder
	writeInlines(&b, inlines)
	return b.String()
}
