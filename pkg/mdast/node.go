package mdast

// NodeKind classifies the type of an AST node.
type NodeKind uint16

// Node kinds for block-level and inline-level Markdown elements.
const (
	NodeDocument NodeKind = iota

	// Block-level nodes.
	NodeParagraph
	NodeHeading
	NodeList
	NodeListItem
	NodeCodeBlock
	NodeBlockquote
	NodeHR

	// Inline-level nodes.
	NodeText
	NodeBold
	NodeItalic
	NodeStrikethrough
	NodeCode
	NodeLink
	NodeWikiLink
	NodeLineBreak
)

//nolint:gochecknoglobals // Read-only lookup table.
var nodeKindNames = [...]string{
	NodeDocument:      "document",
	NodeParagraph:     "paragraph",
	NodeHeading:       "heading",
	NodeList:          "list",
	NodeListItem:      "list-item",
	NodeCodeBlock:     "code-block",
	NodeBlockquote:    "blockquote",
	NodeHR:            "hr",
	NodeText:          "text",
	NodeBold:          "bold",
	NodeItalic:        "italic",
	NodeStrikethrough: "strikethrough",
	NodeCode:          "code",
	NodeLink:          "link",
	NodeWikiLink:      "wiki-link",
	NodeLineBreak:     "line-break",
}

// String returns the kind name used in dumps and debug logs.
func (k NodeKind) String() string {
	if int(k) < len(nodeKindNames) {
		return nodeKindNames[k]
	}
	return "unknown"
}

// Node is a node of the Markdown AST. The set of implementations is closed:
// every node is one of the pointer types declared in this file.
//
// Start and End are absolute byte offsets into the document text. Block
// nodes end before their terminating line feed.
type Node interface {
	Kind() NodeKind
	Span() (start, end int)
	sealed()
}

// Block is a node that can appear as a child of the document.
type Block interface {
	Node
	// HasNewline reports whether the block is terminated by a line feed.
	HasNewline() bool
	block()
}

// Inline is a node that can appear inside paragraphs, headings, list items and blockquotes.
type Inline interface {
	Node
	inline()
}

// Pos holds the source span of a node.
type Pos struct {
	Start int
	End   int
}

// Span returns the start and end offsets.
func (p Pos) Span() (int, int) { return p.Start, p.End }

func (Pos) sealed() {}

// BlockEnd records whether a block owns a terminating line feed.
type BlockEnd struct {
	Newline bool
}

// HasNewline reports whether the block is terminated by a line feed.
func (b BlockEnd) HasNewline() bool { return b.Newline }

func (BlockEnd) block() {}

type inlineNode struct{}

func (inlineNode) inline() {}

// Document is the root of every tree.
type Document struct {
	Pos
	Children []Block
}

// Paragraph groups consecutive inline tokens. Lines inside it are separated by LineBreak children.
type Paragraph struct {
	Pos
	BlockEnd
	Children []Inline
}

// Heading is an ATX heading.
type Heading struct {
	Pos
	BlockEnd
	// Level is in [1,6].
	Level int
	// ContentStart is the offset of the first content byte after the marker.
	ContentStart int
	Children     []Inline
}

// List groups adjacent list items.
type List struct {
	Pos
	BlockEnd
	Items []*ListItem
}

// ListType returns the type of the first item.
func (l *List) ListType() ListType {
	if len(l.Items) == 0 {
		return ListBullet
	}
	return l.Items[0].ListType
}

// ListItem is a single list line.
type ListItem struct {
	Pos
	BlockEnd
	// Level is the indentation depth, two spaces per level.
	Level    int
	ListType ListType
	// Marker is the marker as written in the source ("-", "*", "3.").
	Marker string
	// ContentStart is the offset just after the marker and its space.
	ContentStart int
	Children     []Inline
}

// CodeBlock is a fenced code block.
type CodeBlock struct {
	Pos
	BlockEnd
	Language string
	Text     string

	// HasBody is set when a body line exists between the fences, which
	// tells a single blank line apart from no body at all.
	HasBody bool
}

// Blockquote is a single-line quote.
type Blockquote struct {
	Pos
	BlockEnd
	ContentStart int
	Children     []Inline
}

// ThematicBreak is a horizontal rule.
type ThematicBreak struct {
	Pos
	BlockEnd
	// Marker is the rule as written ("---", "***").
	Marker string
}

// Text is a run of literal text without line feeds.
type Text struct {
	Pos
	inlineNode
	Text string
}

// Bold is strong emphasis.
type Bold struct {
	Pos
	inlineNode
	// Delim is "**" or "__".
	Delim    string
	Children []Inline
}

// Italic is emphasis.
type Italic struct {
	Pos
	inlineNode
	// Delim is "*" or "_".
	Delim    string
	Children []Inline
}

// Strikethrough is text between "~~" delimiters.
type Strikethrough struct {
	Pos
	inlineNode
	Children []Inline
}

// Code is an inline code span.
type Code struct {
	Pos
	inlineNode
	Text string
}

// Link is an inline link. Href may be empty.
type Link struct {
	Pos
	inlineNode
	Text string
	Href string
}

// WikiLink references another entry by id.
type WikiLink struct {
	Pos
	inlineNode
	// EntryID is never empty.
	EntryID string
	// Display is the label; it equals EntryID when no label was given.
	Display string
}

// LineBreak is a line feed inside a paragraph.
type LineBreak struct {
	Pos
	inlineNode
}

// Kind implementations.

func (*Document) Kind() NodeKind      { return NodeDocument }
func (*Paragraph) Kind() NodeKind     { return NodeParagraph }
func (*Heading) Kind() NodeKind       { return NodeHeading }
func (*List) Kind() NodeKind          { return NodeList }
func (*ListItem) Kind() NodeKind      { return NodeListItem }
func (*CodeBlock) Kind() NodeKind     { return NodeCodeBlock }
func (*Blockquote) Kind() NodeKind    { return NodeBlockquote }
func (*ThematicBreak) Kind() NodeKind { return NodeHR }
func (*Text) Kind() NodeKind          { return NodeText }
func (*Bold) Kind() NodeKind          { return NodeBold }
func (*Italic) Kind() NodeKind        { return NodeItalic }
func (*Strikethrough) Kind() NodeKind { return NodeStrikethrough }
func (*Code) Kind() NodeKind          { return NodeCode }
func (*Link) Kind() NodeKind          { return NodeLink }
func (*WikiLink) Kind() NodeKind      { return NodeWikiLink }
func (*LineBreak) Kind() NodeKind     { return NodeLineBreak }

// IsBlock returns true if n is a block-level node.
func IsBlock(n Node) bool {
	_, ok := n.(Block)
	return ok
}

// IsInline returns true if n is an inline-level node.
func IsInline(n Node) bool {
	_, ok := n.(Inline)
	return ok
}

// Children returns the direct children of n in source order.
// ListItem children of a List are returned as nodes.
func Children(n Node) []Node {
	switch node := n.(type) {
	case *Document:
		return blocksToNodes(node.Children)
	case *Paragraph:
		return inlinesToNodes(node.Children)
	case *Heading:
		return inlinesToNodes(node.Children)
	case *List:
		out := make([]Node, len(node.Items))
		for i, item := range node.Items {
			out[i] = item
		}
		return out
	case *ListItem:
		return inlinesToNodes(node.Children)
	case *Blockquote:
		return inlinesToNodes(node.Children)
	case *Bold:
		return inlinesToNodes(node.Children)
	case *Italic:
		return inlinesToNodes(node.Children)
	case *Strikethrough:
		return inlinesToNodes(node.Children)
	default:
		return nil
	}
}

// InlineChildren returns the inline children of a container node, or nil.
func InlineChildren(n Node) []Inline {
	switch node := n.(type) {
	case *Paragraph:
		return node.Children
	case *Heading:
		return node.Children
	case *ListItem:
		return node.Children
	case *Blockquote:
		return node.Children
	case *Bold:
		return node.Children
	case *Italic:
		return node.Children
	case *Strikethrough:
		return node.Children
	default:
		return nil
	}
}

func blocksToNodes(blocks []Block) []Node {
	out := make([]Node, len(blocks))
	for i, b := range blocks {
		out[i] = b
	}
	return out
}

func inlinesToNodes(inlines []Inline) []Node {
	out := make([]Node, len(inlines))
	for i, in := range inlines {
		out[i] = in
	}
	return out
}

// NewDocument returns the canonical empty document.
func NewDocument() *Document {
	return &Document{}
}

// IsEmpty reports whether the document has no content.
func (d *Document) IsEmpty() bool {
	return len(d.Children) == 0
}

// EndsWithNewline reports whether the document text ends with a line feed.
func (d *Document) EndsWithNewline() bool {
	if len(d.Children) == 0 {
		return false
	}
	return d.Children[len(d.Children)-1].HasNewline()
}
