package parser

import (
	"strings"

	"github.com/yaklabco/mdnote/pkg/mdast"
)

// Build groups a token stream into a document tree.
//
// Consecutive list item tokens become one list, consecutive inline tokens
// become one paragraph, and headings, code blocks, rules and blockquotes
// become standalone blocks. Content of headings, list items, blockquotes
// and emphasis is tokenized again (inline only) and rebased so nested nodes
// carry absolute offsets.
func Build(tokens []mdast.Token) *mdast.Document {
	doc := mdast.NewDocument()
	if len(tokens) == 0 {
		return doc
	}

	doc.Start = tokens[0].Start
	doc.End = tokens[len(tokens)-1].End

	for i := 0; i < len(tokens); {
		tok := tokens[i]

		switch {
		case tok.Kind.IsInline():
			j := i
			for j < len(tokens) && tokens[j].Kind.IsInline() {
				j++
			}
			doc.Children = append(doc.Children, buildParagraph(tokens[i:j]))
			i = j
		case tok.Kind == mdast.TokListItem:
			j := i
			for j < len(tokens) && tokens[j].Kind == mdast.TokListItem {
				j++
			}
			doc.Children = append(doc.Children, buildList(tokens[i:j]))
			i = j
		default:
			doc.Children = append(doc.Children, buildBlock(tok))
			i++
		}
	}

	return doc
}

// Parse tokenizes text and builds its tree.
func Parse(text string) *mdast.Document {
	return Build(Tokenize(text))
}

// blockPos returns the span of a block token without its line feed.
func blockPos(tok mdast.Token) (mdast.Pos, mdast.BlockEnd) {
	end := tok.End
	if tok.HasNewline() {
		end--
	}
	return mdast.Pos{Start: tok.Start, End: end}, mdast.BlockEnd{Newline: tok.HasNewline()}
}

func buildBlock(tok mdast.Token) mdast.Block {
	pos, blockEnd := blockPos(tok)

	switch tok.Kind {
	case mdast.TokHeading:
		return &mdast.Heading{
			Pos:          pos,
			BlockEnd:     blockEnd,
			Level:        tok.Level,
			ContentStart: tok.ContentStart,
			Children:     parseInline(tok.Content, tok.ContentStart),
		}
	case mdast.TokCodeBlock:
		return &mdast.CodeBlock{
			Pos:      pos,
			BlockEnd: blockEnd,
			Language: tok.Language,
			Text:     tok.Content,
			HasBody:  tok.Content != "" || strings.HasPrefix(tok.Raw[tok.ContentStart-tok.Start:], "\n"),
		}
	case mdast.TokBlockquote:
		return &mdast.Blockquote{
			Pos:          pos,
			BlockEnd:     blockEnd,
			ContentStart: tok.ContentStart,
			Children:     parseInline(tok.Content, tok.ContentStart),
		}
	case mdast.TokHR:
		return &mdast.ThematicBreak{
			Pos:      pos,
			BlockEnd: blockEnd,
			Marker:   tok.Raw[:pos.End-pos.Start],
		}
	default:
		return buildParagraph([]mdast.Token{tok})
	}
}

func buildList(tokens []mdast.Token) *mdast.List {
	list := &mdast.List{Items: make([]*mdast.ListItem, 0, len(tokens))}

	for _, tok := range tokens {
		pos, blockEnd := blockPos(tok)
		list.Items = append(list.Items, &mdast.ListItem{
			Pos:          pos,
			BlockEnd:     blockEnd,
			Level:        tok.Level,
			ListType:     tok.ListType,
			Marker:       tok.Marker,
			ContentStart: tok.ContentStart,
			Children:     parseInline(tok.Content, tok.ContentStart),
		})
	}

	first, last := list.Items[0], list.Items[len(list.Items)-1]
	list.Start = first.Start
	list.End = last.End
	list.Newline = last.Newline

	return list
}

// buildParagraph converts a run of inline tokens. A trailing line feed is
// recorded on the paragraph rather than kept as a LineBreak child.
func buildParagraph(tokens []mdast.Token) *mdast.Paragraph {
	para := &mdast.Paragraph{}
	for _, tok := range tokens {
		para.Children = append(para.Children, inlineNodes(tok)...)
	}

	last := tokens[len(tokens)-1]
	para.Start = tokens[0].Start
	para.End = last.End

	if last.HasNewline() {
		para.Newline = true
		para.End--
		para.Children = para.Children[:len(para.Children)-1]
	}

	return para
}

// inlineNodes converts a single inline token into nodes. A text token that
// ends a line yields a Text node (when non-empty) followed by a LineBreak.
func inlineNodes(tok mdast.Token) []mdast.Inline {
	pos := mdast.Pos{Start: tok.Start, End: tok.End}

	switch tok.Kind {
	case mdast.TokBold:
		return []mdast.Inline{&mdast.Bold{
			Pos:      pos,
			Delim:    tok.Marker,
			Children: parseInline(tok.Content, tok.ContentStart),
		}}
	case mdast.TokItalic:
		return []mdast.Inline{&mdast.Italic{
			Pos:      pos,
			Delim:    tok.Marker,
			Children: parseInline(tok.Content, tok.ContentStart),
		}}
	case mdast.TokStrikethrough:
		return []mdast.Inline{&mdast.Strikethrough{
			Pos:      pos,
			Children: parseInline(tok.Content, tok.ContentStart),
		}}
	case mdast.TokCode:
		return []mdast.Inline{&mdast.Code{Pos: pos, Text: tok.Content}}
	case mdast.TokLink:
		return []mdast.Inline{&mdast.Link{Pos: pos, Text: tok.Content, Href: tok.Href}}
	case mdast.TokWikiLink:
		return []mdast.Inline{&mdast.WikiLink{Pos: pos, EntryID: tok.EntryID, Display: tok.Content}}
	default:
		return textNodes(tok)
	}
}

func textNodes(tok mdast.Token) []mdast.Inline {
	if !tok.HasNewline() {
		return []mdast.Inline{&mdast.Text{Pos: mdast.Pos{Start: tok.Start, End: tok.End}, Text: tok.Raw}}
	}

	var nodes []mdast.Inline
	breakAt := tok.End - 1
	if breakAt > tok.Start {
		nodes = append(nodes, &mdast.Text{
			Pos:  mdast.Pos{Start: tok.Start, End: breakAt},
			Text: tok.Raw[:len(tok.Raw)-1],
		})
	}
	return append(nodes, &mdast.LineBreak{Pos: mdast.Pos{Start: breakAt, End: tok.End}})
}

// parseInline tokenizes nested content and rebases it to offset. Content
// that yields no tokens is kept as a single text node.
func parseInline(content string, offset int) []mdast.Inline {
	if content == "" {
		return nil
	}

	tokens := mdast.RebaseTokens(TokenizeInline(content), offset)
	if len(tokens) == 0 {
		return []mdast.Inline{&mdast.Text{
			Pos:  mdast.Pos{Start: offset, End: offset + len(content)},
			Text: content,
		}}
	}

	var nodes []mdast.Inline
	for _, tok := range tokens {
		nodes = append(nodes, inlineNodes(tok)...)
	}
	return nodes
}
