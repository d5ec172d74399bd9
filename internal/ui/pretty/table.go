package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yaklabco/mdnote/pkg/mdast"
)

// Table formatting constants.
const (
	tablePadding   = 2
	minRangeWidth  = 7
	minKindWidth   = 10
	minDetailWidth = 8
	minRawWidth    = 12
	heavySeparator = "="
	ellipsis       = "…"
)

// TokenTable formats tokens as a styled table.
type TokenTable struct {
	styles    *Styles
	termWidth int
}

// NewTokenTable creates a token table formatter.
func NewTokenTable(styles *Styles, termWidth int) *TokenTable {
	if termWidth <= 0 {
		termWidth = defaultTermWidth
	}
	return &TokenTable{styles: styles, termWidth: termWidth}
}

type tokenRow struct {
	span   string
	kind   string
	detail string
	raw    string
	style  lipgloss.Style
}

type tokenColumns struct {
	span, kind, detail, raw int
}

// Format renders one row per token: byte range, kind, details and the
// quoted raw source. Raw text is truncated to fit the terminal width.
func (t *TokenTable) Format(tokens []mdast.Token) string {
	if len(tokens) == 0 {
		return ""
	}

	rows := make([]tokenRow, len(tokens))
	for i, tok := range tokens {
		rows[i] = tokenRow{
			span:   fmt.Sprintf("%d-%d", tok.Start, tok.End),
			kind:   tok.Kind.String(),
			detail: tokenDetail(tok),
			raw:    strconv.Quote(tok.Raw),
			style:  t.kindStyle(tok.Kind),
		}
	}

	cols := t.columnWidths(rows)
	total := cols.span + cols.kind + cols.detail + cols.raw + tablePadding*3

	var b strings.Builder
	b.WriteString(t.styles.TableHeader.Render(t.line(cols, "RANGE", "KIND", "DETAIL", "RAW")))
	b.WriteString("\n")
	b.WriteString(t.styles.TableSeparator.Render(strings.Repeat(heavySeparator, total)))
	b.WriteString("\n")

	for _, row := range rows {
		b.WriteString(t.styles.Offset.Render(pad(row.span, cols.span)))
		b.WriteString(strings.Repeat(" ", tablePadding))
		b.WriteString(row.style.Render(pad(row.kind, cols.kind)))
		b.WriteString(strings.Repeat(" ", tablePadding))
		b.WriteString(t.styles.Dim.Render(pad(row.detail, cols.detail)))
		b.WriteString(strings.Repeat(" ", tablePadding))
		b.WriteString(t.styles.Raw.Render(truncate(row.raw, cols.raw)))
		b.WriteString("\n")
	}

	b.WriteString(t.styles.TableSeparator.Render(strings.Repeat(heavySeparator, total)))
	b.WriteString("\n")
	b.WriteString(t.styles.Dim.Render(fmt.Sprintf("%d tokens", len(tokens))))
	b.WriteString("\n")

	return b.String()
}

func (t *TokenTable) line(cols tokenColumns, span, kind, detail, raw string) string {
	gap := strings.Repeat(" ", tablePadding)
	return pad(span, cols.span) + gap + pad(kind, cols.kind) + gap + pad(detail, cols.detail) + gap + raw
}

func (t *TokenTable) kindStyle(kind mdast.TokenKind) lipgloss.Style {
	switch {
	case kind == mdast.TokText:
		return t.styles.TextToken
	case kind.IsInline():
		return t.styles.InlineToken
	default:
		return t.styles.BlockToken
	}
}

func (t *TokenTable) columnWidths(rows []tokenRow) tokenColumns {
	cols := tokenColumns{span: minRangeWidth, kind: minKindWidth, detail: minDetailWidth, raw: minRawWidth}
	for _, row := range rows {
		cols.span = max(cols.span, lipgloss.Width(row.span))
		cols.kind = max(cols.kind, lipgloss.Width(row.kind))
		cols.detail = max(cols.detail, lipgloss.Width(row.detail))
	}

	fixed := cols.span + cols.kind + cols.detail + tablePadding*3
	cols.raw = max(minRawWidth, t.termWidth-fixed)
	return cols
}

// tokenDetail summarizes the kind-specific fields of tok.
func tokenDetail(tok mdast.Token) string {
	switch tok.Kind {
	case mdast.TokHeading:
		return "h" + strconv.Itoa(tok.Level)
	case mdast.TokListItem:
		return fmt.Sprintf("%s L%d", tok.ListType, tok.Level)
	case mdast.TokCodeBlock:
		return tok.Language
	case mdast.TokLink:
		return tok.Href
	case mdast.TokWikiLink:
		return tok.EntryID
	case mdast.TokBold, mdast.TokItalic, mdast.TokHR:
		return tok.Marker
	default:
		return ""
	}
}

func pad(s string, width int) string {
	if n := lipgloss.Width(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}

	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+lipgloss.Width(ellipsis) > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + ellipsis
}
