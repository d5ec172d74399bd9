package mdast

import (
	"sort"
	"unicode/utf8"
)

// LineInfo holds metadata for a single line of text.
type LineInfo struct {
	// StartOffset is the byte index of the line start.
	StartOffset int

	// EndOffset is the byte index of the line feed, or the end of text for the last line.
	EndOffset int
}

// Len returns the length of the line without its line feed.
func (l LineInfo) Len() int {
	return l.EndOffset - l.StartOffset
}

// Lines is the line index of a text.
type Lines struct {
	text  string
	lines []LineInfo
}

// BuildLines constructs the line index of text. There is always at least one
// line; a trailing line feed opens an empty last line.
func BuildLines(text string) *Lines {
	idx := &Lines{text: text}
	lineStart := 0

	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			idx.lines = append(idx.lines, LineInfo{StartOffset: lineStart, EndOffset: i})
			lineStart = i + 1
		}
	}
	idx.lines = append(idx.lines, LineInfo{StartOffset: lineStart, EndOffset: len(text)})

	return idx
}

// Count returns the number of lines.
func (l *Lines) Count() int {
	return len(l.lines)
}

// Line returns the 0-based line.
func (l *Lines) Line(i int) LineInfo {
	return l.lines[i]
}

// LineAt returns the 0-based line index containing offset, clamping the
// offset to the text.
func (l *Lines) LineAt(offset int) int {
	if offset <= 0 {
		return 0
	}
	if offset >= len(l.text) {
		return len(l.lines) - 1
	}
	return sort.Search(len(l.lines), func(i int) bool {
		return l.lines[i].EndOffset >= offset
	})
}

// Content returns the text of the 0-based line without its line feed.
func (l *Lines) Content(i int) string {
	if i < 0 || i >= len(l.lines) {
		return ""
	}
	info := l.lines[i]
	return l.text[info.StartOffset:info.EndOffset]
}

// Column returns the 0-based line and rune column of offset.
func (l *Lines) Column(offset int) (int, int) {
	line := l.LineAt(offset)
	info := l.lines[line]
	offset = min(max(offset, info.StartOffset), info.EndOffset)
	return line, utf8.RuneCountInString(l.text[info.StartOffset:offset])
}

// Offset converts a 0-based line and rune column to a byte offset. Columns
// past the end of the line clamp to the line end.
func (l *Lines) Offset(line, col int) int {
	line = min(max(line, 0), len(l.lines)-1)
	info := l.lines[line]
	offset := info.StartOffset
	for n := 0; n < col && offset < info.EndOffset; n++ {
		_, size := utf8.DecodeRuneInString(l.text[offset:])
		offset += size
	}
	return offset
}
