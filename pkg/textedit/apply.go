package textedit

import (
	"strings"
	"unicode/utf8"
)

// Apply validates edits against text, sorts them, rejects overlaps and
// returns the edited text.
func Apply(text string, edits []TextEdit) (string, error) {
	prepared, err := Prepare(edits, len(text))
	if err != nil {
		return text, err
	}
	return ApplyEdits(text, prepared), nil
}

// ApplyEdits applies a sorted, validated slice of edits to text.
// Edits must be prepared with Prepare before calling.
func ApplyEdits(text string, edits []TextEdit) string {
	if len(edits) == 0 {
		return text
	}

	delta := 0
	for _, e := range edits {
		delta += e.Delta()
	}

	var out strings.Builder
	out.Grow(max(len(text)+delta, 0))

	cursor := 0
	for _, e := range edits {
		out.WriteString(text[cursor:e.StartOffset])
		out.WriteString(e.NewText)
		cursor = e.EndOffset
	}
	out.WriteString(text[cursor:])

	return out.String()
}

// ShiftOffset maps an offset in the original text to the edited text. An
// offset inside a replaced range moves to the end of the replacement.
func ShiftOffset(offset int, edits []TextEdit) int {
	shift := 0
	for _, e := range edits {
		switch {
		case offset >= e.EndOffset:
			shift += e.Delta()
		case offset > e.StartOffset:
			return e.StartOffset + shift + len(e.NewText)
		}
	}
	return offset + shift
}

// Remap maps an offset in before to the matching offset in after when the
// two texts differ in a single contiguous region. Offsets inside that region
// move to its end in after.
func Remap(before, after string, offset int) int {
	offset = Clamp(offset, len(before))
	if before == after {
		return offset
	}

	prefix := 0
	for prefix < len(before) && prefix < len(after) && before[prefix] == after[prefix] {
		prefix++
	}

	suffix := 0
	for suffix < len(before)-prefix && suffix < len(after)-prefix &&
		before[len(before)-1-suffix] == after[len(after)-1-suffix] {
		suffix++
	}
	for suffix > 0 && !utf8.RuneStart(after[len(after)-suffix]) {
		suffix--
	}

	switch {
	case offset <= prefix:
		return offset
	case offset >= len(before)-suffix:
		return offset + len(after) - len(before)
	default:
		return len(after) - suffix
	}
}
