package textedit

import (
	"cmp"
	"fmt"
	"slices"
)

// ValidationError reports an edit whose range does not fit the text.
type ValidationError struct {
	Edit    TextEdit
	TextLen int
	Reason  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid edit [%d:%d] on %d bytes: %s",
		e.Edit.StartOffset, e.Edit.EndOffset, e.TextLen, e.Reason)
}

// ConflictError reports two edits whose ranges overlap. Earlier sorts first.
type ConflictError struct {
	Earlier TextEdit
	Later   TextEdit
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("overlapping edits: [%d:%d] and [%d:%d]",
		e.Earlier.StartOffset, e.Earlier.EndOffset,
		e.Later.StartOffset, e.Later.EndOffset)
}

func checkRange(edit TextEdit, textLen int) error {
	var reason string
	switch {
	case edit.StartOffset < 0:
		reason = "start offset is negative"
	case edit.EndOffset < edit.StartOffset:
		reason = "end offset is before start offset"
	case edit.EndOffset > textLen:
		reason = "end offset is past the end of the text"
	default:
		return nil
	}
	return &ValidationError{Edit: edit, TextLen: textLen, Reason: reason}
}

func compareEdits(a, b TextEdit) int {
	return cmp.Or(
		cmp.Compare(a.StartOffset, b.StartOffset),
		cmp.Compare(a.EndOffset, b.EndOffset),
	)
}

// Prepare returns a sorted copy of edits after checking every range against
// textLen. Two insertions at the same offset do not conflict; they keep their
// input order.
func Prepare(edits []TextEdit, textLen int) ([]TextEdit, error) {
	for _, edit := range edits {
		if err := checkRange(edit, textLen); err != nil {
			return nil, err
		}
	}

	sorted := slices.Clone(edits)
	slices.SortStableFunc(sorted, compareEdits)

	for i := 1; i < len(sorted); i++ {
		if sorted[i].StartOffset < sorted[i-1].EndOffset {
			return nil, &ConflictError{Earlier: sorted[i-1], Later: sorted[i]}
		}
	}
	return sorted, nil
}
