package textedit

import (
	"errors"
	"testing"
)

func TestPrepare_Ranges(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		edits   []TextEdit
		textLen int
		wantErr bool
	}{
		{"no edits", nil, 10, false},
		{"valid range", []TextEdit{{StartOffset: 0, EndOffset: 5}}, 10, false},
		{"insertion at end", []TextEdit{{StartOffset: 10, EndOffset: 10, NewText: "x"}}, 10, false},
		{"negative start", []TextEdit{{StartOffset: -1, EndOffset: 2}}, 10, true},
		{"inverted range", []TextEdit{{StartOffset: 5, EndOffset: 2}}, 10, true},
		{"past end", []TextEdit{{StartOffset: 5, EndOffset: 11}}, 10, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Prepare(tt.edits, tt.textLen)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Prepare() error = %v, wantErr %v", err, tt.wantErr)
			}

			var validationErr *ValidationError
			if err != nil && !errors.As(err, &validationErr) {
				t.Errorf("expected *ValidationError, got %T", err)
			}
		})
	}
}

func TestPrepare_SortsCopy(t *testing.T) {
	t.Parallel()

	edits := []TextEdit{
		{StartOffset: 5, EndOffset: 6},
		{StartOffset: 1, EndOffset: 3},
		{StartOffset: 1, EndOffset: 1, NewText: "a"},
		{StartOffset: 1, EndOffset: 1, NewText: "b"},
	}

	prepared, err := Prepare(edits, 10)
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}

	wantText := []string{"a", "b", "", ""}
	wantStart := []int{1, 1, 1, 5}
	for i, e := range prepared {
		if e.StartOffset != wantStart[i] || e.NewText != wantText[i] {
			t.Errorf("prepared[%d] = %+v, want start %d text %q", i, e, wantStart[i], wantText[i])
		}
	}
	if edits[0].StartOffset != 5 {
		t.Errorf("input slice was reordered: %+v", edits)
	}
}

func TestPrepare_Conflict(t *testing.T) {
	t.Parallel()

	_, err := Prepare([]TextEdit{{StartOffset: 2, EndOffset: 6}, {StartOffset: 0, EndOffset: 3}}, 10)

	var conflict *ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected *ConflictError, got %v", err)
	}
	if conflict.Earlier.StartOffset != 0 || conflict.Later.StartOffset != 2 {
		t.Errorf("conflict = %+v, want earlier at 0 and later at 2", conflict)
	}
}
