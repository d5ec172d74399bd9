package textedit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdnote/pkg/textedit"
)

func TestApply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		text  string
		edits []textedit.TextEdit
		want  string
	}{
		{
			name:  "empty edits returns original",
			text:  "hello world",
			edits: nil,
			want:  "hello world",
		},
		{
			name:  "single replacement",
			text:  "hello world",
			edits: []textedit.TextEdit{{StartOffset: 0, EndOffset: 5, NewText: "hi"}},
			want:  "hi world",
		},
		{
			name:  "single insertion",
			text:  "hello world",
			edits: []textedit.TextEdit{{StartOffset: 5, EndOffset: 5, NewText: " beautiful"}},
			want:  "hello beautiful world",
		},
		{
			name:  "single deletion",
			text:  "hello world",
			edits: []textedit.TextEdit{{StartOffset: 5, EndOffset: 11}},
			want:  "hello",
		},
		{
			name: "unsorted non-overlapping edits",
			text: "hello world",
			edits: []textedit.TextEdit{
				{StartOffset: 6, EndOffset: 11, NewText: "there"},
				{StartOffset: 0, EndOffset: 5, NewText: "hi"},
			},
			want: "hi there",
		},
		{
			name: "adjacent edits",
			text: "abcdef",
			edits: []textedit.TextEdit{
				{StartOffset: 0, EndOffset: 2, NewText: "X"},
				{StartOffset: 2, EndOffset: 4, NewText: "Y"},
			},
			want: "XYef",
		},
		{
			name:  "multi-byte text",
			text:  "héllo",
			edits: []textedit.TextEdit{{StartOffset: 1, EndOffset: 3, NewText: "e"}},
			want:  "hello",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := textedit.Apply(tt.text, tt.edits)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestApply_Errors(t *testing.T) {
	t.Parallel()

	_, err := textedit.Apply("abc", []textedit.TextEdit{{StartOffset: 2, EndOffset: 9}})
	var validationErr *textedit.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, err.Error(), "invalid edit [2:9] on 3 bytes")

	_, err = textedit.Apply("abcdef", []textedit.TextEdit{
		{StartOffset: 0, EndOffset: 3, NewText: "x"},
		{StartOffset: 2, EndOffset: 4, NewText: "y"},
	})
	var conflictErr *textedit.ConflictError
	require.ErrorAs(t, err, &conflictErr)
	assert.Equal(t, "overlapping edits: [0:3] and [2:4]", err.Error())
}

func TestEditBuilder(t *testing.T) {
	t.Parallel()

	got, err := textedit.NewEditBuilder().
		Insert(0, "# ").
		ReplaceRange(6, 11, "notes").
		Delete(11, 12).
		Apply("hello world!")
	require.NoError(t, err)
	assert.Equal(t, "# hello notes", got)
}

func TestShiftOffset(t *testing.T) {
	t.Parallel()

	edits := []textedit.TextEdit{
		{StartOffset: 2, EndOffset: 2, NewText: "xyz"},
		{StartOffset: 5, EndOffset: 8, NewText: "-"},
	}

	assert.Equal(t, 1, textedit.ShiftOffset(1, edits))
	assert.Equal(t, 5, textedit.ShiftOffset(2, edits))
	assert.Equal(t, 8, textedit.ShiftOffset(5, edits))
	assert.Equal(t, 9, textedit.ShiftOffset(6, edits))
	assert.Equal(t, 9, textedit.ShiftOffset(8, edits))
	assert.Equal(t, 11, textedit.ShiftOffset(10, edits))
}

func TestRemap(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		before string
		after  string
		offset int
		want   int
	}{
		{"unchanged text", "abc", "abc", 2, 2},
		{"unchanged text clamps", "abc", "abc", 7, 3},
		{"after a widened region", "#F", "# F", 2, 3},
		{"before a widened region", "#F", "# F", 1, 1},
		{"same length change", "* a", "- a", 3, 3},
		{"after a narrowed region", "- a\n   - b", "- a\n  - b", 10, 9},
		{"inside a changed region", "abXYcd", "abZcd", 3, 3},
		{"at start", "xF", "x F", 0, 0},
		{"multi-byte suffix", "xé", "yyé", 3, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, textedit.Remap(tt.before, tt.after, tt.offset))
		})
	}
}

func TestClamp(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, textedit.Clamp(-4, 10))
	assert.Equal(t, 4, textedit.Clamp(4, 10))
	assert.Equal(t, 10, textedit.Clamp(11, 10))
}
