package cursor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/mdnote/pkg/cursor"
	"github.com/yaklabco/mdnote/pkg/parser"
)

func TestMoveUpDown(t *testing.T) {
	t.Parallel()

	doc := parser.Parse("abcdef\nxy\n- long line")

	tests := []struct {
		name     string
		pos      int
		wantUp   int
		wantDown int
	}{
		{"first line goes to bounds", 3, 0, 9},
		{"column clamps to shorter line", 5, 0, 9},
		{"last line goes to end", 15, 9, 21},
		{"end of short line", 9, 2, 12},
		{"out of range clamps", 99, 9, 21},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.wantUp, cursor.MoveUp(doc, tt.pos), "up")
			assert.Equal(t, tt.wantDown, cursor.MoveDown(doc, tt.pos), "down")
		})
	}
}

func TestMoveLeftRight(t *testing.T) {
	t.Parallel()

	doc := parser.Parse("héllo  big world")

	tests := []struct {
		name      string
		pos       int
		ctrl      bool
		wantLeft  int
		wantRight int
	}{
		{"start clamps", 0, false, 0, 1},
		{"steps over multi-byte rune", 1, false, 0, 3},
		{"end clamps", 17, false, 16, 17},
		{"negative clamps", -5, false, 0, 1},
		{"word from middle", 10, true, 8, 11},
		{"word across spaces", 6, true, 0, 11},
		{"word at bounds", 0, true, 0, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.wantLeft, cursor.MoveLeft(doc, tt.pos, tt.ctrl), "left")
			assert.Equal(t, tt.wantRight, cursor.MoveRight(doc, tt.pos, tt.ctrl), "right")
		})
	}
}

func TestMotion_NilDocument(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, cursor.MoveUp(nil, 3))
	assert.Equal(t, 0, cursor.MoveDown(nil, 3))
	assert.Equal(t, 0, cursor.MoveLeft(nil, 3, true))
	assert.Equal(t, 0, cursor.MoveRight(nil, 3, false))
}
