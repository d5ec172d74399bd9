package editor

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownKey is returned when a key script names a key that does not exist.
var ErrUnknownKey = errors.New("unknown key")

// KeyKind identifies a key press.
type KeyKind uint8

const (
	KeyText KeyKind = iota
	KeyBackspace
	KeyDelete
	KeyEnter
	KeyTab
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyFocus
	KeyBlur
)

// Key is one entry of a key script.
type Key struct {
	Kind KeyKind

	// Text is the typed text for KeyText.
	Text string

	// Shift modifies KeyTab. Ctrl modifies KeyLeft and KeyRight.
	Shift bool
	Ctrl  bool
}

//nolint:gochecknoglobals // Lookup table.
var keyNames = map[string]KeyKind{
	"backspace": KeyBackspace,
	"bs":        KeyBackspace,
	"delete":    KeyDelete,
	"del":       KeyDelete,
	"enter":     KeyEnter,
	"tab":       KeyTab,
	"up":        KeyUp,
	"down":      KeyDown,
	"left":      KeyLeft,
	"right":     KeyRight,
	"focus":     KeyFocus,
	"blur":      KeyBlur,
}

func (k Key) String() string {
	if k.Kind == KeyText {
		return strings.ReplaceAll(k.Text, "{", "{{")
	}

	name := "?"
	for n, kind := range keyNames {
		if kind == k.Kind && len(n) > len(name) {
			name = n
		}
	}

	switch {
	case k.Shift:
		name = "shift+" + name
	case k.Ctrl:
		name = "ctrl+" + name
	}
	return "{" + name + "}"
}

// ParseKeys parses a key script. Plain characters are typed as text and
// named keys are written in braces, optionally with a shift+ or ctrl+
// modifier: "- a{enter}b{shift+tab}{ctrl+left}". "{{" types a literal brace.
func ParseKeys(script string) ([]Key, error) {
	var (
		keys []Key
		text strings.Builder
	)

	flush := func() {
		if text.Len() > 0 {
			keys = append(keys, Key{Kind: KeyText, Text: text.String()})
			text.Reset()
		}
	}

	for i := 0; i < len(script); i++ {
		if script[i] != '{' {
			text.WriteByte(script[i])
			continue
		}
		if i+1 < len(script) && script[i+1] == '{' {
			text.WriteByte('{')
			i++
			continue
		}

		end := strings.IndexByte(script[i:], '}')
		if end < 0 {
			return nil, fmt.Errorf("%w: unterminated %q at offset %d", ErrUnknownKey, script[i:], i)
		}

		key, err := parseNamedKey(script[i+1 : i+end])
		if err != nil {
			return nil, err
		}
		flush()
		keys = append(keys, key)
		i += end
	}
	flush()

	return keys, nil
}

func parseNamedKey(name string) (Key, error) {
	var key Key
	lower := strings.ToLower(strings.TrimSpace(name))

	switch {
	case strings.HasPrefix(lower, "shift+"):
		key.Shift = true
		lower = strings.TrimPrefix(lower, "shift+")
	case strings.HasPrefix(lower, "ctrl+"):
		key.Ctrl = true
		lower = strings.TrimPrefix(lower, "ctrl+")
	}

	kind, ok := keyNames[lower]
	if !ok {
		return Key{}, fmt.Errorf("%w: %q", ErrUnknownKey, name)
	}
	key.Kind = kind
	return key, nil
}

// Apply returns the state after pressing key.
func (s State) Apply(key Key) State {
	switch key.Kind {
	case KeyText:
		return s.Insert(key.Text)
	case KeyBackspace:
		return s.Backspace()
	case KeyDelete:
		return s.DeleteForward()
	case KeyEnter:
		return s.Enter()
	case KeyTab:
		return s.Tab(key.Shift)
	case KeyUp:
		return s.Move(DirUp, key.Ctrl)
	case KeyDown:
		return s.Move(DirDown, key.Ctrl)
	case KeyLeft:
		return s.Move(DirLeft, key.Ctrl)
	case KeyRight:
		return s.Move(DirRight, key.Ctrl)
	case KeyFocus:
		return s.Focus()
	case KeyBlur:
		return s.Blur()
	default:
		return s
	}
}

// ApplyKeys replays keys against state and returns the final state.
func ApplyKeys(state State, keys []Key) State {
	for _, key := range keys {
		state = state.Apply(key)
	}
	return state
}
