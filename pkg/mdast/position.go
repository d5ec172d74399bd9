package mdast

import "sync/atomic"

// maxAncestorDepth bounds parent-chain walks. Trees built by the parser are
// at most five levels deep (document, list, item, bold, italic).
const maxAncestorDepth = 64

// CycleHook is called when a parent-chain walk revisits a node or exceeds
// the depth bound.
type CycleHook func(kind NodeKind, depth int)

//nolint:gochecknoglobals // Process-wide diagnostic hook, set once by the host.
var cycleHook atomic.Pointer[CycleHook]

// SetCycleHook installs a hook reporting parent-chain cycles. Pass nil to remove it.
func SetCycleHook(hook CycleHook) {
	if hook == nil {
		cycleHook.Store(nil)
		return
	}
	cycleHook.Store(&hook)
}

func reportCycle(kind NodeKind, depth int) {
	if hook := cycleHook.Load(); hook != nil {
		(*hook)(kind, depth)
	}
}

// SourceRange represents a byte range in the source content.
type SourceRange struct {
	// StartOffset is the byte index where the range begins (inclusive).
	StartOffset int

	// EndOffset is the byte index where the range ends (exclusive).
	EndOffset int
}

// Len returns the length of the range in bytes.
func (r SourceRange) Len() int {
	return r.EndOffset - r.StartOffset
}

// IsEmpty returns true if the range has zero length.
func (r SourceRange) IsEmpty() bool {
	return r.StartOffset == r.EndOffset
}

// RangeOf returns the source range of n.
func RangeOf(n Node) SourceRange {
	start, end := n.Span()
	return SourceRange{StartOffset: start, EndOffset: end}
}

// Contains reports whether a cursor at pos touches n. Both ends are
// inclusive so a cursor sitting right after the last character of a node
// belongs to it.
func Contains(n Node, pos int) bool {
	start, end := n.Span()
	return pos >= start && pos <= end
}

// FindNodeAtPosition returns the deepest node containing pos, preferring
// children over parents and earlier siblings over later ones. It returns nil
// if root does not contain pos.
func FindNodeAtPosition(root Node, pos int) Node {
	if root == nil || !Contains(root, pos) {
		return nil
	}

	current := root
	for depth := 0; depth < maxAncestorDepth; depth++ {
		next := childContaining(current, pos)
		if next == nil {
			return current
		}
		current = next
	}

	return current
}

func childContaining(n Node, pos int) Node {
	for _, child := range Children(n) {
		if Contains(child, pos) {
			return child
		}
	}
	return nil
}

// FindParent returns the node whose direct children include target, or nil.
// Node identity is pointer identity.
func FindParent(root, target Node) Node {
	if root == nil || target == nil || root == target {
		return nil
	}

	visited := make(map[Node]struct{})
	var search func(n Node, depth int) Node
	search = func(n Node, depth int) Node {
		if depth > maxAncestorDepth {
			return nil
		}
		if _, seen := visited[n]; seen {
			reportCycle(n.Kind(), depth)
			return nil
		}
		visited[n] = struct{}{}

		for _, child := range Children(n) {
			if child == target {
				return n
			}
		}
		for _, child := range Children(n) {
			if found := search(child, depth+1); found != nil {
				return found
			}
		}
		return nil
	}

	return search(root, 0)
}

// Ancestors returns the parent chain of target, nearest first, ending at root.
// The walk is bounded and stops at the first revisited node, so a malformed
// tree yields a truncated chain instead of looping. The second result is
// false when root was not reached.
func Ancestors(root, target Node) ([]Node, bool) {
	var chain []Node
	visited := map[Node]struct{}{target: {}}

	current := target
	for depth := 0; depth < maxAncestorDepth; depth++ {
		if current == root {
			return chain, true
		}
		parent := FindParent(root, current)
		if parent == nil {
			return chain, false
		}
		if _, seen := visited[parent]; seen {
			reportCycle(parent.Kind(), depth)
			return chain, false
		}
		visited[parent] = struct{}{}
		chain = append(chain, parent)
		current = parent
	}

	reportCycle(current.Kind(), maxAncestorDepth)
	return chain, false
}
