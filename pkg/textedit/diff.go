package textedit

import (
	"fmt"
	"strings"
)

// diffContext is the number of unchanged lines kept around each change.
const diffContext = 3

// LineOp is the kind of a line in a diff.
type LineOp uint8

const (
	// LineKeep is an unchanged line.
	LineKeep LineOp = iota
	// LineAdd is a line present only in the new text.
	LineAdd
	// LineRemove is a line present only in the old text.
	LineRemove
)

// prefix returns the unified diff marker for the op.
func (op LineOp) prefix() string {
	switch op {
	case LineAdd:
		return "+"
	case LineRemove:
		return "-"
	default:
		return " "
	}
}

// DiffLine is one line of a hunk.
type DiffLine struct {
	Op   LineOp
	Text string
}

// Hunk is a run of changes with surrounding context. Line numbers are
// 1-based.
type Hunk struct {
	OldStart, OldLines int
	NewStart, NewLines int
	Lines              []DiffLine
}

// Header returns the "@@ -a,b +c,d @@" line of the hunk.
func (h Hunk) Header() string {
	return fmt.Sprintf("@@ -%d,%d +%d,%d @@", h.OldStart, h.OldLines, h.NewStart, h.NewLines)
}

// Diff is a line diff between two versions of a document.
type Diff struct {
	Path    string
	Hunks   []Hunk
	Added   int
	Removed int
}

// LineDiff compares before and after line by line. It returns nil when the
// texts have the same lines.
func LineDiff(path, before, after string) *Diff {
	ops := diffLines(splitLines(before), splitLines(after))

	diff := &Diff{Path: path}
	var changed []int
	for i, line := range ops {
		switch line.Op {
		case LineAdd:
			diff.Added++
		case LineRemove:
			diff.Removed++
		default:
			continue
		}
		changed = append(changed, i)
	}
	if len(changed) == 0 {
		return nil
	}

	diff.Hunks = groupHunks(ops, changed)
	return diff
}

// Unified renders the diff in unified format with a/ and b/ path headers.
func (d *Diff) Unified() string {
	if d == nil {
		return ""
	}

	path := strings.TrimPrefix(d.Path, "/")
	var b strings.Builder
	fmt.Fprintf(&b, "--- a/%s\n+++ b/%s\n", path, path)
	for _, hunk := range d.Hunks {
		b.WriteString(hunk.Header())
		b.WriteByte('\n')
		for _, line := range hunk.Lines {
			b.WriteString(line.Op.prefix())
			b.WriteString(line.Text)
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// String returns the hunk line with its diff marker.
func (l DiffLine) String() string {
	return l.Op.prefix() + l.Text
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

// diffLines aligns a and b on a longest common subsequence of lines.
// Removals are emitted before additions at each change.
func diffLines(a, b []string) []DiffLine {
	// lcs[i][j] is the LCS length of a[i:] and b[j:].
	lcs := make([][]int, len(a)+1)
	for i := range lcs {
		lcs[i] = make([]int, len(b)+1)
	}
	for i := len(a) - 1; i >= 0; i-- {
		for j := len(b) - 1; j >= 0; j-- {
			if a[i] == b[j] {
				lcs[i][j] = lcs[i+1][j+1] + 1
			} else {
				lcs[i][j] = max(lcs[i+1][j], lcs[i][j+1])
			}
		}
	}

	ops := make([]DiffLine, 0, max(len(a), len(b)))
	i, j := 0, 0
	for i < len(a) || j < len(b) {
		switch {
		case i < len(a) && j < len(b) && a[i] == b[j]:
			ops = append(ops, DiffLine{Op: LineKeep, Text: a[i]})
			i++
			j++
		case j >= len(b) || (i < len(a) && lcs[i+1][j] >= lcs[i][j+1]):
			ops = append(ops, DiffLine{Op: LineRemove, Text: a[i]})
			i++
		default:
			ops = append(ops, DiffLine{Op: LineAdd, Text: b[j]})
			j++
		}
	}
	return ops
}

// groupHunks cuts ops into hunks around the changed indices. Changes closer
// than twice the context share a hunk.
func groupHunks(ops []DiffLine, changed []int) []Hunk {
	var hunks []Hunk

	first := changed[0]
	last := first
	flush := func() {
		start := max(first-diffContext, 0)
		end := min(last+diffContext+1, len(ops))
		hunks = append(hunks, makeHunk(ops, start, end))
	}

	for _, idx := range changed[1:] {
		if idx-last > 2*diffContext {
			flush()
			first = idx
		}
		last = idx
	}
	flush()
	return hunks
}

func makeHunk(ops []DiffLine, start, end int) Hunk {
	oldLine, newLine := 1, 1
	for _, line := range ops[:start] {
		if line.Op != LineAdd {
			oldLine++
		}
		if line.Op != LineRemove {
			newLine++
		}
	}

	hunk := Hunk{OldStart: oldLine, NewStart: newLine, Lines: ops[start:end]}
	for _, line := range hunk.Lines {
		if line.Op != LineAdd {
			hunk.OldLines++
		}
		if line.Op != LineRemove {
			hunk.NewLines++
		}
	}
	return hunk
}
