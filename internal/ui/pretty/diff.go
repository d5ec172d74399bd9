package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/mdnote/pkg/textedit"
)

// FormatDiff renders a line diff in git style with colored hunks.
func (s *Styles) FormatDiff(diff *textedit.Diff) string {
	if diff == nil {
		return ""
	}

	path := strings.TrimPrefix(diff.Path, "/")
	var b strings.Builder
	b.WriteString(s.DiffHeader.Render(fmt.Sprintf("diff --git a/%s b/%s", path, path)) + "\n")
	b.WriteString(s.DiffRemove.Render("--- a/"+path) + "\n")
	b.WriteString(s.DiffAdd.Render("+++ b/"+path) + "\n")

	for _, hunk := range diff.Hunks {
		b.WriteString(s.DiffHunk.Render(hunk.Header()) + "\n")
		for _, line := range hunk.Lines {
			switch line.Op {
			case textedit.LineAdd:
				b.WriteString(s.DiffAdd.Render(line.String()))
			case textedit.LineRemove:
				b.WriteString(s.DiffRemove.Render(line.String()))
			default:
				b.WriteString(line.String())
			}
			b.WriteByte('\n')
		}
	}
	return b.String()
}
