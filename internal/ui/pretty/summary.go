package pretty

import "fmt"

const (
	wordFile  = "file"
	wordFiles = "files"
)

// FmtStats counts the outcome of a fmt run.
type FmtStats struct {
	FilesProcessed int
	FilesChanged   int
	Check          bool
}

func plural(n int) string {
	if n == 1 {
		return wordFile
	}
	return wordFiles
}

// FormatFmtSummary returns a one-line summary of a fmt run.
func (s *Styles) FormatFmtSummary(stats FmtStats) string {
	checked := s.Dim.Render(fmt.Sprintf(" (%d %s checked)", stats.FilesProcessed, plural(stats.FilesProcessed)))

	switch {
	case stats.FilesChanged == 0:
		return s.Success.Render("All files normalized") + checked + "\n"
	case stats.Check:
		msg := fmt.Sprintf("%d %s not normalized", stats.FilesChanged, plural(stats.FilesChanged))
		return s.Failure.Render(msg) + checked + "\n"
	default:
		msg := fmt.Sprintf("%d %s reformatted", stats.FilesChanged, plural(stats.FilesChanged))
		return s.Success.Render(msg) + checked + "\n"
	}
}

// FormatFileStatus returns a line naming a file and its fmt outcome.
func (s *Styles) FormatFileStatus(path, status string) string {
	return s.FilePath.Render(path) + s.Dim.Render(": "+status) + "\n"
}
