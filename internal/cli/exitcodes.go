package cli

import (
	"errors"
	"io/fs"

	"github.com/yaklabco/mdnote/internal/configloader"
	"github.com/yaklabco/mdnote/pkg/editor"
	"github.com/yaklabco/mdnote/pkg/fsutil"
	"github.com/yaklabco/mdnote/pkg/titles"
)

// Exit codes for mdnote.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitFailure indicates a failed check or an unclassified error.
	ExitFailure = 1

	// ExitInvalidUsage indicates invalid command-line usage, including
	// malformed key scripts.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ExitCodeFromError maps a command error to a process exit code.
func ExitCodeFromError(err error) int {
	var validation *configloader.ValidationError

	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrNotNormalized):
		return ExitFailure
	case errors.As(err, &validation):
		return ExitConfigError
	case errors.Is(err, editor.ErrUnknownKey), errors.Is(err, errWriteNeedsFiles):
		return ExitInvalidUsage
	case errors.Is(err, fsutil.ErrNotFound),
		errors.Is(err, fsutil.ErrPermissionDenied),
		errors.Is(err, fsutil.ErrIsDirectory),
		errors.Is(err, fsutil.ErrChangedOnDisk),
		errors.Is(err, titles.ErrNotFound),
		errors.Is(err, fs.ErrNotExist):
		return ExitIOError
	default:
		return ExitFailure
	}
}
