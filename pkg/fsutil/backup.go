package fsutil

import (
	"context"
	"errors"
	"fmt"
	"os"
)

// BackupSuffix is appended to a file's path to name its backup.
const BackupSuffix = ".mdnote.bak"

// BackupPath returns the backup path for path.
func BackupPath(path string) string {
	return path + BackupSuffix
}

// CreateBackup copies the file described by src to its backup path. An
// existing backup is kept so repeated runs preserve the oldest content.
// It reports whether a backup was written.
func CreateBackup(ctx context.Context, src *Source, text string) (bool, error) {
	backup := BackupPath(src.Path)

	_, err := os.Stat(backup)
	switch {
	case err == nil:
		return false, nil
	case !errors.Is(err, os.ErrNotExist):
		return false, fmt.Errorf("stat backup: %w", err)
	}

	if err := WriteAtomic(ctx, backup, []byte(text), src.Mode); err != nil {
		return false, fmt.Errorf("write backup: %w", err)
	}
	return true, nil
}
