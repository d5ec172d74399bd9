package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdnote/pkg/fsutil"
)

// stdinName is the argument that selects standard input.
const stdinName = "-"

// readInput reads a document from path, or from stdin when path is empty or
// "-". The returned source is nil for stdin.
func readInput(ctx context.Context, cmd *cobra.Command, path string) (string, *fsutil.Source, error) {
	if path == "" || path == stdinName {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", nil, fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil, nil
	}
	return fsutil.ReadFile(ctx, path)
}

// argOrStdin returns the single optional positional argument.
func argOrStdin(args []string) string {
	if len(args) == 0 {
		return stdinName
	}
	return args[0]
}
