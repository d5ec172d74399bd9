// Package main is the entry point for the mdnote CLI.
package main

import (
	"errors"
	"os"

	"github.com/yaklabco/mdnote/internal/cli"
	"github.com/yaklabco/mdnote/internal/logging"
)

// Build-time variables set by GoReleaser via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)

	if err := rootCmd.Execute(); err != nil {
		// fmt --check already printed which files differ.
		if !errors.Is(err, cli.ErrNotNormalized) {
			logging.Default().Error("command failed", logging.FieldError, err)
		}
		return cli.ExitCodeFromError(err)
	}

	return 0
}
