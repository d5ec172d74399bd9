package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdnote/internal/logging"
	"github.com/yaklabco/mdnote/internal/ui/pretty"
	"github.com/yaklabco/mdnote/pkg/config"
	"github.com/yaklabco/mdnote/pkg/fsutil"
	"github.com/yaklabco/mdnote/pkg/mdast"
	"github.com/yaklabco/mdnote/pkg/parser"
	"github.com/yaklabco/mdnote/pkg/runner"
	"github.com/yaklabco/mdnote/pkg/textedit"
)

// ErrNotNormalized is returned by fmt --check when a document would change.
var ErrNotNormalized = errors.New("document not normalized")

// stdinLabel names standard input in diff headers.
const stdinLabel = "stdin"

// errWriteNeedsFiles is returned when --write is used with standard input.
var errWriteNeedsFiles = errors.New("--write requires file arguments")

type fmtFlags struct {
	write   bool
	check   bool
	backup  bool
	diff    bool
	jobs    int
	exclude []string
}

func newFmtCommand(a *app) *cobra.Command {
	flags := &fmtFlags{}

	cmd := &cobra.Command{
		Use:   "fmt [files...]",
		Short: "Normalize markdown documents",
		Long: `Normalize markdown documents by parsing and re-serializing them.

Normalization rewrites list markers to the canonical marker for their
nesting level, renumbers ordered lists, and collapses unknown syntax
into plain text. Normalizing a normalized document is a no-op.

Directories are searched recursively for .md and .markdown files. Without
flags the normalized text is printed to standard output.

Examples:
  mdnote fmt < note.md
  mdnote fmt --write notes/
  mdnote fmt --check notes/*.md
  mdnote fmt --diff note.md`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runFmt(cmd, args, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.write, "write", "w", false, "rewrite files in place")
	cmd.Flags().BoolVar(&flags.check, "check", false, "fail if any document is not normalized")
	cmd.Flags().BoolVar(&flags.backup, "backup", false, "keep a .mdnote.bak copy of each rewritten file")
	cmd.Flags().BoolVarP(&flags.diff, "diff", "d", false, "print a diff of the changes instead of the normalized text")
	cmd.Flags().IntVarP(&flags.jobs, "jobs", "j", 0, "files processed concurrently (0 = number of CPUs)")
	cmd.Flags().StringSliceVar(&flags.exclude, "exclude", nil, "glob patterns to skip when walking directories")

	return cmd
}

// normalize round-trips text through the parser.
func normalize(text string) string {
	return mdast.ToText(parser.Parse(text))
}

func (a *app) runFmt(cmd *cobra.Command, args []string, flags *fmtFlags) error {
	ctx := cmd.Context()
	logger := logging.FromContext(ctx)
	a.cfg.Write = a.cfg.Write || flags.write
	a.cfg.Check = a.cfg.Check || flags.check
	if flags.backup {
		a.cfg.Backups = config.Bool(true)
	}
	if len(flags.exclude) > 0 {
		a.cfg.Exclude = flags.exclude
	}
	if a.cfg.Write && a.cfg.Check {
		logger.Warn("--check reports without writing; ignoring --write")
		a.cfg.Write = false
	}

	if len(args) == 0 || (len(args) == 1 && args[0] == stdinName) {
		if a.cfg.Write {
			return errWriteNeedsFiles
		}
		return a.fmtStdin(ctx, cmd, flags.diff)
	}

	outcomes, err := runner.RunOptions(ctx, runner.Options{
		Paths:   args,
		Exclude: a.cfg.Exclude,
		Jobs:    flags.jobs,
	}, a.fmtFile)
	if err != nil {
		return err
	}

	styles := a.styles(cmd)
	stats := pretty.FmtStats{Check: a.cfg.Check}
	for _, outcome := range outcomes {
		if outcome.Err != nil {
			return outcome.Err
		}
		stats.FilesProcessed++
		if outcome.Result.changed() {
			stats.FilesChanged++
		}
		a.reportFile(cmd, styles, outcome.Path, outcome.Result, flags.diff)
	}

	if a.cfg.Check || a.cfg.Write {
		fmt.Fprint(cmd.ErrOrStderr(), styles.FormatFmtSummary(stats))
	}
	logger.Debug("fmt finished",
		logging.FieldFilesProcessed, stats.FilesProcessed,
		logging.FieldFilesChanged, stats.FilesChanged,
	)

	if a.cfg.Check && stats.FilesChanged > 0 {
		return ErrNotNormalized
	}
	return nil
}

func (a *app) fmtStdin(ctx context.Context, cmd *cobra.Command, showDiff bool) error {
	text, _, err := readInput(ctx, cmd, stdinName)
	if err != nil {
		return err
	}

	normalized := normalize(text)
	if showDiff {
		a.printDiff(cmd, stdinLabel, text, normalized)
	}
	if a.cfg.Check {
		if normalized != text {
			return ErrNotNormalized
		}
		return nil
	}

	if !showDiff {
		fmt.Fprint(cmd.OutOrStdout(), normalized)
	}
	return nil
}

// fmtResult is the outcome of normalizing one file.
type fmtResult struct {
	text       string
	normalized string
}

func (r fmtResult) changed() bool {
	return r.text != r.normalized
}

// fmtFile normalizes one file, rewriting it in write mode. It runs on a
// worker goroutine and prints nothing.
func (a *app) fmtFile(ctx context.Context, path string) (fmtResult, error) {
	text, src, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return fmtResult{}, err
	}

	result := fmtResult{text: text, normalized: normalize(text)}
	logger := logging.FromContext(ctx).With(logging.FieldPath, path)
	logger.Debug("normalized", logging.FieldBytes, len(result.normalized), logging.FieldChanged, result.changed())

	if !a.cfg.Write || !result.changed() {
		return result, nil
	}

	if a.cfg.BackupsEnabled() {
		created, err := fsutil.CreateBackup(ctx, src, text)
		if err != nil {
			return result, err
		}
		if created {
			logger.Debug("backup created", logging.FieldOutput, fsutil.BackupPath(path))
		}
	}
	if _, err := fsutil.Replace(ctx, src, result.normalized); err != nil {
		return result, err
	}
	return result, nil
}

// reportFile prints the outcome for one file in the active mode.
func (a *app) reportFile(cmd *cobra.Command, styles *pretty.Styles, path string, result fmtResult, showDiff bool) {
	switch {
	case a.cfg.Check:
		if !result.changed() {
			return
		}
		fmt.Fprint(cmd.ErrOrStderr(), styles.FormatFileStatus(path, "not normalized"))
		if showDiff {
			a.printDiff(cmd, path, result.text, result.normalized)
		}
	case a.cfg.Write:
		if result.changed() {
			fmt.Fprint(cmd.ErrOrStderr(), styles.FormatFileStatus(path, "reformatted"))
		}
	case showDiff:
		a.printDiff(cmd, path, result.text, result.normalized)
	default:
		fmt.Fprint(cmd.OutOrStdout(), result.normalized)
	}
}

// printDiff writes the line diff between text and normalized to stdout.
func (a *app) printDiff(cmd *cobra.Command, path, text, normalized string) {
	out := cmd.OutOrStdout()
	styles := pretty.NewStyles(pretty.IsColorEnabled(string(a.cfg.Color), out))
	fmt.Fprint(out, styles.FormatDiff(textedit.LineDiff(path, text, normalized)))
}
