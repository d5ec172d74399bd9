package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdnote/internal/logging"
	"github.com/yaklabco/mdnote/pkg/editor"
	"github.com/yaklabco/mdnote/pkg/fsutil"
)

// errNoCompletion is returned when --link is used without an open wiki link
// before the cursor.
var errNoCompletion = errors.New("no wiki link to complete at cursor")

type editFlags struct {
	render    renderFlags
	cursorPos int
	keys      string
	link      string
	html      bool
	focus     bool
	write     bool
}

func newEditCommand(a *app) *cobra.Command {
	flags := &editFlags{}

	cmd := &cobra.Command{
		Use:   "edit [file]",
		Short: "Replay keystrokes against a document",
		Long: `Replay a key script against a markdown document and print the result.

Key scripts are literal text with named keys in braces: {enter}, {tab},
{shift+tab}, {backspace}, {delete}, {up}, {down}, {left}, {right},
{ctrl+left}, {ctrl+right}, {focus} and {blur}. Write {{ for a literal brace.

With --link, an open wiki link before the cursor ("[[que") is completed
to the given entry id after the keys are applied.

Examples:
  mdnote edit --keys "- one{enter}two{tab}"
  mdnote edit --cursor 0 --keys "# " note.md
  mdnote edit --keys "see [[al" --link alpha --html --focus`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runEdit(cmd, args, flags)
		},
	}

	cmd.Flags().IntVar(&flags.cursorPos, "cursor", -1, "starting cursor byte offset; negative means end of document")
	cmd.Flags().StringVarP(&flags.keys, "keys", "k", "", "key script to replay")
	cmd.Flags().StringVar(&flags.link, "link", "", "complete the wiki link at the cursor to this entry id")
	cmd.Flags().BoolVar(&flags.html, "html", false, "print rendered HTML instead of text")
	cmd.Flags().BoolVar(&flags.focus, "focus", false, "start with the editor focused")
	cmd.Flags().BoolVarP(&flags.write, "write", "w", false, "write the edited text back to the file")
	flags.render.register(cmd)

	return cmd
}

func (a *app) runEdit(cmd *cobra.Command, args []string, flags *editFlags) error {
	ctx := cmd.Context()
	path := argOrStdin(args)
	if flags.write && path == stdinName {
		return errWriteNeedsFiles
	}

	keys, err := editor.ParseKeys(flags.keys)
	if err != nil {
		return err
	}

	text, src, err := readInput(ctx, cmd, path)
	if err != nil {
		return err
	}

	opts, err := a.renderOptions(ctx, cmd, &flags.render)
	if err != nil {
		return err
	}

	state := editor.NewState(text)
	if flags.cursorPos >= 0 {
		state = state.SetCursor(flags.cursorPos)
	}
	if flags.focus {
		state = state.Focus()
	}

	ed := editor.New(state, logging.FromContext(ctx))
	ctx = logging.With(ctx, logging.FieldSession, ed.ID())
	logger := logging.FromContext(ctx)
	logger.Debug("replaying keys", logging.FieldKeys, len(keys))
	ed.Dispatch(keys...)

	if flags.link != "" && !ed.Complete(flags.link) {
		return errNoCompletion
	}

	result := ed.State()
	if flags.write {
		if _, err := fsutil.Replace(ctx, src, result.Text()); err != nil {
			return err
		}
		logger.Info("saved", logging.FieldPath, path, logging.FieldCursor, result.Cursor)
		return nil
	}

	if flags.html {
		fmt.Fprintln(cmd.OutOrStdout(), ed.HTML(opts))
		return nil
	}
	fmt.Fprint(cmd.OutOrStdout(), result.Text())
	return nil
}
