package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdnote/internal/logging"
	"github.com/yaklabco/mdnote/internal/ui/pretty"
	"github.com/yaklabco/mdnote/pkg/parser"
)

func newTokensCommand(a *app) *cobra.Command {
	var inline bool

	cmd := &cobra.Command{
		Use:   "tokens [file]",
		Short: "Print the token stream of a document",
		Long: `Print the tokens produced for a markdown document as a table of byte
ranges, token kinds, and raw source text.

Reads standard input when no file is given. With --inline the input is
tokenized as inline content only.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, _, err := readInput(cmd.Context(), cmd, argOrStdin(args))
			if err != nil {
				return err
			}

			tokens := parser.Tokenize(text)
			if inline {
				tokens = parser.TokenizeInline(text)
			}
			logging.FromContext(cmd.Context()).Debug("tokenized", logging.FieldBytes, len(text), logging.FieldTokens, len(tokens))

			out := cmd.OutOrStdout()
			styles := pretty.NewStyles(pretty.IsColorEnabled(string(a.cfg.Color), out))
			table := pretty.NewTokenTable(styles, pretty.TerminalWidth(out))
			fmt.Fprint(out, table.Format(tokens))
			return nil
		},
	}

	cmd.Flags().BoolVar(&inline, "inline", false, "tokenize as inline content")

	return cmd
}
