package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdnote/internal/logging"
	"github.com/yaklabco/mdnote/pkg/mdast"
	"github.com/yaklabco/mdnote/pkg/parser"
	"github.com/yaklabco/mdnote/pkg/render"
	"github.com/yaklabco/mdnote/pkg/titles"
)

// renderFlags holds the flags shared by render and edit.
type renderFlags struct {
	wikiSlug   string
	titlesFile string
	noDetect   bool
}

func (f *renderFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.wikiSlug, "wiki-slug", "", "link wiki links to the public wiki of this site")
	cmd.Flags().StringVar(&f.titlesFile, "titles", "", "YAML file mapping entry ids to titles")
	cmd.Flags().BoolVar(&f.noDetect, "no-detect", false, "do not guess languages of untagged code blocks")
}

func newRenderCommand(a *app) *cobra.Command {
	flags := &renderFlags{}
	var cursorPos int

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render markdown to HTML",
		Long: `Render a markdown document to HTML.

Reads standard input when no file is given. With --cursor, the output
contains a cursor marker and the raw syntax of the constructs under the
cursor stays visible.

Examples:
  mdnote render note.md
  mdnote render --cursor 12 note.md
  mdnote render --titles titles.yaml --wiki-slug garden note.md`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, _, err := readInput(cmd.Context(), cmd, argOrStdin(args))
			if err != nil {
				return err
			}

			opts, err := a.renderOptions(cmd.Context(), cmd, flags)
			if err != nil {
				return err
			}

			doc := parser.Parse(text)
			reportUnresolved(cmd.Context(), doc, opts)

			fmt.Fprintln(cmd.OutOrStdout(), render.Render(doc, cursorPos, opts))
			return nil
		},
	}

	cmd.Flags().IntVar(&cursorPos, "cursor", -1, "cursor byte offset; negative renders without a cursor")
	flags.register(cmd)

	return cmd
}

// renderOptions builds render options from configuration and flags.
func (a *app) renderOptions(ctx context.Context, cmd *cobra.Command, flags *renderFlags) (render.Options, error) {
	rc := a.cfg.Render
	opts := render.Options{
		EntryRoute:               rc.EntryRoute,
		WikiRoute:                rc.WikiRoute,
		WikiSlug:                 rc.WikiSlug,
		DisableLanguageDetection: !rc.LanguageDetection() || flags.noDetect,
	}
	if cmd.Flags().Changed("wiki-slug") {
		opts.WikiSlug = flags.wikiSlug
	}

	titlesFile := a.cfg.TitlesFile
	if flags.titlesFile != "" {
		titlesFile = flags.titlesFile
	}
	if titlesFile == "" {
		return opts, nil
	}

	m, err := titles.LoadFile(ctx, titlesFile)
	if err != nil {
		return opts, err
	}
	logging.FromContext(ctx).Debug("loaded titles", logging.FieldPath, titlesFile, logging.FieldTitles, len(m))
	opts.Titles = m
	return opts, nil
}

// reportUnresolved warns about wiki links whose entry has no title.
func reportUnresolved(ctx context.Context, doc *mdast.Document, opts render.Options) {
	if opts.Titles == nil {
		return
	}

	links := mdast.WikiLinks(doc)
	ids := make([]string, 0, len(links))
	for _, link := range links {
		ids = append(ids, link.EntryID)
	}

	for _, id := range titles.Map(opts.Titles).Missing(ids) {
		logging.FromContext(ctx).Warn("unresolved wiki link", logging.FieldEntry, id)
	}
}
