// Package cli provides the Cobra command structure for mdnote.
package cli

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/yaklabco/mdnote/pkg/config"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// annotationNoConfig marks commands that run without loading configuration.
const annotationNoConfig = "mdnote/no-config"

// globalFlags holds the persistent flags shared by every subcommand.
type globalFlags struct {
	debug      bool
	configPath string
	color      string
	isolated   bool
}

// app carries the state resolved once per invocation.
type app struct {
	flags  globalFlags
	cfg    *config.Config
	logger *log.Logger
}

// NewRootCommand creates the root mdnote command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	a := &app{cfg: config.NewConfig()}

	rootCmd := &cobra.Command{
		Use:   "mdnote",
		Short: "Cursor-aware markdown editing engine",
		Long: `mdnote parses, normalizes, and renders markdown notes.

It round-trips documents through a small markdown dialect with wiki links
([[entry-id]]), renders HTML with a cursor marker and visible syntax around
the cursor, and replays editor keystrokes against a document.`,
		PersistentPreRunE: a.setup,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	// Global flags.
	flags := rootCmd.PersistentFlags()
	flags.BoolVar(&a.flags.debug, "debug", false, "enable debug logging")
	flags.StringVar(&a.flags.configPath, "config", "", "path to config file")
	flags.StringVar(&a.flags.color, "color", "", "colorize output: auto, always, never")
	flags.BoolVar(&a.flags.isolated, "isolated", false,
		"ignore user and project config files and MDNOTE_* variables")

	rootCmd.AddCommand(newRenderCommand(a))
	rootCmd.AddCommand(newFmtCommand(a))
	rootCmd.AddCommand(newTokensCommand(a))
	rootCmd.AddCommand(newEditCommand(a))
	rootCmd.AddCommand(newInitCommand(a))
	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	NewHelpFormatter(a.flags.color, os.Stdout).ApplyToCommand(rootCmd)

	return rootCmd
}
