package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdnote/internal/configloader"
	"github.com/yaklabco/mdnote/internal/logging"
	"github.com/yaklabco/mdnote/pkg/config"
)

// ErrConfigExists is returned by init when the target file exists and
// --force was not given.
var ErrConfigExists = errors.New("configuration file already exists")

// initFlags holds the flags for the init command.
type initFlags struct {
	force      bool
	output     string
	titlesFile string
}

func newInitCommand(a *app) *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a default .mdnote.yml",
		Long: `Create a .mdnote.yml configuration file in the current directory with
the default settings.

Examples:
  mdnote init
  mdnote init --titles titles.yaml
  mdnote init --output custom.yml --force`,
		Annotations: map[string]string{annotationNoConfig: "true"},
		Args:        cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd.Context(), flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "overwrite an existing configuration file")
	cmd.Flags().StringVarP(&flags.output, "output", "o", configloader.ProjectConfigFile, "output file path")
	cmd.Flags().StringVar(&flags.titlesFile, "titles", "", "title map file to record in the configuration")

	return cmd
}

func runInit(ctx context.Context, flags *initFlags) error {
	logger := logging.FromContext(ctx)
	absPath, err := filepath.Abs(flags.output)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if _, err := os.Stat(absPath); err == nil {
		if !flags.force {
			return fmt.Errorf("%w: %s (use --force to overwrite)", ErrConfigExists, flags.output)
		}
		logger.Warn("overwriting existing file", logging.FieldPath, flags.output)
	}

	cfg := config.NewConfig()
	cfg.TitlesFile = flags.titlesFile

	if err := configloader.WriteConfig(cfg, absPath); err != nil {
		return err
	}

	logger.Info("created configuration file", logging.FieldPath, flags.output)
	return nil
}
