package cli

import (
	"context"
	"errors"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/yaklabco/mdnote/internal/configloader"
	"github.com/yaklabco/mdnote/internal/logging"
	"github.com/yaklabco/mdnote/internal/ui/pretty"
	"github.com/yaklabco/mdnote/pkg/config"
	"github.com/yaklabco/mdnote/pkg/mdast"
)

// setup resolves configuration and the logger before a subcommand runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	level := "info"
	if a.flags.debug {
		level = "debug"
	}
	a.logger = logging.NewWithWriter(cmd.ErrOrStderr(), level)

	if cmd.Annotations[annotationNoConfig] == "" {
		if err := a.loadConfig(ctx, cmd); err != nil {
			return err
		}
	}

	mdast.SetCycleHook(cycleReporter(a.logger))
	cmd.SetContext(logging.WithLogger(ctx, a.logger))
	return nil
}

func (a *app) loadConfig(ctx context.Context, cmd *cobra.Command) error {
	cli := &config.Config{}
	if a.flags.debug {
		cli.LogLevel = "debug"
	}
	if cmd.Flags().Changed("color") {
		cli.Color = config.ColorMode(a.flags.color)
	}

	result, err := configloader.Load(ctx, configloader.LoadOptions{
		ExplicitPath:        a.flags.configPath,
		IgnoreUserConfig:    a.flags.isolated,
		IgnoreProjectConfig: a.flags.isolated,
		IgnoreEnv:           a.flags.isolated,
		CLIConfig:           cli,
	})
	if err != nil {
		return errors.Join(errors.New("failed to load configuration"), err)
	}

	a.cfg = result.Config
	a.logger.SetLevel(logging.ParseLevel(a.cfg.LogLevel))

	for _, warning := range result.Warnings {
		a.logger.Warn(warning)
	}
	if len(result.LoadedFrom) > 0 {
		a.logger.Debug("loaded configuration", logging.FieldFiles, result.LoadedFrom)
	}
	a.logger.Debug("configuration resolved",
		logging.FieldLevel, a.cfg.LogLevel,
		logging.FieldTitles, a.cfg.TitlesFile,
	)
	return nil
}

// styles returns output styles for the resolved color mode.
func (a *app) styles(cmd *cobra.Command) *pretty.Styles {
	return pretty.NewStyles(pretty.IsColorEnabled(string(a.cfg.Color), cmd.ErrOrStderr()))
}

// cycleReporter logs parent-chain cycles detected while walking a tree.
func cycleReporter(logger *log.Logger) mdast.CycleHook {
	return func(kind mdast.NodeKind, depth int) {
		logger.Warn("ancestor walk aborted",
			logging.FieldNodeKind, kind.String(),
			logging.FieldDepth, depth,
		)
	}
}
