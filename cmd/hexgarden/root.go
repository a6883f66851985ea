package main

import (
	"log/slog"

	"github.com/chazu/hexgarden/internal/ui"
	"github.com/chazu/hexgarden/pkg/config"
	"github.com/chazu/hexgarden/pkg/logging"
	"github.com/spf13/cobra"
)

var version = "0.3.0"

// cli carries the state shared by every subcommand once the root has run.
type cli struct {
	configPath string
	logLevel   string

	cfg      *config.Config
	log      *slog.Logger
	closeLog func()
}

func (c *cli) path() string {
	if c.configPath != "" {
		return c.configPath
	}
	return config.Path()
}

func (c *cli) load(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(c.path())
	if err != nil {
		return err
	}
	if c.logLevel != "" {
		cfg.Log.Level = c.logLevel
	}
	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	logger, closeLog, err := logging.Setup(cfg.Log.File, level)
	if err != nil {
		return err
	}
	c.cfg, c.log, c.closeLog = cfg, logger, closeLog
	return nil
}

func (c *cli) close(cmd *cobra.Command, args []string) {
	if c.closeLog != nil {
		c.closeLog()
	}
}

func newRootCmd() *cobra.Command {
	c := &cli{}
	root := &cobra.Command{
		Use:   "hexgarden",
		Short: "hexgarden: a hex canvas of functions that grow file trees",
		Long: ui.Brand.Sprint(ui.Hex+" hexgarden") + ": place, name and grow code on a hex board\n" +
			ui.Subtle.Sprint("Inspect grids, run scene scripts and simulate tree growth without a window"),
		Version:           version,
		SilenceUsage:      true,
		PersistentPreRunE: c.load,
		PersistentPostRun: c.close,
	}
	root.SetVersionTemplate("hexgarden {{ .Version }}\n")
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/hexgarden/config.toml)")
	root.PersistentFlags().StringVar(&c.logLevel, "log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(
		gridCmd(c),
		ringCmd(c),
		simulateCmd(c),
		scriptCmd(c),
		layoutCmd(c),
		configCmd(c),
	)
	return root
}
