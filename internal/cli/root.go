// Package cli implements the pharmkit command tree.
package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pharmkit/pharmkit/internal/config"
	"github.com/pharmkit/pharmkit/internal/logging"
)

// app carries the dependencies initialized by the root command's
// PersistentPreRunE through to the subcommands.
type app struct {
	cfg *config.Config
	log *zap.Logger
}

// NewRootCommand creates the pharmkit root command with global flags and
// all subcommands registered.
func NewRootCommand() *cobra.Command {
	var (
		configPath string
		logLevel   string
	)
	a := &app{}

	cmd := &cobra.Command{
		Use:   "pharmkit",
		Short: "Pharmacophore model generation and consensus reduction",
		Long: "pharmkit drives the pharmit tool to generate pharmacophore models for\n" +
			"ligand/receptor complexes, computes consensus pharmacophores from the\n" +
			"resulting feature points, and exports results as JSON and PyMOL scripts.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if logLevel != "" {
				cfg.Log.Level = logLevel
				if err := cfg.Validate(); err != nil {
					return err
				}
			}
			logger, err := logging.New(cfg.Log.Level)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.log = logger
			return nil
		},
		SilenceUsage: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&configPath, "config", "c", "", "config file path (YAML, optional)")
	pf.StringVar(&logLevel, "log-level", "", "log level override (debug, info, warn, error)")

	cmd.AddCommand(
		newGenerateCommand(a),
		newConsensusCommand(a),
		newExportCommand(a),
	)
	return cmd
}

// Execute runs the CLI.
func Execute() error {
	return NewRootCommand().Execute()
}
