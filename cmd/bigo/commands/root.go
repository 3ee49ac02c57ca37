// Package commands implements the bigo command line interface.
package commands

import (
	"log/slog"

	"github.com/spf13/cobra"
)

// app carries the state shared by all subcommands after flag parsing.
type app struct {
	configPath string
	logLevel   string
	cfg        Config
	logger     *slog.Logger
}

// NewRootCmd builds the bigo command tree.
func NewRootCmd(version string) *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "bigo",
		Short: "Infer the asymptotic complexity of measured observations",
		Long: `bigo fits eight growth models to (x, y) observations and reports
the complexity class that explains them best:

  O(1) < O(log n) < O(n) < O(n log n) < O(n^2) < O(n^3) < O(n^m) < O(c^n)

Observations are read from CSV, JSON or YAML files, optionally compressed
with zstd (.zst), S2 (.s2) or LZ4 (.lz4).`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}
	cmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "YAML configuration file")
	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")

	cmd.AddCommand(newInferCmd(a))
	cmd.AddCommand(newCatalogCmd(a))
	cmd.AddCommand(newCompareCmd())

	return cmd
}

func (a *app) init(cmd *cobra.Command) error {
	cfg := DefaultConfig()
	if a.configPath != "" {
		loaded, err := LoadConfig(a.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}

	logger, err := newLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logger
	a.logger.Debug("configuration loaded",
		slog.String("path", a.configPath),
		slog.Float64("tie_tolerance", cfg.TieTolerance),
		slog.Bool("strict", cfg.Strict),
		slog.Any("candidates", cfg.Candidates),
	)

	return nil
}
