package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/GriffinCanCode/pointproc/internal/config"
	"github.com/GriffinCanCode/pointproc/internal/logging"
)

var (
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"
)

// SetVersionInfo sets the version information injected via ldflags.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

// NewRootCommand builds the pointproc command tree on top of cfg.
func NewRootCommand(cfg *config.Config) *cobra.Command {
	root := &cobra.Command{
		Use:   "pointproc",
		Short: "Generate Poisson spike trains and measure their irregularity",
		Long: `pointproc draws synthetic Poisson point processes, merges them into one
time-ordered event stream and reports the local variation (LV), Fano factor
and ISI coefficient of variation of every process. All three measures are
close to 1 for a Poisson process.

Configuration comes from POINTPROC_* environment variables; flags override them.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&cfg.Output.Format, "format", cfg.Output.Format, "output format: json, yaml or toml")
	root.PersistentFlags().StringVar(&cfg.Logging.Level, "log-level", cfg.Logging.Level, "log level")
	root.PersistentFlags().BoolVar(&cfg.Logging.Development, "dev", cfg.Logging.Development, "colored debug logging")

	root.AddCommand(
		newRunCommand(cfg),
		newGenerateCommand(cfg),
		newAnalyzeCommand(cfg),
		newVersionCommand(),
	)
	return root
}

// Execute loads configuration and runs the root command.
func Execute() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	return NewRootCommand(cfg).Execute()
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "pointproc %s\ncommit: %s\nbuilt:  %s\n", appVersion, appCommit, appDate)
		},
	}
}

func newLogger(cfg *config.Config) (*logging.Logger, error) {
	base := logging.DefaultConfig()
	if cfg.Logging.Development {
		base = logging.DevelopmentConfig()
	}
	base.Level = cfg.Logging.Level
	return logging.New(base)
}

func addGeneratorFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	flags.Uint64Var(&cfg.Generator.Seed, "seed", cfg.Generator.Seed, "random seed")
	flags.IntVar(&cfg.Generator.Processes, "processes", cfg.Generator.Processes, "number of processes")
	flags.IntVar(&cfg.Generator.EventsPerTrain, "events", cfg.Generator.EventsPerTrain, "events drawn per process before truncation")
	flags.Float64Var(&cfg.Generator.Rate, "rate", cfg.Generator.Rate, "event rate per process")
	flags.Float64Var(&cfg.Generator.HorizonPadding, "padding", cfg.Generator.HorizonPadding, "gap between the last event and the horizon")
}

func addAnalysisFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	flags.Float64Var(&cfg.Analysis.Window, "window", cfg.Analysis.Window, "Fano factor window width")
	flags.Float64Var(&cfg.Analysis.Tolerance, "tolerance", cfg.Analysis.Tolerance, "allowed per-process distance from 1")
}
