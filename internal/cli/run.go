package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"github.com/GriffinCanCode/pointproc/internal/config"
	"github.com/GriffinCanCode/pointproc/internal/monitoring"
	"github.com/GriffinCanCode/pointproc/internal/pipeline"
	"github.com/GriffinCanCode/pointproc/internal/report"
)

// ErrCheckFailed is returned with --strict when a measure falls outside tolerance.
var ErrCheckFailed = errors.New("irregularity check failed")

type runOptions struct {
	strict      bool
	showMetrics bool
}

func newRunCommand(cfg *config.Config) *cobra.Command {
	opts := &runOptions{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Generate a Poisson stream and report its irregularity",
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := report.ParseFormat(cfg.Output.Format)
			if err != nil {
				return err
			}
			logger, err := newLogger(cfg)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			defer func() { _ = logger.Sync() }()

			reg := prometheus.NewRegistry()
			runner := pipeline.NewRunner(logger, monitoring.NewMetrics(reg))

			rep, err := runner.Run(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			return finish(cmd, rep, format, reg, opts)
		},
	}

	addGeneratorFlags(cmd, cfg)
	addAnalysisFlags(cmd, cfg)
	addRunFlags(cmd, opts)
	return cmd
}

func addRunFlags(cmd *cobra.Command, opts *runOptions) {
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "exit non-zero when any measure is outside tolerance")
	cmd.Flags().BoolVar(&opts.showMetrics, "metrics", false, "print Prometheus metrics to stderr")
}

func finish(cmd *cobra.Command, rep *report.Report, format report.Format, reg *prometheus.Registry, opts *runOptions) error {
	if err := report.Write(cmd.OutOrStdout(), rep, format); err != nil {
		return err
	}
	if opts.showMetrics {
		if err := writeMetrics(cmd.ErrOrStderr(), reg); err != nil {
			return err
		}
	}
	if opts.strict && !rep.Pass {
		return ErrCheckFailed
	}
	return nil
}

func writeMetrics(w io.Writer, reg *prometheus.Registry) error {
	families, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
