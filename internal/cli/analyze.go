package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/GriffinCanCode/pointproc/internal/config"
	"github.com/GriffinCanCode/pointproc/internal/monitoring"
	"github.com/GriffinCanCode/pointproc/internal/pipeline"
	"github.com/GriffinCanCode/pointproc/internal/report"
)

func newAnalyzeCommand(cfg *config.Config) *cobra.Command {
	opts := &runOptions{}
	var from, to float64

	cmd := &cobra.Command{
		Use:   "analyze <stream-file>",
		Short: "Report the irregularity of a previously generated stream",
		Long: `Reads a stream written by "pointproc generate". The input encoding is taken
from the file extension (.json, .yaml, .yml, .toml). --from and --to restrict
the analysis to [from, to) of the stream; --to defaults to the horizon.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := report.ParseFormat(cfg.Output.Format)
			if err != nil {
				return err
			}
			inFormat, err := report.ParseFormat(strings.TrimPrefix(filepath.Ext(args[0]), "."))
			if err != nil {
				return err
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read stream: %w", err)
			}
			var dump report.StreamDump
			if err := report.Unmarshal(data, &dump, inFormat); err != nil {
				return err
			}
			stream, err := dump.Stream()
			if err != nil {
				return err
			}

			if from != 0 || to != 0 {
				stop := to
				if stop == 0 {
					stop = stream.Horizon()
				}
				if stream, err = stream.Clip(from, stop); err != nil {
					return err
				}
			}

			logger, err := newLogger(cfg)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			defer func() { _ = logger.Sync() }()

			reg := prometheus.NewRegistry()
			rep, err := pipeline.NewRunner(logger, monitoring.NewMetrics(reg)).Analyze(cfg, stream, dump.Generator)
			if err != nil {
				return err
			}
			return finish(cmd, rep, format, reg, opts)
		},
	}

	addAnalysisFlags(cmd, cfg)
	addRunFlags(cmd, opts)
	cmd.Flags().Float64Var(&from, "from", 0, "start of the analysed range")
	cmd.Flags().Float64Var(&to, "to", 0, "end of the analysed range (default: horizon)")
	return cmd
}
