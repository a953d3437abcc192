package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/GriffinCanCode/pointproc/internal/config"
	"github.com/GriffinCanCode/pointproc/internal/pipeline"
	"github.com/GriffinCanCode/pointproc/internal/report"
)

func newGenerateCommand(cfg *config.Config) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a Poisson stream and write its events",
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

			stream, err := pipeline.NewRunner(logger, nil).Generate(cmd.Context(), cfg, nil)
			if err != nil {
				return err
			}

			data, err := report.Marshal(report.Dump(stream, pipeline.GeneratorParams(cfg)), format)
			if err != nil {
				return err
			}
			if output == "" || output == "-" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			return os.WriteFile(output, data, 0o644)
		},
	}

	addGeneratorFlags(cmd, cfg)
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")
	return cmd
}
