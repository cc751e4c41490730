package commands

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/extracto-dev/extracto/internal/config"
)

func newCleanCommand() *cobra.Command {
	var cleanOut string
	var summaryOut string

	cmd := &cobra.Command{
		Use:   "clean <statement.xlsx>",
		Short: "Extract and normalize the statement's transaction tables",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cleanOut == "" {
				cleanOut = cfg.CleanPath
			}
			if summaryOut == "" {
				summaryOut = cfg.SummaryPath
			}

			input, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			_, err = runPipeline(input, cleanOut, summaryOut, slog.Default())
			return err
		},
	}

	cmd.Flags().StringVar(&cleanOut, "clean-out", "", "cleaned transactions output path")
	cmd.Flags().StringVar(&summaryOut, "summary-out", "", "grouped summary output path")

	return cmd
}
