package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/extracto-dev/extracto/internal/advisor"
	"github.com/extracto-dev/extracto/internal/config"
	"github.com/extracto-dev/extracto/internal/model"
	"github.com/extracto-dev/extracto/internal/report"
)

// adviser is the completion surface the analyze pipeline needs.
type adviser interface {
	Advise(ctx context.Context, rows []model.SummaryRow, monthlyIncome int64) (string, error)
}

func newAnalyzeCommand() *cobra.Command {
	var cleanOut string
	var summaryOut string
	var reportOut string
	var modelName string

	cmd := &cobra.Command{
		Use:   "analyze <statement.xlsx>",
		Short: "Run the full pipeline and produce an advice report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if err := cfg.ValidateForAnalyze(); err != nil {
				return err
			}
			if cleanOut == "" {
				cleanOut = cfg.CleanPath
			}
			if summaryOut == "" {
				summaryOut = cfg.SummaryPath
			}
			if reportOut == "" {
				reportOut = cfg.ReportPath
			}
			if modelName == "" {
				modelName = cfg.Model
			}

			input, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			ctx := cmd.Context()
			adv, err := advisor.New(ctx, cfg.GeminiAPIKey, modelName)
			if err != nil {
				return err
			}
			defer adv.Close()

			return runAnalyze(ctx, input, cleanOut, summaryOut, reportOut,
				cfg.MonthlyIncome, adv, cmd.OutOrStdout(), slog.Default())
		},
	}

	cmd.Flags().StringVar(&cleanOut, "clean-out", "", "cleaned transactions output path")
	cmd.Flags().StringVar(&summaryOut, "summary-out", "", "grouped summary output path")
	cmd.Flags().StringVar(&reportOut, "report-out", "", "PDF report output path")
	cmd.Flags().StringVar(&modelName, "model", "", "completion model id")

	return cmd
}

// runAnalyze runs the extraction pipeline, asks the advisor for a plan,
// prints the advice, and renders it as a PDF. A pipeline run that found no
// tables short-circuits before any collaborator is called.
func runAnalyze(ctx context.Context, input, cleanOut, summaryOut, reportOut string,
	monthlyIncome int64, adv adviser, out io.Writer, logger *slog.Logger) error {

	res, err := runPipeline(input, cleanOut, summaryOut, logger)
	if err != nil {
		return err
	}
	if res == nil {
		return nil
	}

	advice, err := adv.Advise(ctx, res.summary, monthlyIncome)
	if err != nil {
		return err
	}
	logger.Info("advice received", slog.Int("chars", len(advice)))
	fmt.Fprintln(out, advice)

	if err := report.Render(advice, reportOut); err != nil {
		return err
	}
	logger.Info("report written", slog.String("path", reportOut))
	return nil
}
