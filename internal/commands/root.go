package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/extracto-dev/extracto/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "extracto",
		Short:   "Bank statement extraction and spending analysis",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newCleanCommand())
	rootCmd.AddCommand(newAnalyzeCommand())

	return rootCmd
}
