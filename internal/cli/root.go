package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "metaqa",
	Short: "Schema-driven metadata quality evaluation",
	Long: `metaqa measures the quality of research metadata records against
declarative schemas: how complete they are per requirement tier, whether
records or their nested elements are duplicated, and whether the values a
record cites agree with the record they point to.

Sources, schemas and quality gates are configured in metaqa.yaml.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration
  11 - Input file missing, unreadable or in an unsupported format
  12 - Schema missing or malformed
  13 - Quality gate failed (findings at or above --fail-on)
  15 - Internal invariant violated`,
	SilenceUsage: true,
}

// Execute runs the root command. An interrupt cancels the running
// evaluation.
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo(os.Stdout)
		return nil
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
