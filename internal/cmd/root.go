// Package cmd implements the lineq-generator command line.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	logLevel  string
	logFormat string

	logger = slog.New(slog.DiscardHandler)
)

var rootCmd = &cobra.Command{
	Use:   "lineq-generator",
	Short: "Generate inverse functions for single-variable arithmetic expressions",
	Long: `lineq-generator solves expressions such as "a / 2 + 2" for one variable and
generates Go methods computing that variable back from the result.

Inversions come from a YAML/TOML manifest or from //lineq:invert directives
on type declarations:

	//lineq:invert "a / 2 + 2" type=int
	type HalfPlusTwo struct{}

Examples:
  lineq-generator solve "a * 9 / 5 + 32" --eval 212
  lineq-generator check -m inversions.yaml
  lineq-generator gen -m inversions.yaml -o ./generated
  lineq-generator scan ./...`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		logger = newLogger(cmd.ErrOrStderr(), logLevel, logFormat)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format (text, json)")
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	err := rootCmd.Execute()
	if err == nil {
		return 0
	}

	if code, ok := IsSilentExit(err); ok {
		return code
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", err)

	return 1
}
