// Command subdays compares calendar-day subtraction on time.Time with an
// in-place subtract on a mutable date wrapper.
//
// Usage:
//
//	go run ./cmd/subdays run --benchtime 500ms --count 3
//	go run ./cmd/subdays run --config subdays.toml --format json
//	go run ./cmd/subdays config > subdays.toml
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/randomizedcoder/subdays-benchmarks/internal/config"
)

// Version of subdays
const Version = "0.1"

var rootCmd = &cobra.Command{
	Use:           "subdays",
	Short:         "Benchmark subtracting days from a date",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), Version)
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default config as TOML",
	RunE: func(cmd *cobra.Command, args []string) error {
		return config.PrintConfig(cmd.OutOrStdout(), config.NewConfig())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(newRunCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "subdays: %v\n", err)
		os.Exit(1)
	}
}
