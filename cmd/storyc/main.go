package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var flagDebug bool

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "storyc",
	Short:         "Compile story scripts into structured artifacts",
	Long:          "storyc strips comments, parses and compiles story scripts, reporting failures with precise source locations.",
	SilenceErrors: true,
	SilenceUsage:  true,
	// No Run — prints help by default.
}

func init() {
	rootCmd.PersistentFlags().
		BoolVar(&flagDebug, "debug", false, "propagate raw failures instead of rendering diagnostics")

	rootCmd.AddCommand(compileCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(modulesCmd)
	rootCmd.AddCommand(lexCmd)
	rootCmd.AddCommand(versionCmd)
}
