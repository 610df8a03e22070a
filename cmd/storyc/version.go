package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/storylang/storyc/lang/compiler"
)

// Version is the CLI version, overridable at build time via -ldflags.
var Version = "0.1.0-dev"

var versionColor = color.New(color.FgGreen, color.Bold)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "storyc %s (artifact format %s)\n",
			versionColor.Sprint(Version), compiler.FormatVersion)
	},
}
