package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/storylang/storyc"
)

var modulesCmd = &cobra.Command{
	Use:   "modules <file>",
	Short: "List the modules a story imports, one per line",
	Args:  cobra.ExactArgs(1),
	RunE:  runModules,
}

func runModules(cmd *cobra.Command, args []string) error {
	s, err := storyc.FromFile(args[0], storyOptions()...)
	if err != nil {
		return err
	}
	if err := s.Parse(cmd.Context()); err != nil {
		return err
	}

	modules, err := s.Modules()
	if err != nil {
		return err
	}
	for _, module := range modules {
		fmt.Fprintln(cmd.OutOrStdout(), module)
	}
	return nil
}
