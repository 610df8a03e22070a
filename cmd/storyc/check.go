package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/storylang/storyc"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Parse a story without compiling it",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	s, err := storyc.FromFile(args[0], storyOptions()...)
	if err != nil {
		return err
	}
	if err := s.Parse(cmd.Context()); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: syntax ok\n", args[0])
	return nil
}
