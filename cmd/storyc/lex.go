package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/storylang/storyc"
)

var lexCmd = &cobra.Command{
	Use:   "lex <file>",
	Short: "Dump the lexical tokens of a story",
	Long:  "Tokenizes the comment-stripped source and prints one token per line as line:column type value. Positions are 1-based.",
	Args:  cobra.ExactArgs(1),
	RunE:  runLex,
}

func runLex(cmd *cobra.Command, args []string) error {
	s, err := storyc.FromFile(args[0], storyOptions()...)
	if err != nil {
		return err
	}

	for token, err := range s.Tokens() {
		if err != nil {
			return err
		}
		value := token.Value
		if token.Type == "EOL" {
			value = `\n`
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d:%d\t%s\t%s\n",
			token.Line+1, token.Column+1, token.Type, value)
	}
	return nil
}
