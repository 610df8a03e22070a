package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/storylang/storyc"
	"github.com/storylang/storyc/execution/story"
)

var (
	flagFormat string
	flagOutput string
)

var compileCmd = &cobra.Command{
	Use:   "compile <file>",
	Short: "Compile a story to a structured artifact",
	Args:  cobra.ExactArgs(1),
	RunE:  runCompile,
}

func init() {
	compileCmd.Flags().StringVar(&flagFormat, "format", "json", "artifact encoding: json|msgpack")
	compileCmd.Flags().StringVarP(&flagOutput, "output", "o", "-", "output file, - for stdout")
}

func runCompile(cmd *cobra.Command, args []string) error {
	artifact, err := storyc.Process(cmd.Context(), args[0], storyOptions()...)
	if err != nil {
		return err
	}

	var encoded []byte
	switch flagFormat {
	case "json":
		encoded, err = json.MarshalIndent(artifact.GetProgram(), "", "  ")
		if err == nil {
			encoded = append(encoded, '\n')
		}
	case "msgpack":
		encoded, err = msgpack.Marshal(artifact.GetProgram())
	default:
		return fmt.Errorf("unknown format %q (want json or msgpack)", flagFormat)
	}
	if err != nil {
		return fmt.Errorf("failed to encode artifact: %w", err)
	}

	if flagOutput == "-" || flagOutput == "" {
		_, err = os.Stdout.Write(encoded)
		return err
	}
	return os.WriteFile(flagOutput, encoded, 0o644)
}

// storyOptions translates CLI flags into story options. Without --debug the
// default terminating policy renders the diagnostic and exits, so RunE only
// sees pre-document errors (e.g. a missing file).
func storyOptions() []story.FunctionalOption {
	if flagDebug {
		return []story.FunctionalOption{story.WithDebug()}
	}
	return nil
}
