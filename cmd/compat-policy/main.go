package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// mainify adapts an entry point that returns an error into a Cobra entry
// point, so that deferred cleanup in the entry point still runs on failure.
func mainify(entry func(*cobra.Command, []string) error) func(*cobra.Command, []string) {
	return func(command *cobra.Command, arguments []string) {
		if err := entry(command, arguments); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
	}
}

var rootCommand = &cobra.Command{
	Use:   "compat-policy",
	Short: "Inspect the syscall compatibility shim's policy table",
	Run: func(command *cobra.Command, arguments []string) {
		command.Help()
	},
	SilenceUsage: true,
}

func init() {
	rootCommand.AddCommand(
		tableCommand,
		callCommand,
		hostCommand,
	)
}

func main() {
	if err := rootCommand.Execute(); err != nil {
		os.Exit(1)
	}
}
