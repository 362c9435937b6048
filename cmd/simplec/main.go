package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "simplec",
		Short: "SimpleC compiler front-end",
		Long: `simplec is the compiler front-end for SimpleC, a small C-like teaching
language. It lexes, parses, and semantically analyzes a source file, reporting
every fault it can recover from in a single pass.`,
	}

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(compileCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
