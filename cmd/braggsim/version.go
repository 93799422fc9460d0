package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is stamped by the release workflow via -ldflags.
var version = "0.1.0-dev"

// versionCmd implements the version command.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of braggsim",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "braggsim version %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
