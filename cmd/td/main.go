// Package main implements the td CLI, a terminal client for a remote
// task tracker.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "td",
	Short:         "taskdeck - a synced task tracker for the terminal",
	SilenceUsage:  true,
	SilenceErrors: false,
}
