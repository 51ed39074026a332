package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/tint/pkg/tint"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of tint",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "tint version %s\n", tint.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
