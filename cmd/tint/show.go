package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/tint/pkg/tint"
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the tree with its colors",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd, tint.WithReadOnly(true))
		if err != nil {
			return err
		}
		return s.Render(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
