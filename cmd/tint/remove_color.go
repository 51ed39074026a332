package main

import (
	"github.com/spf13/cobra"
)

var removeMatch string

// removeColorCmd represents the remove-color command
var removeColorCmd = &cobra.Command{
	Use:   "remove-color [ids...]",
	Short: "Remove the background color of the selected nodes",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd)
		if err != nil {
			return err
		}

		nodes, err := s.Select(args, removeMatch)
		if err != nil {
			return err
		}

		out, err := s.Controller.RemoveBackgroundColor(cmd.Context(), nodes)
		if err != nil {
			return err
		}
		return commit(cmd, s, out, "removed")
	},
}

func init() {
	selectionFlags(removeColorCmd, &removeMatch)
	rootCmd.AddCommand(removeColorCmd)
}
