package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/tint/pkg/core"
)

// rmCmd represents the rm command
var rmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Remove a node and everything under it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd)
		if err != nil {
			return err
		}

		removed, err := s.RemoveNode(core.NodeID(args[0]))
		if err != nil {
			return err
		}
		if err := s.Save(); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Removed %d node(s)\n", len(removed))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rmCmd)
}
