package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/tint/pkg/core"
	"github.com/aretw0/tint/pkg/tree"
)

var addParent string

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:       "add group|layer <name>",
	Short:     "Add a group or a layer to the tree",
	Long:      `Add a group or a layer under --parent (top level by default) and print its id.`,
	Args:      cobra.ExactArgs(2),
	ValidArgs: []string{string(tree.KindGroup), string(tree.KindLayer)},
	RunE: func(cmd *cobra.Command, args []string) error {
		kind := tree.Kind(args[0])
		if kind != tree.KindGroup && kind != tree.KindLayer {
			return fmt.Errorf("unknown node kind %q, want group or layer", args[0])
		}

		s, err := openSession(cmd)
		if err != nil {
			return err
		}

		n, err := s.AddNode(kind, core.NodeID(addParent), args[1])
		if err != nil {
			return err
		}
		if err := s.Save(); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), n.ID)
		return nil
	},
}

func init() {
	addCmd.Flags().StringVar(&addParent, "parent", "", "Parent group id")
	rootCmd.AddCommand(addCmd)
}
