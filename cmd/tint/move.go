package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/tint/pkg/core"
)

var (
	moveParent string
	moveIndex  int
)

// moveCmd represents the move command
var moveCmd = &cobra.Command{
	Use:   "move <id>",
	Short: "Move a node to another group or position",
	Long:  `Move a node under --parent (top level by default) at --index (appended by default). Its color moves with it.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd)
		if err != nil {
			return err
		}

		id := core.NodeID(args[0])
		if err := s.Move(id, core.NodeID(moveParent), moveIndex); err != nil {
			return err
		}
		if err := s.Save(); err != nil {
			return err
		}

		path, _ := s.Project.Tree.Path(id)
		fmt.Fprintf(cmd.OutOrStdout(), "Moved %s to %s\n", id, path)
		return nil
	},
}

func init() {
	moveCmd.Flags().StringVar(&moveParent, "parent", "", "New parent group id")
	moveCmd.Flags().IntVar(&moveIndex, "index", -1, "Position among the new siblings")
	rootCmd.AddCommand(moveCmd)
}
