package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/tint/pkg/core"
)

var (
	setColor string
	setMatch string
)

// setCmd represents the set command
var setCmd = &cobra.Command{
	Use:   "set [ids...]",
	Short: "Set the background color of the selected nodes",
	Long: `Set the background color of every selected node. Without --color the
color is asked for, starting from the color of the first selected node that
has one. Colors below 4.5:1 against black text ask for confirmation first.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd)
		if err != nil {
			return err
		}

		nodes, err := s.Select(args, setMatch)
		if err != nil {
			return err
		}

		var out core.Outcome
		if setColor != "" {
			c, err := core.ParseColor(setColor)
			if err != nil {
				return err
			}
			out, err = s.Controller.SetBackgroundColor(cmd.Context(), nodes, c)
			if err != nil {
				return err
			}
		} else {
			out, err = s.Controller.PickBackgroundColor(cmd.Context(), nodes)
			if err != nil {
				return err
			}
		}
		return commit(cmd, s, out, "applied")
	},
}

func init() {
	setCmd.Flags().StringVarP(&setColor, "color", "c", "", "Color as #rrggbb or #rgb")
	selectionFlags(setCmd, &setMatch)
	rootCmd.AddCommand(setCmd)
}
