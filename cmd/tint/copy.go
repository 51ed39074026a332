package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/tint/pkg/core"
	"github.com/aretw0/tint/pkg/tint"
)

// copyCmd represents the copy command
var copyCmd = &cobra.Command{
	Use:   "copy <id>",
	Short: "Copy the background color of a node",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd, tint.WithReadOnly(true))
		if err != nil {
			return err
		}

		nodes, err := s.Select(args, "")
		if err != nil {
			return err
		}

		c, err := s.Copy(cmd.Context(), nodes)
		if errors.Is(err, core.ErrNoColorToCopy) {
			fmt.Fprintln(cmd.ErrOrStderr(), "No color assigned to the selected item")
			return nil
		}
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Color %s copied to the clipboard\n", c.Hex())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(copyCmd)
}
