package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/tint/pkg/core"
)

var pasteMatch string

// pasteCmd represents the paste command
var pasteCmd = &cobra.Command{
	Use:   "paste [ids...]",
	Short: "Apply the copied color to the selected nodes",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd)
		if err != nil {
			return err
		}

		nodes, err := s.Select(args, pasteMatch)
		if err != nil {
			return err
		}

		out, err := s.Controller.PasteHighlightColor(cmd.Context(), nodes)
		if errors.Is(err, core.ErrClipboardEmpty) {
			fmt.Fprintln(cmd.ErrOrStderr(), "No color available on the clipboard to paste")
			return nil
		}
		if err != nil {
			return err
		}
		return commit(cmd, s, out, "pasted")
	},
}

func init() {
	selectionFlags(pasteCmd, &pasteMatch)
	rootCmd.AddCommand(pasteCmd)
}
