package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/tint/pkg/core"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check <color>",
	Short: "Evaluate a color against black text",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := core.ParseColor(args[0])
		if err != nil {
			return err
		}

		ratio := core.ContrastRatio(c)
		fmt.Fprintf(cmd.OutOrStdout(), "%s luminance=%.4f ratio=%.2f:1 %s\n",
			c.Hex(), core.Luminance(c), ratio, core.Evaluate(c))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
