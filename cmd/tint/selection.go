package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/tint/pkg/core"
	"github.com/aretw0/tint/pkg/tint"
)

// selectionFlags adds --match to a command taking node ids as arguments.
func selectionFlags(cmd *cobra.Command, match *string) {
	cmd.Flags().StringVarP(match, "match", "m", "", `Also select nodes whose path matches a glob, e.g. "Roads/**"`)
}

// commit saves the project when the outcome changed something and reports it.
func commit(cmd *cobra.Command, s *tint.Session, out core.Outcome, verb string) error {
	w := cmd.OutOrStdout()
	if out.Cancelled {
		fmt.Fprintln(w, "Color not applied")
		return nil
	}
	if len(out.Applied) == 0 {
		fmt.Fprintln(w, "Nothing to change")
		return nil
	}

	if err := s.Save(); err != nil {
		return err
	}

	if verb == "removed" {
		fmt.Fprintf(w, "Color removed from %d node(s)\n", len(out.Applied))
		return nil
	}
	fmt.Fprintf(w, "Color %s %s to %d node(s) (%.2f:1, %s)\n", out.Color.Hex(), verb, len(out.Applied), out.Ratio, out.Verdict)
	return nil
}
