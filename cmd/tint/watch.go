package main

import (
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aretw0/tint/pkg/core"
	"github.com/aretw0/tint/pkg/tint"
)

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Print the tree again every time the project file changes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		s, err := openSession(cmd, tint.WithReadOnly(true))
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		if err := s.Render(w); err != nil {
			return err
		}

		watcher, err := s.Watch(ctx, func(report core.LoadReport) {
			fmt.Fprintf(w, "\n-- %s reloaded: %d color(s), %d stale --\n", s.Project.Path, report.Restored, report.Stale)
			if err := s.Render(w); err != nil {
				slog.Error("render failed", "error", err)
			}
		})
		if err != nil {
			return err
		}

		slog.Info("watching project", "path", s.Project.Path)
		<-watcher.Done()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
