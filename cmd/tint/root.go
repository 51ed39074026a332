package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/tint/pkg/tint"
)

const (
	envProject   = "TINT_PROJECT"
	envClipboard = "TINT_CLIPBOARD"
)

var (
	verbose     bool
	projectPath string
	assumeYes   bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tint",
	Short: "Background colors for the groups and layers of a project tree",
	Long: `Tint tags nodes of a layer tree with a background color, warns when the
color leaves black labels hard to read (WCAG AA, 4.5:1), and keeps the colors
in the project file keyed by node identity.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func defaultProject() string {
	if p := os.Getenv(envProject); p != "" {
		return p
	}
	return "project.yaml"
}

// openSession loads the project named by --project with the terminal
// prompter attached.
func openSession(cmd *cobra.Command, opts ...tint.Option) (*tint.Session, error) {
	return tint.Open(projectPath, append(sessionOptions(cmd), opts...)...)
}

func sessionOptions(cmd *cobra.Command) []tint.Option {
	opts := []tint.Option{
		tint.WithLogger(slog.Default()),
		tint.WithPrompter(newTerminalPrompter(cmd.InOrStdin(), cmd.ErrOrStderr(), assumeYes)),
	}
	if p := os.Getenv(envClipboard); p != "" {
		opts = append(opts, tint.WithClipboardPath(p))
	}
	return opts
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&projectPath, "project", "p", defaultProject(), "Project file (.yaml, .yml or .json), $"+envProject)
	rootCmd.PersistentFlags().BoolVarP(&assumeYes, "yes", "y", false, "Apply low contrast colors without asking")
}
