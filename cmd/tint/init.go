package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/tint/pkg/tint"
)

var initName string

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init [file]",
	Short: "Create an empty project",
	Long:  `Create an empty project file. The format follows the extension: .yaml, .yml or .json. Defaults to --project.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := projectPath
		if len(args) == 1 {
			path = args[0]
		}

		s, err := tint.Create(path, initName, sessionOptions(cmd)...)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Initialized empty project %q in %s\n", s.Project.Name, path)
		return nil
	},
}

func init() {
	initCmd.Flags().StringVar(&initName, "name", "", "Project name (defaults to the file name)")
	rootCmd.AddCommand(initCmd)
}
