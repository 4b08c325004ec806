package main

import (
	"os"

	"github.com/lerenn/sur/cmd/sur/internal/cli"
	"github.com/lerenn/sur/pkg/fs"
	"github.com/spf13/cobra"
)

func createExploreCmd() *cobra.Command {
	var opts cli.ExploreOptions

	exploreCmd := &cobra.Command{
		Use:   "explore [--project-path <path>] [--source-root <path>] [--target <name>]",
		Short: "Report unused resources of an Xcode project",
		Long: `Load the project, walk the resources and sources of every native target and report ` +
			`the images and colors that are never used.

Flags:
  --project-path       Path to the .xcodeproj (default: the only one in the current directory)
  --source-root        Directory sur.yml and relative paths resolve against (default: project directory)
  --target             Explore only the target with this name
  --select-target      Choose the target to explore from a list
  --show-warnings      Print one warning per unused resource instead of a summary
  --continue-on-error  Report a failing target and explore the next one`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fsys := fs.NewFS()

			wd, err := os.Getwd()
			if err != nil {
				return err
			}
			opts.ProjectPath, err = cli.ResolveProjectPath(fsys, opts.ProjectPath, wd)
			if err != nil {
				return err
			}
			if opts.SourceRoot != "" {
				if opts.SourceRoot, err = fsys.ResolvePath(wd, opts.SourceRoot); err != nil {
					return err
				}
			}

			e, err := cli.NewExplorer(fsys, opts)
			if err != nil {
				return err
			}

			// Failed targets were already reported under --continue-on-error.
			if _, err := e.Explore(cmd.Context()); err != nil && !opts.ContinueOnError {
				return err
			}
			return nil
		},
	}

	// Add flags
	exploreCmd.Flags().StringVarP(&opts.ProjectPath, "project-path", "p", "", "Path to the .xcodeproj")
	exploreCmd.Flags().StringVarP(&opts.SourceRoot, "source-root", "s", "", "Project source root")
	exploreCmd.Flags().StringVarP(&opts.Target, "target", "t", "", "Explore only this target")
	exploreCmd.Flags().BoolVarP(&opts.SelectTarget, "select-target", "i", false, "Choose the target interactively")
	exploreCmd.Flags().BoolVarP(&opts.ShowWarnings, "show-warnings", "w", false,
		"Print inline warnings instead of a summary")
	exploreCmd.Flags().BoolVar(&opts.ShowDimensions, "dimensions", false,
		"Print the dimensions of unused standalone images")
	exploreCmd.Flags().BoolVar(&opts.ContinueOnError, "continue-on-error", false,
		"Keep exploring the next targets when one fails")
	exploreCmd.Flags().IntVar(&opts.Workers, "workers", 0, "Maximum concurrent source parses (0: unbounded)")
	exploreCmd.Flags().DurationVar(&opts.ParseTimeout, "timeout", 0, "Deadline for each source parse (0: none)")

	return exploreCmd
}
