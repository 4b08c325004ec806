package main

import (
	"fmt"
	"os"

	"github.com/lerenn/sur/cmd/sur/internal/cli"
	"github.com/lerenn/sur/configs"
	"github.com/lerenn/sur/pkg/fs"
	"github.com/lerenn/sur/pkg/prompt"
	"github.com/spf13/cobra"
)

func createInitCmd() *cobra.Command {
	var (
		force      bool
		sourceRoot string
	)

	initCmd := &cobra.Command{
		Use:   "init [--force] [--source-root <path>]",
		Short: "Create a sur.yml configuration",
		Long: `Write the default sur.yml at the source root, or at the --config path.

Flags:
  --force         Overwrite an existing configuration file without confirmation
  --source-root   Directory the configuration is written to (default: current directory)`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fsys := fs.NewFS()

			wd, err := os.Getwd()
			if err != nil {
				return err
			}
			root, err := fsys.ResolvePath(wd, sourceRoot)
			if err != nil {
				return err
			}

			path := cli.GetConfigPath(root)
			err = cli.WriteDefaultConfig(fsys, prompt.NewPrompt(), path, configs.DefaultConfigYAML, force)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Configuration written to %s\n", path)
			return nil
		},
	}

	// Add flags
	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing configuration file without confirmation")
	initCmd.Flags().StringVarP(&sourceRoot, "source-root", "s", ".", "Directory the configuration is written to")

	return initCmd
}
