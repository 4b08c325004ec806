// Package main provides the command-line interface for the SUR application.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"github.com/lerenn/sur/cmd/sur/internal/cli"
)

func main() {
	rootCmd := createExploreCmd()
	rootCmd.Use = "sur"
	rootCmd.Short = "SUR - Swift Unused Resources"
	rootCmd.Long = `Find the images and colors declared in an Xcode project that no source, ` +
		`storyboard or xib references.`

	// Add global flags
	rootCmd.PersistentFlags().BoolVarP(&cli.Verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&cli.ConfigPath, "config", "c", "",
		"Specify a custom config file path (default: <source-root>/sur.yml)")
	rootCmd.PersistentFlags().BoolVar(&cli.NoColor, "no-color", false, "Disable colored output")

	// Add subcommands
	rootCmd.AddCommand(createExploreCmd(), createInitCmd())

	// Interrupting cancels the source parses in flight.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		log.Fatal(err)
	}
}
