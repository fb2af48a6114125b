// Command riffmeta inspects and edits metadata in WebP files.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/simonhull/riffmeta"
)

var (
	// verbose enables debug output
	verbose bool

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		Level:           log.WarnLevel,
	})

	rootCmd = &cobra.Command{
		Use:   "riffmeta",
		Short: "Inspect and edit WebP metadata",
		Long: titleStyle.Render("riffmeta") + subtitleStyle.Render(" - RIFF/WebP metadata tool") + `

riffmeta reads WebP containers into a validated chunk tree, shows or
edits the INFO metadata chunks (title, artist, copyright, comment), and
writes the result back atomically.

` + subtitleStyle.Render("Examples:") + `
  riffmeta dump photo.webp            Show the chunk tree
  riffmeta show photo.webp            Show metadata tags
  riffmeta set photo.webp --title Hi  Set the title and save
  riffmeta clear photo.webp           Remove all metadata tags`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logger.SetLevel(log.DebugLevel)
			}
		},
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(clearCmd)
}

func main() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(riffmeta.Version),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}

// openFile is the shared entry point for all subcommands.
func openFile(path string) (*riffmeta.File, error) {
	logger.Debug("opening", "path", path)
	file, err := riffmeta.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	logger.Debug("parsed", "size", file.Size, "chunks", file.Image.Len())
	return file, nil
}
