package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	clearBackup   string
	clearValidate bool
)

var clearCmd = &cobra.Command{
	Use:   "clear <file.webp>",
	Short: "Remove all metadata tags and save the file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		file, err := openFile(args[0])
		if err != nil {
			return err
		}

		before := len(file.Metadata())
		file.Image.ClearMetadata()

		if err := file.Save(saveOptions(clearBackup, clearValidate)...); err != nil {
			return fmt.Errorf("save %s: %w", args[0], err)
		}

		fmt.Printf("%s %d tag(s) removed\n", tagStyle.Render(args[0]+":"), before)
		return nil
	},
}

func init() {
	clearCmd.Flags().StringVar(&clearBackup, "backup", "", "keep the original under this suffix (e.g. .bak)")
	clearCmd.Flags().BoolVar(&clearValidate, "validate", false, "re-read the file after saving to verify it")
}
