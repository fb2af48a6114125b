package main

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <file.webp>",
	Short: "Print the metadata tags of a WebP file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		file, err := openFile(args[0])
		if err != nil {
			return err
		}

		meta := file.Metadata()
		if len(meta) == 0 {
			fmt.Println(dimStyle.Render("no metadata"))
			return nil
		}

		tags := make([]string, 0, len(meta))
		for tag := range meta {
			tags = append(tags, tag)
		}
		slices.Sort(tags)

		for _, tag := range tags {
			fmt.Printf("%s %s\n", tagStyle.Render(tag+":"), meta[tag])
		}
		return nil
	},
}
