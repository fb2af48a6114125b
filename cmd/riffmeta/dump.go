package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/simonhull/riffmeta/riff"
	"github.com/simonhull/riffmeta/webp"
)

var dumpCmd = &cobra.Command{
	Use:   "dump <file.webp>",
	Short: "Print the chunk tree of a WebP file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		file, err := openFile(args[0])
		if err != nil {
			return err
		}

		img := file.Image
		fmt.Printf("%s %s\n",
			tagStyle.Render(img.ID()),
			dimStyle.Render(fmt.Sprintf("(form: %s, size: %d, offset: 0)", img.FormType(), img.Size())))

		// Children start after the 12-byte RIFF header.
		offset := 12
		for _, tag := range img.Tags() {
			c, _ := img.Chunk(tag)
			fmt.Printf("  %s %s%s\n",
				tagStyle.Render(c.ID()),
				dimStyle.Render(fmt.Sprintf("(size: %d, offset: %d)", c.Size(), offset)),
				describe(c))
			offset += 8 + int(c.Size())
		}
		return nil
	},
}

func describe(c riff.Chunk) string {
	if sc, ok := c.(*riff.StringChunk); ok {
		return " " + fmt.Sprintf("%q", sc.Text())
	}
	if c.ID() == webp.TagVP8 {
		return dimStyle.Render(" <image bitstream>")
	}
	return ""
}
