package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/simonhull/riffmeta"
	"github.com/simonhull/riffmeta/webp"
)

var (
	setTitle     string
	setArtist    string
	setCopyright string
	setComment   string
	setBackup    string
	setValidate  bool
)

var setCmd = &cobra.Command{
	Use:   "set <file.webp>",
	Short: "Set metadata tags and save the file",
	Long: `Set one or more metadata tags and write the file back atomically.

Only flags that are given are changed; an empty value is stored as an
empty string, not a deletion (use 'clear' to remove tags).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		file, err := openFile(args[0])
		if err != nil {
			return err
		}

		set := map[string]struct {
			flag  string
			apply func(string) error
		}{
			webp.TagTitle:     {"title", file.Image.SetTitle},
			webp.TagArtist:    {"artist", file.Image.SetArtist},
			webp.TagCopyright: {"copyright", file.Image.SetCopyright},
			webp.TagComment:   {"comment", file.Image.SetComment},
		}

		values := map[string]*string{
			webp.TagTitle:     &setTitle,
			webp.TagArtist:    &setArtist,
			webp.TagCopyright: &setCopyright,
			webp.TagComment:   &setComment,
		}

		changed := 0
		for tag, s := range set {
			if !cmd.Flags().Changed(s.flag) {
				continue
			}
			if err := s.apply(*values[tag]); err != nil {
				return fmt.Errorf("set %s: %w", s.flag, err)
			}
			logger.Debug("set", "tag", tag, "value", *values[tag])
			changed++
		}

		if changed == 0 {
			return fmt.Errorf("nothing to set: pass at least one of --title, --artist, --copyright, --comment")
		}

		opts := saveOptions(setBackup, setValidate)
		if err := file.Save(opts...); err != nil {
			return fmt.Errorf("save %s: %w", args[0], err)
		}

		fmt.Printf("%s %d tag(s) updated\n", tagStyle.Render(args[0]+":"), changed)
		return nil
	},
}

func init() {
	setCmd.Flags().StringVar(&setTitle, "title", "", "INAM title tag")
	setCmd.Flags().StringVar(&setArtist, "artist", "", "IART artist tag")
	setCmd.Flags().StringVar(&setCopyright, "copyright", "", "ICOP copyright tag")
	setCmd.Flags().StringVar(&setComment, "comment", "", "ICMT comment tag")
	setCmd.Flags().StringVar(&setBackup, "backup", "", "keep the original under this suffix (e.g. .bak)")
	setCmd.Flags().BoolVar(&setValidate, "validate", false, "re-read the file after saving to verify it")
}

func saveOptions(backup string, validate bool) []riffmeta.SaveOption {
	var opts []riffmeta.SaveOption
	if backup != "" {
		opts = append(opts, riffmeta.WithBackup(backup))
	}
	if validate {
		opts = append(opts, riffmeta.WithValidation())
	}
	return opts
}
