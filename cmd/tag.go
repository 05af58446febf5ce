package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/notesweep/notesweep/internal/history"
	"github.com/notesweep/notesweep/internal/scanner"
)

var tagOnly bool

var tagCmd = &cobra.Command{
	Use:   "tag <name>",
	Short: "Count files carrying a frontmatter tag",
	Long: `Counts files whose frontmatter tag list contains the given tag. With
--only, a file counts only when the tag is its single tag, and the matching
paths are listed.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		s, err := newScanner()
		if err != nil {
			return err
		}

		var (
			st      scanner.TagStats
			matched []string
		)
		if tagOnly {
			st, matched, err = s.OnlyTagStats(name)
		} else {
			st, err = s.TagStats(name)
		}
		if err != nil {
			return fmt.Errorf("tag stats: %w", err)
		}

		fmt.Printf("%d of %d files tagged %q (%.2f%%)\n", st.FilesWithTag, st.TotalFiles, name, st.Percentage())
		for _, p := range matched {
			fmt.Printf("  %s\n", p)
		}

		recordRun(history.Run{
			Mode:        "tag",
			Root:        s.Root(),
			Tag:         name,
			TotalFiles:  st.TotalFiles,
			TaggedFiles: st.FilesWithTag,
			Percentage:  st.Percentage(),
		})
		return nil
	},
}

func init() {
	tagCmd.Flags().BoolVar(&tagOnly, "only", false, "count only files whose single tag is <name>, and list them")
	rootCmd.AddCommand(tagCmd)
}
