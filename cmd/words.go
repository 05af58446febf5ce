package cmd

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/notesweep/notesweep/internal/history"
)

var (
	wordsTop    int
	wordsFilter string
)

var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "List files by word count, largest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newScanner()
		if err != nil {
			return err
		}

		files, err := s.CountWords(wordsFilter)
		if err != nil {
			return fmt.Errorf("count words: %w", err)
		}

		var totalWords uint64
		for _, f := range files {
			totalWords += uint64(f.Words)
		}

		shown := files
		if wordsTop > 0 {
			shown = lo.Slice(files, 0, wordsTop)
		}
		for _, f := range shown {
			fmt.Printf("%8d words  %s\n", f.Words, f.Path)
		}
		fmt.Printf("Total: %d words across %d files\n", totalWords, len(files))

		recordRun(history.Run{
			Mode:       "words",
			Root:       s.Root(),
			Tag:        wordsFilter,
			TotalFiles: uint64(len(files)),
			TotalWords: totalWords,
		})
		return nil
	},
}

func init() {
	wordsCmd.Flags().IntVarP(&wordsTop, "top", "n", 0, "show only the N largest files (0 = all)")
	wordsCmd.Flags().StringVarP(&wordsFilter, "filter", "f", "", "exclude files carrying this frontmatter tag")
	rootCmd.AddCommand(wordsCmd)
}
