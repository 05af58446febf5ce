package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/notesweep/notesweep/internal/history"
)

var statsCmd = &cobra.Command{
	Use:   "stats <tag>",
	Short: "Report tagged vs total word counts",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tag := args[0]
		s, err := newScanner()
		if err != nil {
			return err
		}

		st, err := s.WordStats(tag)
		if err != nil {
			return fmt.Errorf("word stats: %w", err)
		}

		fmt.Printf("Files:  %d tagged %q / %d total\n", st.TaggedFiles, tag, st.TotalFiles)
		fmt.Printf("Words:  %d tagged / %d total\n", st.TaggedWords, st.TotalWords)
		fmt.Printf("Tagged: %.2f%%\n", st.Percentage())

		recordRun(history.Run{
			Mode:        "stats",
			Root:        s.Root(),
			Tag:         tag,
			TotalFiles:  st.TotalFiles,
			TotalWords:  st.TotalWords,
			TaggedFiles: st.TaggedFiles,
			TaggedWords: st.TaggedWords,
			Percentage:  st.Percentage(),
		})
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
