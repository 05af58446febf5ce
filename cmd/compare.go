package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/notesweep/notesweep/internal/history"
)

var (
	compareDone string
	compareTodo string
)

var compareCmd = &cobra.Command{
	Use:   "compare --done <tag> --todo <tag>",
	Short: "Report progress as done files vs todo files",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newScanner()
		if err != nil {
			return err
		}

		st, err := s.Compare(compareDone, compareTodo)
		if err != nil {
			return fmt.Errorf("compare tags: %w", err)
		}

		fmt.Printf("Done:     %d files tagged %q\n", st.DoneFiles, compareDone)
		fmt.Printf("Todo:     %d files tagged %q\n", st.TodoFiles, compareTodo)
		fmt.Printf("Progress: %.2f%% (%d files total)\n", st.Percentage(), st.TotalFiles)

		recordRun(history.Run{
			Mode:        "compare",
			Root:        s.Root(),
			Tag:         compareDone + "/" + compareTodo,
			TotalFiles:  st.TotalFiles,
			TaggedFiles: st.DoneFiles + st.TodoFiles,
			Percentage:  st.Percentage(),
		})
		return nil
	},
}

func init() {
	compareCmd.Flags().StringVar(&compareDone, "done", "", "tag marking finished files")
	compareCmd.Flags().StringVar(&compareTodo, "todo", "", "tag marking unfinished files")
	compareCmd.MarkFlagRequired("done") //nolint:errcheck
	compareCmd.MarkFlagRequired("todo") //nolint:errcheck
	rootCmd.AddCommand(compareCmd)
}
