package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/notesweep/notesweep/internal/history"
)

var countCmd = &cobra.Command{
	Use:   "count",
	Short: "Count scannable files in the vault",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newScanner()
		if err != nil {
			return err
		}

		n, err := s.CountFiles()
		if err != nil {
			return fmt.Errorf("count files: %w", err)
		}

		fmt.Printf("Total files: %d\n", n)
		recordRun(history.Run{Mode: "count", Root: s.Root(), TotalFiles: n})
		return nil
	},
}

func init() {
	rootCmd.AddCommand(countCmd)
}
