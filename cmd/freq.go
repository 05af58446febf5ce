package cmd

import (
	"fmt"
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/notesweep/notesweep/internal/scanner"
)

var freqTop int

var freqCmd = &cobra.Command{
	Use:   "freq <file>",
	Short: "Rank words in a single file by frequency",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read %s: %w", args[0], err)
		}

		freqs := scanner.WordFrequencies(string(data))
		if freqTop > 0 {
			freqs = lo.Slice(freqs, 0, freqTop)
		}
		for _, f := range freqs {
			fmt.Printf("%6d  %s\n", f.Count, f.Word)
		}
		return nil
	},
}

func init() {
	freqCmd.Flags().IntVarP(&freqTop, "top", "n", 0, "show only the N most frequent words (0 = all)")
	rootCmd.AddCommand(freqCmd)
}
