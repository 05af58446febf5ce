package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notesweep/notesweep/internal/history"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent recorded scan runs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := history.Open(viper.GetString("history.path"))
		if err != nil {
			return fmt.Errorf("open history: %w", err)
		}
		store := history.NewStore(db)
		defer store.Close() //nolint:errcheck

		runs, err := store.ListRuns(historyLimit)
		if err != nil {
			return fmt.Errorf("list runs: %w", err)
		}
		if len(runs) == 0 {
			fmt.Println("No recorded runs.")
			return nil
		}

		for _, r := range runs {
			line := fmt.Sprintf("%s  %-8s files=%d words=%d",
				r.CreatedAt.Format("2006-01-02 15:04"), r.Mode, r.TotalFiles, r.TotalWords)
			if r.Tag != "" {
				line += fmt.Sprintf("  tag=%s (%.1f%%)", r.Tag, r.Percentage)
			}
			fmt.Println(line)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 10, "maximum number of runs to show")
	rootCmd.AddCommand(historyCmd)
}
