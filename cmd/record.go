package cmd

import (
	"github.com/spf13/viper"

	"github.com/notesweep/notesweep/internal/history"
	"github.com/notesweep/notesweep/internal/logging"
)

// recordRun persists a scan run, best-effort: a broken or unwritable history
// database logs a warning and never fails the command.
func recordRun(r history.Run) {
	if viper.GetBool("no-history") {
		return
	}
	l := logging.Sub("cmd")

	db, err := history.Open(viper.GetString("history.path"))
	if err != nil {
		l.Warn("history database unavailable", "err", err)
		return
	}
	store := history.NewStore(db)
	defer store.Close() //nolint:errcheck

	if err := store.RecordRun(r); err != nil {
		l.Warn("failed to record run", "mode", r.Mode, "err", err)
	}
}
