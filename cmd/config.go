package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// initConfig loads the optional config file and environment overrides.
// Precedence: flags > env (NOTESWEEP_*) > config file > defaults.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
		viper.SetConfigName(".notesweep")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("NOTESWEEP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("log_dir", "")
	viper.SetDefault("history.path", defaultHistoryPath())

	if err := viper.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			fmt.Fprintln(os.Stderr, "Warning: cannot read config:", err)
		}
	}
}

// defaultHistoryPath puts the history database under the XDG data dir.
func defaultHistoryPath() string {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, "notesweep", "history.db")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".notesweep-history.db")
	}
	return filepath.Join(home, ".local", "share", "notesweep", "history.db")
}
