// Package cli implements the command-line interface for cubesim.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cubesim/cubesim/internal/config"
	"github.com/cubesim/cubesim/internal/storage"
)

const version = "0.1.0"

var (
	// Global flags
	dbPath     string
	configPath string
	verbose    bool
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "cubesim",
	Short: "Rubik's Cube simulator and solver",
	Long: `cubesim - A Rubik's Cube simulator with animated playback and solving.

Generate scrambles, solve cubes with the built-in reverse solver or an
external two-phase solver, play back solutions move by move, and keep a
history of your solves.`,
	Version: version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: ~/.cubesim/cubesim.db)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (default: ~/.cubesim/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

// loadConfig loads the config file from the flag or default location.
func loadConfig() (config.Config, error) {
	path := configPath
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return config.Config{}, err
		}
	}
	return config.Load(path)
}

// openDB opens the database. The --db flag wins over the config file,
// which wins over the default location.
func openDB() (*storage.DB, error) {
	if dbPath != "" {
		return storage.Open(dbPath)
	}
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	if cfg.Database != "" {
		return storage.Open(cfg.Database)
	}
	return storage.OpenDefault()
}
