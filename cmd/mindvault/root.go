package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pbaille/mindvault/internal/config"
	"github.com/pbaille/mindvault/internal/logging"
	"github.com/pbaille/mindvault/internal/store"
	"github.com/pbaille/mindvault/internal/vault"
)

// app is the state shared by every subcommand, built before each run
type app struct {
	configPath string
	dbPath     string
	logLevel   string

	cfg      *config.Config
	log      *zap.Logger
	closeLog func()
	vault    *vault.Service
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "mindvault",
		Short:         "Second brain for the terminal: notes with automatic tags and mood",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.Name() == "tui")
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default ~/.config/mindvault/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&a.dbPath, "db", "", "database path (overrides config)")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")

	rootCmd.AddCommand(addCmd(a))
	rootCmd.AddCommand(listCmd(a))
	rootCmd.AddCommand(searchCmd(a))
	rootCmd.AddCommand(tagCmd(a))
	rootCmd.AddCommand(statsCmd(a))
	rootCmd.AddCommand(tuiCmd(a))

	return rootCmd
}

// setup loads config, then builds the logger, store and vault. Interactive
// runs log to a file so the terminal UI stays clean.
func (a *app) setup(interactive bool) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.dbPath != "" {
		cfg.DB.Path = a.dbPath
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if interactive && cfg.Log.File == "" {
		cfg.Log.File = filepath.Join(filepath.Dir(cfg.DB.Path), "mindvault.log")
	}

	log, closeLog, err := logging.New(cfg.Log, os.Stderr)
	if err != nil {
		return err
	}

	s, err := store.New(cfg.DB.Path, store.WithLogger(log.Named("store")))
	if err != nil {
		closeLog()
		return fmt.Errorf("open vault: %w", err)
	}
	log.Debug("vault opened", zap.String("path", s.Path()))

	a.cfg = cfg
	a.log = log
	a.closeLog = closeLog
	a.vault = vault.New(s, log)
	return nil
}

// teardown flushes and closes the logger; safe to call more than once
func (a *app) teardown() {
	if a.closeLog != nil {
		a.closeLog()
		a.closeLog = nil
	}
}
