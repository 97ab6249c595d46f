package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgFile      string
	storeBackend string
	verbose      bool
)

var rootCmd = &cobra.Command{
	Use:   "gymclient",
	Short: "Gym member client",
	Long:  "gymclient verifies your membership against the gym's member store, keeps a local session across restarts, and shows your dashboard with a scannable check-in code.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		slog.SetDefault(logger)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: none, built-in defaults + GYMCLIENT_* env)")
	rootCmd.PersistentFlags().StringVar(&storeBackend, "store", "", "store backend: http or memory (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
