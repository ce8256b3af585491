// Package main is the entry point for the budget survival game.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"

	"github.com/spf13/cobra"

	"github.com/tatianab/budget-survival/internal/config"
	"github.com/tatianab/budget-survival/internal/engine"
	"github.com/tatianab/budget-survival/internal/journal"
	"github.com/tatianab/budget-survival/internal/logging"
	"github.com/tatianab/budget-survival/internal/models"
	"github.com/tatianab/budget-survival/internal/narrator"
	"github.com/tatianab/budget-survival/internal/tui"
)

var rootCmd = &cobra.Command{
	Use:   "budget-survival",
	Short: "Survive a month on a tight budget",
	Long: `A turn-based budgeting game. Every day brings an event, every choice
costs money, happiness or comfort. Run out of any of them and the game is over.`,
	SilenceUsage: true,
	RunE:         runPlay,
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start the interactive game",
	RunE:  runPlay,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(runsCmd)
}

// newRand returns a PCG seeded with seed, or nil so the engine seeds from
// the clock.
func newRand(seed uint64) engine.Rand {
	if seed == 0 {
		return nil
	}
	return rand.New(rand.NewPCG(seed, seed>>1))
}

func openLogger(cfg *config.Config) (*slog.Logger, io.Closer, error) {
	if cfg.LogFile == "" {
		logger, err := logging.New(cfg.LogLevel, io.Discard)
		return logger, io.NopCloser(nil), err
	}
	return logging.OpenFile(cfg.LogLevel, cfg.LogFile)
}

func runPlay(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, logCloser, err := openLogger(cfg)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer logCloser.Close()

	eng, err := engine.New(engine.Config{
		Store:  models.NewFileStore(cfg.SaveFile),
		Rand:   newRand(cfg.Seed),
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("create engine: %w", err)
	}

	opts := tui.Options{Logger: logger}

	if j, err := journal.Open(cfg.JournalPath); err != nil {
		logger.Warn("journal disabled", "error", err)
	} else {
		defer j.Close()
		opts.Journal = j
	}

	if cfg.NarrationEnabled() {
		n, err := narrator.New(ctx, cfg.GeminiAPIKey)
		if err != nil {
			logger.Warn("narration disabled", "error", err)
		} else {
			defer n.Close()
			opts.Narrator = n
		}
	}

	if err := tui.Run(eng, opts); err != nil {
		return fmt.Errorf("run TUI: %w", err)
	}
	return nil
}
