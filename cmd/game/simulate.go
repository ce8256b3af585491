package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/tatianab/budget-survival/internal/config"
	"github.com/tatianab/budget-survival/internal/engine"
	"github.com/tatianab/budget-survival/internal/journal"
	"github.com/tatianab/budget-survival/internal/models"
)

var (
	simDays   int
	simSeed   uint64
	simSave   string
	simRecord bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Play a game with random choices",
	Long: `Plays the game headlessly, choosing uniformly at random every day, and prints
one line per day. Useful for balancing the event catalog.`,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&simDays, "days", 90, "Maximum number of days to play")
	simulateCmd.Flags().Uint64Var(&simSeed, "seed", 0, "Random seed (0 uses BUDGET_SEED or the clock)")
	simulateCmd.Flags().StringVar(&simSave, "save", "", "Write the save to this file while playing")
	simulateCmd.Flags().BoolVar(&simRecord, "record", false, "Record the finished run in the journal")
}

// memoryStore keeps the save in memory for runs that must not touch disk.
type memoryStore struct {
	saved *models.PlayerState
}

func (s *memoryStore) Save(p *models.PlayerState) error {
	s.saved = p.Clone()
	return nil
}

func (s *memoryStore) Load() (*models.PlayerState, error) {
	if s.saved == nil {
		return nil, models.ErrNoSave
	}
	return s.saved.Clone(), nil
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger, logCloser, err := openLogger(cfg)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer logCloser.Close()

	seed := simSeed
	if seed == 0 {
		seed = cfg.Seed
	}

	var store engine.Store = &memoryStore{}
	if simSave != "" {
		store = models.NewFileStore(simSave)
	}
	eng, err := engine.New(engine.Config{
		Store:  store,
		Rand:   newRand(seed),
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("create engine: %w", err)
	}

	summary, err := simulate(eng, simDays, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	if simRecord {
		j, err := journal.Open(cfg.JournalPath)
		if err != nil {
			return err
		}
		defer j.Close()
		id, err := j.RecordRun(context.Background(), summary)
		if err != nil {
			return fmt.Errorf("record run: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Recorded run %s\n", id)
	}
	return nil
}

// simulate plays up to days turns with random choices and returns the run
// summary.
func simulate(eng *engine.Engine, days int, w io.Writer) (models.RunSummary, error) {
	rng := eng.Rand()
	eng.StartNewGame()

	for range days {
		if eng.MonthEnded() {
			if err := eng.NextMonth(); err != nil {
				return models.RunSummary{}, err
			}
			fmt.Fprintf(w, "--- Nowy miesiąc (+%.0f PLN) ---\n", engine.MonthlyStipend)
		}

		p := eng.Player()
		ev, err := eng.DrawNextEvent()
		if err != nil {
			return models.RunSummary{}, err
		}

		var decision string
		switch {
		case ev.Minigame == models.MinigameReflex:
			out, err := eng.ResolveReflex(rng.IntN(2) == 0)
			if err != nil {
				return models.RunSummary{}, err
			}
			decision = "światło: porażka"
			if out.Success {
				decision = "światło: sukces"
			}
		case len(ev.Choices) > 0:
			choice := ev.Choices[rng.IntN(len(ev.Choices))]
			if err := eng.ApplyChoice(choice); err != nil {
				return models.RunSummary{}, err
			}
			decision = choice.Label
		}

		after := eng.Player()
		fmt.Fprintf(w, "Dzień %2d | %-60s | %-30s | %8.2f PLN | S:%3d K:%3d\n",
			p.Day, truncate(ev.Description, 60), truncate(decision, 30),
			after.Budget, after.Happiness, after.Comfort)

		if over, ok := eng.CheckGameOver(); ok {
			fmt.Fprintf(w, "\n%s\n", over.Message)
			return eng.Summary(), nil
		}
		if err := eng.NextDay(); err != nil {
			return models.RunSummary{}, err
		}
	}

	fmt.Fprintln(w, "\nPrzetrwałeś symulację.")
	return eng.Summary(), nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
