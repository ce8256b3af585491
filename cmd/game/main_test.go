package main

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/tatianab/budget-survival/internal/catalog"
	"github.com/tatianab/budget-survival/internal/engine"
	"github.com/tatianab/budget-survival/internal/journal"
	"github.com/tatianab/budget-survival/internal/models"
)

func newSimEngine(t *testing.T, seed uint64) *engine.Engine {
	t.Helper()
	eng, err := engine.New(engine.Config{
		Store:  &memoryStore{},
		Rand:   newRand(seed),
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)
	return eng
}

func TestSimulateIsDeterministic(t *testing.T) {
	var a, b bytes.Buffer
	sa, err := simulate(newSimEngine(t, 42), 45, &a)
	require.NoError(t, err)
	sb, err := simulate(newSimEngine(t, 42), 45, &b)
	require.NoError(t, err)

	assert.Equal(t, a.String(), b.String())
	assert.Equal(t, sa, sb)
	assert.Contains(t, a.String(), "Dzień  1 |")
}

func TestSimulateEndsWithinDays(t *testing.T) {
	for seed := uint64(1); seed <= 10; seed++ {
		var out bytes.Buffer
		summary, err := simulate(newSimEngine(t, seed), 70, &out)
		require.NoError(t, err)

		assert.LessOrEqual(t, summary.DaysPlayed, 70)
		if summary.Reason == "" {
			assert.Contains(t, out.String(), "Przetrwałeś symulację.")
			assert.Equal(t, 2, summary.MonthsCompleted, "seed %d", seed)
		}
	}
}

func TestMemoryStore(t *testing.T) {
	s := &memoryStore{}
	_, err := s.Load()
	assert.ErrorIs(t, err, models.ErrNoSave)

	p := models.NewPlayerState()
	require.NoError(t, s.Save(p))
	p.Day = 9

	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, models.StartingDay, got.Day, "save keeps a snapshot")
}

func TestCatalogCommandPrintsYAML(t *testing.T) {
	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	require.NoError(t, runCatalog(cmd, nil))

	var events []models.Event
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &events))
	assert.Len(t, events, catalog.Len())
}

func TestPrintRuns(t *testing.T) {
	var out bytes.Buffer
	printRuns(&out, nil)
	assert.Equal(t, "No runs recorded yet.\n", out.String())

	out.Reset()
	printRuns(&out, []journal.Run{{
		ID:      "abc",
		EndedAt: time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC),
		RunSummary: models.RunSummary{
			Reason: models.ReasonBankruptcy, MonthsCompleted: 1, DaysPlayed: 33, Budget: -12.5,
		},
	}})
	line := out.String()
	assert.True(t, strings.HasSuffix(line, "(abc)\n"))
	assert.Contains(t, line, "bankruptcy")
	assert.Contains(t, line, "budget=-12.50")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "krótki", truncate("krótki", 10))
	assert.Equal(t, "Zażół…", truncate("Zażółć gęślą", 6))
}
