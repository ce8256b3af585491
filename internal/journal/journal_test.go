package journal

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tatianab/budget-survival/internal/models"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestOpenRequiresPath(t *testing.T) {
	_, err := Open("  ")
	assert.Error(t, err)
}

func TestRecordAndListRuns(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	tick := 0
	s.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Minute)
	}

	first, err := s.RecordRun(ctx, models.RunSummary{
		Reason: models.ReasonBankruptcy, MonthsCompleted: 1, DaysPlayed: 42,
		Day: 12, Budget: -30.5, Happiness: 20, Comfort: 35,
	})
	require.NoError(t, err)
	second, err := s.RecordRun(ctx, models.RunSummary{
		Reason: models.ReasonExhaustion, DaysPlayed: 7, Day: 8, Budget: 900, Happiness: 10,
	})
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	runs, err := s.RecentRuns(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 2)

	assert.Equal(t, second, runs[0].ID, "newest first")
	assert.Equal(t, models.ReasonExhaustion, runs[0].Reason)
	assert.Equal(t, first, runs[1].ID)
	assert.Equal(t, 1, runs[1].MonthsCompleted)
	assert.Equal(t, 42, runs[1].DaysPlayed)
	assert.Equal(t, -30.5, runs[1].Budget)
	assert.True(t, runs[1].EndedAt.Equal(base.Add(time.Minute)))
}

func TestRecentRunsLimit(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	for range 5 {
		_, err := s.RecordRun(ctx, models.RunSummary{Reason: models.ReasonNervousCollapse})
		require.NoError(t, err)
	}

	runs, err := s.RecentRuns(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, runs, 3)
}

func TestRecordRunHonoursCancelledContext(t *testing.T) {
	s := openTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.RecordRun(ctx, models.RunSummary{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestReopenKeepsRuns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.db")
	s, err := Open(path)
	require.NoError(t, err)
	_, err = s.RecordRun(context.Background(), models.RunSummary{Reason: models.ReasonBankruptcy})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()
	runs, err := s.RecentRuns(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}

func TestRecentRunsOrdersWithinASecond(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	whole := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	stamps := []time.Time{whole.Add(500 * time.Millisecond), whole}
	s.now = func() time.Time {
		next := stamps[0]
		stamps = stamps[1:]
		return next
	}

	later, err := s.RecordRun(ctx, models.RunSummary{Reason: models.ReasonBankruptcy})
	require.NoError(t, err)
	earlier, err := s.RecordRun(ctx, models.RunSummary{Reason: models.ReasonExhaustion})
	require.NoError(t, err)

	runs, err := s.RecentRuns(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, later, runs[0].ID)
	assert.Equal(t, earlier, runs[1].ID)
	assert.True(t, runs[1].EndedAt.Equal(whole))
}

func TestRecentRunsReadsLegacyTimestamps(t *testing.T) {
	s := openTestStore(t)
	_, err := s.db.Exec(`INSERT INTO runs (id, ended_at, reason, months, days, day, budget, happiness, comfort)
		VALUES ('old', '2025-12-31T23:59:59.5Z', 'bankruptcy', 0, 3, 4, -1, 10, 10)`)
	require.NoError(t, err)

	runs, err := s.RecentRuns(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.True(t, runs[0].EndedAt.Equal(time.Date(2025, 12, 31, 23, 59, 59, 500_000_000, time.UTC)))
}
