package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "data", "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStore_RecordAndStats(t *testing.T) {
	s := openTemp(t)
	ctx := context.Background()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	results := []struct {
		won      bool
		attempts int
	}{
		{true, 3}, {true, 4}, {false, 6}, {true, 3}, {true, 2}, {true, 5},
	}
	for i, r := range results {
		require.NoError(t, s.Record(ctx, Entry{
			PuzzleID:    100 + i,
			PrintDate:   "2023-01-01",
			Solution:    "crane",
			Attempts:    r.attempts,
			MaxAttempts: 6,
			Won:         r.won,
			FinishedAt:  base.Add(time.Duration(i) * time.Minute),
		}))
	}

	st, err := s.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 6, st.Played)
	assert.Equal(t, 5, st.Wins)
	assert.Equal(t, 3, st.CurrentStreak)
	assert.Equal(t, 3, st.MaxStreak)
	assert.Equal(t, map[int]int{2: 1, 3: 2, 4: 1, 5: 1}, st.Distribution)

	recent, err := s.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, 105, recent[0].PuzzleID)
	assert.Equal(t, 104, recent[1].PuzzleID)
	assert.True(t, recent[0].Won)
	assert.True(t, base.Add(5*time.Minute).Equal(recent[0].FinishedAt))
}

func TestStore_EmptyStats(t *testing.T) {
	st, err := openTemp(t).Stats(context.Background())
	require.NoError(t, err)
	assert.Zero(t, st.Played)
	assert.Empty(t, st.Distribution)
}

func TestOpen_MigrationsAreIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "h.db")
	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Record(context.Background(), Entry{PuzzleID: 1, PrintDate: "2023-01-01", Solution: "crane", Attempts: 1, MaxAttempts: 6, Won: true}))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()
	st, err := s.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, st.Played)
}
