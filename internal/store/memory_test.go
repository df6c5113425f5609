package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/infinite/internal/game"
	"github.com/robalobadob/wordle/apps/infinite/internal/puzzle"
)

func newSession(t *testing.T, now time.Time) *Session {
	t.Helper()
	r, err := game.NewRound("crane")
	require.NoError(t, err)
	return NewSession(puzzle.Puzzle{ID: 1, Solution: "crane"}, r, now)
}

func TestMemory_SaveGetDelete(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()
	s := newSession(t, time.Now())
	require.NotEmpty(t, s.ID)

	require.NoError(t, m.Save(ctx, s))
	got, err := m.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Same(t, s, got)
	assert.Equal(t, 1, m.Len())

	require.NoError(t, m.Delete(ctx, s.ID))
	_, err = m.Get(ctx, s.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, m.Delete(ctx, "missing"))
}

func TestMemory_Sweep(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	old := newSession(t, base)
	fresh := newSession(t, base)
	require.NoError(t, m.Save(ctx, old))
	require.NoError(t, m.Save(ctx, fresh))

	fresh.With(base.Add(50*time.Minute), func(r *game.Round) {
		_, _ = r.Advance("arose")
	})

	assert.Equal(t, 1, m.Sweep(base.Add(90*time.Minute), time.Hour))
	_, err := m.Get(ctx, old.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = m.Get(ctx, fresh.ID)
	assert.NoError(t, err)
}
