// internal/puzzle/puzzle.go
//
// Puzzle sources: where a round's solution comes from.
//   - HTTPSource fetches the historical daily puzzle from the NYT service.
//   - OfflineSource derives one from the embedded answer list.
// The session driver only sees the Source interface.

package puzzle

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"
)

// Oldest is the earliest instant a random historical puzzle is drawn from
// (2022-11-17 UTC, when the dated puzzle endpoint starts).
const Oldest int64 = 1668726000

// ErrUnavailable is returned when a source has no puzzle for a date.
var ErrUnavailable = errors.New("puzzle unavailable")

// Puzzle is one dated challenge.
type Puzzle struct {
	ID              int    `json:"id"`
	Solution        string `json:"solution"`
	PrintDate       string `json:"print_date"`
	DaysSinceLaunch int    `json:"days_since_launch"`
	Editor          string `json:"editor"`
}

// Label is the header shown at the start of a round.
func (p Puzzle) Label() string {
	if p.Editor == "" {
		return fmt.Sprintf("Wordle #%d", p.ID)
	}
	return fmt.Sprintf("Wordle #%d by %s", p.ID, p.Editor)
}

// Source yields the puzzle for a calendar date.
type Source interface {
	Fetch(ctx context.Context, date time.Time) (Puzzle, error)
}

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format(time.DateOnly)
}

// RandomDate returns a uniformly random instant in [Oldest, now).
// If now is not after Oldest, Oldest itself is returned.
func RandomDate(rng *rand.Rand, now time.Time) time.Time {
	span := now.Unix() - Oldest
	if span <= 0 {
		return time.Unix(Oldest, 0).UTC()
	}
	return time.Unix(Oldest+rng.Int64N(span), 0).UTC()
}
