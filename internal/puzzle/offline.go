package puzzle

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// launch is day zero for DaysSinceLaunch on offline puzzles.
var launch = time.Date(2021, time.June, 19, 0, 0, 0, 0, time.UTC)

// OfflineSource picks a deterministic answer per date from a fixed list.
type OfflineSource struct {
	answers []string
	salt    string
}

// NewOfflineSource returns a source over answers keyed by salt.
func NewOfflineSource(answers []string, salt string) *OfflineSource {
	return &OfflineSource{answers: answers, salt: salt}
}

// Fetch never blocks; it fails only when the answer list is empty.
func (s *OfflineSource) Fetch(ctx context.Context, date time.Time) (Puzzle, error) {
	if err := ctx.Err(); err != nil {
		return Puzzle{}, err
	}
	if len(s.answers) == 0 {
		return Puzzle{}, ErrUnavailable
	}
	idx := WordIndex(date, s.salt, len(s.answers))
	days := int(date.UTC().Sub(launch).Hours() / 24)
	return Puzzle{
		ID:              idx,
		Solution:        s.answers[idx],
		PrintDate:       DateKey(date),
		DaysSinceLaunch: days,
		Editor:          "offline",
	}, nil
}

// WordIndex returns a deterministic index for a date using HMAC(salt, YYYY-MM-DD) % n.
func WordIndex(date time.Time, salt string, n int) int {
	if n <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// first 8 bytes as uint64 for modulus distribution
	v := binary.BigEndian.Uint64(sum[:8])
	return int(v % uint64(n))
}
