// internal/session/driver.go
//
// Session driver for interactive play.
// Responsibilities:
//   - Pick a random historical date and fetch its puzzle.
//   - Run one game.Round per puzzle, reading one guess per input line.
//   - Hand every transition to the Renderer and record finished rounds.
//
// Rounds continue back to back until input ends or the context is cancelled.
// Cancellation is observed between lines; a pending read is not interrupted.

package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/infinite/internal/game"
	"github.com/robalobadob/wordle/apps/infinite/internal/history"
	"github.com/robalobadob/wordle/apps/infinite/internal/puzzle"
	"github.com/robalobadob/wordle/apps/infinite/internal/render"
)

// Renderer displays game events. render.Terminal implements it.
type Renderer interface {
	Header(p puzzle.Puzzle)
	Debug(p puzzle.Puzzle)
	Keyboard(k game.KeyboardState)
	Prompt(attempt int)
	Rejected(err error)
	Feedback(attempt int, guess string, c game.Classification)
	Won(attempt int, guess, encouragement string)
	Lost(solution string)
}

// Driver plays rounds until input runs out.
type Driver struct {
	Source     puzzle.Source
	Dictionary game.Dictionary
	Renderer   Renderer
	// History is optional.
	History     history.Recorder
	MaxAttempts int
	Rules       game.Rules
	// Debug prints the fetched puzzle, solution included.
	Debug bool
	// Rand and Now default to a time-seeded generator and time.Now.
	Rand *rand.Rand
	Now  func() time.Time
}

func (d *Driver) rng() *rand.Rand {
	if d.Rand == nil {
		seed := uint64(time.Now().UnixNano())
		d.Rand = rand.New(rand.NewPCG(seed, seed>>1|1))
	}
	return d.Rand
}

func (d *Driver) now() time.Time {
	if d.Now == nil {
		return time.Now()
	}
	return d.Now()
}

// Run plays rounds reading guesses from in. It returns nil when input ends,
// ctx.Err() when cancelled, and a wrapped error when a puzzle cannot be fetched.
func (d *Driver) Run(ctx context.Context, in io.Reader) error {
	lines := bufio.NewScanner(in)
	for round := 1; ; round++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		date := puzzle.RandomDate(d.rng(), d.now())
		p, err := d.Source.Fetch(ctx, date)
		if err != nil {
			return fmt.Errorf("fetch puzzle for %s: %w", puzzle.DateKey(date), err)
		}
		log.Debug().Int("round", round).Int("puzzle", p.ID).Str("date", p.PrintDate).Msg("round started")

		if _, err := d.PlayRound(ctx, p, lines); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}

// PlayRound plays p to completion. io.EOF means input ended mid-round.
func (d *Driver) PlayRound(ctx context.Context, p puzzle.Puzzle, lines *bufio.Scanner) (game.Result, error) {
	r, err := game.NewRound(p.Solution,
		game.WithMaxAttempts(d.MaxAttempts),
		game.WithRules(d.Rules),
		game.WithDictionary(d.Dictionary),
	)
	if err != nil {
		return game.Result{}, fmt.Errorf("puzzle %d: %w", p.ID, err)
	}

	d.Renderer.Header(p)
	if d.Debug {
		d.Renderer.Debug(p)
	}
	encouragement := render.PickEncouragement(d.rng())

	for {
		if err := ctx.Err(); err != nil {
			return game.Result{}, err
		}
		d.Renderer.Keyboard(r.Keyboard())
		d.Renderer.Prompt(r.Attempt())
		if !lines.Scan() {
			if err := lines.Err(); err != nil {
				return game.Result{}, fmt.Errorf("read guess: %w", err)
			}
			return game.Result{}, io.EOF
		}
		guess := strings.TrimSpace(lines.Text())

		res, err := r.Advance(guess)
		if err != nil {
			if game.IsValidation(err) {
				d.Renderer.Rejected(err)
				continue
			}
			return res, err
		}

		switch res.Outcome {
		case game.Continue:
			d.Renderer.Feedback(res.Attempt, guess, res.Classification)
		case game.OutcomeWon:
			d.Renderer.Won(res.Attempt, guess, encouragement)
			d.record(ctx, p, r, res)
			return res, nil
		case game.OutcomeLost:
			d.Renderer.Feedback(res.Attempt, guess, res.Classification)
			d.Renderer.Lost(res.Solution)
			d.record(ctx, p, r, res)
			return res, nil
		}
	}
}

// record stores a finished round; failures are logged, not returned.
func (d *Driver) record(ctx context.Context, p puzzle.Puzzle, r *game.Round, res game.Result) {
	log.Debug().Int("puzzle", p.ID).Stringer("outcome", res.Outcome).Int("attempts", res.Attempt).Msg("round finished")
	if d.History == nil {
		return
	}
	err := d.History.Record(ctx, history.Entry{
		PuzzleID:    p.ID,
		PrintDate:   p.PrintDate,
		Solution:    p.Solution,
		Attempts:    res.Attempt,
		MaxAttempts: r.MaxAttempts(),
		Won:         res.Outcome == game.OutcomeWon,
		FinishedAt:  d.now(),
	})
	if err != nil {
		log.Warn().Err(err).Int("puzzle", p.ID).Msg("record round")
	}
}
