// internal/game/round.go
//
// Round state machine for a single puzzle.
// Responsibilities:
//   - Hold the solution, attempt counter, and keyboard for one round.
//   - Validate guesses (length, dictionary) without consuming attempts.
//   - Classify valid guesses, merge them into the keyboard, and decide
//     AwaitingGuess → Won | Lost.
//
// A Round is not safe for concurrent use; callers that share one (the HTTP
// surface) serialize access themselves.

package game

import (
	"strings"
	"unicode/utf8"
)

// Dictionary reports whether word is an acceptable guess.
type Dictionary func(word string) bool

// Option configures a Round.
type Option func(*Round)

// WithMaxAttempts sets how many valid guesses the round allows. Values < 1 are ignored.
func WithMaxAttempts(n int) Option {
	return func(r *Round) {
		if n >= 1 {
			r.maxAttempts = n
		}
	}
}

// WithRules selects classification and merge rules.
func WithRules(rules Rules) Option {
	return func(r *Round) { r.rules = rules }
}

// WithDictionary sets the membership check for guesses.
// Without one, any a–z word of the right length is accepted.
func WithDictionary(d Dictionary) Option {
	return func(r *Round) { r.dict = d }
}

// Round is the state of one playthrough.
type Round struct {
	solution    string
	attempt     int
	maxAttempts int
	state       State
	keyboard    KeyboardState
	guesses     []string
	rules       Rules
	dict        Dictionary
}

// NewRound starts a round for solution in AwaitingGuess with attempt 1.
func NewRound(solution string, opts ...Option) (*Round, error) {
	sol := strings.ToLower(strings.TrimSpace(solution))
	if len(sol) != WordLength || !isAlpha(sol) {
		return nil, ErrBadSolution
	}
	r := &Round{
		solution:    sol,
		attempt:     1,
		maxAttempts: DefaultMaxAttempts,
		state:       AwaitingGuess,
		keyboard:    NewKeyboard(),
	}
	for _, o := range opts {
		o(r)
	}
	return r, nil
}

// Advance evaluates one guess.
//
// Transitions:
//   - Invalid guess → Retry with a *ValidationError; nothing changes.
//   - Guess equals solution (case-insensitive) → Won; Attempt is the count used.
//   - Otherwise the attempt counter increments; once it exceeds the maximum
//     the round is Lost and the solution is revealed, else Continue.
//
// Advancing a finished round returns ErrRoundOver.
func (r *Round) Advance(guess string) (Result, error) {
	if r.state != AwaitingGuess {
		return Result{Outcome: Retry, Attempt: r.attempt}, ErrRoundOver
	}
	g := strings.ToLower(strings.TrimSpace(guess))
	if err := r.validate(g); err != nil {
		return Result{Outcome: Retry, Attempt: r.attempt}, &ValidationError{Guess: guess, Err: err}
	}

	used := r.attempt
	c := r.rules.classify(g, r.solution)
	r.rules.merge(&r.keyboard, c, g)
	r.guesses = append(r.guesses, g)
	r.attempt++

	if g == r.solution {
		r.state = Won
		return Result{Outcome: OutcomeWon, Attempt: used, Classification: c}, nil
	}
	if r.attempt > r.maxAttempts {
		r.state = Lost
		return Result{Outcome: OutcomeLost, Attempt: used, Classification: c, Solution: r.solution}, nil
	}
	return Result{Outcome: Continue, Attempt: used, Classification: c}, nil
}

// validate checks length first, then dictionary membership.
func (r *Round) validate(g string) error {
	switch n := utf8.RuneCountInString(g); {
	case n < len(r.solution):
		return ErrTooShort
	case n > len(r.solution):
		return ErrTooLong
	}
	if !isAlpha(g) {
		return ErrNotAWord
	}
	if r.dict != nil && g != r.solution && !r.dict(g) {
		return ErrNotAWord
	}
	return nil
}

// State returns the lifecycle state.
func (r *Round) State() State { return r.state }

// Attempt returns the number the next valid guess will be evaluated as.
func (r *Round) Attempt() int { return r.attempt }

// MaxAttempts returns the configured limit.
func (r *Round) MaxAttempts() int { return r.maxAttempts }

// Rules returns the rules the round plays by.
func (r *Round) Rules() Rules { return r.rules }

// Keyboard returns a copy of the current keyboard.
func (r *Round) Keyboard() KeyboardState { return r.keyboard }

// Guesses returns a copy of the valid guesses so far, in order.
func (r *Round) Guesses() []string { return append([]string(nil), r.guesses...) }

// Solution returns the solution once the round is over, or "" while it is in play.
func (r *Round) Solution() string {
	if r.state == AwaitingGuess {
		return ""
	}
	return r.solution
}
