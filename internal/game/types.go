// internal/game/types.go
//
// Core type definitions for the guess evaluation engine.
// Defines:
//   - LetterState: per-letter feedback for a guess, and the best-known state of a key.
//   - Classification: ordered per-position feedback for one guess.
//   - Outcome/Result: the tagged transition returned by Round.Advance.
//   - Rules: which classification and merge rules a round plays by.

package game

import "fmt"

// WordLength is the fixed puzzle width.
const WordLength = 5

// DefaultMaxAttempts is the number of valid guesses a round allows unless configured.
const DefaultMaxAttempts = 6

// LetterState is the evaluation result for a single letter.
// Possible values:
//   - Unknown:   letter has never been guessed this round.
//   - Incorrect: letter is not in the solution.
//   - Misplaced: letter is in the solution but not at the guessed position.
//   - Correct:   letter is at the guessed position.
type LetterState uint8

const (
	Unknown LetterState = iota
	Incorrect
	Misplaced
	Correct
)

var letterStateNames = [...]string{
	Unknown:   "unknown",
	Incorrect: "incorrect",
	Misplaced: "misplaced",
	Correct:   "correct",
}

func (s LetterState) String() string {
	if int(s) < len(letterStateNames) {
		return letterStateNames[s]
	}
	return fmt.Sprintf("LetterState(%d)", uint8(s))
}

// MarshalText encodes the state by name so JSON payloads read "correct", not 3.
func (s LetterState) MarshalText() ([]byte, error) {
	if int(s) >= len(letterStateNames) {
		return nil, fmt.Errorf("game: invalid letter state %d", uint8(s))
	}
	return []byte(letterStateNames[s]), nil
}

// UnmarshalText decodes a state name produced by MarshalText.
func (s *LetterState) UnmarshalText(b []byte) error {
	for i, name := range letterStateNames {
		if name == string(b) {
			*s = LetterState(i)
			return nil
		}
	}
	return fmt.Errorf("game: unknown letter state %q", b)
}

// Classification holds one LetterState per guess position.
// It is created fresh for every guess and never mutated afterwards.
type Classification []LetterState

// AllCorrect reports whether every position is Correct.
func (c Classification) AllCorrect() bool {
	if len(c) == 0 {
		return false
	}
	for _, s := range c {
		if s != Correct {
			return false
		}
	}
	return true
}

// State is the round lifecycle state.
type State uint8

const (
	AwaitingGuess State = iota
	Won
	Lost
)

func (s State) String() string {
	switch s {
	case AwaitingGuess:
		return "awaiting_guess"
	case Won:
		return "won"
	case Lost:
		return "lost"
	}
	return fmt.Sprintf("State(%d)", uint8(s))
}

// Outcome tags the transition produced by one call to Round.Advance.
type Outcome uint8

const (
	// Continue: a valid, non-winning guess was evaluated and attempts remain.
	Continue Outcome = iota
	// Retry: the guess was rejected by validation; nothing changed.
	Retry
	// OutcomeWon: the guess matched the solution.
	OutcomeWon
	// OutcomeLost: the last allowed attempt was used without a match.
	OutcomeLost
)

func (o Outcome) String() string {
	switch o {
	case Continue:
		return "continue"
	case Retry:
		return "retry"
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	}
	return fmt.Sprintf("Outcome(%d)", uint8(o))
}

// MarshalText encodes the outcome by name.
func (o Outcome) MarshalText() ([]byte, error) { return []byte(o.String()), nil }

// Result is what Advance hands back to the caller for rendering.
type Result struct {
	Outcome Outcome
	// Attempt is the attempt number the guess was evaluated as.
	// For OutcomeWon it is the number of attempts the round took.
	Attempt int
	// Classification is nil for Retry.
	Classification Classification
	// Solution is only set for OutcomeLost.
	Solution string
}

// Rules selects the classification and keyboard merge rules.
type Rules uint8

const (
	// RulesClassic marks every non-matching letter present anywhere in the
	// solution as Misplaced, and lets a later Incorrect overwrite a key.
	RulesClassic Rules = iota
	// RulesCanonical caps Misplaced marks by the count of unmatched solution
	// letters and never lets a key move to a weaker state.
	RulesCanonical
)

func (r Rules) String() string {
	if r == RulesCanonical {
		return "canonical"
	}
	return "classic"
}

// ParseRules maps a configuration value to Rules.
func ParseRules(s string) (Rules, error) {
	switch s {
	case "", "classic":
		return RulesClassic, nil
	case "canonical":
		return RulesCanonical, nil
	}
	return RulesClassic, fmt.Errorf("game: unknown rules %q", s)
}
