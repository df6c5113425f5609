// internal/game/keyboard.go
//
// KeyboardState: the best-known state of each of the 26 letters within a round.
// It is a plain value; each Round owns its own and a new round starts from
// NewKeyboard().

package game

import "strings"

// KeyboardState maps 'a'..'z' to a LetterState.
type KeyboardState [26]LetterState

// NewKeyboard returns a keyboard with every letter Unknown.
func NewKeyboard() KeyboardState { return KeyboardState{} }

// Get returns the state of letter r. Non-letters report Unknown.
func (k *KeyboardState) Get(r rune) LetterState {
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}
	if r < 'a' || r > 'z' {
		return Unknown
	}
	return k[r-'a']
}

// Merge folds one guess's classification into the keyboard:
//   - Correct always wins.
//   - Misplaced is applied unless the letter is already Correct.
//   - Incorrect is applied unconditionally. Classify never reports Incorrect
//     for a letter present in the solution, so against the same solution this
//     cannot weaken a Misplaced or Correct key.
//
// Letters not in guess are left alone.
func (k *KeyboardState) Merge(c Classification, guess string) {
	for i := 0; i < len(c) && i < len(guess); i++ {
		j := idx(guess[i])
		if j < 0 {
			continue
		}
		switch c[i] {
		case Correct:
			k[j] = Correct
		case Misplaced:
			if k[j] != Correct {
				k[j] = Misplaced
			}
		case Incorrect:
			k[j] = Incorrect
		}
	}
}

// MergeMonotonic folds a classification without ever weakening a letter:
// Unknown < Incorrect < Misplaced < Correct.
func (k *KeyboardState) MergeMonotonic(c Classification, guess string) {
	for i := 0; i < len(c) && i < len(guess); i++ {
		j := idx(guess[i])
		if j >= 0 && c[i] > k[j] {
			k[j] = c[i]
		}
	}
}

// Letters returns, in alphabetical order, every letter currently in state s.
func (k *KeyboardState) Letters(s LetterState) string {
	var b strings.Builder
	for i, st := range k {
		if st == s {
			b.WriteByte(byte('a' + i))
		}
	}
	return b.String()
}

// Map returns the keyboard as letter → state name, for JSON payloads.
func (k *KeyboardState) Map() map[string]LetterState {
	out := make(map[string]LetterState, len(k))
	for i, st := range k {
		out[string(rune('a'+i))] = st
	}
	return out
}

func (r Rules) merge(k *KeyboardState, c Classification, guess string) {
	if r == RulesCanonical {
		k.MergeMonotonic(c, guess)
		return
	}
	k.Merge(c, guess)
}
