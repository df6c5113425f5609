// internal/game/classify.go
//
// Letter classification: compares a guess to a solution position by position.
//
// Notes:
//   - Both inputs are expected to be lowercase a–z of equal length; Round
//     validates guesses before they get here.
//   - Classify is the rule the game ships with. ClassifyCanonical is the
//     two-pass, count-capped rule, selected with RulesCanonical.

package game

import "strings"

// Classify returns per-position feedback for guess against solution.
//
// For each position i:
//   - guess[i] == solution[i]              → Correct
//   - guess[i] appears anywhere in solution → Misplaced
//   - otherwise                            → Incorrect
//
// Repeated letters are not counted: a letter that occurs once in the solution
// and twice in the wrong places of a guess is Misplaced at both positions.
func Classify(guess, solution string) Classification {
	n := len(guess)
	res := make(Classification, n)
	for i := 0; i < n; i++ {
		switch {
		case i < len(solution) && guess[i] == solution[i]:
			res[i] = Correct
		case strings.IndexByte(solution, guess[i]) >= 0:
			res[i] = Misplaced
		default:
			res[i] = Incorrect
		}
	}
	return res
}

// ClassifyCanonical implements the two-pass scoring used by the daily game.
//
// Pass 1:
//   - Mark exact matches as Correct.
//   - Count remaining (unmatched) solution letters.
//
// Pass 2:
//   - For each unmatched guess letter: if a count remains, mark Misplaced and
//     decrement it; otherwise mark Incorrect.
func ClassifyCanonical(guess, solution string) Classification {
	n := len(guess)
	res := make(Classification, n)

	var counts [26]int
	for i := 0; i < n; i++ {
		if i < len(solution) && guess[i] == solution[i] {
			res[i] = Correct
		} else if i < len(solution) {
			if j := idx(solution[i]); j >= 0 {
				counts[j]++
			}
		}
	}

	for i := 0; i < n; i++ {
		if res[i] == Correct {
			continue
		}
		if j := idx(guess[i]); j >= 0 && counts[j] > 0 {
			res[i] = Misplaced
			counts[j]--
		} else {
			res[i] = Incorrect
		}
	}
	return res
}

// classify dispatches on the rules a round plays by.
func (r Rules) classify(guess, solution string) Classification {
	if r == RulesCanonical {
		return ClassifyCanonical(guess, solution)
	}
	return Classify(guess, solution)
}

// idx maps a lowercase ASCII letter to 0..25, or -1.
func idx(b byte) int {
	if b < 'a' || b > 'z' {
		return -1
	}
	return int(b - 'a')
}

// isAlpha reports whether s consists only of lowercase a–z.
func isAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		if idx(s[i]) < 0 {
			return false
		}
	}
	return true
}
