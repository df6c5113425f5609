package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyboardMerge(t *testing.T) {
	k := NewKeyboard()
	for r := 'a'; r <= 'z'; r++ {
		assert.Equal(t, Unknown, k.Get(r))
	}

	k.Merge(Classify("arose", "crane"), "arose")
	assert.Equal(t, Misplaced, k.Get('a'))
	assert.Equal(t, Misplaced, k.Get('r'))
	assert.Equal(t, Incorrect, k.Get('o'))
	assert.Equal(t, Incorrect, k.Get('s'))
	assert.Equal(t, Correct, k.Get('e'))
	assert.Equal(t, Unknown, k.Get('c'), "letters not guessed stay unknown")

	k.Merge(Classify("crane", "crane"), "crane")
	assert.Equal(t, Correct, k.Get('a'))
	assert.Equal(t, Correct, k.Get('C'), "lookup is case-insensitive")
}

func TestKeyboardMerge_CorrectIsNotDowngradedByMisplaced(t *testing.T) {
	k := NewKeyboard()
	k.Merge(Classification{Correct}, "e")
	k.Merge(Classification{Misplaced}, "e")
	assert.Equal(t, Correct, k.Get('e'))
}

func TestKeyboardMerge_IncorrectOverwrites(t *testing.T) {
	k := NewKeyboard()
	k.Merge(Classification{Misplaced}, "q")
	k.Merge(Classification{Incorrect}, "q")
	assert.Equal(t, Incorrect, k.Get('q'))
}

func TestKeyboardMerge_CorrectNeverRegressesAcrossGuesses(t *testing.T) {
	solution := "smell"
	k := NewKeyboard()
	for _, g := range []string{"spell", "lemon", "shell", "llama", "smelt"} {
		before := k
		k.Merge(Classify(g, solution), g)
		for i := range before {
			if before[i] == Correct {
				assert.Equal(t, Correct, k[i], "letter %c after %q", 'a'+i, g)
			}
		}
	}
}

func TestKeyboardMergeMonotonic(t *testing.T) {
	k := NewKeyboard()
	k.MergeMonotonic(Classification{Misplaced}, "q")
	k.MergeMonotonic(Classification{Incorrect}, "q")
	assert.Equal(t, Misplaced, k.Get('q'))

	k.MergeMonotonic(Classification{Correct}, "q")
	k.MergeMonotonic(Classification{Misplaced}, "q")
	assert.Equal(t, Correct, k.Get('q'))
}

func TestKeyboardLetters(t *testing.T) {
	k := NewKeyboard()
	k.Merge(Classify("arose", "crane"), "arose")

	assert.Equal(t, "e", k.Letters(Correct))
	assert.Equal(t, "ar", k.Letters(Misplaced))
	assert.Equal(t, "os", k.Letters(Incorrect))
	assert.Len(t, k.Letters(Unknown), 21)
	assert.Equal(t, Misplaced, k.Map()["a"])
}

func TestKeyboardIsAValue(t *testing.T) {
	k := NewKeyboard()
	cp := k
	k.Merge(Classification{Correct}, "z")
	assert.Equal(t, Unknown, cp.Get('z'))
}
