package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		guess    string
		solution string
		want     Classification
	}{
		{
			name:     "arose against crane",
			guess:    "arose",
			solution: "crane",
			want:     Classification{Misplaced, Misplaced, Incorrect, Incorrect, Correct},
		},
		{
			name:     "spell against smell",
			guess:    "spell",
			solution: "smell",
			want:     Classification{Correct, Incorrect, Correct, Correct, Correct},
		},
		{
			name:     "exact match",
			guess:    "crane",
			solution: "crane",
			want:     Classification{Correct, Correct, Correct, Correct, Correct},
		},
		{
			name:     "nothing shared",
			guess:    "dumpy",
			solution: "crane",
			want:     Classification{Incorrect, Incorrect, Incorrect, Incorrect, Incorrect},
		},
		{
			// e occurs once in the solution but is marked Misplaced at both
			// wrong positions; repeated letters are not counted.
			name:     "repeated guess letter is misplaced twice",
			guess:    "geese",
			solution: "those",
			want:     Classification{Incorrect, Misplaced, Misplaced, Correct, Correct},
		},
		{
			name:     "repeated letter in guess with single occurrence",
			guess:    "eerie",
			solution: "crane",
			want:     Classification{Misplaced, Misplaced, Misplaced, Incorrect, Correct},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.guess, tt.solution)
			assert.Equal(t, tt.want, got)
			assert.Len(t, got, len(tt.guess))
		})
	}
}

func TestClassify_CorrectPositionIndependentOfOthers(t *testing.T) {
	solution := "plant"
	for _, guess := range []string{"proxy", "plumb", "slant", "giant", "pzzzt"} {
		got := Classify(guess, solution)
		for i := range guess {
			if guess[i] == solution[i] {
				assert.Equal(t, Correct, got[i], "guess %q position %d", guess, i)
			}
		}
	}
}

func TestClassifyCanonical(t *testing.T) {
	tests := []struct {
		guess    string
		solution string
		want     Classification
	}{
		{"geese", "those", Classification{Incorrect, Incorrect, Incorrect, Correct, Correct}},
		{"eerie", "crane", Classification{Incorrect, Incorrect, Misplaced, Incorrect, Correct}},
		{"arose", "crane", Classification{Misplaced, Misplaced, Incorrect, Incorrect, Correct}},
		{"llama", "hello", Classification{Misplaced, Misplaced, Incorrect, Incorrect, Incorrect}},
	}

	for _, tt := range tests {
		t.Run(tt.guess+"/"+tt.solution, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyCanonical(tt.guess, tt.solution))
		})
	}
}

func TestLetterStateText(t *testing.T) {
	for _, s := range []LetterState{Unknown, Incorrect, Misplaced, Correct} {
		b, err := s.MarshalText()
		assert.NoError(t, err)

		var back LetterState
		assert.NoError(t, back.UnmarshalText(b))
		assert.Equal(t, s, back)
	}

	var s LetterState
	assert.Error(t, s.UnmarshalText([]byte("purple")))
}
