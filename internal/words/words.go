// internal/words/words.go
//
// Dictionary used to accept or reject guesses.
//
// Word Lists:
//   - "answers": solutions the offline puzzle source picks from.
//   - "allowed": other valid guesses (answers are always allowed too).
//
// Load behavior:
//   1. If WORDS_ANSWERS_FILE and WORDS_ALLOWED_FILE are both set,
//      load answers from the first and allowed guesses from the second.
//   2. If only WORDS_ALLOWED_FILE is set,
//      load that file and use it for both answers and allowed guesses.
//   3. Otherwise use the lists embedded in the assets package.
//
// Constraints:
//   • Words must be 5 alphabetic letters (a–z); anything else is dropped.
//   • Lists are normalized to lowercase.

package words

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/infinite/assets"
)

// Environment variables naming external list files.
const (
	EnvAnswersFile = "WORDS_ANSWERS_FILE"
	EnvAllowedFile = "WORDS_ALLOWED_FILE"
)

// ErrEmpty is returned when no usable words were loaded.
var ErrEmpty = errors.New("words: allowed list is empty")

// Lexicon is an immutable set of acceptable guesses plus the answer list.
type Lexicon struct {
	answers []string
	allowed map[string]struct{}
}

// New builds a Lexicon. Entries that are not 5 letters a–z are dropped and
// every answer is also allowed.
func New(answers, allowed []string) (*Lexicon, error) {
	ans := normalize(answers)
	lx := &Lexicon{answers: ans, allowed: toSet(ans)}
	for _, w := range normalize(allowed) {
		lx.allowed[w] = struct{}{}
	}
	if len(lx.allowed) == 0 {
		return nil, ErrEmpty
	}
	return lx, nil
}

// Load builds the Lexicon from env-provided files or the embedded defaults.
func Load() (*Lexicon, error) {
	answersPath := os.Getenv(EnvAnswersFile)
	allowedPath := os.Getenv(EnvAllowedFile)

	var ansList, allowList []string
	var err error
	switch {
	case answersPath != "" && allowedPath != "":
		if ansList, err = readWordFile(answersPath); err != nil {
			return nil, err
		}
		if allowList, err = readWordFile(allowedPath); err != nil {
			return nil, err
		}

	case allowedPath != "":
		if allowList, err = readWordFile(allowedPath); err != nil {
			return nil, err
		}
		ansList = allowList

	default:
		if ansList, err = assets.AnswersList(); err != nil {
			return nil, fmt.Errorf("words: embedded answers: %w", err)
		}
		if allowList, err = assets.AllowedList(); err != nil {
			return nil, fmt.Errorf("words: embedded allowed: %w", err)
		}
	}

	lx, err := New(ansList, allowList)
	if err != nil {
		return nil, err
	}
	a, g := lx.Stats()
	log.Debug().Int("answers", a).Int("allowed", g).Msg("word lists loaded")
	return lx, nil
}

// readWordFile loads one word per line from a file on disk.
func readWordFile(path string) ([]string, error) {
	list, err := assets.ReadList(os.DirFS(filepath.Dir(path)), filepath.Base(path))
	if err != nil {
		return nil, fmt.Errorf("words: read %s: %w", path, err)
	}
	return list, nil
}

// normalize lowercases, trims, and keeps only 5-letter a–z words.
func normalize(list []string) []string {
	out := make([]string, 0, len(list))
	for _, w := range list {
		w = strings.TrimSpace(strings.ToLower(w))
		if len(w) == 5 && isAlpha(w) {
			out = append(out, w)
		}
	}
	return out
}

func toSet(list []string) map[string]struct{} {
	m := make(map[string]struct{}, len(list))
	for _, w := range list {
		m[w] = struct{}{}
	}
	return m
}

func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// Contains reports whether w is a valid guess (case-insensitive).
func (l *Lexicon) Contains(w string) bool {
	_, ok := l.allowed[strings.ToLower(w)]
	return ok
}

// Answers returns the answer list. Callers must not modify it.
func (l *Lexicon) Answers() []string { return l.answers }

// Stats returns counts of loaded words: (answers, allowed).
func (l *Lexicon) Stats() (answersCount int, allowedCount int) {
	return len(l.answers), len(l.allowed)
}
