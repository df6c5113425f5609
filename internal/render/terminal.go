// internal/render/terminal.go
//
// Terminal output for the interactive game.
// Responsibilities:
//   - Color tiles and the keyboard summary (green/yellow/red) via lipgloss.
//   - On a TTY, redraw in place with cursor-control escapes so rejected input
//     and the previous prompt are overwritten.
//   - Off a TTY (pipes, tests), write plain lines with a marker row per guess.
//
// Marker row (plain mode): '+' Correct, '?' Misplaced, '-' Incorrect.

package render

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/robalobadob/wordle/apps/infinite/internal/game"
	"github.com/robalobadob/wordle/apps/infinite/internal/puzzle"
)

// Cursor-control sequences.
const (
	eraseLine  = "\x1b[2K"
	lineUp     = "\x1b[1F"
	col0       = "\x1b[0G"
	keysColumn = "\x1b[11G"
)

// Terminal renders game events to w.
type Terminal struct {
	w    io.Writer
	ansi bool

	correct   lipgloss.Style
	misplaced lipgloss.Style
	incorrect lipgloss.Style
}

// Option configures a Terminal.
type Option func(*Terminal)

// WithANSI forces cursor-control redraws on or off.
func WithANSI(on bool) Option { return func(t *Terminal) { t.ansi = on } }

// NewTerminal returns a renderer for w. Cursor control is enabled when w is a terminal.
func NewTerminal(w io.Writer, opts ...Option) *Terminal {
	r := lipgloss.NewRenderer(w)
	t := &Terminal{
		w:         w,
		ansi:      IsTerminal(w),
		correct:   r.NewStyle().Foreground(lipgloss.Color("2")),
		misplaced: r.NewStyle().Foreground(lipgloss.Color("3")),
		incorrect: r.NewStyle().Foreground(lipgloss.Color("1")),
	}
	for _, o := range opts {
		o(t)
	}
	return t
}

// IsTerminal reports whether w is a terminal file.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Header announces a new puzzle.
func (t *Terminal) Header(p puzzle.Puzzle) {
	fmt.Fprintln(t.w, p.Label())
}

// Debug dumps the puzzle, solution included.
func (t *Terminal) Debug(p puzzle.Puzzle) {
	fmt.Fprintf(t.w, "%+v\n", p)
}

// Keyboard writes the summary of known letters: correct, then misplaced,
// then untried, each alphabetical. Incorrect letters are left out.
func (t *Terminal) Keyboard(k game.KeyboardState) {
	line := t.correct.Render(k.Letters(game.Correct)) +
		t.misplaced.Render(k.Letters(game.Misplaced)) +
		k.Letters(game.Unknown)
	if t.ansi {
		fmt.Fprint(t.w, eraseLine+keysColumn+line)
		return
	}
	fmt.Fprintln(t.w, "keys: "+line)
}

// Prompt asks for the guess numbered attempt.
func (t *Terminal) Prompt(attempt int) {
	if t.ansi {
		fmt.Fprintf(t.w, col0+"%d > ", attempt)
		return
	}
	fmt.Fprintf(t.w, "%d > ", attempt)
}

// Rejected explains why a guess was not accepted.
func (t *Terminal) Rejected(err error) {
	msg := RejectMessage(err)
	if t.ansi {
		fmt.Fprint(t.w, eraseLine+msg+lineUp)
		return
	}
	fmt.Fprintln(t.w, msg)
}

// RejectMessage maps a validation error to the short text shown to the player.
func RejectMessage(err error) string {
	switch {
	case errors.Is(err, game.ErrTooShort):
		return "Too short!"
	case errors.Is(err, game.ErrTooLong):
		return "Too long!"
	case errors.Is(err, game.ErrNotAWord):
		return "Not a word!"
	}
	return "Try again!"
}

// Feedback redraws the guess numbered attempt with colored tiles.
func (t *Terminal) Feedback(attempt int, guess string, c game.Classification) {
	tiles := t.tiles(guess, c)
	if t.ansi {
		fmt.Fprintf(t.w, eraseLine+lineUp+eraseLine+"%d > %s\n", attempt, tiles)
		return
	}
	fmt.Fprintf(t.w, "%d > %s  %s\n", attempt, tiles, Markers(c))
}

// Won congratulates the player.
func (t *Terminal) Won(attempt int, guess, encouragement string) {
	word := t.correct.Render(strings.ToLower(guess))
	if t.ansi {
		fmt.Fprintf(t.w, eraseLine+lineUp+eraseLine+"%d > %s\n", attempt, word)
	} else {
		fmt.Fprintf(t.w, "%d > %s  %s\n", attempt, word, strings.Repeat("+", len(guess)))
	}
	fmt.Fprintf(t.w, "%s took %d %s!\n", encouragement, attempt, Tries(attempt))
}

// Lost reveals the solution.
func (t *Terminal) Lost(solution string) {
	fmt.Fprintf(t.w, "Solution was %s\n", solution)
}

func (t *Terminal) tiles(guess string, c game.Classification) string {
	var b strings.Builder
	for i := 0; i < len(guess) && i < len(c); i++ {
		ch := strings.ToLower(guess[i : i+1])
		switch c[i] {
		case game.Correct:
			b.WriteString(t.correct.Render(ch))
		case game.Misplaced:
			b.WriteString(t.misplaced.Render(ch))
		default:
			b.WriteString(t.incorrect.Render(ch))
		}
	}
	return b.String()
}

// Markers renders a classification as '+', '?', '-'.
func Markers(c game.Classification) string {
	b := make([]byte, len(c))
	for i, s := range c {
		switch s {
		case game.Correct:
			b[i] = '+'
		case game.Misplaced:
			b[i] = '?'
		default:
			b[i] = '-'
		}
	}
	return string(b)
}

// Tries pluralizes "try".
func Tries(n int) string {
	if n == 1 {
		return "try"
	}
	return "tries"
}
