// Package assets embeds the default word lists.
package assets

import (
	"bufio"
	"embed"
	"io"
	"io/fs"
	"strings"
)

// Names of the embedded lists.
const (
	AnswersFile = "answers.txt"
	AllowedFile = "allowed.txt"
)

//go:embed allowed.txt answers.txt
var FS embed.FS

// ReadList reads one word per line from name in fsys.
// Blank lines and lines starting with '#' are skipped; words are lowercased.
func ReadList(fsys fs.FS, name string) ([]string, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return scanList(f)
}

func scanList(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, strings.ToLower(s))
	}
	return out, sc.Err()
}

// AnswersList returns the embedded solutions.
func AnswersList() ([]string, error) {
	return ReadList(FS, AnswersFile)
}

// AllowedList returns the embedded extra guesses.
func AllowedList() ([]string, error) {
	return ReadList(FS, AllowedFile)
}
