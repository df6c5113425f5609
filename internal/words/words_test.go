package words

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	lx, err := New([]string{"CRANE", "smell", "toolong", "ab"}, []string{"arose", "sp3ll", ""})
	require.NoError(t, err)

	assert.Equal(t, []string{"crane", "smell"}, lx.Answers())
	assert.True(t, lx.Contains("crane"), "answers are allowed")
	assert.True(t, lx.Contains("AROSE"))
	assert.False(t, lx.Contains("sp3ll"))
	assert.False(t, lx.Contains("toolong"))

	a, g := lx.Stats()
	assert.Equal(t, 2, a)
	assert.Equal(t, 3, g)
}

func TestNew_Empty(t *testing.T) {
	_, err := New(nil, []string{"xx"})
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestLoad_Embedded(t *testing.T) {
	t.Setenv(EnvAnswersFile, "")
	t.Setenv(EnvAllowedFile, "")

	lx, err := Load()
	require.NoError(t, err)
	for _, w := range []string{"crane", "arose", "smell", "spell"} {
		assert.True(t, lx.Contains(w), w)
	}
	assert.NotEmpty(t, lx.Answers())
}

func TestLoad_FromFiles(t *testing.T) {
	dir := t.TempDir()
	answers := filepath.Join(dir, "answers.txt")
	allowed := filepath.Join(dir, "allowed.txt")
	require.NoError(t, os.WriteFile(answers, []byte("# comment\nplant\n"), 0o644))
	require.NoError(t, os.WriteFile(allowed, []byte("proxy\nPLUMB\n"), 0o644))

	t.Setenv(EnvAnswersFile, answers)
	t.Setenv(EnvAllowedFile, allowed)
	lx, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"plant"}, lx.Answers())
	assert.True(t, lx.Contains("plumb"))
	assert.False(t, lx.Contains("crane"))

	t.Setenv(EnvAnswersFile, "")
	lx, err = Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"proxy", "plumb"}, lx.Answers())
}

func TestLoad_MissingFile(t *testing.T) {
	t.Setenv(EnvAnswersFile, "")
	t.Setenv(EnvAllowedFile, filepath.Join(t.TempDir(), "nope.txt"))
	_, err := Load()
	assert.Error(t, err)
}
