package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/baselearn/internal/config"
	"github.com/abhisek/baselearn/internal/course"
)

func defaultGame(t *testing.T) course.Game {
	t.Helper()
	c, err := course.Default()
	require.NoError(t, err)
	m, err := gameModule(c, 0)
	require.NoError(t, err)
	return *m.Game
}

func TestPlayMatchCompletes(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader("1 2\n1 1\n1 1\n2 2\nbogus\n3 3\n4 4\n")

	require.NoError(t, playMatch(in, &out, defaultGame(t), nil))

	got := out.String()
	assert.Contains(t, got, "Match the Terms!")
	assert.Contains(t, got, "Not a match.")
	assert.Contains(t, got, "Layer 2 is already matched.")
	assert.Contains(t, got, "enter a term number")
	assert.Contains(t, got, "Great job!")
}

func TestPlayMatchQuitAndReset(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader("1 1\nr\nq\n")

	require.NoError(t, playMatch(in, &out, defaultGame(t), nil))
	assert.Contains(t, out.String(), "Score: 0/4")
}

func TestPlayMatchInputClosed(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, playMatch(strings.NewReader("1 1\n"), &out, defaultGame(t), nil))
	assert.Contains(t, out.String(), "(input closed)")
	assert.Contains(t, out.String(), "Score: 1/4")
}

func TestGameModule(t *testing.T) {
	c, err := course.Default()
	require.NoError(t, err)

	m, err := gameModule(c, 1)
	require.NoError(t, err)
	assert.Equal(t, "Understanding Base", m.Title)

	_, err = gameModule(c, 2)
	assert.ErrorContains(t, err, "has no matching game")

	_, err = gameModule(c, 7)
	assert.ErrorContains(t, err, "out of range")
}

func TestPrintCourse(t *testing.T) {
	c, err := course.Default()
	require.NoError(t, err)

	var out bytes.Buffer
	printCourse(&out, c)

	got := out.String()
	assert.Contains(t, got, "Base Learning Modules")
	assert.Contains(t, got, "Optimistic Rollup")
	assert.Contains(t, got, "What is a Smart Contract?")
	assert.Contains(t, got, "2 modules, 4 terms")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcd...", truncate("abcdefghij", 7))
}

func TestLoadCourse(t *testing.T) {
	c, err := loadCourse(config.Config{})
	require.NoError(t, err)
	assert.Equal(t, "Base Learning Modules", c.Title)

	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("title: [unterminated"), 0o600))

	_, err = loadCourse(config.Config{CoursePath: path})
	require.Error(t, err)
	assert.Equal(t, 1, strings.Count(err.Error(), path), "file named once: %v", err)
}
