package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bastiangx/wordtrie/internal/logger"
	"github.com/bastiangx/wordtrie/pkg/suggest"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runSession(t *testing.T, noFilter bool, input string) (string, *suggest.Completer) {
	t.Helper()
	out, _, c := runLoggedSession(t, noFilter, input)
	return out, c
}

// runLoggedSession also returns what the handler logged.
func runLoggedSession(t *testing.T, noFilter bool, input string) (string, string, *suggest.Completer) {
	t.Helper()
	c := suggest.NewCompleter(suggest.Options{CacheSize: 4})
	var out, logs bytes.Buffer
	l := logger.NewWithConfig(&logs, "cli", log.DebugLevel, false, false, log.LogfmtFormatter)
	h := NewInputHandler(c, 5, noFilter, strings.NewReader(input), &out, false, l)
	require.NoError(t, h.Start())
	return out.String(), logs.String(), c
}

func TestSession(t *testing.T) {
	out, c := runSession(t, false, strings.Join([]string{
		"add cat",
		"add car 3",
		"add card 2",
		`add "new york" 7`,
		"count ca",
		"has car",
		"top ca 2",
		"del car",
		"has car",
		"del car",
		"ca",
		"quit",
		"add never 1",
	}, "\n"))

	assert.Contains(t, out, "added 'car' (freq: 3)")
	assert.Contains(t, out, "3 words start with 'ca'")
	assert.Contains(t, out, "'car' found (freq: 3)")
	assert.Contains(t, out, "Found 2 suggestions for 'ca':")
	assert.Contains(t, out, "deleted 'car'")
	assert.Contains(t, out, "'car' not found")
	assert.Contains(t, out, "'car' is not in the dictionary")

	assert.True(t, c.Contains("new york"))
	assert.False(t, c.Contains("never"))
	assert.Equal(t, 2, c.Count("ca"))
}

func TestSessionRanking(t *testing.T) {
	out, _ := runSession(t, false, "add program 100\nadd programming 120\nadd project 90\npro\n")

	i := strings.Index(out, "programming")
	j := strings.LastIndex(out, " program ")
	k := strings.LastIndex(out, "project")
	require.True(t, i >= 0 && j >= 0 && k >= 0, out)
	assert.Less(t, strings.LastIndex(out, "1. programming"), j)
	assert.Less(t, j, k)
}

func TestSessionFilter(t *testing.T) {
	out, _ := runSession(t, false, "add 123 4\n123\n")
	assert.Contains(t, out, "No suggestions for '123'")

	out, _ = runSession(t, true, "add 123 4\n123\n")
	assert.Contains(t, out, "Found 1 suggestions for '123':")
}

func TestSessionBadInput(t *testing.T) {
	out, logs, c := runLoggedSession(t, false, "add\nadd cat lots\ntop\nstats\n")
	assert.Equal(t, 0, c.Count(""))
	assert.Contains(t, out, "totalWords")

	assert.Contains(t, logs, "prefix=cli")
	assert.Contains(t, logs, "Invalid frequency: lots")
	assert.Contains(t, logs, "'top' needs 1 argument(s)")
}
