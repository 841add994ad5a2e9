package suggest

import (
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/bastiangx/wordtrie/pkg/dictionary"
	"github.com/bastiangx/wordtrie/pkg/trie"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCompleter(opts Options) *Completer {
	c := NewCompleter(opts)
	for w, f := range programmingWords {
		c.AddWord(w, f)
	}
	return c
}

func words(suggestions []Suggestion) []string {
	out := make([]string, len(suggestions))
	for i, s := range suggestions {
		out[i] = s.Word
	}
	return out
}

func TestCompleterComplete(t *testing.T) {
	for _, size := range []int{0, 16} {
		t.Run(fmt.Sprintf("cache_%d", size), func(t *testing.T) {
			c := newTestCompleter(Options{CacheSize: size})

			want := []string{"programming", "program", "project", "product", "programmer"}
			assert.Equal(t, want, words(c.Complete("pro", 5)))
			// second call may come from the cache and must match
			assert.Equal(t, want, words(c.Complete("pro", 5)))
			assert.Empty(t, c.Complete("xyz", 5))
		})
	}
}

func TestCompleterCacheInvalidation(t *testing.T) {
	c := newTestCompleter(Options{CacheSize: 16})

	assert.Equal(t, "programming", c.Complete("pro", 3)[0].Word)

	c.AddWord("protocol", 500)
	assert.Equal(t, "protocol", c.Complete("pro", 3)[0].Word)

	require.True(t, c.RemoveWord("protocol"))
	assert.Equal(t, "programming", c.Complete("pro", 3)[0].Word)

	c.AddWord("program", 100)
	assert.Equal(t, Suggestion{Word: "program", Frequency: 200}, c.Complete("pro", 3)[0])

	assert.False(t, c.RemoveWord("protocol"))
}

func TestCompleterMinFrequency(t *testing.T) {
	c := newTestCompleter(Options{MinFrequency: 85})
	assert.Equal(t, []string{"programming", "program", "project", "product"}, words(c.Complete("pro", 10)))
	// Membership and counts ignore the threshold.
	assert.True(t, c.Contains("progress"))
	assert.Equal(t, 7, c.Count("pro"))
}

func TestCompleterPreserveCase(t *testing.T) {
	c := newTestCompleter(Options{PreserveCase: true, CacheSize: 4})
	assert.Equal(t, []string{"Programming", "Program"}, words(c.Complete("Pro", 2)))
	// The cached lower-case result is not affected by the previous call.
	assert.Equal(t, []string{"programming", "program"}, words(c.Complete("pro", 2)))
}

func TestCompleterPreserveCaseRuneCountChange(t *testing.T) {
	c := NewCompleter(Options{PreserveCase: true})
	c.AddWord("İstanbul", 5)
	c.AddWord("Ankara", 3)

	// İ lower-cases to i plus a combining dot, so the typed capitals no
	// longer line up with the stored word and it is returned as stored.
	got := words(c.Complete("İs", 1))
	assert.Equal(t, []string{trie.Normalize("İstanbul")}, got)

	assert.Equal(t, []string{"Ankara"}, words(c.Complete("An", 1)))
}

func TestCompleterQueries(t *testing.T) {
	c := newTestCompleter(Options{})

	assert.True(t, c.Contains("Java"))
	assert.False(t, c.Contains("jav"))
	assert.Equal(t, 2, c.Count("jav"))
	freq, ok := c.Frequency("web")
	assert.True(t, ok)
	assert.Equal(t, 140, freq)

	stats := c.Stats()
	assert.Equal(t, len(programmingWords), stats["totalWords"])
	assert.Equal(t, 150, stats["maxFrequency"])
	assert.Equal(t, 0, stats["hotCache"])
}

func TestCompleterEntriesAndDump(t *testing.T) {
	c := NewCompleter(Options{CacheSize: 8})
	n := c.AddEntries([]dictionary.Entry{{Word: "cat", Frequency: 1}, {Word: "car", Frequency: 3}, {Word: "card", Frequency: 2}})
	assert.Equal(t, 3, n)
	assert.Equal(t, 3, c.Count("ca"))

	path := filepath.Join(t.TempDir(), "words.msgpack")
	require.NoError(t, c.Dump(path))
	entries, err := dictionary.LoadFile(path, "")
	require.NoError(t, err)
	assert.Len(t, entries, 3)

	assert.Error(t, c.Dump(filepath.Join(t.TempDir(), "words.txt")))
}

func TestCompleterConcurrentUse(t *testing.T) {
	c := newTestCompleter(Options{CacheSize: 8})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			word := fmt.Sprintf("prox%d", i)
			for j := 0; j < 50; j++ {
				c.AddWord(word, 1)
				c.Complete("pro", 5)
				c.Count("pro")
				c.RemoveWord(word)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 7, c.Count("pro"))
	assert.Equal(t, "programming", c.Complete("pro", 1)[0].Word)
}
