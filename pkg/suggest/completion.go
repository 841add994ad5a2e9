package suggest

import (
	"sync"
	"unicode/utf8"

	"github.com/bastiangx/wordtrie/pkg/dictionary"
	"github.com/bastiangx/wordtrie/pkg/trie"
	"github.com/charmbracelet/log"
)

var _ ICompleter = (*Completer)(nil)

// Options tune a Completer.
type Options struct {
	// MinFrequency hides words ranked below it from completions.
	MinFrequency int
	// CacheSize is the number of prefixes kept in the hot cache. 0 disables it.
	CacheSize int
	// PreserveCase re-applies the prefix's capital letters to each suggestion.
	PreserveCase bool
}

// Completer owns a trie and serves completions from it.
// Unlike the trie itself, a Completer is safe for concurrent use.
type Completer struct {
	mu           sync.RWMutex
	trie         *trie.Trie
	engine       *Engine
	hotCache     *HotCache
	minFrequency int
	preserveCase bool
}

// NewCompleter returns a Completer over an empty trie.
func NewCompleter(opts Options) *Completer {
	t := trie.New()
	c := &Completer{
		trie:         t,
		engine:       NewEngine(t),
		minFrequency: opts.MinFrequency,
		preserveCase: opts.PreserveCase,
	}
	if opts.CacheSize > 0 {
		c.hotCache = NewHotCache(opts.CacheSize)
	}
	return c
}

// AddWord inserts word, accumulating frequency if it already exists.
func (c *Completer) AddWord(word string, frequency int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.trie.Insert(word, frequency)
	c.hotCache.Invalidate(trie.Normalize(word))
}

// AddEntries inserts a batch of dictionary entries and returns how many were added.
func (c *Completer) AddEntries(entries []dictionary.Entry) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	before := c.trie.Len()
	n := dictionary.Fill(c.trie, entries)
	c.hotCache.Clear()
	log.Debugf("Added %d entries (%d new words)", n, c.trie.Len()-before)
	return n
}

// RemoveWord deletes word and reports whether it was present.
func (c *Completer) RemoveWord(word string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.trie.Delete(word) {
		return false
	}
	c.hotCache.Invalidate(trie.Normalize(word))
	return true
}

// Contains reports whether word is present.
func (c *Completer) Contains(word string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.trie.Search(word)
}

// Count returns the number of words starting with prefix.
func (c *Completer) Count(prefix string) int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.trie.PrefixCount(prefix)
}

// Frequency returns the accumulated frequency of word.
func (c *Completer) Frequency(word string) (int, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.trie.Frequency(word)
}

// Complete returns up to limit ranked suggestions for prefix.
func (c *Completer) Complete(prefix string, limit int) []Suggestion {
	if limit <= 0 {
		limit = DefaultLimit
	}
	lowerPrefix := trie.Normalize(prefix)

	// The read lock is held across Put so a concurrent writer cannot
	// invalidate the prefix between computing and caching it.
	c.mu.RLock()
	suggestions, ok := c.hotCache.Get(lowerPrefix, limit)
	if !ok {
		suggestions = c.engine.SuggestMin(lowerPrefix, limit, c.minFrequency)
		c.hotCache.Put(lowerPrefix, limit, suggestions)
	}
	c.mu.RUnlock()

	// Positions index the typed prefix, so they only line up with the
	// normalized words when lower-casing kept the rune count.
	if c.preserveCase && utf8.RuneCountInString(prefix) == utf8.RuneCountInString(lowerPrefix) {
		if positions := CapitalPositions(prefix); positions != nil {
			for i := range suggestions {
				suggestions[i].Word = ApplyCapitalization(suggestions[i].Word, positions)
			}
		}
	}
	return suggestions
}

// Dump writes every word to path in the binary dictionary format.
func (c *Completer) Dump(path string) error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return dictionary.DumpFile(path, c.trie)
}

// Stats returns word and cache counters.
func (c *Completer) Stats() map[string]int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	maxFrequency := 0
	_ = c.trie.Walk("", func(_ string, freq int) error {
		maxFrequency = max(maxFrequency, freq)
		return nil
	})

	stats := map[string]int{
		"totalWords":   c.trie.Len(),
		"maxFrequency": maxFrequency,
		"minFrequency": c.minFrequency,
	}

	if c.hotCache != nil {
		for k, v := range c.hotCache.Stats() {
			stats[k] = v
		}
		stats["hotCache"] = 1
	} else {
		stats["hotCache"] = 0
	}

	return stats
}
