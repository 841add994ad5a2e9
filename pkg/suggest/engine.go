package suggest

import (
	"sort"

	"github.com/bastiangx/wordtrie/pkg/trie"
)

// DefaultLimit is used when a caller asks for a non-positive number of suggestions.
const DefaultLimit = 10

// Suggestion is a single ranked completion.
type Suggestion struct {
	Word      string `msgpack:"w"`
	Frequency int    `msgpack:"f"`
}

// Engine ranks the words of a trie that share a prefix.
// It never modifies the trie and keeps no state between calls.
type Engine struct {
	trie *trie.Trie
}

// NewEngine returns an Engine reading from t.
func NewEngine(t *trie.Trie) *Engine {
	return &Engine{trie: t}
}

// Autocomplete returns up to limit words starting with prefix, most frequent
// first. Words with equal frequency are ordered alphabetically. An unknown
// prefix yields an empty slice.
func (e *Engine) Autocomplete(prefix string, limit int) []string {
	suggestions := e.Suggest(prefix, limit)
	words := make([]string, len(suggestions))
	for i, s := range suggestions {
		words[i] = s.Word
	}
	return words
}

// Suggest is Autocomplete with the frequencies kept alongside each word.
func (e *Engine) Suggest(prefix string, limit int) []Suggestion {
	return e.SuggestMin(prefix, limit, 0)
}

// SuggestMin is Suggest restricted to words whose frequency is at least
// minFrequency. The threshold is applied before the limit.
func (e *Engine) SuggestMin(prefix string, limit, minFrequency int) []Suggestion {
	if limit <= 0 {
		limit = DefaultLimit
	}

	suggestions := []Suggestion{}
	_ = e.trie.Walk(prefix, func(word string, freq int) error {
		if freq >= minFrequency {
			suggestions = append(suggestions, Suggestion{Word: word, Frequency: freq})
		}
		return nil
	})

	Rank(suggestions)
	if len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}
	return suggestions
}

// Rank sorts suggestions by frequency (highest first), then by word.
func Rank(suggestions []Suggestion) {
	sort.Slice(suggestions, func(i, j int) bool {
		if suggestions[i].Frequency != suggestions[j].Frequency {
			return suggestions[i].Frequency > suggestions[j].Frequency
		}
		return suggestions[i].Word < suggestions[j].Word
	})
}
