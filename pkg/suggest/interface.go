// Package suggest ranks trie completions and wraps a trie in a service that is safe for concurrent use.
package suggest

// ICompleter defines the interface for word completion engines
type ICompleter interface {
	// Complete returns suggestions for a given prefix with a limit
	Complete(prefix string, limit int) []Suggestion

	// AddWord adds a word with its frequency to the completer
	AddWord(word string, frequency int)

	// RemoveWord deletes a word, reporting whether it was present
	RemoveWord(word string) bool

	// Contains reports whether the exact word is present
	Contains(word string) bool

	// Count returns how many words start with prefix
	Count(prefix string) int

	// Frequency returns the accumulated frequency of a word
	Frequency(word string) (int, bool)

	// Stats returns statistics about the loaded dictionary
	Stats() map[string]int
}
