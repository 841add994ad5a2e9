/*
Package trie implements the in-memory prefix index behind wordtrie.

Words are stored one rune per edge under a sentinel root. Every node keeps the
number of words that end in its subtree, so prefix counts are answered in time
proportional to the prefix length instead of the subtree size.

	t := trie.New()
	t.Insert("program", 100)
	t.Insert("programming", 120)
	t.PrefixCount("prog") // 2
	t.Delete("program")   // true

All words and prefixes are lower-cased before use, so lookups are case
insensitive. A Trie is not safe for concurrent use; callers sharing one across
goroutines must guard it themselves (see suggest.Completer).
*/
package trie

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// node is a single vertex. It owns its children exclusively.
type node struct {
	children  map[rune]*node
	terminal  bool
	frequency int
	// count is the number of terminal nodes in this subtree, itself included.
	count int
}

func newNode() *node {
	return &node{children: make(map[rune]*node)}
}

// dead reports whether the node carries no word and leads to none.
func (n *node) dead() bool {
	return !n.terminal && len(n.children) == 0
}

// Trie is a prefix tree of case-normalized words with accumulated frequencies.
type Trie struct {
	root *node
}

// New returns an empty Trie.
func New() *Trie {
	return &Trie{root: newNode()}
}

// Normalize lower-cases s the same way every Trie operation does.
func Normalize(s string) string {
	return cases.Lower(language.Und).String(s)
}

// Add inserts word with a frequency of 1.
func (t *Trie) Add(word string) {
	t.Insert(word, 1)
}

// Insert adds word to the trie, creating missing nodes along its path.
// Inserting a word that is already present adds freq to its frequency
// without counting it twice. Non-positive weights are treated as 1.
// The empty word marks the root itself.
func (t *Trie) Insert(word string, freq int) {
	if freq < 1 {
		freq = 1
	}

	path := []*node{t.root}
	n := t.root
	for _, r := range Normalize(word) {
		child, ok := n.children[r]
		if !ok {
			child = newNode()
			n.children[r] = child
		}
		n = child
		path = append(path, n)
	}

	if !n.terminal {
		n.terminal = true
		for _, p := range path {
			p.count++
		}
	}
	n.frequency += freq
}

// find returns the node reached by following s from the root, or nil.
func (t *Trie) find(s string) *node {
	n := t.root
	for _, r := range s {
		child, ok := n.children[r]
		if !ok {
			return nil
		}
		n = child
	}
	return n
}

// Search reports whether word is present.
func (t *Trie) Search(word string) bool {
	n := t.find(Normalize(word))
	return n != nil && n.terminal
}

// Frequency returns the accumulated frequency of word and whether it is present.
func (t *Trie) Frequency(word string) (int, bool) {
	n := t.find(Normalize(word))
	if n == nil || !n.terminal {
		return 0, false
	}
	return n.frequency, true
}

// PrefixCount returns the number of present words starting with prefix.
// The empty prefix counts every word.
func (t *Trie) PrefixCount(prefix string) int {
	n := t.find(Normalize(prefix))
	if n == nil {
		return 0
	}
	return n.count
}

// Len returns the number of distinct words in the trie.
func (t *Trie) Len() int {
	return t.root.count
}
