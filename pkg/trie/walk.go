package trie

// VisitorFunc is called for every word found by Walk.
// Returning a non-nil error stops the walk.
type VisitorFunc func(word string, freq int) error

type frame struct {
	n    *node
	word string
}

// Walk calls visit for every word that starts with prefix, including prefix
// itself when it is a word. Words are passed in normalized form and in no
// particular order. A prefix with no matching path visits nothing.
//
// The subtree is traversed with an explicit stack, so deep words do not grow
// the call stack. visit must not modify the trie.
func (t *Trie) Walk(prefix string, visit VisitorFunc) error {
	prefix = Normalize(prefix)
	start := t.find(prefix)
	if start == nil {
		return nil
	}

	stack := []frame{{n: start, word: prefix}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.n.terminal {
			if err := visit(f.word, f.n.frequency); err != nil {
				return err
			}
		}
		for r, child := range f.n.children {
			stack = append(stack, frame{n: child, word: f.word + string(r)})
		}
	}
	return nil
}
