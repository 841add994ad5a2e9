package trie

// edge is one step of a recorded path: the parent and the rune leading to its child.
type edge struct {
	parent *node
	r      rune
}

// Delete removes word and reports whether it was present. An absent word
// leaves the trie untouched.
//
// Every node on the word's path loses one from its count. Branches left
// without a word are pruned from the bottom up, stopping at the first node
// that still ends a word or leads to another one.
func (t *Trie) Delete(word string) bool {
	word = Normalize(word)

	path := make([]edge, 0, len(word))
	n := t.root
	for _, r := range word {
		child, ok := n.children[r]
		if !ok {
			return false
		}
		path = append(path, edge{parent: n, r: r})
		n = child
	}
	if !n.terminal {
		return false
	}

	n.terminal = false
	n.frequency = 0
	n.count--

	pruning := true
	for i := len(path) - 1; i >= 0; i-- {
		e := path[i]
		e.parent.count--
		if !pruning {
			continue
		}
		if e.parent.children[e.r].dead() {
			delete(e.parent.children, e.r)
		} else {
			pruning = false
		}
	}
	return true
}
