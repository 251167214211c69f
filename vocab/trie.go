package vocab

// node is one rune of a trie path. A node with term set ends a dictionary
// word and carries that word's severity.
type node struct {
	children map[rune]*node
	severity Severity
	term     bool
}

func newNode() *node {
	return &node{children: make(map[rune]*node)}
}

// insert adds a folded word to the trie, reporting whether the terminal is
// new. Severity bits accumulate when the same word is inserted again.
func (n *node) insert(word []rune, severity Severity) bool {
	cur := n
	for _, r := range word {
		next, ok := cur.children[r]
		if !ok {
			next = newNode()
			cur.children[r] = next
		}
		cur = next
	}
	added := !cur.term
	cur.term = true
	cur.severity |= severity
	return added
}

// longestMatch walks the trie over runes[start:], folding each rune with
// fold, and reports the end offset and severity of the longest dictionary
// word found. ok is false when no terminal is reached.
func (n *node) longestMatch(runes []rune, start int, fold func(rune) rune) (end int, severity Severity, ok bool) {
	cur := n
	for i := start; i < len(runes); i++ {
		next, found := cur.children[fold(runes[i])]
		if !found {
			break
		}
		cur = next
		if cur.term {
			end = i + 1
			severity = cur.severity
			ok = true
		}
	}
	return end, severity, ok
}
