package command

import (
	"sync"
)

// Node is one word position in the command prefix tree. Children keep
// catalog order.
type Node struct {
	word     string
	children []*Node
	kind     Kind
	terminal bool
}

var (
	treeOnce sync.Once
	treeRoot *Node
)

// Tree returns the prefix tree of all templates, built on first use.
func Tree() *Node {
	treeOnce.Do(func() {
		treeRoot = buildTree()
	})
	return treeRoot
}

func buildTree() *Node {
	root := &Node{}
	for _, e := range catalog {
		current := root
		for _, w := range e.words {
			next := current.child(w)
			if next == nil {
				next = &Node{word: w}
				current.children = append(current.children, next)
			}
			current = next
		}
		current.terminal = true
		current.kind = e.kind
	}
	return root
}

func (n *Node) child(word string) *Node {
	for _, c := range n.children {
		if c.word == word {
			return c
		}
	}
	return nil
}

// Word returns the template word of the node; the root's word is empty.
func (n *Node) Word() string { return n.word }

// Placeholder reports whether the node stands for a placeholder.
func (n *Node) Placeholder() bool { return IsPlaceholder(n.word) }

// Terminal reports whether a complete template ends at this node.
func (n *Node) Terminal() bool { return n.terminal }

// Kind returns the command kind of a terminal node.
func (n *Node) Kind() (Kind, bool) { return n.kind, n.terminal }

// Children returns the nodes reachable by one more word.
func (n *Node) Children() []*Node {
	return append([]*Node(nil), n.children...)
}

// Literals returns the literal words that may follow this node.
func (n *Node) Literals() []string {
	var out []string
	for _, c := range n.children {
		if !c.Placeholder() {
			out = append(out, c.word)
		}
	}
	return out
}

// Step follows one word: an exact literal match wins, otherwise the first
// placeholder child accepts any word.
func (n *Node) Step(word string) *Node {
	for _, c := range n.children {
		if !c.Placeholder() && c.word == word {
			return c
		}
	}
	for _, c := range n.children {
		if c.Placeholder() {
			return c
		}
	}
	return nil
}

// Lookup walks words from n and returns the node reached, or nil when a
// word has no matching child.
func (n *Node) Lookup(words []string) *Node {
	current := n
	for _, w := range words {
		current = current.Step(w)
		if current == nil {
			return nil
		}
	}
	return current
}

// Path walks words from n and returns every node visited, excluding n.
// The walk stops at the first word without a matching child.
func (n *Node) Path(words []string) []*Node {
	var path []*Node
	current := n
	for _, w := range words {
		current = current.Step(w)
		if current == nil {
			break
		}
		path = append(path, current)
	}
	return path
}
