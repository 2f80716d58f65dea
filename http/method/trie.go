package method

// Node is a position in the methods prefix tree. A node is reached by feeding it
// the characters of a method name one by one, starting from the Root.
type Node uint8

// Root is the initial node. As no other node points back to it, it also serves as
// a "no transition" marker.
const Root Node = 0

const alphabet = 'z' - 'a' + 1

type trieNode struct {
	next   [alphabet]Node
	method Method
}

var trie = newTrie(List)

func newTrie(methods []Method) []trieNode {
	nodes := make([]trieNode, 1, 64)

	for _, m := range methods {
		name, current := m.String(), Root

		for i := 0; i < len(name); i++ {
			letter := (name[i] | 0x20) - 'a'
			if nodes[current].next[letter] == Root {
				nodes = append(nodes, trieNode{})
				nodes[current].next[letter] = Node(len(nodes) - 1)
			}

			current = nodes[current].next[letter]
		}

		nodes[current].method = m
	}

	return nodes
}

// Step advances the node by a single character, ignoring its case. It fails as soon
// as no known method continues the observed prefix with c.
func Step(node Node, c byte) (Node, bool) {
	c |= 0x20
	if c < 'a' || c > 'z' {
		return node, false
	}

	next := trie[node].next[c-'a']

	return next, next != Root
}

// Method returns the method whose name ends at the node, or Unknown if the node is
// merely a prefix.
func (n Node) Method() Method {
	return trie[n].method
}
