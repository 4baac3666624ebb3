package dict

import "sort"

// Node is one trie node. Its identity is the arena offset of its own label
// record; the root uses offset 0 and owns no label. Children are kept sorted
// ascending by case-insensitive label comparison at all times, which is what
// makes the binary-search lookup correct.
type Node struct {
	offset   uint32
	children []*Node
}

// Offset returns the arena offset identifying this node's label record.
func (n *Node) Offset() uint32 {
	return n.offset
}

// compareLabel compares a stored label against a query label, ASCII
// case-insensitively. Bytes are compared up to the shorter length; on a tie
// the shorter label sorts first, so "com" < "common".
func compareLabel(stored []byte, query string) int {
	limit := len(stored)
	if len(query) < limit {
		limit = len(query)
	}

	for i := 0; i < limit; i++ {
		a, b := foldASCII(stored[i]), foldASCII(query[i])
		if a != b {
			if a < b {
				return -1
			}
			return 1
		}
	}

	switch {
	case len(stored) == len(query):
		return 0
	case len(stored) < len(query):
		return -1
	default:
		return 1
	}
}

// foldASCII lowercases a single ASCII byte. No locale, no Unicode.
func foldASCII(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}

	return c
}

// findChild binary-searches n's ordered children for label. It returns the
// child and true on a hit, or the sorted insertion index and false on a miss.
func (n *Node) findChild(a *Arena, label string) (*Node, int, bool) {
	idx := sort.Search(len(n.children), func(i int) bool {
		child := n.children[i]
		stored := a.buf[child.offset+1 : int(child.offset)+1+int(a.buf[child.offset])]

		return compareLabel(stored, label) >= 0
	})

	if idx < len(n.children) {
		child := n.children[idx]
		stored := a.buf[child.offset+1 : int(child.offset)+1+int(a.buf[child.offset])]
		if compareLabel(stored, label) == 0 {
			return child, idx, true
		}
	}

	return nil, idx, false
}

// insertChild returns the child of n holding label, creating it if absent.
//
// On a hit the existing node is returned unchanged and no arena byte is
// written. On a miss the label is appended to the arena and a new leaf is
// spliced in at the sorted position. The created flag reports which case ran.
func (n *Node) insertChild(a *Arena, label string) (*Node, bool, error) {
	child, idx, ok := n.findChild(a, label)
	if ok {
		return child, false, nil
	}

	off, err := a.Append(label)
	if err != nil {
		return nil, false, err
	}

	child = &Node{offset: off}
	n.children = append(n.children, nil)
	copy(n.children[idx+1:], n.children[idx:])
	n.children[idx] = child

	return child, true, nil
}
