package dict

import "github.com/mineclever/hostpack/errs"

// Dictionary owns one arena and one trie for the lifetime of an encoding
// session. It grows monotonically: there is no deletion or rollback.
type Dictionary struct {
	root  Node
	arena *Arena
	count int
}

// New creates an empty dictionary.
func New() *Dictionary {
	return &Dictionary{arena: NewArena()}
}

// InsertHostname walks name's labels rightmost-first from the trie root,
// creating nodes as needed, and appends each step's arena offset to dst.
//
// The extended offset list is returned in TLD-first order. Empty names and
// empty labels (leading dot, trailing dot, consecutive dots) are rejected;
// on any error no offsets are appended and the dictionary may have grown by
// at most the labels inserted before the failure, which stay valid.
func (d *Dictionary) InsertHostname(dst []uint32, name string) ([]uint32, error) {
	if len(name) == 0 {
		return dst, errs.ErrEmptyHostname
	}

	offsets := dst
	node := &d.root
	last := len(name)

	for i := len(name) - 1; i >= 0; i-- {
		if name[i] != '.' {
			continue
		}

		next, created, err := node.insertChild(d.arena, name[i+1:last])
		if err != nil {
			return dst, err
		}
		if created {
			d.count++
		}

		offsets = append(offsets, next.offset)
		node = next
		last = i
	}

	// leftmost label, with no dot boundary before it
	next, created, err := node.insertChild(d.arena, name[:last])
	if err != nil {
		return dst, err
	}
	if created {
		d.count++
	}

	return append(offsets, next.offset), nil
}

// Hostname reassembles a dotted name from an offset list, validating every
// offset against the arena.
func (d *Dictionary) Hostname(offsets []uint32) (string, error) {
	return d.arena.Hostname(offsets)
}

// Arena returns the dictionary's label arena.
func (d *Dictionary) Arena() *Arena {
	return d.arena
}

// LabelCount returns the number of distinct trie nodes (stored labels).
func (d *Dictionary) LabelCount() int {
	return d.count
}

// Size returns the arena bytes in use, including the two reserved bytes.
func (d *Dictionary) Size() int {
	return d.arena.Size()
}

// Labels returns every stored label, one per trie node, in depth-first
// suffix order. Intended for introspection and tests; cost is linear in the
// dictionary size.
func (d *Dictionary) Labels() []string {
	labels := make([]string, 0, d.count)
	var walk func(n *Node)
	walk = func(n *Node) {
		for _, child := range n.children {
			label, err := d.arena.Label(child.offset)
			if err == nil {
				labels = append(labels, string(label))
			}
			walk(child)
		}
	}
	walk(&d.root)

	return labels
}
