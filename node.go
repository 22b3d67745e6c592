package skiplist

import "fmt"

// Node holds one key and a forward link per level the node participates in.
// Nodes are created by Insert and never change key or height afterwards.
type Node[K any] struct {
	key   K
	links []*Node[K]
}

func newNode[K any](key K, height int) *Node[K] {
	return &Node[K]{
		key:   key,
		links: make([]*Node[K], height),
	}
}

// Key returns the stored key.
func (n *Node[K]) Key() K {
	return n.key
}

// Height returns the number of levels the node is linked at.
func (n *Node[K]) Height() int {
	return len(n.links)
}

// Next returns the successor at the given level, or nil if the node is the
// last one at that level. Accessing a level outside [0, Height()) is an
// internal bug in traversal or splice logic, so it panics rather than
// returning an error.
func (n *Node[K]) Next(level int) *Node[K] {
	if level < 0 || level >= len(n.links) {
		panic(fmt.Sprintf("skiplist: link level %d out of range for node of height %d", level, len(n.links)))
	}
	return n.links[level]
}

func (n *Node[K]) setNext(level int, next *Node[K]) {
	if level < 0 || level >= len(n.links) {
		panic(fmt.Sprintf("skiplist: link level %d out of range for node of height %d", level, len(n.links)))
	}
	n.links[level] = next
}
