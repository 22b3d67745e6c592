// Package skiplist provides an in-memory, probabilistically balanced ordered
// container with expected O(log n) insert, erase, and lookup. It is generic
// over the key type and an injected strict weak ordering, single-threaded by
// contract, and deterministic: node heights are drawn from a seeded generator
// so the same seed always produces the same structure.
package skiplist

import "cmp"

// SkipList is an ordered set of keys. The zero value is not usable; construct
// with New or NewOrdered. A SkipList must not be accessed concurrently from
// multiple goroutines without external synchronization.
type SkipList[K any] struct {
	header    *Node[K]
	size      int
	maxHeight int
	less      Less[K]
	rng       *rng
}

// New returns an empty list ordered by less.
// It panics if less is nil.
func New[K any](less Less[K], opts ...Option) *SkipList[K] {
	if less == nil {
		panic("skiplist: ordering relation must not be nil")
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	var sentinel K
	return &SkipList[K]{
		header:    newNode(sentinel, cfg.maxHeight),
		maxHeight: cfg.maxHeight,
		less:      less,
		rng:       newRNG(cfg.seed),
	}
}

// NewOrdered returns an empty list using the key type's natural ordering.
func NewOrdered[K cmp.Ordered](opts ...Option) *SkipList[K] {
	return New[K](func(a, b K) bool { return a < b }, opts...)
}

// equal reports key equivalence under the ordering relation: neither key is
// ordered before the other.
func (l *SkipList[K]) equal(a, b K) bool {
	return !l.less(a, b) && !l.less(b, a)
}

// Empty reports whether the list holds no keys.
func (l *SkipList[K]) Empty() bool {
	return l.size == 0
}

// Size returns the number of keys in the list.
func (l *SkipList[K]) Size() int {
	return l.size
}

// MaxHeight returns the configured bound on node heights.
func (l *SkipList[K]) MaxHeight() int {
	return l.maxHeight
}

// Front returns the smallest node, or nil if the list is empty. Following
// Next(0) from it visits every key in ascending order.
func (l *SkipList[K]) Front() *Node[K] {
	return l.header.links[0]
}

// FrontAt returns the first node linked at the given level, or nil if that
// level is empty. It panics when level is outside [0, MaxHeight()).
func (l *SkipList[K]) FrontAt(level int) *Node[K] {
	return l.header.Next(level)
}

// findPredecessors descends from the highest level to level 0 and records,
// per level, the rightmost node whose key is strictly less than key (the
// header when no such node exists). This is the update path every mutation
// splices against.
func (l *SkipList[K]) findPredecessors(key K) []*Node[K] {
	update := make([]*Node[K], l.maxHeight)
	x := l.header
	for i := l.maxHeight - 1; i >= 0; i-- {
		for next := x.links[i]; next != nil && l.less(next.key, key); next = x.links[i] {
			x = next
		}
		update[i] = x
	}
	return update
}

// Contains reports whether a key equivalent to key is in the list. The
// descent returns as soon as any level reaches an equivalent key.
func (l *SkipList[K]) Contains(key K) bool {
	x := l.header
	for i := l.maxHeight - 1; i >= 0; i-- {
		for {
			next := x.links[i]
			if next == nil || l.less(key, next.key) {
				break
			}
			if !l.less(next.key, key) {
				return true
			}
			x = next
		}
	}
	return false
}

// Insert adds key to the list. It returns false and leaves the list
// unchanged if an equivalent key is already present.
func (l *SkipList[K]) Insert(key K) bool {
	update := l.findPredecessors(key)
	if next := update[0].links[0]; next != nil && l.equal(next.key, key) {
		return false
	}

	height := l.rng.randomHeight(l.maxHeight)
	n := newNode(key, height)
	for i := 0; i < height; i++ {
		n.setNext(i, update[i].links[i])
		update[i].setNext(i, n)
	}

	l.size++
	return true
}

// Erase removes the key equivalent to key. It returns false and leaves the
// list unchanged if no such key is present.
func (l *SkipList[K]) Erase(key K) bool {
	update := make([]*Node[K], l.maxHeight)
	var target *Node[K]

	x := l.header
	for i := l.maxHeight - 1; i >= 0; i-- {
		for {
			next := x.links[i]
			if next == nil || l.less(key, next.key) {
				break
			}
			if l.less(next.key, key) {
				x = next
				continue
			}
			// next is equivalent to key: remember it and stop advancing, so
			// x stays the true predecessor at this level.
			target = next
			break
		}
		update[i] = x
	}

	if target == nil {
		return false
	}

	for i := 0; i < target.Height(); i++ {
		update[i].setNext(i, target.links[i])
		target.setNext(i, nil)
	}

	l.size--
	return true
}

// Clear removes every key. The forward chains are unlinked level by level
// with an explicit loop: a list of n nodes must never cost n stack frames to
// tear down, and severed links keep the collector from tracing a long chain.
func (l *SkipList[K]) Clear() {
	l.size = 0
	for i := 0; i < l.maxHeight; i++ {
		curr := l.header.links[i]
		l.header.links[i] = nil
		for curr != nil {
			next := curr.links[i]
			curr.links[i] = nil
			curr = next
		}
	}
}
