package skiplist

// Iterator provides a forward-only view over the list in key order.
// Mutating the list invalidates any iterator derived from it.
type Iterator[K any] struct {
	l       *SkipList[K]
	current *Node[K]
	started bool
}

// Iterator returns a new iterator positioned before the first key.
func (l *SkipList[K]) Iterator() *Iterator[K] {
	return &Iterator[K]{l: l}
}

// SeekGE returns an iterator positioned at the first key that is not ordered
// before key. The iterator is valid iff such a key exists.
func (l *SkipList[K]) SeekGE(key K) *Iterator[K] {
	it := l.Iterator()
	it.SeekGE(key)
	return it
}

// Valid reports whether the iterator currently points at a key.
func (it *Iterator[K]) Valid() bool {
	return it != nil && it.current != nil
}

// Key returns the key at the iterator's current position. It should only be
// called when Valid reports true.
func (it *Iterator[K]) Key() K {
	var zero K
	if !it.Valid() {
		return zero
	}
	return it.current.key
}

// Next advances the iterator and reports whether it moved to a key. A fresh
// iterator advances to the first key.
func (it *Iterator[K]) Next() bool {
	if it == nil || it.l == nil {
		return false
	}
	if !it.started {
		it.current = it.l.Front()
		it.started = true
		return it.current != nil
	}
	if it.current == nil {
		return false
	}
	it.current = it.current.Next(0)
	return it.current != nil
}

// SeekGE positions the iterator at the first key not ordered before key and
// reports whether such a key exists.
func (it *Iterator[K]) SeekGE(key K) bool {
	if it == nil || it.l == nil {
		return false
	}
	update := it.l.findPredecessors(key)
	it.current = update[0].links[0]
	it.started = true
	return it.current != nil
}
