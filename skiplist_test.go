package skiplist_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevetis/skiplist"
	"github.com/sevetis/skiplist/inspect"
)

func collect[K any](l *skiplist.SkipList[K]) []K {
	var keys []K
	for n := l.Front(); n != nil; n = n.Next(0) {
		keys = append(keys, n.Key())
	}
	return keys
}

func TestInsertContainsErase(t *testing.T) {
	t.Parallel()

	l := skiplist.NewOrdered[int](skiplist.WithMaxHeight(4))
	require.True(t, l.Empty())
	require.Equal(t, 0, l.Size())

	for _, k := range []int{5, 1, 3} {
		require.True(t, l.Insert(k))
	}
	require.Equal(t, 3, l.Size())
	require.True(t, l.Contains(3))
	require.False(t, l.Contains(4))

	require.True(t, l.Erase(1))
	require.False(t, l.Contains(1))
	require.Equal(t, 2, l.Size())
	require.False(t, l.Erase(1), "erasing an absent key must fail")
	require.Equal(t, 2, l.Size())

	require.Equal(t, []int{3, 5}, collect(l))
}

func TestInsertDuplicate(t *testing.T) {
	t.Parallel()

	l := skiplist.NewOrdered[int]()
	require.True(t, l.Insert(7))
	require.False(t, l.Insert(7))
	require.Equal(t, 1, l.Size())
	require.Equal(t, []int{7}, collect(l))
}

func TestEraseOnEmpty(t *testing.T) {
	t.Parallel()

	l := skiplist.NewOrdered[string]()
	require.False(t, l.Erase("anything"))
	require.True(t, l.Empty())
}

func TestRoundTripSorted(t *testing.T) {
	t.Parallel()

	const n = 1000
	keys := rand.New(rand.NewSource(1)).Perm(n)

	l := skiplist.NewOrdered[int]()
	for _, k := range keys {
		require.True(t, l.Insert(k))
	}
	require.Equal(t, n, l.Size())

	got := collect(l)
	require.Len(t, got, n)
	require.True(t, sort.IntsAreSorted(got), "level-0 traversal must be sorted")

	for _, k := range keys {
		require.True(t, l.Erase(k))
	}
	require.True(t, l.Empty())
	require.Nil(t, l.Front())
}

func TestSizeTracksDistinctKeys(t *testing.T) {
	t.Parallel()

	l := skiplist.NewOrdered[int64]()
	ref := make(map[int64]bool)
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 20000; i++ {
		key := rng.Int63n(512)
		if rng.Intn(3) == 0 {
			assert.Equal(t, ref[key], l.Erase(key), "erase %d", key)
			delete(ref, key)
		} else {
			assert.Equal(t, !ref[key], l.Insert(key), "insert %d", key)
			ref[key] = true
		}
		if l.Empty() != (len(ref) == 0) {
			t.Fatalf("Empty() = %v with %d reference keys", l.Empty(), len(ref))
		}
	}

	require.Equal(t, len(ref), l.Size())
	for _, k := range collect(l) {
		require.True(t, ref[k])
	}
	require.NoError(t, inspect.Validate(l, func(a, b int64) bool { return a < b }))
}

type account struct {
	id   int
	name string
}

func byID(a, b account) bool { return a.id < b.id }

func TestComparatorEquivalence(t *testing.T) {
	t.Parallel()

	l := skiplist.New[account](byID)
	require.True(t, l.Insert(account{id: 1, name: "alice"}))

	// Same id means equivalent under the ordering, whatever the other fields.
	require.False(t, l.Insert(account{id: 1, name: "bob"}))
	require.True(t, l.Contains(account{id: 1}))
	require.Equal(t, 1, l.Size())

	require.True(t, l.Insert(account{id: 2, name: "carol"}))
	require.True(t, l.Erase(account{id: 1, name: "whoever"}))
	require.Equal(t, []account{{id: 2, name: "carol"}}, collect(l))
}

func TestClearLargeList(t *testing.T) {
	t.Parallel()

	const n = 100_000
	l := skiplist.NewOrdered[int]()
	for i := 0; i < n; i++ {
		require.True(t, l.Insert(i))
	}
	require.Equal(t, n, l.Size())

	l.Clear()
	require.Equal(t, 0, l.Size())
	require.True(t, l.Empty())
	require.Nil(t, l.Front())

	// The list stays usable after a full teardown.
	require.True(t, l.Insert(42))
	require.True(t, l.Contains(42))
	require.Equal(t, 1, l.Size())
}

func TestClearOnEmpty(t *testing.T) {
	t.Parallel()

	l := skiplist.NewOrdered[int]()
	l.Clear()
	require.True(t, l.Empty())
}

func TestSeedDeterminism(t *testing.T) {
	t.Parallel()

	build := func(seed uint64) []int {
		l := skiplist.NewOrdered[int](skiplist.WithSeed(seed))
		for i := 0; i < 2000; i++ {
			l.Insert(i * 3 % 2000)
		}
		var heights []int
		for n := l.Front(); n != nil; n = n.Next(0) {
			heights = append(heights, n.Height())
		}
		return heights
	}

	require.Equal(t, build(99), build(99), "same seed must reproduce the same structure")
	require.NotEqual(t, build(99), build(100), "different seeds should disagree somewhere")
}

func TestHeightsWithinBound(t *testing.T) {
	t.Parallel()

	l := skiplist.NewOrdered[int](skiplist.WithMaxHeight(4))
	for i := 0; i < 5000; i++ {
		l.Insert(i)
	}
	for n := l.Front(); n != nil; n = n.Next(0) {
		if h := n.Height(); h < 1 || h > 4 {
			t.Fatalf("node %d has height %d outside [1, 4]", n.Key(), h)
		}
	}
	require.NoError(t, inspect.Validate(l, func(a, b int) bool { return a < b }))
}

func TestNilLessPanics(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { skiplist.New[int](nil) })
}

func TestLinkLevelOutOfRangePanics(t *testing.T) {
	t.Parallel()

	l := skiplist.NewOrdered[int](skiplist.WithMaxHeight(4))
	require.True(t, l.Insert(1))

	n := l.Front()
	require.Panics(t, func() { n.Next(n.Height()) })
	require.Panics(t, func() { n.Next(-1) })
	require.Panics(t, func() { l.FrontAt(l.MaxHeight()) })
}

func TestFrontAt(t *testing.T) {
	t.Parallel()

	l := skiplist.NewOrdered[int]()
	for i := 0; i < 200; i++ {
		l.Insert(i)
	}

	// Every populated level starts at a node tall enough to be linked there,
	// and level 0 starts at the smallest key.
	require.Equal(t, 0, l.FrontAt(0).Key())
	for level := 0; level < l.MaxHeight(); level++ {
		if first := l.FrontAt(level); first != nil {
			require.Greater(t, first.Height(), level)
		}
	}
}
