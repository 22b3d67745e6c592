// Package inspect provides structure verification and debug rendering for
// skip lists. It operates purely through the list's exported traversal
// surface, so it can never perturb the structure it examines.
package inspect

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/sevetis/skiplist"
)

// Validate walks the whole structure and returns an error describing the
// first structural property it finds violated: level-0 key order, the size
// counter, node height bounds, or the requirement that every level's chain is
// exactly the level-0 chain filtered to nodes tall enough to reach it.
//
// less must be the same ordering relation the list was constructed with.
func Validate[K any](l *skiplist.SkipList[K], less skiplist.Less[K]) error {
	maxHeight := l.MaxHeight()

	var base []*skiplist.Node[K]
	for n := l.Front(); n != nil; n = n.Next(0) {
		if h := n.Height(); h < 1 || h > maxHeight {
			return fmt.Errorf("inspect: node %v has height %d outside [1, %d]", n.Key(), h, maxHeight)
		}
		if len(base) > 0 {
			prev := base[len(base)-1]
			if !less(prev.Key(), n.Key()) {
				return fmt.Errorf("inspect: level 0 not strictly increasing at %v -> %v", prev.Key(), n.Key())
			}
		}
		base = append(base, n)
	}

	if l.Size() != len(base) {
		return fmt.Errorf("inspect: size counter is %d but level 0 holds %d nodes", l.Size(), len(base))
	}

	for level := 1; level < maxHeight; level++ {
		j := 0
		for n := l.FrontAt(level); n != nil; n = n.Next(level) {
			for j < len(base) && base[j] != n {
				if base[j].Height() > level {
					return fmt.Errorf("inspect: node %v of height %d missing from level %d chain",
						base[j].Key(), base[j].Height(), level)
				}
				j++
			}
			if j == len(base) {
				return fmt.Errorf("inspect: level %d links node %v that level 0 does not reach", level, n.Key())
			}
			if n.Height() <= level {
				return fmt.Errorf("inspect: node %v of height %d linked at level %d", n.Key(), n.Height(), level)
			}
			j++
		}
		for ; j < len(base); j++ {
			if base[j].Height() > level {
				return fmt.Errorf("inspect: node %v of height %d missing from level %d chain",
					base[j].Key(), base[j].Height(), level)
			}
		}
	}

	return nil
}

// LevelCounts returns the number of nodes linked at each level, indexed by
// level. The slice length equals the list's maximum height.
func LevelCounts[K any](l *skiplist.SkipList[K]) []int {
	counts := make([]int, l.MaxHeight())
	for n := l.Front(); n != nil; n = n.Next(0) {
		for i := 0; i < n.Height(); i++ {
			counts[i]++
		}
	}
	return counts
}

// Fprint renders the list to w as a table of (key, height) rows in ascending
// key order. Intended for debugging; the format is not stable.
func Fprint[K any](w io.Writer, l *skiplist.SkipList[K]) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Key", "Height"})
	table.SetAutoWrapText(false)
	for n := l.Front(); n != nil; n = n.Next(0) {
		table.Append([]string{fmt.Sprintf("%v", n.Key()), strconv.Itoa(n.Height())})
	}
	table.Render()
}
