// Package workload generates deterministic operation streams for exercising
// ordered containers in benchmarks and stress tests. All randomness flows
// from the seed given at construction, so a workload replays identically.
package workload

import "math/rand"

// Kind identifies one operation in a stream.
type Kind uint8

const (
	Lookup Kind = iota
	Insert
	Erase
)

func (k Kind) String() string {
	switch k {
	case Lookup:
		return "Lookup"
	case Insert:
		return "Insert"
	case Erase:
		return "Erase"
	default:
		return "Unknown"
	}
}

// Op is a single operation against a key.
type Op struct {
	Kind Kind
	Key  int64
}

// Generator draws keys from a fixed distribution over [0, n).
type Generator struct {
	n    int64
	rng  *rand.Rand
	zipf *rand.Zipf
}

// NewUniform returns a generator drawing keys uniformly from [0, n).
func NewUniform(n int64, seed int64) *Generator {
	return &Generator{
		n:   n,
		rng: rand.New(rand.NewSource(seed)),
	}
}

// NewZipf returns a generator drawing keys from [0, n) with a Zipf
// distribution of parameters s > 1 and v >= 1, modeling hot-key access.
func NewZipf(n int64, s, v float64, seed int64) *Generator {
	rng := rand.New(rand.NewSource(seed))
	return &Generator{
		n:    n,
		rng:  rng,
		zipf: rand.NewZipf(rng, s, v, uint64(n-1)),
	}
}

// Next draws one key.
func (g *Generator) Next() int64 {
	if g.zipf != nil {
		return int64(g.zipf.Uint64())
	}
	return g.rng.Int63n(g.n)
}

// Keys draws k keys.
func (g *Generator) Keys(k int) []int64 {
	keys := make([]int64, k)
	for i := range keys {
		keys[i] = g.Next()
	}
	return keys
}

// Ops draws k operations. insertPct and erasePct give the percentage of
// inserts and erases; the remainder are lookups. The two percentages must sum
// to at most 100.
func (g *Generator) Ops(k int, insertPct, erasePct int) []Op {
	if insertPct < 0 || erasePct < 0 || insertPct+erasePct > 100 {
		panic("workload: operation percentages must be non-negative and sum to at most 100")
	}
	ops := make([]Op, k)
	for i := range ops {
		kind := Lookup
		switch roll := g.rng.Intn(100); {
		case roll < insertPct:
			kind = Insert
		case roll < insertPct+erasePct:
			kind = Erase
		}
		ops[i] = Op{Kind: kind, Key: g.Next()}
	}
	return ops
}
