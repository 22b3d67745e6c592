package skiplist

// DefaultSeed seeds newly constructed lists unless WithSeed overrides it.
// A fixed default keeps height draws reproducible across runs and platforms.
const DefaultSeed = uint64(0xdeadbeefcafebabe)

// branching is the inverse promotion probability for node heights: each level
// promotion happens with chance 1/4, following Pugh's branching factor.
const branching = 4

// rng is a seeded xorshift64* generator. It is deliberately self-contained:
// the height distribution must reproduce bit-for-bit for a given seed, so we
// do not depend on math/rand internals that may change between releases.
type rng struct {
	state uint64
}

func newRNG(seed uint64) *rng {
	if seed == 0 {
		seed = DefaultSeed
	}
	return &rng{state: seed}
}

func (r *rng) next() uint64 {
	x := r.state
	x ^= x >> 12
	x ^= x << 25
	x ^= x >> 27
	if x == 0 {
		x = DefaultSeed
	}
	r.state = x
	return x * 2685821657736338717
}

// randomHeight simulates the geometric process with an explicit coin flip per
// promotion instead of a library sampler, so the sequence of draws is a stable
// function of the seed. The result is always within [1, maxHeight].
func (r *rng) randomHeight(maxHeight int) int {
	height := 1
	for height < maxHeight && r.next()%branching == 0 {
		height++
	}
	return height
}
