package skiplist

// Less is a strict weak ordering over keys. Two keys a and b are equivalent
// iff neither Less(a, b) nor Less(b, a) holds; the list never stores two
// mutually equivalent keys.
type Less[K any] func(a, b K) bool

// DefaultMaxHeight bounds node heights unless WithMaxHeight overrides it.
const DefaultMaxHeight = 16

type config struct {
	maxHeight int
	seed      uint64
}

func defaultConfig() config {
	return config{
		maxHeight: DefaultMaxHeight,
		seed:      DefaultSeed,
	}
}

// Option customizes a list at construction time.
type Option func(*config)

// WithMaxHeight sets the maximum height any node may reach. Values below 1
// are ignored.
func WithMaxHeight(maxHeight int) Option {
	return func(c *config) {
		if maxHeight >= 1 {
			c.maxHeight = maxHeight
		}
	}
}

// WithSeed sets the seed for the height generator. Two lists constructed with
// the same seed draw identical height sequences.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.seed = seed
	}
}
