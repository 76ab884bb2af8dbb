package acph

import acpherrors "github.com/asutherland/acph/errors"

// buildConfig holds construction-time settings assembled from
// BuildOption values.
type buildConfig struct {
	maxKeyLength int // 0 means unbounded
	primes       []uint8
	arena        *Arena
}

func defaultBuildConfig() *buildConfig {
	return &buildConfig{
		primes: defaultPrimes[:],
	}
}

// BuildOption configures a Build call.
type BuildOption func(*buildConfig)

// WithMaxKeyLength rejects keys longer than n bytes at construction
// time with errors.ErrKeyTooLong. The default is unbounded.
func WithMaxKeyLength(n int) BuildOption {
	return func(c *buildConfig) {
		c.maxKeyLength = n
	}
}

// WithPrimeTable overrides the candidate prime list scanned by the
// perfect-hash selector (see selectPerfectHash). Primes are tried in
// the order given; each must be in [2, 251]. The default is
// defaultPrimes, the 46-entry table from spec.md §4.3.
func WithPrimeTable(primes []uint8) BuildOption {
	return func(c *buildConfig) {
		c.primes = primes
	}
}

// WithArena supplies an Arena that counts every node allocation Build
// makes and, via a finalizer on each node, counts releases as the
// garbage collector reclaims them. It does not pool or reuse nodes;
// it exists for tests that need to assert construction-time
// allocations are all eventually released. See Arena in arena.go.
func WithArena(a *Arena) BuildOption {
	return func(c *buildConfig) {
		c.arena = a
	}
}

func (c *buildConfig) validate() error {
	if len(c.primes) == 0 {
		return acpherrors.ErrInvalidPrimeTable
	}
	for _, p := range c.primes {
		if p < 2 || p > 251 {
			return acpherrors.ErrInvalidPrimeTable
		}
	}
	return nil
}
