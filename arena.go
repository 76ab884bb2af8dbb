package acph

import (
	"runtime"
	"sync/atomic"
)

// Arena counts node allocations made during a Build call and the
// releases the garbage collector later performs. It is pure
// accounting: it never pools or reuses a node, and passing one to
// WithArena does not reduce the number of allocations Build makes.
//
// Go has no explicit destroy(tree): the runtime's garbage collector
// reclaims nodes once a Tree becomes unreachable, which is the
// Go-idiomatic equivalent of spec.md §4.5's post-order teardown walk.
// Arena exists purely as the "pairing allocator" spec.md §8 calls for
// in tests: it counts node allocations at construction time and, via
// a finalizer on each node, counts releases as the garbage collector
// reclaims them, so a test can force a GC and assert the counts
// converge back to zero.
//
// An Arena is safe for concurrent use. The zero value is an empty
// arena ready for use, the same as what NewArena returns.
type Arena struct {
	allocated int64
	released  int64
}

// NewArena creates an empty allocation-accounting arena.
func NewArena() *Arena {
	return &Arena{}
}

// Allocated returns the number of node allocations made through this
// arena so far.
func (a *Arena) Allocated() int64 {
	return atomic.LoadInt64(&a.allocated)
}

// Released returns the number of allocations the garbage collector
// has reclaimed so far, as observed by finalizers. Call runtime.GC()
// before reading this for a stable count.
func (a *Arena) Released() int64 {
	return atomic.LoadInt64(&a.released)
}

// Live returns Allocated() - Released().
func (a *Arena) Live() int64 {
	return a.Allocated() - a.Released()
}

// track registers v (a *node[P]) as one allocation and arranges for
// Released to be incremented once v is collected.
func (a *Arena) track(v any) {
	atomic.AddInt64(&a.allocated, 1)
	runtime.SetFinalizer(v, func(any) {
		atomic.AddInt64(&a.released, 1)
	})
}
