package acph

import (
	"golang.org/x/sync/errgroup"

	acpherrors "github.com/asutherland/acph/errors"
)

// BuildForest builds one tree per dataset concurrently, returning
// trees in the same order as datasets. Every dataset is built with
// the same opts, so an Arena passed via WithArena is shared by all the
// trees and counts their node allocations together (Arena is safe for
// concurrent use); BuildForest offers no per-tree accounting.
//
// Each tree builds on its own goroutine via errgroup.Group; the first
// error returned by any dataset is returned. The group has no context,
// so the other datasets' builds are not cancelled and run to
// completion before BuildForest returns.
func BuildForest[P any](datasets [][][]byte, payloads [][]P, opts ...BuildOption) ([]*Tree[P], error) {
	if len(datasets) != len(payloads) {
		return nil, acpherrors.ErrDatasetCountMismatch
	}

	trees := make([]*Tree[P], len(datasets))
	var g errgroup.Group
	for i := range datasets {
		i := i
		g.Go(func() error {
			t, err := Build(datasets[i], payloads[i], opts...)
			if err != nil {
				return err
			}
			trees[i] = t
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return trees, nil
}
