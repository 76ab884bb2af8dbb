package acph

import (
	stderrors "errors"
	"testing"

	acpherrors "github.com/asutherland/acph/errors"
)

// TestBuildForest checks that each dataset gets its own independently
// correct tree, and that results preserve input order.
func TestBuildForest(t *testing.T) {
	rng := newTestRNG(t)
	datasets := make([][][]byte, 4)
	payloadSets := make([][]uint64, 4)
	for i := range datasets {
		datasets[i] = generateRandomKeys(rng, 200+i*50, 12)
		payloadSets[i] = sequentialPayloads(len(datasets[i]))
	}

	trees, err := BuildForest(datasets, payloadSets)
	if err != nil {
		t.Fatalf("BuildForest: %v", err)
	}
	if len(trees) != len(datasets) {
		t.Fatalf("got %d trees, want %d", len(trees), len(datasets))
	}
	for i, tree := range trees {
		verifyRoundTrip(t, tree, datasets[i], payloadSets[i])
	}
}

// TestBuildForestLengthMismatch checks the datasets/payloads length
// guard.
func TestBuildForestLengthMismatch(t *testing.T) {
	_, err := BuildForest[uint64]([][][]byte{{[]byte("a")}}, nil)
	if !stderrors.Is(err, acpherrors.ErrDatasetCountMismatch) {
		t.Fatalf("got %v, want ErrDatasetCountMismatch", err)
	}
}

// TestBuildForestPropagatesError checks that a failing dataset's
// error surfaces from BuildForest.
func TestBuildForestPropagatesError(t *testing.T) {
	datasets := [][][]byte{
		{[]byte("a"), []byte("b")},
		{[]byte("dup"), []byte("dup")},
	}
	payloads := [][]uint64{{1, 2}, {1, 2}}

	_, err := BuildForest(datasets, payloads)
	if err == nil {
		t.Fatal("expected an error from the duplicate-key dataset")
	}
}
