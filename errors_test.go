package acph

import (
	stderrors "errors"
	"testing"

	acpherrors "github.com/asutherland/acph/errors"
)

// TestErrorSentinels checks that the documented sentinel errors are
// actually returned (and distinguishable via errors.Is) from the
// paths that document them.
func TestErrorSentinels(t *testing.T) {
	t.Run("ErrEmptyInput", func(t *testing.T) {
		_, err := Build[int](nil, nil)
		if !stderrors.Is(err, acpherrors.ErrEmptyInput) {
			t.Errorf("got %v, want ErrEmptyInput", err)
		}
	})

	t.Run("ErrPayloadSizeMismatch", func(t *testing.T) {
		_, err := Build([][]byte{[]byte("a")}, []int{1, 2})
		if !stderrors.Is(err, acpherrors.ErrPayloadSizeMismatch) {
			t.Errorf("got %v, want ErrPayloadSizeMismatch", err)
		}
	})

	t.Run("ErrDuplicateKey", func(t *testing.T) {
		_, err := Build([][]byte{[]byte("a"), []byte("a")}, []int{1, 2})
		if !stderrors.Is(err, acpherrors.ErrDuplicateKey) {
			t.Errorf("got %v, want ErrDuplicateKey", err)
		}
	})

	t.Run("ErrKeyTooLong", func(t *testing.T) {
		_, err := Build([][]byte{[]byte("short"), []byte("waytoolongakey")}, []int{1, 2}, WithMaxKeyLength(5))
		if !stderrors.Is(err, acpherrors.ErrKeyTooLong) {
			t.Errorf("got %v, want ErrKeyTooLong", err)
		}
	})

	t.Run("ErrInvalidPrimeTable", func(t *testing.T) {
		_, err := Build([][]byte{[]byte("a"), []byte("b")}, []int{1, 2}, WithPrimeTable(nil))
		if !stderrors.Is(err, acpherrors.ErrInvalidPrimeTable) {
			t.Errorf("got %v, want ErrInvalidPrimeTable", err)
		}
	})

	t.Run("ErrNotFound", func(t *testing.T) {
		tree, err := BuildStrings([]string{"present"}, []int{1})
		if err != nil {
			t.Fatalf("BuildStrings: %v", err)
		}
		_, err = tree.Lookup([]byte("absent"))
		if !stderrors.Is(err, acpherrors.ErrNotFound) {
			t.Errorf("got %v, want ErrNotFound", err)
		}
	})

	t.Run("ErrEmptyTree", func(t *testing.T) {
		var tree *Tree[int]
		_, err := tree.Lookup([]byte("x"))
		if !stderrors.Is(err, acpherrors.ErrEmptyTree) {
			t.Errorf("got %v, want ErrEmptyTree", err)
		}
	})

	t.Run("ErrDatasetCountMismatch", func(t *testing.T) {
		_, err := BuildForest[int]([][][]byte{{[]byte("a")}}, nil)
		if !stderrors.Is(err, acpherrors.ErrDatasetCountMismatch) {
			t.Errorf("got %v, want ErrDatasetCountMismatch", err)
		}
	})
}
