package exactarr

import (
	"fmt"
	"reflect"

	"go.uber.org/zap"

	"github.com/rawbytedev/exactarr/internal/common"
)

// TryTransfer moves the elements of src into a new Array of length n.
//
// The length check runs before any element is moved. On mismatch it returns
// a *SizeMismatchError and src is left untouched. On success every element
// has been relocated into the result and each slot of src is cleared, so the
// returned Array is the only holder of the elements; src must not be used
// afterwards.
//
// A negative n panics with ErrInvalidLength.
func TryTransfer[E any](src []E, n int) (Array[E], error) {
	if n < 0 {
		panic(fmt.Errorf("%w: %d", ErrInvalidLength, n))
	}
	if len(src) != n {
		return Array[E]{}, mismatch(n, len(src), "Array")
	}
	return Array[E]{elems: common.Relocate(make([]E, n), src)}, nil
}

// TransferOrAbort is TryTransfer for call sites where a length mismatch is a
// programming error. It panics with the *SizeMismatchError instead of
// returning it.
func TransferOrAbort[E any](src []E, n int) Array[E] {
	arr, err := TryTransfer(src, n)
	if err != nil {
		abort(err)
	}
	return arr
}

// TryInto moves the elements of src into a native array of type A, which
// must be [N]E. N is taken from A:
//
//	arr, err := exactarr.TryInto[[3]int](s)
//
// Mismatch and ownership rules are the same as TryTransfer. An A that is
// not an array of E panics with ErrNotArray.
func TryInto[A, E any](src []E) (A, error) {
	var out A
	n := common.ArrayLen[A, E]()
	if n < 0 {
		panic(fmt.Errorf("%w: %s from []%s", ErrNotArray, reflect.TypeFor[A](), reflect.TypeFor[E]()))
	}
	if len(src) != n {
		return out, mismatch(n, len(src), reflect.TypeFor[A]().String())
	}
	common.Relocate(common.View[A, E](&out, n), src)
	return out, nil
}

// MustInto is TryInto that panics with the *SizeMismatchError on mismatch.
func MustInto[A, E any](src []E) A {
	out, err := TryInto[A](src)
	if err != nil {
		abort(err)
	}
	return out
}

func mismatch(expected, found int, target string) *SizeMismatchError {
	Logger().Debug("size mismatch",
		zap.Int("expected", expected),
		zap.Int("found", found),
		zap.String("target", target))
	return &SizeMismatchError{Expected: expected, Found: found}
}

func abort(err error) {
	Logger().Error("aborting transfer", zap.Error(err))
	panic(err)
}
