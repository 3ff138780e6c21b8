package exactarr

import (
	"iter"

	"github.com/fxamacker/cbor/v2"
)

// detEnc encodes elements with Core Deterministic Encoding so an Array
// always produces the same bytes.
var detEnc cbor.EncMode

func init() {
	var err error
	detEnc, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("exactarr: CBOR encoder initialization failed: " + err.Error())
	}
}

// Array is a fixed-length sequence produced by TryTransfer or
// TransferOrAbort. Its length never changes after construction.
type Array[E any] struct {
	elems []E
}

func (a Array[E]) Len() int {
	return len(a.elems)
}

func (a Array[E]) At(i int) (E, error) {
	var zero E
	if i < 0 || i >= len(a.elems) {
		return zero, ErrOutOfRange
	}
	return a.elems[i], nil
}

// Set replaces the element at i. Arrays share storage when copied, like a
// slice header.
func (a Array[E]) Set(i int, v E) error {
	if i < 0 || i >= len(a.elems) {
		return ErrOutOfRange
	}
	a.elems[i] = v
	return nil
}

// Elements returns a copy of the elements in order.
func (a Array[E]) Elements() []E {
	out := make([]E, len(a.elems))
	copy(out, a.elems)
	return out
}

func (a Array[E]) All() iter.Seq2[int, E] {
	return func(yield func(int, E) bool) {
		for i, v := range a.elems {
			if !yield(i, v) {
				return
			}
		}
	}
}

// MarshalCBOR encodes the array as a CBOR array, never as null. Map keys
// inside elements are sorted.
func (a Array[E]) MarshalCBOR() ([]byte, error) {
	return detEnc.Marshal(a.Elements())
}

// MarshalYAML encodes the array as a YAML sequence.
func (a Array[E]) MarshalYAML() (any, error) {
	return a.Elements(), nil
}
