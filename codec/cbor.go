package codec

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/rawbytedev/exactarr"
)

// encMode uses Core Deterministic Encoding: the same logical value always
// produces the same bytes.
var encMode cbor.EncMode

var decMode cbor.DecMode

func init() {
	var err error

	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("codec: CBOR encoder initialization failed: " + err.Error())
	}

	decMode, err = cbor.DecOptions{}.DecMode()
	if err != nil {
		panic("codec: CBOR decoder initialization failed: " + err.Error())
	}
}

// MarshalCBOR encodes v to CBOR using Core Deterministic Encoding.
func MarshalCBOR(v any) ([]byte, error) {
	return encMode.Marshal(v)
}

// UnmarshalCBOR decodes CBOR data into v.
func UnmarshalCBOR(data []byte, v any) error {
	return decMode.Unmarshal(data, v)
}

// DecodeCBOR decodes a CBOR array and moves it into an Array of exactly n
// elements. A length mismatch is returned as the *exactarr.SizeMismatchError.
func DecodeCBOR[E any](data []byte, n int) (exactarr.Array[E], error) {
	var elems []E
	if err := decMode.Unmarshal(data, &elems); err != nil {
		return exactarr.Array[E]{}, fmt.Errorf("decode cbor: %w", err)
	}
	return exactarr.TryTransfer(elems, n)
}

// DecodeCBORInto decodes a CBOR array into the native array type A.
func DecodeCBORInto[A, E any](data []byte) (A, error) {
	var elems []E
	if err := decMode.Unmarshal(data, &elems); err != nil {
		var zero A
		return zero, fmt.Errorf("decode cbor: %w", err)
	}
	return exactarr.TryInto[A](elems)
}
