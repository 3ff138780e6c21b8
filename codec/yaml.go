package codec

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/rawbytedev/exactarr"
)

// DecodeYAML decodes a YAML sequence and moves it into an Array of exactly
// n elements.
func DecodeYAML[E any](data []byte, n int) (exactarr.Array[E], error) {
	var elems []E
	if err := yaml.Unmarshal(data, &elems); err != nil {
		return exactarr.Array[E]{}, fmt.Errorf("decode yaml: %w", err)
	}
	return exactarr.TryTransfer(elems, n)
}

// DecodeYAMLInto decodes a YAML sequence into the native array type A.
func DecodeYAMLInto[A, E any](data []byte) (A, error) {
	var elems []E
	if err := yaml.Unmarshal(data, &elems); err != nil {
		var zero A
		return zero, fmt.Errorf("decode yaml: %w", err)
	}
	return exactarr.TryInto[A](elems)
}
