package exactarr

import (
	"errors"
	"fmt"
)

var (
	ErrSizeMismatch  = errors.New("exactarr: size mismatch")
	ErrOutOfRange    = errors.New("exactarr: index out of range")
	ErrNotArray      = errors.New("exactarr: target is not an array of the source element type")
	ErrInvalidLength = errors.New("exactarr: invalid target length")
)

// SizeMismatchError is returned when the source length differs from the
// target length. No element has been moved when it is produced.
type SizeMismatchError struct {
	Expected int
	Found    int
}

func (e *SizeMismatchError) Error() string {
	return fmt.Sprintf("Expected vector of size %d, but found size %d", e.Expected, e.Found)
}

// Is lets errors.Is match ErrSizeMismatch.
func (e *SizeMismatchError) Is(target error) bool {
	return target == ErrSizeMismatch
}
