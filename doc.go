// Package exactarr moves the elements of a slice into a fixed-length array
// without duplicating them.
//
// The target length is either part of the array type (TryInto, MustInto) or
// given at run time (TryTransfer, TransferOrAbort). The source length is
// checked before anything moves: a mismatch yields a *SizeMismatchError from
// the Try forms and a panic carrying that error from the others. On success
// the source slice is cleared slot by slot, so the returned array is the sole
// owner of the elements.
package exactarr
