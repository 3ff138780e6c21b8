// Package codec applies the exact-length contract at the decoding boundary:
// a CBOR or YAML sequence is decoded into a slice and then moved into a
// fixed-length array, failing with *exactarr.SizeMismatchError unless the
// sequence has exactly the expected number of elements.
package codec
