package common

import (
	"reflect"
	"unsafe"
)

// ArrayLen reports the length of A when A is an array whose element type is
// E. It returns -1 for any other type.
func ArrayLen[A, E any]() int {
	t := reflect.TypeFor[A]()
	if t.Kind() != reflect.Array || t.Elem() != reflect.TypeFor[E]() {
		return -1
	}
	return t.Len()
}

// View aliases the storage of *arr as a slice of n elements without copying.
// The caller must have checked ArrayLen[A, E]() == n.
func View[A, E any](arr *A, n int) []E {
	if n == 0 {
		return []E{}
	}
	return unsafe.Slice((*E)(unsafe.Pointer(arr)), n)
}

// Slots stages a fixed number of slots that are each written exactly once.
// The backing storage is only handed out by Assemble, after every slot has
// been written.
type Slots[E any] struct {
	buf    []E
	filled []uint64
	count  int
}

func NewSlots[E any](buf []E) *Slots[E] {
	return &Slots[E]{
		buf:    buf[:len(buf):len(buf)],
		filled: make([]uint64, (len(buf)+63)/64),
	}
}

func (s *Slots[E]) Len() int { return len(s.buf) }

// Fill writes v into slot i. Writing a slot twice panics.
func (s *Slots[E]) Fill(i int, v E) {
	word, bit := i/64, uint64(1)<<(i%64)
	if s.filled[word]&bit != 0 {
		panic("common: slot written twice")
	}
	s.buf[i] = v
	s.filled[word] |= bit
	s.count++
}

// Assemble returns the filled storage. It panics if any slot is still empty.
func (s *Slots[E]) Assemble() []E {
	if s.count != len(s.buf) {
		panic("common: assembling with empty slots")
	}
	return s.buf
}

// Relocate moves every element of src into dst, in order, and clears each
// source slot once its element has been moved. dst and src must have the
// same length; the check is the caller's job and a violation panics here.
func Relocate[E any](dst, src []E) []E {
	if len(dst) != len(src) {
		panic("common: relocate length mismatch")
	}
	var zero E
	slots := NewSlots(dst)
	for i := range src {
		slots.Fill(i, src[i])
		src[i] = zero
	}
	return slots.Assemble()
}
