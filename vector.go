package vector

import (
	"fmt"
	"iter"
	"math"
)

// Vector is a growable array built over raw element storage. It owns
// exactly one storage block at a time; elements occupy slots [0, Len())
// and slots [Len(), Cap()) are raw. Growth doubles capacity from a
// minimum of 1, and growth-triggered insertion offers the strong
// guarantee: either the operation fully succeeds, or the vector is left
// exactly as it was (see Traits.Relocate for the one documented
// exception). Not goroutine-safe; use SafeVector for concurrent access.
type Vector[T any] struct {
	data rawMemory[T]
	size int
	tr   Traits[T]
}

// New creates an empty vector with plain value semantics for T.
func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// NewWithTraits creates an empty vector whose element lifetime is
// managed by tr.
func NewWithTraits[T any](tr Traits[T]) *Vector[T] {
	return &Vector[T]{tr: tr}
}

// NewSized creates a vector holding n default-constructed elements in a
// block of exactly n slots.
func NewSized[T any](n int) (*Vector[T], error) {
	return NewSizedWithTraits(n, Traits[T]{})
}

// NewSizedWithTraits is NewSized with element lifetime managed by tr.
// A construction failure unwinds the elements built so far and returns
// the error; no vector is produced.
func NewSizedWithTraits[T any](n int, tr Traits[T]) (*Vector[T], error) {
	data, err := newRawMemory[T](n)
	if err != nil {
		return nil, err
	}
	v := &Vector[T]{data: data, tr: tr}
	for i := 0; i < n; i++ {
		elem, err := v.tr.construct()
		if err != nil {
			v.destroySpan(v.data.span(0, i))
			v.data.release()
			return nil, fmt.Errorf("vector: construct element %d: %w", i, err)
		}
		*v.data.at(i) = elem
	}
	v.size = n
	return v, nil
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int {
	return v.size
}

// Cap returns the number of allocated slots.
func (v *Vector[T]) Cap() int {
	return v.data.capacity()
}

// At returns the address of element i for in-place access.
// i must be in [0, Len()).
func (v *Vector[T]) At(i int) *T {
	if i < 0 || i >= v.size {
		panic(fmt.Sprintf("vector: index %d out of range [0,%d)", i, v.size))
	}
	return v.data.at(i)
}

// Get returns a read-only copy of element i.
func (v *Vector[T]) Get(i int) T {
	return *v.At(i)
}

// Set replaces element i with x, destroying the previous element.
// Ownership of x transfers to the vector without a clone.
func (v *Vector[T]) Set(i int, x T) {
	p := v.At(i)
	v.tr.drop(p)
	*p = x
}

// All ranges over the live elements in index order, yielding each index
// and the element's address so callers can mutate in place. The vector
// must not be grown or shrunk during iteration.
func (v *Vector[T]) All() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, v.data.at(i)) {
				return
			}
		}
	}
}

// Values ranges read-only over the live elements in index order.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(*v.data.at(i)) {
				return
			}
		}
	}
}

// Reserve grows the block to exactly n slots. It is a no-op when the
// current block already has n or more. Existing elements are transferred
// per the traits' transfer policy and the new block is committed by swap
// only after every transfer has succeeded.
func (v *Vector[T]) Reserve(n int) error {
	if n <= v.data.capacity() {
		return nil
	}
	nd, err := newRawMemory[T](n)
	if err != nil {
		return err
	}
	if err := v.transferInto(v.data.span(0, v.size), nd.span(0, v.size)); err != nil {
		nd.release()
		return err
	}
	v.data.swap(&nd)
	v.retireOld(&nd, v.size)
	return nil
}

// Resize grows or shrinks the live range to n elements. Growth reserves
// exactly n slots and default-constructs the new suffix; a construction
// failure unwinds the partial suffix and leaves the length unchanged
// (capacity may stay grown). Shrinking destroys the removed elements and
// never releases storage.
func (v *Vector[T]) Resize(n int) error {
	switch {
	case n > v.size:
		if err := v.Reserve(n); err != nil {
			return err
		}
		for i := v.size; i < n; i++ {
			elem, err := v.tr.construct()
			if err != nil {
				v.destroySpan(v.data.span(v.size, i))
				return fmt.Errorf("vector: construct element %d: %w", i, err)
			}
			*v.data.at(i) = elem
		}
		v.size = n
	case n < v.size:
		if n < 0 {
			panic("vector: negative size")
		}
		v.destroySpan(v.data.span(n, v.size))
		v.size = n
	}
	return nil
}

// PushBack appends a duplicate of x. Amortized O(1).
func (v *Vector[T]) PushBack(x T) error {
	_, err := v.EmplaceBack(func() (T, error) { return v.tr.clone(&x) })
	return err
}

// Append appends xs in order, transferring ownership of each value to
// the vector without cloning. This is the move-in counterpart of
// PushBack; callers must not retain Drop-managed values they append.
func (v *Vector[T]) Append(xs ...T) error {
	for i := range xs {
		x := xs[i]
		if _, err := v.EmplaceBack(func() (T, error) { return x, nil }); err != nil {
			return err
		}
	}
	return nil
}

// EmplaceBack constructs a new element in place at the end and returns
// its address, valid until the next mutation. A nil ctor
// default-constructs per the traits. Amortized O(1).
func (v *Vector[T]) EmplaceBack(ctor func() (T, error)) (*T, error) {
	if err := v.emplaceAt(v.size, ctor); err != nil {
		return nil, err
	}
	return v.data.at(v.size - 1), nil
}

// PopBack destroys the last element. The vector must not be empty.
func (v *Vector[T]) PopBack() {
	if v.size == 0 {
		panic("vector: PopBack on empty vector")
	}
	v.size--
	v.tr.drop(v.data.at(v.size))
}

// Insert places a duplicate of x at index i, shifting elements [i, Len())
// up one slot. i may equal Len() for a tail insert.
func (v *Vector[T]) Insert(i int, x T) error {
	_, err := v.Emplace(i, func() (T, error) { return v.tr.clone(&x) })
	return err
}

// Emplace constructs a new element in place at index i, shifting later
// elements up one slot, and returns the index of the new element. The
// element is built before the vector is touched, so a failing ctor
// leaves the vector unchanged.
func (v *Vector[T]) Emplace(i int, ctor func() (T, error)) (int, error) {
	if err := v.emplaceAt(i, ctor); err != nil {
		return 0, err
	}
	return i, nil
}

// Erase removes element i, shifting elements (i, Len()) down one slot,
// and returns the index now holding the element that followed it.
func (v *Vector[T]) Erase(i int) int {
	if i < 0 || i >= v.size {
		panic(fmt.Sprintf("vector: erase position %d out of range [0,%d)", i, v.size))
	}
	v.tr.drop(v.data.at(i))
	s := v.data.span(0, v.size)
	copy(s[i:], s[i+1:])
	// The vacated last slot still holds the bits of the element now one
	// slot down; clear it without dropping.
	var zero T
	s[v.size-1] = zero
	v.size--
	return i
}

// Swap exchanges contents with other in O(1); no element is touched.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.data.swap(&other.data)
	v.size, other.size = other.size, v.size
	v.tr, other.tr = other.tr, v.tr
}

// Clone returns an independent deep copy with capacity equal to the
// source's length. A clone failure unwinds the partial copy and returns
// the error; the source is never modified.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	data, err := newRawMemory[T](v.size)
	if err != nil {
		return nil, err
	}
	c := &Vector[T]{data: data, tr: v.tr}
	for i := 0; i < v.size; i++ {
		elem, err := v.tr.clone(v.data.at(i))
		if err != nil {
			c.destroySpan(c.data.span(0, i))
			c.data.release()
			return nil, fmt.Errorf("vector: clone element %d: %w", i, err)
		}
		*c.data.at(i) = elem
	}
	c.size = v.size
	return c, nil
}

// CopyFrom replaces the receiver's contents with a deep copy of src.
// When the receiver's block already has room for src's elements the
// storage is reused; otherwise a full copy is built and swapped in. On a
// mid-copy failure along the reuse path the receiver keeps a consistent
// live prefix and the error is returned.
func (v *Vector[T]) CopyFrom(src *Vector[T]) error {
	if v == src {
		return nil
	}
	if src.size > v.data.capacity() {
		c, err := src.Clone()
		if err != nil {
			return err
		}
		v.Swap(c)
		c.Release()
		return nil
	}
	n := min(v.size, src.size)
	for i := 0; i < n; i++ {
		elem, err := v.tr.clone(src.data.at(i))
		if err != nil {
			return fmt.Errorf("vector: clone element %d: %w", i, err)
		}
		v.tr.drop(v.data.at(i))
		*v.data.at(i) = elem
	}
	if src.size >= v.size {
		for i := v.size; i < src.size; i++ {
			elem, err := v.tr.clone(src.data.at(i))
			if err != nil {
				v.size = i
				return fmt.Errorf("vector: clone element %d: %w", i, err)
			}
			*v.data.at(i) = elem
		}
	} else {
		v.destroySpan(v.data.span(src.size, v.size))
	}
	v.size = src.size
	return nil
}

// MoveFrom takes ownership of src's block and elements; src is left
// empty with no storage. Elements the receiver held are destroyed first.
func (v *Vector[T]) MoveFrom(src *Vector[T]) {
	if v == src {
		return
	}
	v.destroySpan(v.data.span(0, v.size))
	v.data.release()
	v.data.moveFrom(&src.data)
	v.size = src.size
	v.tr = src.tr
	src.size = 0
}

// Clear destroys all elements, keeping the allocated capacity.
func (v *Vector[T]) Clear() {
	v.destroySpan(v.data.span(0, v.size))
	v.size = 0
}

// Release destroys all elements and frees the block. The vector is empty
// and ready for reuse afterwards.
func (v *Vector[T]) Release() {
	v.Clear()
	v.data.release()
}

// emplaceAt dispatches an insertion at index k to the tail, interior, or
// reallocating path.
func (v *Vector[T]) emplaceAt(k int, ctor func() (T, error)) error {
	if k < 0 || k > v.size {
		panic(fmt.Sprintf("vector: insert position %d out of range [0,%d]", k, v.size))
	}
	if ctor == nil {
		ctor = v.tr.construct
	}
	if v.size >= v.data.capacity() {
		return v.emplaceRealloc(k, ctor)
	}
	elem, err := ctor()
	if err != nil {
		return err
	}
	if k < v.size {
		// Interior insert with a free slot: the element was built above
		// so a failing constructor never touches the vector. Shift
		// [k, size) up one slot; memmove semantics keep the overlapping
		// copy safe.
		s := v.data.span(0, v.size+1)
		copy(s[k+1:], s[k:v.size])
		// Slot k holds the bits of the element now living at k+1;
		// overwrite without dropping.
		s[k] = elem
	} else {
		*v.data.at(k) = elem
	}
	v.size++
	return nil
}

// emplaceRealloc grows into a fresh block. The new element is
// constructed at its final slot first, then the old elements are
// transferred around it: [0, k) to the left, [k, size) one slot to the
// right. The old block is retired only after every construction has
// succeeded; any failure unwinds the new block, so for clone-transfer
// types the vector is left byte-for-byte unchanged.
func (v *Vector[T]) emplaceRealloc(k int, ctor func() (T, error)) error {
	nd, err := newRawMemory[T](v.grownCapacity())
	if err != nil {
		return err
	}
	elem, err := ctor()
	if err != nil {
		nd.release()
		return err
	}
	*nd.at(k) = elem
	if err := v.transferInto(v.data.span(0, k), nd.span(0, k)); err != nil {
		v.tr.drop(nd.at(k))
		nd.release()
		return err
	}
	if err := v.transferInto(v.data.span(k, v.size), nd.span(k+1, v.size+1)); err != nil {
		v.tr.drop(nd.at(k))
		v.destroySpan(nd.span(0, k))
		nd.release()
		return err
	}
	v.data.swap(&nd)
	v.retireOld(&nd, v.size)
	v.size++
	return nil
}

// transferInto populates dst with the elements of src, relocating or
// cloning per the transfer policy. On a clone failure the partial prefix
// of dst is destroyed and src is untouched. On a relocation failure the
// partial prefix of dst is destroyed and the corresponding src slots are
// already husks (the degraded case, NoCopy types with fallible Relocate).
func (v *Vector[T]) transferInto(src, dst []T) error {
	if v.tr.transferByMove() {
		if v.tr.Relocate == nil {
			// Bitwise relocation cannot fail, and the untouched source
			// bits double as the rollback state for a later failure.
			copy(dst, src)
			return nil
		}
		for i := range src {
			elem, err := v.tr.Relocate(&src[i])
			if err != nil {
				v.destroySpan(dst[:i])
				return fmt.Errorf("vector: relocate element %d: %w", i, err)
			}
			dst[i] = elem
		}
		return nil
	}
	for i := range src {
		elem, err := v.tr.clone(&src[i])
		if err != nil {
			v.destroySpan(dst[:i])
			return fmt.Errorf("vector: clone element %d: %w", i, err)
		}
		dst[i] = elem
	}
	return nil
}

// retireOld disposes of the old block after a committed transfer. A nil
// Relocate means the transfer was bitwise: the same elements continue in
// the new block and the old slots must not be dropped. Otherwise the old
// block holds cloned-from originals or relocation husks, both of which
// still owe a Drop.
func (v *Vector[T]) retireOld(old *rawMemory[T], n int) {
	if v.tr.Relocate != nil {
		v.destroySpan(old.span(0, n))
	}
	old.release()
}

// grownCapacity is the doubling growth policy, from a minimum of 1.
func (v *Vector[T]) grownCapacity() int {
	c := v.data.capacity()
	if c == 0 {
		return 1
	}
	if c > math.MaxInt/2 {
		return math.MaxInt
	}
	return c * 2
}

// destroySpan drops every element in slots, in index order.
func (v *Vector[T]) destroySpan(slots []T) {
	for i := range slots {
		v.tr.drop(&slots[i])
	}
}
