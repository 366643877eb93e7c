package vector

// Traits customizes element lifetime management for a Vector. The zero
// Traits treats T as a plain value: zero-value construction, bitwise copy
// and relocation, no destructor. Any hook left nil keeps the plain
// behavior for that operation.
type Traits[T any] struct {
	// New default-constructs an element for NewSized and growing Resize.
	// nil means the zero value, which never fails.
	New func() (T, error)

	// Clone produces an independent duplicate of *src for PushBack,
	// Insert, Clone, CopyFrom and for clone-based growth transfers.
	// nil means the type is trivially copyable (bitwise duplicate).
	// Ignored when NoCopy is set.
	Clone func(src *T) (T, error)

	// NoCopy marks the type as non-duplicable. Operations that need a
	// clone fail with ErrNotCloneable, and growth always transfers by
	// relocation.
	NoCopy bool

	// Relocate moves the element out of *src into a slot of a new block,
	// leaving *src a droppable husk (the zero value). nil means
	// relocation is a bitwise transfer that cannot fail. A non-nil
	// Relocate may fail; if the type is also NoCopy, a mid-transfer
	// failure consumes the sources already relocated. That degraded case
	// is the one category for which the strong guarantee does not hold.
	Relocate func(src *T) (T, error)

	// Drop releases resources held by an element before its slot is
	// vacated. nil means the type holds nothing to release.
	Drop func(*T)
}

// transferByMove reports whether growth relocates existing elements into
// the new block instead of cloning them. Relocation is chosen when it
// cannot fail, or when cloning is impossible; cloning otherwise, so the
// untouched originals survive a mid-transfer failure.
func (tr *Traits[T]) transferByMove() bool {
	return tr.Relocate == nil || tr.NoCopy
}

// construct runs New, or produces the zero value.
func (tr *Traits[T]) construct() (T, error) {
	if tr.New != nil {
		return tr.New()
	}
	var zero T
	return zero, nil
}

// clone duplicates *src per the traits.
func (tr *Traits[T]) clone(src *T) (T, error) {
	if tr.NoCopy {
		var zero T
		return zero, ErrNotCloneable
	}
	if tr.Clone != nil {
		return tr.Clone(src)
	}
	return *src, nil
}

// drop destroys the element in *slot and zeroes the slot so the GC can
// reclaim anything it referenced.
func (tr *Traits[T]) drop(slot *T) {
	if tr.Drop != nil {
		tr.Drop(slot)
	}
	var zero T
	*slot = zero
}
