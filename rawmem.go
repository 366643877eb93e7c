package vector

import (
	"math"
	"unsafe"
)

// rawMemory owns a contiguous span of element slots. It knows nothing
// about element lifetime: slots are raw until the layer above constructs
// into them, and release never runs a destructor. The type is move-only;
// ownership is handed over with moveFrom or exchanged with swap, never
// duplicated.
type rawMemory[T any] struct {
	slots []T
}

// elemSize returns the in-memory size of one element slot.
func elemSize[T any]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// newRawMemory allocates storage for exactly n slots. n == 0 holds no
// storage. The addressability check runs before anything is allocated,
// so a failure leaves no partial state behind.
func newRawMemory[T any](n int) (rawMemory[T], error) {
	if n < 0 {
		panic("vector: negative slot count")
	}
	if n == 0 {
		return rawMemory[T]{}, nil
	}
	if es := elemSize[T](); es > 0 && n > math.MaxInt/es {
		return rawMemory[T]{}, ErrTooLarge
	}
	return rawMemory[T]{slots: make([]T, n)}, nil
}

// capacity returns the slot count of the span.
func (m *rawMemory[T]) capacity() int {
	return len(m.slots)
}

// at returns the address of slot i. Any i < capacity is addressable;
// whether the slot holds a live element is the caller's contract.
func (m *rawMemory[T]) at(i int) *T {
	if i < 0 || i >= len(m.slots) {
		panic("vector: slot index out of range")
	}
	return &m.slots[i]
}

// span returns the slots [from, to) as a slice.
func (m *rawMemory[T]) span(from, to int) []T {
	return m.slots[from:to]
}

// moveFrom takes ownership of other's span; other becomes empty.
func (m *rawMemory[T]) moveFrom(other *rawMemory[T]) {
	m.slots = other.slots
	other.slots = nil
}

// swap exchanges the spans in O(1); no element is touched.
func (m *rawMemory[T]) swap(other *rawMemory[T]) {
	m.slots, other.slots = other.slots, m.slots
}

// release drops the span without running any destructor. Live elements
// must already have been destroyed by the owner.
func (m *rawMemory[T]) release() {
	m.slots = nil
}
