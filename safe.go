package vector

import "sync"

// SafeVector is a mutex-protected wrapper around Vector for concurrent
// access. All operations are thread-safe but come with the overhead of
// mutex locking. Element addresses are deliberately not exposed; use Get
// and Set, which copy under the lock.
type SafeVector[T any] struct {
	mu sync.Mutex
	v  *Vector[T]
}

// NewSafe creates a thread-safe vector with plain value semantics for T.
func NewSafe[T any]() *SafeVector[T] {
	return &SafeVector[T]{v: New[T]()}
}

// NewSafeWithTraits creates a thread-safe vector whose element lifetime
// is managed by tr.
func NewSafeWithTraits[T any](tr Traits[T]) *SafeVector[T] {
	return &SafeVector[T]{v: NewWithTraits(tr)}
}

// Len thread-safely returns the number of live elements.
func (s *SafeVector[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.Len()
}

// Cap thread-safely returns the number of allocated slots.
func (s *SafeVector[T]) Cap() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.Cap()
}

// Get thread-safely returns a copy of element i.
func (s *SafeVector[T]) Get(i int) T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.Get(i)
}

// Set thread-safely replaces element i with x, destroying the previous
// element.
func (s *SafeVector[T]) Set(i int, x T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.v.Set(i, x)
}

// PushBack thread-safely appends a duplicate of x.
func (s *SafeVector[T]) PushBack(x T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.PushBack(x)
}

// Append thread-safely appends xs, transferring ownership without cloning.
func (s *SafeVector[T]) Append(xs ...T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.Append(xs...)
}

// PopBack thread-safely destroys the last element.
func (s *SafeVector[T]) PopBack() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.v.PopBack()
}

// Insert thread-safely places a duplicate of x at index i.
func (s *SafeVector[T]) Insert(i int, x T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.Insert(i, x)
}

// Erase thread-safely removes element i.
func (s *SafeVector[T]) Erase(i int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.Erase(i)
}

// Reserve thread-safely grows the block to at least n slots.
func (s *SafeVector[T]) Reserve(n int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.Reserve(n)
}

// Resize thread-safely grows or shrinks the live range to n elements.
func (s *SafeVector[T]) Resize(n int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.Resize(n)
}

// Snapshot thread-safely returns a copy of the live elements as a slice.
func (s *SafeVector[T]) Snapshot() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]T, 0, s.v.Len())
	for x := range s.v.Values() {
		out = append(out, x)
	}
	return out
}

// Clear thread-safely destroys all elements, keeping capacity.
func (s *SafeVector[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.v.Clear()
}

// Release thread-safely destroys all elements and frees the block.
func (s *SafeVector[T]) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.v.Release()
}
