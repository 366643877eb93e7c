package vector

// SizeInUse returns the number of bytes occupied by live elements.
func (v *Vector[T]) SizeInUse() int {
	return v.size * elemSize[T]()
}

// CapacityBytes returns the byte size of the allocated block.
func (v *Vector[T]) CapacityBytes() int {
	return v.data.capacity() * elemSize[T]()
}

// Utilization returns the ratio of live slots to allocated slots (0.0 to 1.0).
// Returns 0.0 if no storage is held.
func (v *Vector[T]) Utilization() float64 {
	c := v.data.capacity()
	if c == 0 {
		return 0
	}
	return float64(v.size) / float64(c)
}

// Metrics returns a snapshot of vector statistics.
func (v *Vector[T]) Metrics() VectorMetrics {
	return VectorMetrics{
		Len:           v.size,
		Cap:           v.data.capacity(),
		ElemSize:      elemSize[T](),
		SizeInUse:     v.SizeInUse(),
		CapacityBytes: v.CapacityBytes(),
		Utilization:   v.Utilization(),
	}
}

// VectorMetrics contains statistical information about a vector.
type VectorMetrics struct {
	Len           int     // Live elements
	Cap           int     // Allocated slots
	ElemSize      int     // Bytes per element slot
	SizeInUse     int     // Bytes occupied by live elements
	CapacityBytes int     // Byte size of the allocated block
	Utilization   float64 // Ratio of live to allocated slots (0.0-1.0)
}

// Thread-safe metrics for SafeVector

// SizeInUse thread-safely returns the bytes occupied by live elements.
func (s *SafeVector[T]) SizeInUse() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.SizeInUse()
}

// CapacityBytes thread-safely returns the byte size of the allocated block.
func (s *SafeVector[T]) CapacityBytes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.CapacityBytes()
}

// Utilization thread-safely returns the ratio of live to allocated slots.
func (s *SafeVector[T]) Utilization() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.Utilization()
}

// Metrics thread-safely returns a snapshot of vector statistics.
func (s *SafeVector[T]) Metrics() VectorMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.Metrics()
}
