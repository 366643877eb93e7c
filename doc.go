// Package vector implements a growable array over raw element storage.
//
// # Overview
//
// Vector is a hand-built dynamic array: it manages its own storage block,
// element lifetime, and failure safety instead of delegating to a
// built-in container. This is useful for:
//
//   - Element types with real construction, duplication, or teardown
//     steps (handles, pooled buffers, reference-counted values)
//   - Code that needs the strong guarantee: a failed growth insertion
//     leaves the vector exactly as it was
//   - Predictable doubling growth with explicit capacity control
//
// The design is layered. A raw memory block owns a span of element slots
// and knows nothing about element lifetime; the vector above it tracks
// how many slots hold live elements and performs every construct,
// destroy, and transfer itself.
//
// # Basic Usage
//
//	v := vector.New[int]()
//	defer v.Release() // Destroy elements and free storage
//
//	_ = v.Append(1, 2, 3)   // Amortized O(1) growth
//	_ = v.Insert(1, 99)     // [1 99 2 3]
//	v.Erase(1)              // [1 2 3]
//
//	for i, p := range v.All() {
//		*p += i // In-place mutation
//	}
//
// # Element Lifetime
//
// Types with non-trivial lifetime supply Traits at construction:
//
//	tr := vector.Traits[*Conn]{
//		Clone: func(c **Conn) (*Conn, error) { return (*c).Dup() },
//		Drop:  func(c **Conn) { (*c).Close() },
//	}
//	v := vector.NewWithTraits(tr)
//
// The traits decide the growth transfer strategy once per type: elements
// are relocated when relocation cannot fail (or the type cannot be
// cloned), and cloned otherwise so that a mid-transfer failure can be
// rolled back without touching the originals.
//
// # Failure Safety
//
// Every growth path allocates and populates a fresh block first and
// commits it by swap only on total success. If constructing or cloning
// any element fails, the fresh block is unwound and the vector's length,
// capacity, and elements are exactly as before the call. The single
// exception is a NoCopy type whose Relocate can fail; that category
// cannot offer the rollback and is documented on Traits.Relocate.
//
// Contract violations (indexing out of range, PopBack or Erase on an
// empty vector) are caller bugs and panic rather than returning errors.
//
// # Thread Safety
//
// Vector is not goroutine-safe. For concurrent access, use SafeVector:
//
//	s := vector.NewSafe[int]()
//	_ = s.PushBack(42)
//	n := s.Len()
//
// # Performance Characteristics
//
//   - PushBack/EmplaceBack: O(1) amortized, doubling growth from 1
//   - Insert/Erase: O(n) shift within the block
//   - Reserve/Resize: O(n) transfer when growing
//   - Swap, MoveFrom: O(1), no element touched
//   - PopBack never shrinks capacity
package vector
