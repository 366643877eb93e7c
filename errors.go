package vector

import "errors"

var (
	// ErrTooLarge indicates a capacity request whose byte size cannot be
	// addressed. The request is rejected before any storage is touched.
	ErrTooLarge = errors.New("vector: requested capacity exceeds addressable memory")

	// ErrNotCloneable indicates a duplicate was requested of an element
	// type whose traits mark it NoCopy.
	ErrNotCloneable = errors.New("vector: element type is marked NoCopy")
)
