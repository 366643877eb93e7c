package vector

import (
	"errors"
	"math"
	"testing"
)

func TestNewRawMemory(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want int
	}{
		{"empty block", 0, 0},
		{"single slot", 1, 1},
		{"many slots", 64, 64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := newRawMemory[int64](tt.n)
			if err != nil {
				t.Fatalf("newRawMemory(%d) error = %v", tt.n, err)
			}
			if m.capacity() != tt.want {
				t.Errorf("capacity = %d, want %d", m.capacity(), tt.want)
			}
		})
	}
}

func TestNewRawMemoryTooLarge(t *testing.T) {
	n := math.MaxInt/elemSize[int64]() + 1
	m, err := newRawMemory[int64](n)
	if !errors.Is(err, ErrTooLarge) {
		t.Fatalf("newRawMemory(%d) error = %v, want ErrTooLarge", n, err)
	}
	if m.capacity() != 0 {
		t.Errorf("failed allocation left capacity = %d, want 0", m.capacity())
	}
}

func TestNewRawMemoryNegativePanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic for negative slot count")
		}
	}()
	_, _ = newRawMemory[int](-1)
}

func TestRawMemoryAt(t *testing.T) {
	m, err := newRawMemory[int](4)
	if err != nil {
		t.Fatal(err)
	}

	*m.at(0) = 10
	*m.at(3) = 40
	if *m.at(0) != 10 || *m.at(3) != 40 {
		t.Errorf("slot contents = %d, %d, want 10, 40", *m.at(0), *m.at(3))
	}

	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic for out-of-range slot")
		}
	}()
	_ = m.at(4)
}

func TestRawMemorySwap(t *testing.T) {
	a, _ := newRawMemory[int](2)
	b, _ := newRawMemory[int](8)
	*a.at(0) = 1
	*b.at(0) = 2

	a.swap(&b)

	if a.capacity() != 8 || b.capacity() != 2 {
		t.Errorf("capacities after swap = %d, %d, want 8, 2", a.capacity(), b.capacity())
	}
	if *a.at(0) != 2 || *b.at(0) != 1 {
		t.Errorf("contents after swap = %d, %d, want 2, 1", *a.at(0), *b.at(0))
	}
}

func TestRawMemoryMoveFrom(t *testing.T) {
	src, _ := newRawMemory[int](4)
	*src.at(1) = 7

	var dst rawMemory[int]
	dst.moveFrom(&src)

	if dst.capacity() != 4 || *dst.at(1) != 7 {
		t.Errorf("destination capacity = %d, slot 1 = %d, want 4, 7", dst.capacity(), *dst.at(1))
	}
	if src.capacity() != 0 {
		t.Errorf("source capacity after move = %d, want 0", src.capacity())
	}
}

func TestRawMemoryRelease(t *testing.T) {
	m, _ := newRawMemory[int](4)
	m.release()
	if m.capacity() != 0 {
		t.Errorf("capacity after release = %d, want 0", m.capacity())
	}
}
