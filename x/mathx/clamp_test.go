package mathx

import "testing"

func TestClamp(t *testing.T) {
	type C struct {
		v, lo, hi, want uint32
	}
	for _, c := range []C{
		{5, 1, 10, 5},
		{0, 1, 10, 1},
		{11, 1, 10, 10},
		{5, 10, 1, 5}, // swapped bounds
	} {
		if got := Clamp(c.v, c.lo, c.hi); got != c.want {
			t.Fatalf("Clamp(%d, %d, %d) = %d, want %d", c.v, c.lo, c.hi, got, c.want)
		}
	}
}

func TestBetween(t *testing.T) {
	if !Between(63, 0, 63) {
		t.Fatalf("Between(63, 0, 63) = false, want true")
	}
	if Between(64, 0, 63) {
		t.Fatalf("Between(64, 0, 63) = true, want false")
	}
	if !Between(5, 10, 1) {
		t.Fatalf("Between with swapped bounds = false, want true")
	}
}
