package uart

import (
	"testing"

	"serialio-go/x/mathx"
)

func TestDivisors(t *testing.T) {
	type C struct {
		clock, baud uint32
		ibrd, fbrd  uint32
	}
	for _, c := range []C{
		// 24 MHz / (16*115200) = 13.0208 -> 13 + 1/64.
		{24_000_000, 115200, 13, 1},
		// Exact division: no fractional part.
		{7_372_800, 115200, 4, 0},
		// 48 MHz: 26.0417 -> 26 + 3/64 (rounded from 2.67).
		{48_000_000, 115200, 26, 3},
		// Fraction rounds up to a whole step: carries into the integer.
		{3_835, 80, 3, 0},
		// Divisor below hardware minimum clamps to 1.
		{100, 115200, 1, 0},
		// Divisor above the 16-bit field clamps.
		{0xFFFFFFFF, 1, 0xFFFF, 60},
		// Degenerate configuration falls back to the minimum divisor.
		{0, 115200, 1, 0},
		{24_000_000, 0, 1, 0},
	} {
		ibrd, fbrd := Divisors(c.clock, c.baud)
		if ibrd != c.ibrd || fbrd != c.fbrd {
			t.Fatalf("Divisors(%d, %d) = (%d, %d), want (%d, %d)",
				c.clock, c.baud, ibrd, fbrd, c.ibrd, c.fbrd)
		}
	}
}

func TestDivisorsStayInFieldRange(t *testing.T) {
	for _, baud := range []uint32{300, 9600, 38400, 115200, 921600, 3_000_000} {
		for _, clock := range []uint32{1_000_000, 24_000_000, 48_000_000, 125_000_000} {
			ibrd, fbrd := Divisors(clock, baud)
			if !mathx.Between(ibrd, 1, uint32(ibrdMax)) {
				t.Fatalf("Divisors(%d, %d) ibrd = %d, outside [1, %d]", clock, baud, ibrd, ibrdMax)
			}
			if !mathx.Between(fbrd, 0, uint32(fbrdMax)) {
				t.Fatalf("Divisors(%d, %d) fbrd = %d, outside [0, %d]", clock, baud, fbrd, fbrdMax)
			}
		}
	}
}
