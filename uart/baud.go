package uart

import "serialio-go/x/mathx"

// Divisor field widths: IBRD is 16 bits, FBRD counts 1/64 steps.
const (
	ibrdMax = 0xFFFF
	fbrdMax = 63
)

// Divisors splits clockHz/(16*baud) into the integer and fractional baud
// divisor parts. The fraction is the remainder scaled to 1/64 steps and
// rounded to the nearest step, carrying into the integer part when it
// rounds up to a whole. Results are clamped into the hardware range
// rather than rejected; an out-of-range request is a configuration
// mistake caught at bring-up, not a runtime failure.
func Divisors(clockHz, baud uint32) (ibrd, fbrd uint32) {
	if clockHz == 0 || baud == 0 {
		return 1, 0
	}
	den := 16 * baud
	ibrd = clockHz / den
	rem := clockHz % den

	fbrd = uint32((uint64(rem)*64 + uint64(den)/2) / uint64(den))
	if fbrd > fbrdMax {
		ibrd++
		fbrd = 0
	}
	ibrd = mathx.Clamp(ibrd, 1, uint32(ibrdMax))
	return ibrd, fbrd
}
