// Package conv renders integers into caller-supplied buffers with no
// allocations and no fmt/strconv dependency, for output paths that must
// not touch the heap.
package conv

// Utoa writes the base-10 representation of n into buf, filling digits
// backward from the end, and returns the used slice. No leading zeros;
// n == 0 yields "0". buf needs length >= 20 to hold any uint64.
func Utoa(buf []byte, n uint64) []byte {
	if len(buf) == 0 {
		return buf[:0]
	}
	i := len(buf)
	if n == 0 {
		i--
		buf[i] = '0'
		return buf[i:]
	}
	for n > 0 && i > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return buf[i:]
}
