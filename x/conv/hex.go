package conv

const hexDigits = "0123456789ABCDEF"

// U32Hex writes n as 8 uppercase hex digits without 0x, zero-padded, and
// returns the used slice. buf needs length >= 8.
func U32Hex(buf []byte, n uint32) []byte {
	if len(buf) < 8 {
		return buf[:0]
	}
	i := len(buf)
	for j := 0; j < 8; j++ {
		i--
		buf[i] = hexDigits[n&0xF]
		n >>= 4
	}
	return buf[i:]
}
