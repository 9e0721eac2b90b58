// Package uart implements a polled, transmit-only serial driver over a
// memory-mapped register window. One Device per physical UART; instances
// are fully independent. Waiting is plain busy-polling of a status flag:
// no interrupts are ever armed and no timeout exists, so a wedged flag
// blocks the caller forever.
package uart

// ARM PL011 register offsets from the peripheral base.
const (
	pl011DR   = 0x00 // data
	pl011FR   = 0x18 // flag/status
	pl011IBRD = 0x24 // baud divisor, integer part
	pl011FBRD = 0x28 // baud divisor, fractional part (1/64 steps)
	pl011LCRH = 0x2C // line control
	pl011CR   = 0x30 // control
	pl011IMSC = 0x38 // interrupt mask set/clear
)

// PL011 flag register bits.
const (
	pl011FRBusy = 1 << 3 // transmission in progress
	pl011FRTXFF = 1 << 5 // transmit FIFO full
)

// PL011 line control bits.
const (
	pl011LCRHFEN   = 1 << 4 // FIFO enable
	pl011LCRHWLEN8 = 3 << 5 // 8 data bits
)

// PL011 control register bits.
const (
	pl011CRUARTEN = 1 << 0 // UART enable
	pl011CRTXE    = 1 << 8 // transmit path enable
	pl011CRRXE    = 1 << 9 // receive path enable
)

// NS16550 register offsets, as integrated on the inter-machine link
// platform (byte registers on word strides).
const (
	ns16550THR = 0x00 // transmit holding
	ns16550LSR = 0x14 // line status
)

const ns16550LSRTHRE = 1 << 5 // transmit holding register empty
