package uart

// RegisterMap describes where a UART variant's registers sit inside its
// window and how the "clear to send another byte" condition is encoded in
// the status register. The layout is a fixed hardware contract per
// variant; drivers never compute offsets outside this table.
type RegisterMap struct {
	Data uint32 // transmit data / holding register
	Flag uint32 // status register polled before each byte

	// TXReadyMask selects the status bit gating transmission. TXReadySet
	// is true when a set bit means ready (NS16550 THRE) and false when a
	// set bit means full (PL011 TXFF).
	TXReadyMask uint32
	TXReadySet  bool

	// HasControl marks variants with PL011-compatible configuration
	// registers. When false, Configure programs nothing and only the
	// Data/Flag pair is ever touched.
	HasControl bool
	BaudInt    uint32 // integer baud divisor
	BaudFrac   uint32 // fractional baud divisor
	LineCtrl   uint32 // word length, FIFO enable
	Ctrl       uint32 // UART/TX/RX enable
	IntMask    uint32 // interrupt mask, always written 0

	// BusyMask optionally selects a "transmission in progress" status
	// bit. Zero when the variant does not expose one.
	BusyMask uint32
}

// PL011 returns the register map of an ARM PL011.
func PL011() RegisterMap {
	return RegisterMap{
		Data:        pl011DR,
		Flag:        pl011FR,
		TXReadyMask: pl011FRTXFF,
		TXReadySet:  false, // TXFF set means full
		HasControl:  true,
		BaudInt:     pl011IBRD,
		BaudFrac:    pl011FBRD,
		LineCtrl:    pl011LCRH,
		Ctrl:        pl011CR,
		IntMask:     pl011IMSC,
		BusyMask:    pl011FRBusy,
	}
}

// NS16550 returns the register map of a pre-configured NS16550 exposing
// only its transmit-holding and line-status registers. The platform
// programs format and baud before handing control to software, so there
// are no configuration registers to touch.
func NS16550() RegisterMap {
	return RegisterMap{
		Data:        ns16550THR,
		Flag:        ns16550LSR,
		TXReadyMask: ns16550LSRTHRE,
		TXReadySet:  true, // THRE set means ready
	}
}

// Validate checks the structural fields required by every operation.
func (m RegisterMap) Validate() error {
	if m.TXReadyMask == 0 {
		return ErrBadRegisterMap
	}
	if m.Data == m.Flag {
		return ErrBadRegisterMap
	}
	return nil
}
