package uart

import (
	"tinygo.org/x/drivers"

	"serialio-go/mmio"
	"serialio-go/x/conv"
)

// Config holds the static line configuration applied by Configure.
// Integer-only. Values are not range-checked at runtime beyond divisor
// clamping: a nonsensical clock or baud is a bring-up error, not a
// runtime condition.
type Config struct {
	BaudRate uint32 // target baud rate, e.g. 115200
	ClockHz  uint32 // peripheral input clock; must already be running

	// SettleCycles sizes the busy-wait after enabling the UART. The
	// enable needs time to propagate before transmission is reliable;
	// no timer peripheral is assumed, so this is loop iterations, not
	// wall time.
	SettleCycles uint32
}

// DefaultConfig matches the console bring-up used on the reference
// platform: 115200 baud from a 24 MHz peripheral clock.
func DefaultConfig() Config {
	return Config{
		BaudRate:     115200,
		ClockHz:      24_000_000,
		SettleCycles: 1000,
	}
}

// Device is one polled transmit-only UART instance. It exclusively owns
// its register window: no other code may access those registers while the
// Device is in use. Instances are independent; driving two of them needs
// no coordination, but a single instance must have a single writer (add
// external mutual exclusion if several contexts share one).
type Device struct {
	data mmio.Reg32
	flag mmio.Reg32

	baudInt  mmio.Reg32
	baudFrac mmio.Reg32
	lineCtrl mmio.Reg32
	ctrl     mmio.Reg32
	intMask  mmio.Reg32

	regs  RegisterMap
	cfg   Config
	ready bool

	// Settle is the delay primitive run once at the end of Configure.
	// Replace it in tests to skip the calibrated spin.
	Settle func(cycles uint32)

	num [20]byte // scratch for decimal rendering; avoids per-call allocation
}

// Device implements the TinyGo drivers UART contract so it can be handed
// to anything that logs over a serial port. The receive side fails fast.
var _ drivers.UART = (*Device)(nil)

// New binds a Device to its register window. The Device is not usable
// until Configure has run.
func New(bus mmio.Bus, regs RegisterMap) *Device {
	d := &Device{
		data:   mmio.At(bus, regs.Data),
		flag:   mmio.At(bus, regs.Flag),
		regs:   regs,
		Settle: spin,
	}
	if regs.HasControl {
		d.baudInt = mmio.At(bus, regs.BaudInt)
		d.baudFrac = mmio.At(bus, regs.BaudFrac)
		d.lineCtrl = mmio.At(bus, regs.LineCtrl)
		d.ctrl = mmio.At(bus, regs.Ctrl)
		d.intMask = mmio.At(bus, regs.IntMask)
	}
	return d
}

// Configure brings the instance into a known usable state. Zero-valued
// Config fields take their defaults. All register writes are absolute, so
// repeating Configure re-applies the same contents; it must not run
// concurrently with an in-flight transmit on the same instance.
//
// The write order is a hardware requirement: the UART must be disabled
// before its divisor or line format changes, and enabled only after both
// are programmed.
func (d *Device) Configure(cfg Config) error {
	if err := d.regs.Validate(); err != nil {
		return err
	}
	def := DefaultConfig()
	if cfg.BaudRate == 0 {
		cfg.BaudRate = def.BaudRate
	}
	if cfg.ClockHz == 0 {
		cfg.ClockHz = def.ClockHz
	}
	if cfg.SettleCycles == 0 {
		cfg.SettleCycles = def.SettleCycles
	}

	if d.regs.HasControl {
		// 1) Disable while reprogramming.
		d.ctrl.Set(0)

		// 2) Baud divisor, integer then fractional.
		ibrd, fbrd := Divisors(cfg.ClockHz, cfg.BaudRate)
		d.baudInt.Set(ibrd)
		d.baudFrac.Set(fbrd)

		// 3) 8 data bits, no parity, 1 stop bit, FIFOs on.
		d.lineCtrl.Set(pl011LCRHWLEN8 | pl011LCRHFEN)

		// 4) Polling only: never arm an interrupt source.
		d.intMask.Set(0)

		// 5) Enable UART with both paths active.
		d.ctrl.Set(pl011CRUARTEN | pl011CRTXE | pl011CRRXE)

		// 6) Let the enable propagate.
		d.Settle(cfg.SettleCycles)
	}

	d.cfg = cfg
	d.ready = true
	return nil
}

// Ready reports whether Configure has completed.
func (d *Device) Ready() bool { return d.ready }

// txReady re-fetches the status register and interprets the ready bit
// with the variant's polarity.
func (d *Device) txReady() bool {
	set := d.flag.HasBits(d.regs.TXReadyMask)
	return set == d.regs.TXReadySet
}

// Busy re-fetches the status register and reports whether a transmission
// is still shifting out. Variants without a busy bit always report false.
func (d *Device) Busy() bool {
	if d.regs.BusyMask == 0 {
		return false
	}
	return d.flag.HasBits(d.regs.BusyMask)
}

// WriteByte busy-waits until the transmit path can take a byte, then
// performs exactly one data-register write. There is no deadline: a flag
// that never clears (hardware fault, unclocked peripheral) blocks
// forever. Callers needing liveness must arm an external watchdog.
func (d *Device) WriteByte(b byte) error {
	if !d.ready {
		return ErrNotConfigured
	}
	for !d.txReady() {
	}
	d.data.Set(uint32(b))
	return nil
}

// Write transmits p verbatim, byte by byte. Binary-safe: no line-ending
// translation (see WriteString for console text).
func (d *Device) Write(p []byte) (int, error) {
	if !d.ready {
		return 0, ErrNotConfigured
	}
	for i, b := range p {
		if err := d.WriteByte(b); err != nil {
			return i, err
		}
	}
	return len(p), nil
}

// WriteString transmits s with console line discipline: every line feed
// is preceded by an inserted carriage return; all other bytes pass
// through unchanged.
func (d *Device) WriteString(s string) error {
	if !d.ready {
		return ErrNotConfigured
	}
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b == '\n' {
			if err := d.WriteByte('\r'); err != nil {
				return err
			}
		}
		if err := d.WriteByte(b); err != nil {
			return err
		}
	}
	return nil
}

// WriteUint transmits n as ASCII decimal, most-significant digit first,
// no leading zeros; zero transmits as "0". No allocation.
func (d *Device) WriteUint(n uint32) error {
	if !d.ready {
		return ErrNotConfigured
	}
	for _, b := range conv.Utoa(d.num[:], uint64(n)) {
		if err := d.WriteByte(b); err != nil {
			return err
		}
	}
	return nil
}

// Receive side: not supported. Receive handling is out of scope for this
// driver; the methods exist only to satisfy the drivers.UART contract.

func (d *Device) Read(p []byte) (int, error) { return 0, ErrNoReceive }

func (d *Device) ReadByte() (byte, error) { return 0, ErrNoReceive }

func (d *Device) Buffered() int { return 0 }

// spinSink defeats elision of the settle loop.
var spinSink uint32

// spin burns roughly cycles loop iterations. Calibration is coarse on
// purpose; the settle delay needs headroom, not precision.
func spin(cycles uint32) {
	for i := uint32(0); i < cycles; i++ {
		spinSink = i
	}
}
