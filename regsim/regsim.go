// Package regsim provides an in-memory register file that stands in for a
// peripheral's memory-mapped window in tests and host demos. It records
// every access in order and lets a test script the values returned by
// successive reads of one register, so a driver's polling loop can be fed
// a bounded number of "not ready" responses before "ready" instead of
// hanging the test.
package regsim

// Access is one bus transaction, in the order it was issued.
type Access struct {
	Off   uint32
	Value uint32
	Write bool
}

// Bus implements mmio.Bus over a map of register values. The zero value
// of every register is 0 until written, poked or scripted.
type Bus struct {
	regs    map[uint32]uint32
	scripts map[uint32][]uint32
	log     []Access
	onWrite func(off, v uint32)
}

func New() *Bus {
	return &Bus{
		regs:    make(map[uint32]uint32),
		scripts: make(map[uint32][]uint32),
	}
}

// Read32 returns the next scripted value for off if one is queued,
// otherwise the stored register value.
func (b *Bus) Read32(off uint32) uint32 {
	v, ok := b.nextScripted(off)
	if !ok {
		v = b.regs[off]
	}
	b.log = append(b.log, Access{Off: off, Value: v})
	return v
}

func (b *Bus) Write32(off uint32, v uint32) {
	b.regs[off] = v
	b.log = append(b.log, Access{Off: off, Value: v, Write: true})
	if b.onWrite != nil {
		b.onWrite(off, v)
	}
}

func (b *Bus) nextScripted(off uint32) (uint32, bool) {
	q := b.scripts[off]
	if len(q) == 0 {
		return 0, false
	}
	v := q[0]
	b.scripts[off] = q[1:]
	return v, true
}

// QueueReads schedules values to be returned, in order, by the next reads
// of off. Once the queue drains, reads fall back to the stored value.
func (b *Bus) QueueReads(off uint32, vals ...uint32) {
	b.scripts[off] = append(b.scripts[off], vals...)
}

// Poke sets a register value without logging an access, for test setup.
func (b *Bus) Poke(off, v uint32) { b.regs[off] = v }

// Peek returns the stored value without logging an access.
func (b *Bus) Peek(off uint32) uint32 { return b.regs[off] }

// OnWrite installs a hook invoked after every Write32, e.g. to stream the
// data register of a simulated UART to stdout.
func (b *Bus) OnWrite(fn func(off, v uint32)) { b.onWrite = fn }

// Accesses returns the full ordered access log.
func (b *Bus) Accesses() []Access { return b.log }

// Writes returns the values written to off, in order.
func (b *Bus) Writes(off uint32) []uint32 {
	var out []uint32
	for _, a := range b.log {
		if a.Write && a.Off == off {
			out = append(out, a.Value)
		}
	}
	return out
}

// Snapshot copies the current register contents, for before/after
// comparisons.
func (b *Bus) Snapshot() map[uint32]uint32 {
	out := make(map[uint32]uint32, len(b.regs))
	for k, v := range b.regs {
		out[k] = v
	}
	return out
}

// ClearLog drops the access log but keeps register contents and scripts.
func (b *Bus) ClearLog() { b.log = nil }
