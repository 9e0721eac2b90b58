// Package mmio provides ordered access to memory-mapped peripheral
// registers through a narrow bus interface, so the same driver code runs
// against real hardware on MCU builds and against a simulated register
// file on the host.
package mmio

// Bus is the access path into one peripheral's register window. Offsets
// are relative to the window base. Every call must be a real bus
// transaction, performed exactly once, in program order: implementations
// must not cache values, combine adjacent accesses or reorder them,
// because the underlying locations have side effects and change without
// program action.
type Bus interface {
	Read32(off uint32) uint32
	Write32(off uint32, v uint32)
}

// Reg32 grants read/write access to a single fixed register. It is never
// valid as general-purpose storage and carries no pointer arithmetic; the
// only addresses reachable through it are the one it was bound to.
type Reg32 struct {
	bus Bus
	off uint32
}

// At binds a register handle to one offset on a bus.
func At(bus Bus, off uint32) Reg32 { return Reg32{bus: bus, off: off} }

// Get fetches the current register value.
func (r Reg32) Get() uint32 { return r.bus.Read32(r.off) }

// Set stores v into the register.
func (r Reg32) Set(v uint32) { r.bus.Write32(r.off, v) }

// HasBits fetches the register and reports whether any bit in mask is set.
// The value is not cached: each call is a fresh read.
func (r Reg32) HasBits(mask uint32) bool { return r.Get()&mask != 0 }

// SetBits ORs mask into the register (read-modify-write).
func (r Reg32) SetBits(mask uint32) { r.Set(r.Get() | mask) }

// ClearBits clears every bit in mask (read-modify-write).
func (r Reg32) ClearBits(mask uint32) { r.Set(r.Get() &^ mask) }

// Offset returns the offset the handle was bound to.
func (r Reg32) Offset() uint32 { return r.off }
