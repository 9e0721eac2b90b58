//go:build tinygo

package mmio

import (
	"runtime/volatile"
	"unsafe"
)

// Mem is a Bus over a real register window starting at a fixed physical
// base address. The base is a configuration-time constant taken from the
// platform's memory map; Mem never allocates or releases it. Volatile
// loads and stores keep every access a real, ordered bus transaction.
type Mem struct {
	base uintptr
}

// NewMem returns a Bus rooted at base. Validity of the address range is a
// bring-up concern, not checked at runtime.
func NewMem(base uintptr) *Mem { return &Mem{base: base} }

func (m *Mem) Read32(off uint32) uint32 {
	return volatile.LoadUint32((*uint32)(unsafe.Pointer(m.base + uintptr(off))))
}

func (m *Mem) Write32(off uint32, v uint32) {
	volatile.StoreUint32((*uint32)(unsafe.Pointer(m.base+uintptr(off))), v)
}
