//go:build tinygo

package regs

import (
	"runtime/volatile"
	"unsafe"
)

//mmioBus reaches a block at its fixed physical address.
type mmioBus uintptr

func (b mmioBus) Load(offset uint32, width Width) uint32 {
	p := unsafe.Pointer(uintptr(b) + uintptr(offset))
	if width == Width8 {
		return uint32(volatile.LoadUint8((*uint8)(p)))
	}
	return volatile.LoadUint32((*uint32)(p))
}

func (b mmioBus) Store(offset uint32, width Width, value uint32) {
	p := unsafe.Pointer(uintptr(b) + uintptr(offset))
	if width == Width8 {
		volatile.StoreUint8((*uint8)(p), uint8(value))
		return
	}
	volatile.StoreUint32((*uint32)(p), value)
}

//Device returns the buses of the running chip, indexed by BlockID.
func Device() [NumBlocks]Bus {
	return [NumBlocks]Bus{
		RSIM: mmioBus(RSIMBase),
		SIM:  mmioBus(SIMBase),
		MCG:  mmioBus(MCGBase),
	}
}
