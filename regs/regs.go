//Package regs describes the MKW41Z registers used during clock bring-up and the buses they are reached through.
package regs

import "fmt"

//Width is the access width of a register in bits.
type Width uint8

//Valid Widths
const (
	Width8  Width = 8
	Width32 Width = 32
)

//Bus moves register values of one peripheral block. Offsets are relative to the block base.
//A Load must observe live hardware state, nothing may be cached.
type Bus interface {
	Load(offset uint32, width Width) uint32
	Store(offset uint32, width Width, value uint32)
}

//BlockID names one of the peripheral blocks touched during bring-up.
type BlockID uint8

//Valid BlockIDs
const (
	RSIM BlockID = iota
	SIM
	MCG
	NumBlocks
)

var blockNames = [...]string{
	RSIM: "RSIM",
	SIM:  "SIM",
	MCG:  "MCG",
}

func (b BlockID) String() string {
	if int(b) < len(blockNames) {
		return blockNames[b]
	}
	return fmt.Sprintf("block%d", uint8(b))
}

//Base returns the physical base address of the block.
func (b BlockID) Base() uintptr {
	switch b {
	case RSIM:
		return RSIMBase
	case SIM:
		return SIMBase
	case MCG:
		return MCGBase
	}
	return 0
}

//Size returns the number of bytes that must be mapped to reach every register of the block used here.
func (b BlockID) Size() int {
	switch b {
	case RSIM:
		return rsimSize
	case SIM:
		return simSize
	case MCG:
		return mcgSize
	}
	return 0
}

//Register is a single control or status register.
type Register struct {
	Block  BlockID
	Name   string
	Offset uint32
	Width  Width
}

func (r Register) String() string {
	return r.Block.String() + "_" + r.Name
}

//Address returns the physical address of the register.
func (r Register) Address() uintptr {
	return r.Block.Base() + uintptr(r.Offset)
}

//Field is a run of Bits bits starting at Shift inside Reg.
type Field struct {
	Reg   Register
	Name  string
	Shift uint8
	Bits  uint8
}

func (f Field) String() string {
	return f.Reg.String() + "." + f.Name
}

//Mask returns the field bits in register position.
func (f Field) Mask() uint32 {
	return ((1 << f.Bits) - 1) << f.Shift
}

//Get extracts the field from the register value v.
func (f Field) Get(v uint32) uint32 {
	return (v & f.Mask()) >> f.Shift
}

//IsSet reports whether any bit of the field is set in v.
func (f Field) IsSet(v uint32) bool {
	return v&f.Mask() != 0
}

//Put returns v with the field replaced by x. Bits of x outside the field are dropped.
func (f Field) Put(v uint32, x uint32) uint32 {
	return (v &^ f.Mask()) | ((x << f.Shift) & f.Mask())
}

//Value returns x in field position with every other bit zero. Used to build whole register writes.
func (f Field) Value(x uint32) uint32 {
	return f.Put(0, x)
}

//Lookup finds the register of block at offset.
func Lookup(block BlockID, offset uint32) (Register, bool) {
	for _, r := range All {
		if r.Block == block && r.Offset == offset {
			return r, true
		}
	}
	return Register{}, false
}
