package kw41zclock

import (
	"sync/atomic"

	"github.com/DerLukas15/kw41zclock/regs"
	"github.com/pkg/errors"
)

//Hardware is the single owner handle of the clock blocks. Obtain it once and hand it to New.
//Copies of a Hardware value share its claim, so copying does not create a second owner.
type Hardware struct {
	buses [regs.NumBlocks]regs.Bus
	spin  func(iterations uint32)
	owner *owner
}

type owner struct {
	claimed int32
}

func newHardware(buses [regs.NumBlocks]regs.Bus, spin func(iterations uint32)) *Hardware {
	return &Hardware{buses: buses, spin: spin, owner: &owner{}}
}

//NewHardware returns a handle for the given buses. buses is indexed by regs.BlockID.
func NewHardware(buses [regs.NumBlocks]regs.Bus) (*Hardware, error) {
	for b, bus := range buses {
		if bus == nil {
			return nil, errors.Wrapf(ErrNoHardware, "%s bus", regs.BlockID(b))
		}
	}
	return newHardware(buses, spin), nil
}

//SetSpin replaces the busy wait used for the FLL settling time.
func (hw *Hardware) SetSpin(fn func(iterations uint32)) {
	if fn == nil {
		fn = spin
	}
	hw.spin = fn
}

//claim takes ownership. Only the first call succeeds.
func (hw *Hardware) claim() error {
	if !atomic.CompareAndSwapInt32(&hw.owner.claimed, 0, 1) {
		return ErrHardwareClaimed
	}
	return nil
}

//Claimed reports whether a bring-up took ownership of hw.
func (hw *Hardware) Claimed() bool {
	return atomic.LoadInt32(&hw.owner.claimed) != 0
}

func (hw *Hardware) read(r regs.Register) uint32 {
	return hw.buses[r.Block].Load(r.Offset, r.Width)
}

//write stores v as the whole register. Fields not in v become zero.
func (hw *Hardware) write(r regs.Register, v uint32) {
	hw.buses[r.Block].Store(r.Offset, r.Width, v)
}

//modify is a read-modify-write of r.
func (hw *Hardware) modify(r regs.Register, fn func(v uint32) uint32) {
	bus := hw.buses[r.Block]
	bus.Store(r.Offset, r.Width, fn(bus.Load(r.Offset, r.Width)))
}

func (hw *Hardware) field(f regs.Field) uint32 {
	return f.Get(hw.read(f.Reg))
}
