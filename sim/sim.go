//Package sim is a register level model of the MKW41Z clock blocks.
/*
The model starts in the power-on reset state. Writes that start a hardware
transition (enabling the radio oscillator, switching the FLL reference,
changing the DCO range, leaving the fast internal reference) arm a
Condition. An armed Condition keeps reading as not-ready for its latency
number of reads of a register that reports it, then completes.

Every access is appended to a log so tests can check the order of register
transactions.
*/
package sim

import (
	"fmt"

	"github.com/DerLukas15/kw41zclock/regs"
)

//Condition is a hardware transition the model completes after a delay.
type Condition uint8

//Valid Conditions
const (
	OscReady    Condition = iota // RSIM CONTROL RF_OSC_READY sets
	OscInit                      // MCG S OSCINIT0 sets
	ExternalRef                  // MCG S IREFST clears
	FLLRange                     // MCG C4 DRST reports the requested DRS
	FLLOutput                    // MCG S CLKST follows C1 CLKS
	SlowIRC                      // MCG C2 IRCS and S IRCST clear
	numConditions
)

var conditionNames = [...]string{
	OscReady:    "osc-ready",
	OscInit:     "osc-init",
	ExternalRef: "external-ref",
	FLLRange:    "fll-range",
	FLLOutput:   "fll-output",
	SlowIRC:     "slow-irc",
}

func (c Condition) String() string {
	if int(c) < len(conditionNames) {
		return conditionNames[c]
	}
	return fmt.Sprintf("condition%d", uint8(c))
}

//Never is a latency that keeps a Condition pending forever
const Never = -1

//Op is the kind of a logged access.
type Op uint8

//Valid Ops
const (
	OpLoad Op = iota
	OpStore
)

func (op Op) String() string {
	if op == OpStore {
		return "store"
	}
	return "load"
}

//Access is one logged bus transaction.
type Access struct {
	Op    Op
	Reg   regs.Register
	Value uint32
}

func (a Access) String() string {
	return fmt.Sprintf("%s %s %#x", a.Op, a.Reg, a.Value)
}

type condition struct {
	latency int
	pending int
	armed   bool
	polls   int
}

//Device is a simulated chip.
type Device struct {
	values map[regs.Register]uint32
	conds  [numConditions]condition
	drs    uint32 // DRS requested by the last C4 store
	log    []Access
	spins  []uint32
}

//New returns a Device in its power-on reset state with every Condition completing immediately.
func New() *Device {
	d := &Device{values: make(map[regs.Register]uint32)}
	for r, v := range regs.ResetValues {
		d.values[r] = v
	}
	return d
}

//SetLatency sets how many reads observe c as not-ready after it is armed. Use Never to block it.
func (d *Device) SetLatency(c Condition, reads int) {
	d.conds[c].latency = reads
}

//Pending reports whether c is armed and not yet complete.
func (d *Device) Pending(c Condition) bool {
	return d.conds[c].armed
}

//Polls returns the number of not-ready reads c has produced.
func (d *Device) Polls(c Condition) int {
	return d.conds[c].polls
}

//Poke sets a register without logging or side effects.
func (d *Device) Poke(r regs.Register, v uint32) {
	d.values[r] = v
}

//PokeField sets a single field without logging or side effects.
func (d *Device) PokeField(f regs.Field, x uint32) {
	d.values[f.Reg] = f.Put(d.values[f.Reg], x)
}

//Peek returns a register without logging or side effects.
func (d *Device) Peek(r regs.Register) uint32 {
	return d.values[r]
}

//Log returns every access in order.
func (d *Device) Log() []Access {
	return d.log
}

//Stores returns the logged stores in order.
func (d *Device) Stores() []Access {
	var res []Access
	for _, a := range d.log {
		if a.Op == OpStore {
			res = append(res, a)
		}
	}
	return res
}

//StoresTo returns the values stored to r in order.
func (d *Device) StoresTo(r regs.Register) []uint32 {
	var res []uint32
	for _, a := range d.log {
		if a.Op == OpStore && a.Reg == r {
			res = append(res, a.Value)
		}
	}
	return res
}

//ResetLog drops the access log and recorded spins.
func (d *Device) ResetLog() {
	d.log = nil
	d.spins = nil
}

//Spin records a busy wait of the given iterations. It can be used as the spin function of a hardware handle.
func (d *Device) Spin(iterations uint32) {
	d.spins = append(d.spins, iterations)
}

//Spins returns the recorded busy waits.
func (d *Device) Spins() []uint32 {
	return d.spins
}

//Bus returns the bus of block.
func (d *Device) Bus(block regs.BlockID) regs.Bus {
	return &bus{d: d, block: block}
}

//Buses returns the buses of every block indexed by BlockID.
func (d *Device) Buses() [regs.NumBlocks]regs.Bus {
	var res [regs.NumBlocks]regs.Bus
	for b := regs.RSIM; b < regs.NumBlocks; b++ {
		res[b] = d.Bus(b)
	}
	return res
}

type bus struct {
	d     *Device
	block regs.BlockID
}

func (b *bus) Load(offset uint32, width regs.Width) uint32 {
	r := b.d.register(b.block, offset, width)
	return b.d.load(r)
}

func (b *bus) Store(offset uint32, width regs.Width, value uint32) {
	r := b.d.register(b.block, offset, width)
	b.d.store(r, value)
}

func (d *Device) register(block regs.BlockID, offset uint32, width regs.Width) regs.Register {
	r, ok := regs.Lookup(block, offset)
	if !ok {
		r = regs.Register{Block: block, Name: fmt.Sprintf("%#x", offset), Offset: offset, Width: width}
	}
	return r
}

//reportedBy reports whether r shows the state of c.
func (c Condition) reportedBy(r regs.Register) bool {
	switch c {
	case OscReady:
		return r == regs.RSIMControl
	case FLLRange:
		return r == regs.MCGC4
	case SlowIRC:
		return r == regs.MCGC2 || r == regs.MCGS
	}
	return r == regs.MCGS
}

func (d *Device) load(r regs.Register) uint32 {
	for c := Condition(0); c < numConditions; c++ {
		cond := &d.conds[c]
		if !cond.armed || !c.reportedBy(r) {
			continue
		}
		if cond.pending == 0 {
			d.complete(c)
			continue
		}
		if cond.pending > 0 {
			cond.pending--
		}
		cond.polls++
	}
	v := d.values[r]
	d.log = append(d.log, Access{Op: OpLoad, Reg: r, Value: v})
	return v
}

func (d *Device) store(r regs.Register, v uint32) {
	d.log = append(d.log, Access{Op: OpStore, Reg: r, Value: v})
	old := d.values[r]
	switch r {
	case regs.MCGS:
		// read only
		return
	case regs.RSIMControl:
		// RF_OSC_READY is a status bit
		v = regs.RSIMControlRFOscReady.Put(v, regs.RSIMControlRFOscReady.Get(old))
		d.values[r] = v
		if regs.RSIMControlRFOscEn.Get(v) != 0 && !regs.RSIMControlRFOscReady.IsSet(v) {
			d.arm(OscReady)
		}
	case regs.MCGC1:
		d.values[r] = v
		s := d.values[regs.MCGS]
		if !regs.MCGC1Irefs.IsSet(v) && regs.MCGSIrefst.IsSet(s) {
			if regs.MCGC2Erefs.IsSet(d.values[regs.MCGC2]) {
				d.values[regs.MCGS] = regs.MCGSOscinit.Put(d.values[regs.MCGS], 0)
				d.arm(OscInit)
			}
			d.arm(ExternalRef)
		}
		if regs.MCGC1Clks.Get(v) != regs.MCGC1Clks.Get(old) || regs.MCGC1Irefs.Get(v) != regs.MCGC1Irefs.Get(old) {
			d.arm(FLLOutput)
		}
	case regs.MCGC2:
		if regs.MCGC2Ircs.IsSet(old) && !regs.MCGC2Ircs.IsSet(v) && regs.MCGSIrcst.IsSet(d.values[regs.MCGS]) {
			// IRCS keeps reading the fast IRC until the mux has switched
			d.values[r] = regs.MCGC2Ircs.Put(v, 1)
			d.arm(SlowIRC)
			return
		}
		d.values[r] = v
	case regs.MCGC4:
		// DRST keeps reporting the old range until the DCO has moved
		d.drs = regs.MCGC4DrstDrs.Get(v)
		d.values[r] = regs.MCGC4DrstDrs.Put(v, regs.MCGC4DrstDrs.Get(old))
		d.arm(FLLRange)
	default:
		d.values[r] = v
	}
}

func (d *Device) arm(c Condition) {
	cond := &d.conds[c]
	cond.armed = true
	cond.pending = cond.latency
	if cond.latency == 0 {
		d.complete(c)
		return
	}
	if c == FLLOutput {
		// the mux reports a reserved source until the switch is done
		d.values[regs.MCGS] = regs.MCGSClkst.Put(d.values[regs.MCGS], 0x3)
	}
}

func (d *Device) complete(c Condition) {
	d.conds[c].armed = false
	s := d.values[regs.MCGS]
	switch c {
	case OscReady:
		d.values[regs.RSIMControl] = regs.RSIMControlRFOscReady.Put(d.values[regs.RSIMControl], 1)
	case OscInit:
		d.values[regs.MCGS] = regs.MCGSOscinit.Put(s, 1)
	case ExternalRef:
		d.values[regs.MCGS] = regs.MCGSIrefst.Put(s, 0)
	case FLLRange:
		d.values[regs.MCGC4] = regs.MCGC4DrstDrs.Put(d.values[regs.MCGC4], d.drs)
	case FLLOutput:
		d.values[regs.MCGS] = regs.MCGSClkst.Put(s, regs.MCGC1Clks.Get(d.values[regs.MCGC1]))
	case SlowIRC:
		d.values[regs.MCGS] = regs.MCGSIrcst.Put(s, 0)
		d.values[regs.MCGC2] = regs.MCGC2Ircs.Put(d.values[regs.MCGC2], 0)
	}
}
