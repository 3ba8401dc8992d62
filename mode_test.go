package kw41zclock

import (
	"testing"

	"github.com/DerLukas15/kw41zclock/regs"
	"github.com/DerLukas15/kw41zclock/sim"
)

func TestReadMode(t *testing.T) {
	tests := []struct {
		name  string
		setup func(d *sim.Device)
		want  Mode
	}{
		{"reset", nil, ModeFEI},
		{"fee", func(d *sim.Device) {
			d.PokeField(regs.MCGSIrefst, 0)
		}, ModeFEE},
		{"fbi", func(d *sim.Device) {
			d.PokeField(regs.MCGSClkst, regs.MCGClksInternal)
		}, ModeFBI},
		{"blpi", func(d *sim.Device) {
			d.PokeField(regs.MCGSClkst, regs.MCGClksInternal)
			d.PokeField(regs.MCGC2Lp, 1)
		}, ModeBLPI},
		{"fbe", func(d *sim.Device) {
			d.PokeField(regs.MCGSIrefst, 0)
			d.PokeField(regs.MCGSClkst, regs.MCGClksExternal)
		}, ModeFBE},
		{"blpe", func(d *sim.Device) {
			d.PokeField(regs.MCGSIrefst, 0)
			d.PokeField(regs.MCGSClkst, regs.MCGClksExternal)
			d.PokeField(regs.MCGC2Lp, 1)
		}, ModeBLPE},
		{"external clock on internal ref", func(d *sim.Device) {
			d.PokeField(regs.MCGSClkst, regs.MCGClksExternal)
		}, ModeUnknown},
		{"reserved clock source", func(d *sim.Device) {
			d.PokeField(regs.MCGSClkst, 3)
		}, ModeUnknown},
	}
	for _, test := range tests {
		d := sim.New()
		if test.setup != nil {
			test.setup(d)
		}
		hw, err := NewHardware(d.Buses())
		if err != nil {
			t.Fatal(err)
		}
		if got := ReadMode(hw); got != test.want {
			t.Errorf("%s, got: %s, want: %s", test.name, got, test.want)
		}
		for _, a := range d.Log() {
			if a.Op == sim.OpStore {
				t.Errorf("%s: ReadMode stored %s", test.name, a.Reg)
			}
		}
		if hw.Claimed() {
			t.Errorf("%s: ReadMode claimed the handle", test.name)
		}
	}
}

func TestReadSnapshot(t *testing.T) {
	d := sim.New()
	hw, err := NewHardware(d.Buses())
	if err != nil {
		t.Fatal(err)
	}
	s := ReadSnapshot(hw)
	if s.Mode != ModeFEI {
		t.Errorf("mode, got: %s, want: %s", s.Mode, ModeFEI)
	}
	if len(s.Values) != len(regs.All) {
		t.Errorf("values, got: %d, want: %d", len(s.Values), len(regs.All))
	}
	for r, want := range regs.ResetValues {
		if got := s.Values[r]; got != want {
			t.Errorf("%s, got: %#x, want: %#x", r, got, want)
		}
	}
}

func TestModeString(t *testing.T) {
	if ModeFEE.String() != "FEE" || Mode(200).String() != "unknown" {
		t.Errorf("got: %s %s", ModeFEE, Mode(200))
	}
}
