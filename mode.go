package kw41zclock

import "github.com/DerLukas15/kw41zclock/regs"

//Mode is the MCG operating mode as reported by its status bits.
type Mode uint8

//Valid Modes
const (
	ModeUnknown Mode = iota
	ModeFEI          // FLL engaged internal
	ModeFEE          // FLL engaged external
	ModeFBI          // FLL bypassed internal
	ModeFBE          // FLL bypassed external
	ModeBLPI         // bypassed low power internal
	ModeBLPE         // bypassed low power external
)

var modeNames = [...]string{
	ModeUnknown: "unknown",
	ModeFEI:     "FEI",
	ModeFEE:     "FEE",
	ModeFBI:     "FBI",
	ModeFBE:     "FBE",
	ModeBLPI:    "BLPI",
	ModeBLPE:    "BLPE",
}

func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return modeNames[ModeUnknown]
}

//ReadMode decodes the current MCG mode. It only reads registers and does not claim hw.
func ReadMode(hw *Hardware) Mode {
	s := hw.read(regs.MCGS)
	c2 := hw.read(regs.MCGC2)
	internal := regs.MCGSIrefst.IsSet(s)
	lowPower := regs.MCGC2Lp.IsSet(c2)
	switch regs.MCGSClkst.Get(s) {
	case regs.MCGClksFLL:
		if internal {
			return ModeFEI
		}
		return ModeFEE
	case regs.MCGClksInternal:
		if !internal {
			return ModeUnknown
		}
		if lowPower {
			return ModeBLPI
		}
		return ModeFBI
	case regs.MCGClksExternal:
		if internal {
			return ModeUnknown
		}
		if lowPower {
			return ModeBLPE
		}
		return ModeFBE
	}
	return ModeUnknown
}

//Snapshot is a decoded view of the clock registers for diagnostics.
type Snapshot struct {
	Mode   Mode
	Values map[regs.Register]uint32
}

//ReadSnapshot reads every known register of hw.
func ReadSnapshot(hw *Hardware) Snapshot {
	s := Snapshot{
		Mode:   ReadMode(hw),
		Values: make(map[regs.Register]uint32, len(regs.All)),
	}
	for _, r := range regs.All {
		s.Values[r] = hw.read(r)
	}
	return s
}
