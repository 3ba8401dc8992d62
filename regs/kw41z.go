package regs

//Block base addresses
const (
	RSIMBase uintptr = 0x4102f000
	SIMBase  uintptr = 0x40047000
	MCGBase  uintptr = 0x40064000

	rsimSize = 0x100
	simSize  = 0x1100
	mcgSize  = 0x10
)

//RSIM registers
var (
	RSIMControl   = Register{Block: RSIM, Name: "CONTROL", Offset: 0x000, Width: Width32}
	RSIMRFOscCtrl = Register{Block: RSIM, Name: "RF_OSC_CTRL", Offset: 0x018, Width: Width32}
)

//SIM registers
var (
	SIMSOPT1   = Register{Block: SIM, Name: "SOPT1", Offset: 0x0000, Width: Width32}
	SIMCLKDIV1 = Register{Block: SIM, Name: "CLKDIV1", Offset: 0x1044, Width: Width32}
)

//MCG registers. All of them are byte wide.
var (
	MCGC1 = Register{Block: MCG, Name: "C1", Offset: 0x0, Width: Width8}
	MCGC2 = Register{Block: MCG, Name: "C2", Offset: 0x1, Width: Width8}
	MCGC4 = Register{Block: MCG, Name: "C4", Offset: 0x3, Width: Width8}
	MCGS  = Register{Block: MCG, Name: "S", Offset: 0x6, Width: Width8}
	MCGSC = Register{Block: MCG, Name: "SC", Offset: 0x8, Width: Width8}
	MCGC7 = Register{Block: MCG, Name: "C7", Offset: 0xc, Width: Width8}
)

//All lists every register known to this package
var All = []Register{
	RSIMControl,
	RSIMRFOscCtrl,
	SIMSOPT1,
	SIMCLKDIV1,
	MCGC1,
	MCGC2,
	MCGC4,
	MCGS,
	MCGSC,
	MCGC7,
}

//RSIM fields
var (
	RSIMControlRFOscEn    = Field{Reg: RSIMControl, Name: "RF_OSC_EN", Shift: 8, Bits: 4}
	RSIMControlRFOscReady = Field{Reg: RSIMControl, Name: "RF_OSC_READY", Shift: 24, Bits: 1}

	RSIMRFOscCtrlRadioExtOscOvrdEn = Field{Reg: RSIMRFOscCtrl, Name: "RADIO_EXT_OSC_OVRD_EN", Shift: 23, Bits: 1}
)

//SIM fields
var (
	SIMSOPT1OSC32KSel = Field{Reg: SIMSOPT1, Name: "OSC32KSEL", Shift: 18, Bits: 2}

	SIMCLKDIV1OutDiv1 = Field{Reg: SIMCLKDIV1, Name: "OUTDIV1", Shift: 28, Bits: 4}
	SIMCLKDIV1OutDiv4 = Field{Reg: SIMCLKDIV1, Name: "OUTDIV4", Shift: 16, Bits: 3}
)

//MCG fields
var (
	MCGC1Clks     = Field{Reg: MCGC1, Name: "CLKS", Shift: 6, Bits: 2}
	MCGC1Frdiv    = Field{Reg: MCGC1, Name: "FRDIV", Shift: 3, Bits: 3}
	MCGC1Irefs    = Field{Reg: MCGC1, Name: "IREFS", Shift: 2, Bits: 1}
	MCGC1Irclken  = Field{Reg: MCGC1, Name: "IRCLKEN", Shift: 1, Bits: 1}
	MCGC1Irefsten = Field{Reg: MCGC1, Name: "IREFSTEN", Shift: 0, Bits: 1}

	MCGC2Locre0 = Field{Reg: MCGC2, Name: "LOCRE0", Shift: 7, Bits: 1}
	MCGC2Range  = Field{Reg: MCGC2, Name: "RANGE", Shift: 4, Bits: 2}
	MCGC2Hgo    = Field{Reg: MCGC2, Name: "HGO", Shift: 3, Bits: 1}
	MCGC2Erefs  = Field{Reg: MCGC2, Name: "EREFS", Shift: 2, Bits: 1}
	MCGC2Lp     = Field{Reg: MCGC2, Name: "LP", Shift: 1, Bits: 1}
	MCGC2Ircs   = Field{Reg: MCGC2, Name: "IRCS", Shift: 0, Bits: 1}

	MCGC4Dmx32   = Field{Reg: MCGC4, Name: "DMX32", Shift: 7, Bits: 1}
	MCGC4DrstDrs = Field{Reg: MCGC4, Name: "DRST_DRS", Shift: 5, Bits: 2}

	MCGSIrefst  = Field{Reg: MCGS, Name: "IREFST", Shift: 4, Bits: 1}
	MCGSClkst   = Field{Reg: MCGS, Name: "CLKST", Shift: 2, Bits: 2}
	MCGSOscinit = Field{Reg: MCGS, Name: "OSCINIT0", Shift: 1, Bits: 1}
	MCGSIrcst   = Field{Reg: MCGS, Name: "IRCST", Shift: 0, Bits: 1}

	MCGSCAtmf   = Field{Reg: MCGSC, Name: "ATMF", Shift: 5, Bits: 1}
	MCGSCFcrdiv = Field{Reg: MCGSC, Name: "FCRDIV", Shift: 1, Bits: 3}
	MCGSCLocs0  = Field{Reg: MCGSC, Name: "LOCS0", Shift: 0, Bits: 1}

	MCGC7Oscsel = Field{Reg: MCGC7, Name: "OSCSEL", Shift: 0, Bits: 2}
)

//Field values
const (
	RSIMControlRFOscEnRun uint32 = 0x1 // RF oscillator enabled in run mode

	OSC32KSelOSC32KCLK uint32 = 0x0

	MCGClksFLL      uint32 = 0x0 // FLL or PLL output
	MCGClksInternal uint32 = 0x1
	MCGClksExternal uint32 = 0x2

	MCGRangeVeryHigh uint32 = 0x2 // external reference above 8 MHz

	MCGFrdiv1024 uint32 = 0x5 // divide by 1024 when RANGE != 0

	MCGDrsMid uint32 = 0x1 // 1280x with DMX32 = 0

	MCGOscselRFOsc uint32 = 0x0 // 32 MHz radio oscillator
	MCGOscselRTC   uint32 = 0x1 // 32 kHz RTC oscillator
)

//Power-on reset values of the registers that have a documented one
var ResetValues = map[Register]uint32{
	RSIMControl:   0x00000000,
	RSIMRFOscCtrl: 0x00000000,
	SIMSOPT1:      0x00000000,
	SIMCLKDIV1:    0x00010000,
	MCGC1:         0x04,
	MCGC2:         0x80,
	MCGC4:         0x00,
	MCGS:          0x10,
	MCGSC:         0x02,
	MCGC7:         0x00,
}
