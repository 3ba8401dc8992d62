package kw41zclock

import (
	"fmt"

	"github.com/DerLukas15/kw41zclock/regs"
)

//mark records that a transaction step ran
func (c *Config) mark(step Step) {
	c.stats[step].Ran = true
	logOutput("Clock step: " + step.String())
}

//bringUp moves the MCG from FEI to FEE on the 32 MHz radio oscillator.
//The steps must run in this order. Each wait returns only once its status bit confirms the previous step.
func (c *Config) bringUp() (FrequencyPlan, error) {
	hw := c.hw
	c.stats = Stats{}

	// Enable RF OSC in RSIM and wait for ready
	c.mark(StepEnableRFOsc)
	hw.modify(regs.RSIMControl, func(v uint32) uint32 {
		return regs.RSIMControlRFOscEn.Put(v, regs.RSIMControlRFOscEnRun)
	})

	// Keep XTAL_OUT_EN from raising an XTAL_OUT request
	c.mark(StepOverrideOscRequest)
	hw.modify(regs.RSIMRFOscCtrl, func(v uint32) uint32 {
		return regs.RSIMRFOscCtrlRadioExtOscOvrdEn.Put(v, 1)
	})

	err := c.waitFor(StepWaitRFOscReady, func() bool {
		return regs.RSIMControlRFOscReady.IsSet(hw.read(regs.RSIMControl))
	})
	if err != nil {
		return FrequencyPlan{}, err
	}

	// Slow the bus down so no domain overclocks while the source changes
	c.mark(StepSafeDivider)
	hw.write(regs.SIMCLKDIV1, regs.SIMCLKDIV1OutDiv4.Value(4))

	// 32 MHz is above 8 MHz: very high range. The reference is the radio oscillator, not the RTC
	c.mark(StepSelectExternalRef)
	hw.modify(regs.MCGC2, func(v uint32) uint32 {
		return regs.MCGC2Range.Put(v, regs.MCGRangeVeryHigh)
	})
	hw.modify(regs.MCGC7, func(v uint32) uint32 {
		return regs.MCGC7Oscsel.Put(v, regs.MCGOscselRFOsc)
	})

	// FLL output, 32 MHz / 1024, external reference
	c.mark(StepRequestRefSwitch)
	hw.modify(regs.MCGC1, func(v uint32) uint32 {
		v = regs.MCGC1Clks.Put(v, regs.MCGClksFLL)
		v = regs.MCGC1Frdiv.Put(v, regs.MCGFrdiv1024)
		return regs.MCGC1Irefs.Put(v, 0)
	})

	// A crystal needs its own start-up on top of RF_OSC_READY
	if regs.MCGC2Erefs.IsSet(hw.read(regs.MCGC2)) {
		err = c.waitFor(StepWaitOscInit, func() bool {
			return regs.MCGSOscinit.IsSet(hw.read(regs.MCGS))
		})
		if err != nil {
			return FrequencyPlan{}, err
		}
	} else {
		logOutput("Clock step skipped: " + StepWaitOscInit.String())
	}

	err = c.waitFor(StepWaitExternalRef, func() bool {
		return !regs.MCGSIrefst.IsSet(hw.read(regs.MCGS))
	})
	if err != nil {
		return FrequencyPlan{}, err
	}

	// 1280 x 31.25 kHz = 40 MHz
	c.mark(StepSetFLLRange)
	hw.modify(regs.MCGC4, func(v uint32) uint32 {
		v = regs.MCGC4Dmx32.Put(v, 0)
		return regs.MCGC4DrstDrs.Put(v, regs.MCGDrsMid)
	})

	err = c.waitFor(StepWaitFLLRange, func() bool {
		return hw.field(regs.MCGC4DrstDrs) == regs.MCGDrsMid
	})
	if err != nil {
		return FrequencyPlan{}, err
	}

	err = c.waitFor(StepWaitFLLOutput, func() bool {
		return hw.field(regs.MCGSClkst) == regs.MCGClksFLL
	})
	if err != nil {
		return FrequencyPlan{}, err
	}

	// No lock bit on this FLL. The count assumes the loop runs at the FLL output frequency
	c.mark(StepSettle)
	hw.spin(c.settleIterations)

	// Leave the fast IRC before clearing its divider
	if hw.field(regs.MCGSCFcrdiv) != 0 {
		err = c.leaveFastIRC()
		if err != nil {
			return FrequencyPlan{}, err
		}
	}

	// Keep the slow IRC running as MCGIRCLK for peripherals, not in stop mode
	c.mark(StepEnableIRClk)
	hw.modify(regs.MCGC2, func(v uint32) uint32 {
		return regs.MCGC2Ircs.Put(v, 0)
	})
	hw.modify(regs.MCGC1, func(v uint32) uint32 {
		v = regs.MCGC1Irclken.Put(v, 1)
		return regs.MCGC1Irefsten.Put(v, 0)
	})

	err = c.waitFor(StepWaitIRCStable, func() bool {
		return !regs.MCGSIrcst.IsSet(hw.read(regs.MCGS))
	})
	if err != nil {
		return FrequencyPlan{}, err
	}

	c.mark(StepRestoreDivider)
	hw.modify(regs.SIMCLKDIV1, func(v uint32) uint32 {
		return regs.SIMCLKDIV1OutDiv4.Put(v, busDivider-1)
	})

	c.mark(StepSelect32kClock)
	hw.modify(regs.SIMSOPT1, func(v uint32) uint32 {
		return regs.SIMSOPT1OSC32KSel.Put(v, regs.OSC32KSelOSC32KCLK)
	})

	if Debug {
		logOutput(fmt.Sprintf("Clock polls: %d", c.stats.ExtraPolls()))
	}
	return newFrequencyPlan(), nil
}

//leaveFastIRC switches MCGIRCLK to the slow IRC if the fast one is in use, then clears FCRDIV.
func (c *Config) leaveFastIRC() error {
	hw := c.hw
	s := hw.read(regs.MCGS)
	fastActive := regs.MCGSIrcst.IsSet(s) &&
		(regs.MCGSClkst.Get(s) == regs.MCGClksInternal || regs.MCGC1Irclken.IsSet(hw.read(regs.MCGC1)))
	if fastActive {
		c.mark(StepSlowIRCSwitch)
		hw.modify(regs.MCGC2, func(v uint32) uint32 {
			return regs.MCGC2Ircs.Put(v, 0)
		})
		// IRCS reads back as set until the mux has moved to the slow IRC
		err := c.waitFor(StepWaitSlowIRCSwitch, func() bool {
			return !regs.MCGC2Ircs.IsSet(hw.read(regs.MCGC2))
		})
		if err != nil {
			return err
		}
	}
	// ATMF and LOCS0 share the register and go to zero with the same write
	c.mark(StepClearFastDivider)
	hw.modify(regs.MCGSC, func(v uint32) uint32 {
		v = regs.MCGSCFcrdiv.Put(v, 0)
		v = regs.MCGSCAtmf.Put(v, 0)
		return regs.MCGSCLocs0.Put(v, 0)
	})
	return nil
}
