package kw41zclock

import (
	"fmt"
	"time"
)

//Frequencies known by construction of the bring-up sequence
const (
	OscExtFrequency uint32 = 32000000 // radio oscillator crystal

	fllRefDivider uint32 = 1024 // FRDIV = 101 with RANGE != 0
	fllFactor     uint32 = 1280 // DRS = 01, DMX32 = 0
	coreDivider   uint32 = 1    // OUTDIV1 = 0
	busDivider    uint32 = 2    // OUTDIV4 = 1

	FLLReferenceFrequency = OscExtFrequency / fllRefDivider
	CoreFrequency         = FLLReferenceFrequency * fllFactor / coreDivider
	BusFrequency          = CoreFrequency / busDivider
)

//FrequencyPlan holds the frequencies of every clock domain after bring-up. It has no setters.
type FrequencyPlan struct {
	coreClock   uint32
	oscExtClock uint32
	systemClock uint32
	busClock    uint32
	flashClock  uint32
}

func newFrequencyPlan() FrequencyPlan {
	return FrequencyPlan{
		coreClock:   CoreFrequency,
		oscExtClock: OscExtFrequency,
		systemClock: CoreFrequency,
		busClock:    BusFrequency,
		flashClock:  BusFrequency,
	}
}

//CoreClock returns the core clock in Hz.
func (p FrequencyPlan) CoreClock() uint32 {
	return p.coreClock
}

//OscExtClock returns the external oscillator clock in Hz.
func (p FrequencyPlan) OscExtClock() uint32 {
	return p.oscExtClock
}

//SystemClock returns the system clock in Hz.
func (p FrequencyPlan) SystemClock() uint32 {
	return p.systemClock
}

//BusClock returns the bus clock in Hz.
func (p FrequencyPlan) BusClock() uint32 {
	return p.busClock
}

//FlashClock returns the flash clock in Hz.
func (p FrequencyPlan) FlashClock() uint32 {
	return p.flashClock
}

//SysTickReload returns the SysTick reload value for an interrupt every period, counting core clock cycles.
//Returns 0 if period is shorter than one cycle or does not fit the 24 bit counter.
func (p FrequencyPlan) SysTickReload(period time.Duration) uint32 {
	if period <= 0 || period > time.Second {
		return 0
	}
	cycles := uint64(p.coreClock) * uint64(period) / uint64(time.Second)
	if cycles == 0 || cycles > 1<<24 {
		return 0
	}
	return uint32(cycles - 1)
}

func (p FrequencyPlan) String() string {
	return fmt.Sprintf("core %d Hz, oscext %d Hz, system %d Hz, bus %d Hz, flash %d Hz",
		p.coreClock, p.oscExtClock, p.systemClock, p.busClock, p.flashClock)
}
