//Package kw41zclock brings the MKW41Z clock tree from its reset state (FEI) into FEE mode running from the 32 MHz radio oscillator.
/*
The bring-up runs once at boot before any other peripheral is touched. Every step is gated on a hardware status bit.
Waits are bounded, so a missing or faulty oscillator results in ErrHardwareNotReady instead of a hang.
*/
package kw41zclock

import (
	"errors"
	"fmt"
)

// Errors
var (
	ErrNoHardware        = errors.New("no hardware set")
	ErrHardwareClaimed   = errors.New("hardware already claimed")
	ErrHardwareNotReady  = errors.New("hardware not ready")
	ErrConfigInitialized = errors.New("config already initialized")
	ErrNotInitialized    = errors.New("clocks not initialized")
	ErrWrongParameter    = errors.New("wrong parameter")
)

var (
	curPlan     FrequencyPlan // Set once a bring-up completed
	initialized bool          // Set together with curPlan
)

//Default settings of a new Config
const (
	DefaultPollLimit        uint32 = 1 << 20
	DefaultSettleIterations uint32 = 30000
)

//Enable Debug output
var Debug bool

func logOutput(msg string) {
	if Debug {
		fmt.Println(msg)
	}
}
