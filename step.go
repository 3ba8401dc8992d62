package kw41zclock

import "fmt"

//Step is one step of the bring-up sequence, in execution order.
type Step uint8

//Valid Steps
const (
	StepEnableRFOsc Step = iota
	StepOverrideOscRequest
	StepWaitRFOscReady
	StepSafeDivider
	StepSelectExternalRef
	StepRequestRefSwitch
	StepWaitOscInit
	StepWaitExternalRef
	StepSetFLLRange
	StepWaitFLLRange
	StepWaitFLLOutput
	StepSettle
	StepSlowIRCSwitch
	StepWaitSlowIRCSwitch
	StepClearFastDivider
	StepEnableIRClk
	StepWaitIRCStable
	StepRestoreDivider
	StepSelect32kClock
	NumSteps
)

var stepNames = [...]string{
	StepEnableRFOsc:        "enable rf oscillator",
	StepOverrideOscRequest: "override oscillator request",
	StepWaitRFOscReady:     "wait rf oscillator ready",
	StepSafeDivider:        "safe divider",
	StepSelectExternalRef:  "select external reference",
	StepRequestRefSwitch:   "request reference switch",
	StepWaitOscInit:        "wait oscillator init",
	StepWaitExternalRef:    "wait external reference",
	StepSetFLLRange:        "set fll range",
	StepWaitFLLRange:       "wait fll range",
	StepWaitFLLOutput:      "wait fll output",
	StepSettle:             "fll settle",
	StepSlowIRCSwitch:      "switch to slow irc",
	StepWaitSlowIRCSwitch:  "wait slow irc switch",
	StepClearFastDivider:   "clear fast irc divider",
	StepEnableIRClk:        "enable irc output",
	StepWaitIRCStable:      "wait irc stable",
	StepRestoreDivider:     "restore divider",
	StepSelect32kClock:     "select 32k clock",
}

func (s Step) String() string {
	if int(s) < len(stepNames) {
		return stepNames[s]
	}
	return fmt.Sprintf("step%d", uint8(s))
}

//StepStats records what happened in one step.
type StepStats struct {
	Ran   bool   // The step executed; false for skipped conditional steps
	Polls uint32 // Status reads that observed not-ready
}

//Stats holds the StepStats of a bring-up indexed by Step.
type Stats [NumSteps]StepStats

//Ran reports whether step executed.
func (s Stats) Ran(step Step) bool {
	return s[step].Ran
}

//Polls returns the number of not-ready status reads of step.
func (s Stats) Polls(step Step) uint32 {
	return s[step].Polls
}

//ExtraPolls sums not-ready status reads over every step.
func (s Stats) ExtraPolls() uint32 {
	var res uint32
	for _, st := range s {
		res += st.Polls
	}
	return res
}
