package kw41zclock

import "time"

//Timing assumptions behind DefaultSettleIterations
const (
	//FLLLockTime is the maximum FLL acquisition time from the datasheet
	FLLLockTime = time.Millisecond
	//SettleCyclesPerIteration is the cost of one settle loop turn with a nop, compare and branch
	SettleCyclesPerIteration uint32 = 3
)

//SettleIterations returns the number of settle loop turns covering lock at cpuHz, rounded up.
//The loop runs while the FLL is already the clock source, so cpuHz is the core clock at that time, not the final one.
func SettleIterations(cpuHz uint32, lock time.Duration, cyclesPerIteration uint32) uint32 {
	if cpuHz == 0 || lock <= 0 || cyclesPerIteration == 0 {
		return 0
	}
	cycles := (uint64(cpuHz)*uint64(lock) + uint64(time.Second) - 1) / uint64(time.Second)
	n := (cycles + uint64(cyclesPerIteration) - 1) / uint64(cyclesPerIteration)
	if n > 1<<32-1 {
		return 1<<32 - 1
	}
	return uint32(n)
}

//SettleTime returns how long iterations settle loop turns take at cpuHz.
func SettleTime(cpuHz uint32, iterations uint32, cyclesPerIteration uint32) time.Duration {
	if cpuHz == 0 {
		return 0
	}
	cycles := uint64(iterations) * uint64(cyclesPerIteration)
	return time.Duration(cycles * uint64(time.Second) / uint64(cpuHz))
}
