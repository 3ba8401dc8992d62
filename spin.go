//go:build !tinygo

package kw41zclock

//spinCount is written by spin so the host loop is not optimized away. Only tests read it.
var spinCount uint32

//spin burns iterations loop turns. Off target there is no nop instruction to emit.
func spin(iterations uint32) {
	for i := uint32(0); i < iterations; i++ {
		spinCount++
	}
}
