//go:build tinygo

package kw41zclock

import (
	"device/arm"

	"github.com/DerLukas15/kw41zclock/regs"
)

func spin(iterations uint32) {
	for i := uint32(0); i < iterations; i++ {
		arm.Asm("nop")
	}
}

var device *Hardware

//DeviceHardware returns the handle of the running chip. Every call returns the same handle.
func DeviceHardware() *Hardware {
	if device == nil {
		device = newHardware(regs.Device(), spin)
	}
	return device
}
