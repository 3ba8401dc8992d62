package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/DerLukas15/kw41zclock"
)

func TestRunSimulated(t *testing.T) {
	var out bytes.Buffer
	if err := run(&out, "-crystal", "-fast-irc", "-osc-polls", "3"); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"core 40000000 Hz", "mode: FEE", "systick 1ms reload: 39999"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestRunTimeout(t *testing.T) {
	var out bytes.Buffer
	err := run(&out, "-osc-polls", "50", "-limit", "10")
	if err == nil {
		t.Fatal("bring-up succeeded with a limit below the latency")
	}
	if !strings.Contains(err.Error(), kw41zclock.ErrHardwareNotReady.Error()) {
		t.Errorf("got: %v, want: %v", err, kw41zclock.ErrHardwareNotReady)
	}
}

func TestSaveAndDump(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "regs.img")
	var out bytes.Buffer
	if err := run(&out, "-save", fn); err != nil {
		t.Fatal(err)
	}
	out.Reset()
	if err := run(&out, "-dump", fn, "-layout", "image"); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"mode: FEE", "0x40048044 0x00010000", "0x40064000 0x0000002a"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("dump missing %q:\n%s", want, out.String())
		}
	}
}

func TestRunBadArgs(t *testing.T) {
	tests := [][]string{
		{"extra"},
		{"-limit", "x"},
		{"-settle", "0"},
		{"-backoff", "soon"},
		{"-dump", "regs.img", "-layout", "other"},
	}
	for _, args := range tests {
		var out bytes.Buffer
		if err := run(&out, args...); err == nil {
			t.Errorf("%v: no error", args)
		}
	}
}
