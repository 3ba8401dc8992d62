package sim

import (
	"testing"

	"github.com/DerLukas15/kw41zclock/regs"
)

func TestResetState(t *testing.T) {
	d := New()
	for r, want := range regs.ResetValues {
		if got := d.Peek(r); got != want {
			t.Errorf("%s, got: %#x, want: %#x", r, got, want)
		}
	}
	if len(d.Log()) != 0 {
		t.Errorf("Peek logged accesses: %v", d.Log())
	}
}

func TestOscReadyLatency(t *testing.T) {
	d := New()
	d.SetLatency(OscReady, 3)
	b := d.Bus(regs.RSIM)
	b.Store(regs.RSIMControl.Offset, regs.Width32, regs.RSIMControlRFOscEn.Value(1))
	if !d.Pending(OscReady) {
		t.Fatal("enabling the oscillator did not arm osc-ready")
	}
	for i := 0; i < 3; i++ {
		v := b.Load(regs.RSIMControl.Offset, regs.Width32)
		if regs.RSIMControlRFOscReady.IsSet(v) {
			t.Fatalf("ready after %d reads, want 3 not-ready reads", i)
		}
	}
	v := b.Load(regs.RSIMControl.Offset, regs.Width32)
	if !regs.RSIMControlRFOscReady.IsSet(v) {
		t.Fatal("not ready after latency elapsed")
	}
	if got := d.Polls(OscReady); got != 3 {
		t.Errorf("polls, got: %d, want: 3", got)
	}
}

func TestStatusBitSurvivesStore(t *testing.T) {
	d := New()
	d.PokeField(regs.RSIMControlRFOscReady, 1)
	b := d.Bus(regs.RSIM)
	b.Store(regs.RSIMControl.Offset, regs.Width32, 0)
	if !regs.RSIMControlRFOscReady.IsSet(d.Peek(regs.RSIMControl)) {
		t.Error("store cleared RF_OSC_READY")
	}
}

func TestReferenceSwitch(t *testing.T) {
	d := New()
	d.SetLatency(ExternalRef, 2)
	d.SetLatency(FLLOutput, 1)
	d.PokeField(regs.MCGC2Erefs, 1)
	b := d.Bus(regs.MCG)
	b.Store(regs.MCGC1.Offset, regs.Width8, regs.MCGC1Frdiv.Value(regs.MCGFrdiv1024))

	if !regs.MCGSOscinit.IsSet(d.Peek(regs.MCGS)) {
		t.Error("osc-init with zero latency not complete")
	}
	wantIrefst := []bool{true, true, false}
	wantFLL := []bool{false, true, true}
	for i := range wantIrefst {
		s := b.Load(regs.MCGS.Offset, regs.Width8)
		if got := regs.MCGSIrefst.IsSet(s); got != wantIrefst[i] {
			t.Errorf("read %d IREFST, got: %v, want: %v", i, got, wantIrefst[i])
		}
		if got := regs.MCGSClkst.Get(s) == regs.MCGClksFLL; got != wantFLL[i] {
			t.Errorf("read %d CLKST is FLL, got: %v, want: %v", i, got, wantFLL[i])
		}
	}
}

func TestDRSEcho(t *testing.T) {
	d := New()
	d.SetLatency(FLLRange, 1)
	b := d.Bus(regs.MCG)
	b.Store(regs.MCGC4.Offset, regs.Width8, regs.MCGC4DrstDrs.Value(regs.MCGDrsMid))
	if got := regs.MCGC4DrstDrs.Get(b.Load(regs.MCGC4.Offset, regs.Width8)); got != 0 {
		t.Errorf("first read DRST, got: %d, want: 0", got)
	}
	if got := regs.MCGC4DrstDrs.Get(b.Load(regs.MCGC4.Offset, regs.Width8)); got != regs.MCGDrsMid {
		t.Errorf("second read DRST, got: %d, want: %d", got, regs.MCGDrsMid)
	}
}

func TestNeverCompletes(t *testing.T) {
	d := New()
	d.SetLatency(SlowIRC, Never)
	d.PokeField(regs.MCGC2Ircs, 1)
	d.PokeField(regs.MCGSIrcst, 1)
	b := d.Bus(regs.MCG)
	b.Store(regs.MCGC2.Offset, regs.Width8, regs.MCGC2Ircs.Put(d.Peek(regs.MCGC2), 0))
	for i := 0; i < 100; i++ {
		if !regs.MCGSIrcst.IsSet(b.Load(regs.MCGS.Offset, regs.Width8)) {
			t.Fatalf("IRCST cleared after %d reads", i)
		}
	}
	if !d.Pending(SlowIRC) {
		t.Error("slow-irc no longer pending")
	}
}

func TestSlowIRCHoldsSource(t *testing.T) {
	d := New()
	d.SetLatency(SlowIRC, 2)
	d.PokeField(regs.MCGC2Ircs, 1)
	d.PokeField(regs.MCGSIrcst, 1)
	b := d.Bus(regs.MCG)
	b.Store(regs.MCGC2.Offset, regs.Width8, regs.MCGC2Ircs.Put(d.Peek(regs.MCGC2), 0))
	for i := 0; i < 2; i++ {
		v := b.Load(regs.MCGC2.Offset, regs.Width8)
		if !regs.MCGC2Ircs.IsSet(v) {
			t.Fatalf("IRCS cleared after %d reads, want: 2", i)
		}
	}
	if regs.MCGC2Ircs.IsSet(b.Load(regs.MCGC2.Offset, regs.Width8)) {
		t.Error("IRCS still set after the switch completed")
	}
	if regs.MCGSIrcst.IsSet(d.Peek(regs.MCGS)) {
		t.Error("IRCST still set after the switch completed")
	}
	if got := d.Polls(SlowIRC); got != 2 {
		t.Errorf("polls, got: %d, want: 2", got)
	}
}

func TestLogOrder(t *testing.T) {
	d := New()
	b := d.Bus(regs.SIM)
	b.Store(regs.SIMCLKDIV1.Offset, regs.Width32, 0x40000)
	b.Load(regs.SIMSOPT1.Offset, regs.Width32)
	b.Store(regs.SIMCLKDIV1.Offset, regs.Width32, 0x10000)

	log := d.Log()
	if len(log) != 3 {
		t.Fatalf("log length, got: %d, want: 3", len(log))
	}
	if log[1].Op != OpLoad || log[1].Reg != regs.SIMSOPT1 {
		t.Errorf("log[1], got: %v, want: load SIM_SOPT1", log[1])
	}
	got := d.StoresTo(regs.SIMCLKDIV1)
	if len(got) != 2 || got[0] != 0x40000 || got[1] != 0x10000 {
		t.Errorf("CLKDIV1 stores, got: %#x, want: [0x40000 0x10000]", got)
	}
	d.ResetLog()
	if len(d.Log()) != 0 {
		t.Error("ResetLog kept entries")
	}
}
