//kw41zclock runs the clock bring-up against the register model or decodes a register dump.
/*
Usage:

	kw41zclock [-v] [-crystal] [-fast-irc] [-unbounded] [-osc-polls N] [-limit N]
		[-settle N] [-backoff DURATION] [-save FILE]
	kw41zclock -dump FILE [-layout image|device]

Without -dump the bring-up runs on a simulated chip. -osc-polls delays every
status bit by N reads. -save writes the final register state as an image that
-dump can read back.
*/
package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/DerLukas15/kw41zclock"
	"github.com/DerLukas15/kw41zclock/regs"
	"github.com/DerLukas15/kw41zclock/sim"
	"github.com/pkg/errors"
	"github.com/platinasystems/flags"
	"github.com/platinasystems/log"
	"github.com/platinasystems/parms"
)

func main() {
	if err := run(os.Stdout, os.Args[1:]...); err != nil {
		log.Print("err", "kw41zclock: ", err)
		os.Exit(1)
	}
}

func run(w io.Writer, args ...string) error {
	flag, args := flags.New(args, "-v", "-crystal", "-fast-irc", "-unbounded")
	parm, args := parms.New(args, "-osc-polls", "-limit", "-settle", "-backoff",
		"-dump", "-layout", "-save")
	if len(args) > 0 {
		return errors.Errorf("%v: unexpected", args)
	}
	kw41zclock.Debug = flag.ByName["-v"]

	if fn := parm.ByName["-dump"]; len(fn) > 0 {
		return dump(w, fn, parm.ByName["-layout"])
	}

	d := sim.New()
	if flag.ByName["-crystal"] {
		d.PokeField(regs.MCGC2Erefs, 1)
	}
	if flag.ByName["-fast-irc"] {
		d.PokeField(regs.MCGC2Ircs, 1)
		d.PokeField(regs.MCGSIrcst, 1)
		d.PokeField(regs.MCGC1Irclken, 1)
	}
	if s := parm.ByName["-osc-polls"]; len(s) > 0 {
		n, err := strconv.Atoi(s)
		if err != nil {
			return errors.Wrap(err, "-osc-polls")
		}
		for cond := sim.OscReady; cond <= sim.SlowIRC; cond++ {
			d.SetLatency(cond, n)
		}
	}

	hw, err := kw41zclock.NewHardware(d.Buses())
	if err != nil {
		return err
	}
	hw.SetSpin(d.Spin)
	c, err := kw41zclock.New(hw)
	if err != nil {
		return err
	}
	if err = configure(c, flag, parm); err != nil {
		return err
	}

	err = c.Initialize()
	printStats(w, c.Stats())
	if err != nil {
		return err
	}
	plan, err := c.Clocks()
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "clocks:", plan)
	fmt.Fprintln(w, "mode:", kw41zclock.ReadMode(hw))
	fmt.Fprintln(w, "systick 1ms reload:", plan.SysTickReload(time.Millisecond))

	if fn := parm.ByName["-save"]; len(fn) > 0 {
		values := make(map[regs.Register]uint32, len(regs.All))
		for _, r := range regs.All {
			values[r] = d.Peek(r)
		}
		if err = regs.WriteImage(fn, values); err != nil {
			return err
		}
	}
	return nil
}

func configure(c *kw41zclock.Config, flag *flags.Flags, parm *parms.Parms) error {
	if s := parm.ByName["-limit"]; len(s) > 0 {
		n, err := strconv.ParseUint(s, 0, 32)
		if err != nil {
			return errors.Wrap(err, "-limit")
		}
		if err = c.SetPollLimit(uint32(n)); err != nil {
			return err
		}
	}
	if flag.ByName["-unbounded"] {
		if err := c.SetPollLimit(0); err != nil {
			return err
		}
	}
	if s := parm.ByName["-settle"]; len(s) > 0 {
		n, err := strconv.ParseUint(s, 0, 32)
		if err != nil {
			return errors.Wrap(err, "-settle")
		}
		if err = c.SetSettleIterations(uint32(n)); err != nil {
			return err
		}
	}
	if s := parm.ByName["-backoff"]; len(s) > 0 {
		min, err := time.ParseDuration(s)
		if err != nil {
			return errors.Wrap(err, "-backoff")
		}
		if err = c.SetPollBackoff(min, 100*min); err != nil {
			return err
		}
	}
	return nil
}

func printStats(w io.Writer, st kw41zclock.Stats) {
	for step := kw41zclock.Step(0); step < kw41zclock.NumSteps; step++ {
		state := "skipped"
		if st.Ran(step) {
			state = "ran"
		}
		fmt.Fprintf(w, "%-28s %-7s %d\n", step, state, st.Polls(step))
	}
	fmt.Fprintln(w, "polls:", st.ExtraPolls())
}

func dump(w io.Writer, fn, layout string) error {
	l := regs.ImageLayout
	switch layout {
	case "", "image":
	case "device":
		l = regs.DeviceLayout
	default:
		return errors.Errorf("%s: unknown layout", layout)
	}
	m, err := regs.Open(fn, l, false)
	if err != nil {
		return err
	}
	defer m.Close()
	var buses [regs.NumBlocks]regs.Bus
	for i, bus := range m.Buses {
		buses[i] = bus
	}
	hw, err := kw41zclock.NewHardware(buses)
	if err != nil {
		return err
	}
	s := kw41zclock.ReadSnapshot(hw)
	fmt.Fprintln(w, "mode:", s.Mode)
	names := make([]regs.Register, 0, len(s.Values))
	for r := range s.Values {
		names = append(names, r)
	}
	sort.Slice(names, func(i, j int) bool {
		return names[i].Address() < names[j].Address()
	})
	for _, r := range names {
		fmt.Fprintf(w, "%-16s 0x%08x 0x%08x\n", r, r.Address(), s.Values[r])
	}
	return nil
}
