package kw41zclock

import (
	"time"

	"github.com/jpillora/backoff"
	"github.com/pkg/errors"
)

//Config holds the settings of one clock bring-up.
/*
A Config is bound to one Hardware handle. Settings can only be changed before Initialize.
Initialize runs the bring-up once. Afterwards Clocks returns the resulting FrequencyPlan.
*/
type Config struct {
	hw *Hardware

	//Maximum not-ready polls per wait. 0 waits forever
	pollLimit uint32
	//Pacing between polls. nil polls back to back
	pollBackoff *backoff.Backoff
	//Settle loop turns after the FLL took over
	settleIterations uint32

	initialized bool
	plan        FrequencyPlan
	stats       Stats
}

//New returns a new Config for hw.
/*
Default PollLimit: 1<<20

Default SettleIterations: 30000

Default PollBackoff: none
*/
func New(hw *Hardware) (*Config, error) {
	if hw == nil {
		return nil, errors.Wrap(ErrNoHardware, "New")
	}
	c := &Config{
		hw:               hw,
		pollLimit:        DefaultPollLimit,
		settleIterations: DefaultSettleIterations,
	}
	return c, nil
}

//SetPollLimit sets the maximum number of not-ready polls per wait. 0 removes the limit; a dead oscillator then hangs forever.
func (c *Config) SetPollLimit(limit uint32) error {
	if c.initialized {
		return errors.Wrap(ErrConfigInitialized, "config SetPollLimit")
	}
	c.pollLimit = limit
	return nil
}

//SetPollBackoff sleeps between polls, starting at min and doubling up to max. Only useful on host backends.
//min of 0 removes the pacing.
func (c *Config) SetPollBackoff(min, max time.Duration) error {
	if c.initialized {
		return errors.Wrap(ErrConfigInitialized, "config SetPollBackoff")
	}
	if min < 0 || max < min {
		return errors.Wrap(ErrWrongParameter, "config SetPollBackoff")
	}
	if min == 0 {
		c.pollBackoff = nil
		return nil
	}
	c.pollBackoff = &backoff.Backoff{
		Min:    min,
		Max:    max,
		Factor: 2,
		Jitter: false,
	}
	return nil
}

//SetSettleIterations sets the number of settle loop turns. The count must cover the FLL lock time at the core clock the loop runs at, see SettleIterations.
func (c *Config) SetSettleIterations(iterations uint32) error {
	if c.initialized {
		return errors.Wrap(ErrConfigInitialized, "config SetSettleIterations")
	}
	if iterations == 0 {
		return errors.Wrap(ErrWrongParameter, "config SetSettleIterations")
	}
	c.settleIterations = iterations
	return nil
}

//Initialize claims the hardware and runs the bring-up. Calling it again after success does nothing.
func (c *Config) Initialize() error {
	if c.initialized {
		return nil
	}
	err := c.hw.claim()
	if err != nil {
		return errors.Wrap(err, "config initialize")
	}
	logOutput("Bringing up clocks")
	plan, err := c.bringUp()
	if err != nil {
		return errors.Wrap(err, "config initialize")
	}
	logOutput("Done clocks: " + plan.String())
	c.plan = plan
	c.initialized = true
	curPlan = plan
	initialized = true
	return nil
}

//Clocks returns the FrequencyPlan produced by Initialize.
func (c *Config) Clocks() (FrequencyPlan, error) {
	if !c.initialized {
		return FrequencyPlan{}, errors.Wrap(ErrNotInitialized, "config Clocks")
	}
	return c.plan, nil
}

//Stats returns what each step did during Initialize. It is also filled in when Initialize failed.
func (c *Config) Stats() Stats {
	return c.stats
}

//Clocks returns the FrequencyPlan of the completed bring-up.
func Clocks() (FrequencyPlan, error) {
	if !initialized {
		return FrequencyPlan{}, errors.Wrap(ErrNotInitialized, "Clocks")
	}
	return curPlan, nil
}

//BringUp runs the bring-up on hw with default settings and returns the FrequencyPlan.
func BringUp(hw *Hardware) (FrequencyPlan, error) {
	c, err := New(hw)
	if err != nil {
		return FrequencyPlan{}, err
	}
	err = c.Initialize()
	if err != nil {
		return FrequencyPlan{}, err
	}
	return c.plan, nil
}
