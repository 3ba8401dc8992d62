package kw41zclock

import (
	"time"

	"github.com/jpillora/backoff"
	"github.com/pkg/errors"
)

//waitFor polls ready until it returns true or the poll limit is used up. Every not-ready result counts as one poll.
func (c *Config) waitFor(step Step, ready func() bool) error {
	c.stats[step].Ran = true
	var b *backoff.Backoff
	if c.pollBackoff != nil {
		b = &backoff.Backoff{
			Min:    c.pollBackoff.Min,
			Max:    c.pollBackoff.Max,
			Factor: c.pollBackoff.Factor,
			Jitter: c.pollBackoff.Jitter,
		}
	}
	var polls uint32
	for !ready() {
		polls++
		c.stats[step].Polls = polls
		if c.pollLimit != 0 && polls >= c.pollLimit {
			return errors.Wrapf(ErrHardwareNotReady, "%s after %d polls", step, polls)
		}
		if b != nil {
			time.Sleep(b.Duration())
		}
	}
	return nil
}
