// Package clock turns host wall-clock readings into the simulation's
// monotonic elapsed time.
package clock

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Clock tracks elapsed simulation seconds and the per-frame delta.
// Elapsed starts at 0 on the first Advance and never decreases.
type Clock struct {
	started bool
	last    time.Time
	elapsed float64
	delta   float64

	regressions int

	// OnRegression is called when the host clock moved backwards by back.
	OnRegression func(back time.Duration)

	Log zerolog.Logger
}

func New() *Clock {
	return &Clock{Log: log.Logger.With().Str("component", "clock").Logger()}
}

// Advance consumes a host clock reading and returns the new elapsed time
// and delta, both in seconds. A reading earlier than the previous one
// yields a zero delta.
func (c *Clock) Advance(now time.Time) (elapsed, delta float64) {
	if !c.started {
		c.started = true
		c.last = now
		c.elapsed, c.delta = 0, 0
		return 0, 0
	}
	d := now.Sub(c.last)
	c.last = now
	if d < 0 {
		c.regressions++
		c.Log.Warn().Dur("back", -d).Int("count", c.regressions).Msg("host clock regressed; delta clamped")
		if c.OnRegression != nil {
			c.OnRegression(-d)
		}
		d = 0
	}
	c.delta = d.Seconds()
	c.elapsed += c.delta
	return c.elapsed, c.delta
}

func (c *Clock) Elapsed() float64 { return c.elapsed }
func (c *Clock) Delta() float64   { return c.delta }

// Regressions counts how many readings went backwards.
func (c *Clock) Regressions() int { return c.regressions }
