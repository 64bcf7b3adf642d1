// Package lightning schedules stochastic lightning flashes and produces the
// flash light's intensity from elapsed simulation time.
package lightning

import (
	"math"
	"math/rand"
	"time"
)

// Scheduler is a state machine advanced by elapsed time only. Stage
// durations are logical, so a paused frame loop pauses the flash too.
type Scheduler struct {
	state     State
	stage     int // index into pattern while flashing
	enteredAt time.Duration
	next      time.Duration

	pattern  []Stage
	minDelay time.Duration
	span     time.Duration
	rng      Rand
	hooks    Hooks

	// Cycles counts completed flashes.
	Cycles int
}

// New returns a Scheduler in Idle with its first trigger time drawn from
// elapsed 0.
func New(opts Options) *Scheduler {
	s := &Scheduler{
		state:    Idle,
		pattern:  opts.Pattern,
		minDelay: opts.MinDelay,
		rng:      opts.Rand,
		hooks:    opts.Hooks,
	}
	if len(s.pattern) == 0 {
		s.pattern = DefaultPattern
	}
	maxDelay := opts.MaxDelay
	if s.minDelay <= 0 {
		s.minDelay = DefaultMinDelay
	}
	if maxDelay <= 0 {
		maxDelay = DefaultMaxDelay
	}
	s.span = maxDelay - s.minDelay
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	s.schedule(0)
	return s
}

// Tick advances the machine to elapsed (seconds) and returns the light
// intensity for the resulting state. Stages that ended before elapsed are
// walked in order, each entered at the exact end of the previous one.
func (s *Scheduler) Tick(elapsed float64) float64 {
	now := toDuration(elapsed)
	for {
		switch s.state {
		case Idle:
			if now < s.next {
				return s.Intensity()
			}
			s.stage = 0
			s.enter(s.pattern[0].State, s.next)
		case Off:
			s.Cycles++
			s.enter(Idle, s.enteredAt)
			s.schedule(now)
			return s.Intensity()
		default:
			end := s.enteredAt + s.pattern[s.stage].Duration
			if now < end {
				return s.Intensity()
			}
			if s.stage+1 < len(s.pattern) {
				s.stage++
				s.enter(s.pattern[s.stage].State, end)
			} else {
				s.enter(Off, end)
			}
		}
	}
}

// Intensity is a pure function of the current state.
func (s *Scheduler) Intensity() float64 {
	switch s.state {
	case Idle, Off:
		return 0
	default:
		return s.pattern[s.stage].Intensity
	}
}

func (s *Scheduler) State() State { return s.state }

// EnteredAt is the logical time, in seconds, the current state began.
func (s *Scheduler) EnteredAt() float64 { return s.enteredAt.Seconds() }

// NextTrigger is the elapsed time, in seconds, of the next flash.
func (s *Scheduler) NextTrigger() float64 { return s.next.Seconds() }

// CycleLength is the total duration of one flash pattern.
func (s *Scheduler) CycleLength() time.Duration {
	var d time.Duration
	for _, st := range s.pattern {
		d += st.Duration
	}
	return d
}

func (s *Scheduler) enter(to State, at time.Duration) {
	from := s.state
	s.state = to
	s.enteredAt = at
	if s.hooks.Transition != nil {
		s.hooks.Transition(from, to, at.Seconds())
	}
}

func (s *Scheduler) schedule(from time.Duration) {
	delay := s.minDelay
	if s.span > 0 {
		delay += time.Duration(s.rng.Int63n(int64(s.span)))
	}
	s.next = from + delay
	if s.hooks.Scheduled != nil {
		s.hooks.Scheduled(s.next.Seconds())
	}
}

// toDuration rounds elapsed seconds to nanoseconds so stage boundaries
// compare exactly.
func toDuration(sec float64) time.Duration {
	return time.Duration(math.Round(sec * float64(time.Second)))
}
