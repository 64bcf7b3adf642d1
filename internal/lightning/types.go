package lightning

import "time"

// State enumerates the phases of a lightning flash.
type State string

const (
	Idle        State = "idle"
	RisingFlash State = "rising_flash"
	DimFlicker  State = "dim_flicker"
	SecondFlash State = "second_flash"
	Off         State = "off"
)

// Stage is one timed step of the flash pattern.
type Stage struct {
	State     State
	Intensity float64
	Duration  time.Duration
}

// DefaultPattern is one big flash followed by a flicker and a smaller flash.
var DefaultPattern = []Stage{
	{State: RisingFlash, Intensity: 3, Duration: 100 * time.Millisecond},
	{State: DimFlicker, Intensity: 0.8, Duration: 100 * time.Millisecond},
	{State: SecondFlash, Intensity: 2, Duration: 100 * time.Millisecond},
}

// Delay bounds between the end of one flash and the start of the next.
const (
	DefaultMinDelay = 2 * time.Second
	DefaultMaxDelay = 7 * time.Second
)

// Rand is the random source used to draw trigger delays. *rand.Rand
// satisfies it.
type Rand interface {
	Int63n(n int64) int64
}

// Hooks observe scheduler transitions. All are optional.
type Hooks struct {
	// Transition is called on every state change with the logical time
	// (seconds) the new state was entered.
	Transition func(from, to State, at float64)
	// Scheduled is called whenever a new trigger time is drawn.
	Scheduled func(next float64)
}

// Options configure a Scheduler. Zero values take the defaults above.
type Options struct {
	Pattern  []Stage
	MinDelay time.Duration
	MaxDelay time.Duration
	Rand     Rand
	Hooks    Hooks
}
