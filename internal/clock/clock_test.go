package clock

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func quiet() *Clock {
	c := New()
	c.Log = zerolog.Nop()
	return c
}

func TestFirstAdvanceStartsAtZero(t *testing.T) {
	c := quiet()
	e, d := c.Advance(time.Unix(1000, 0))
	assert.Equal(t, 0.0, e)
	assert.Equal(t, 0.0, d)
}

func TestAdvanceAccumulates(t *testing.T) {
	src := NewManual(time.Unix(1000, 0))
	c := quiet()
	c.Advance(src.Now())

	src.Advance(16 * time.Millisecond)
	e, d := c.Advance(src.Now())
	assert.InDelta(t, 0.016, d, 1e-12)
	assert.InDelta(t, 0.016, e, 1e-12)

	src.Advance(500 * time.Millisecond)
	e, d = c.Advance(src.Now())
	assert.InDelta(t, 0.5, d, 1e-12)
	assert.InDelta(t, 0.516, e, 1e-12)
}

func TestRegressionClampsDelta(t *testing.T) {
	src := NewManual(time.Unix(1000, 0))
	c := quiet()
	var back time.Duration
	c.OnRegression = func(d time.Duration) { back = d }

	c.Advance(src.Now())
	src.Advance(2 * time.Second)
	before, _ := c.Advance(src.Now())

	src.Set(src.Now().Add(-5 * time.Second))
	after, d := c.Advance(src.Now())

	assert.Equal(t, 0.0, d)
	assert.Equal(t, before, after)
	assert.Equal(t, 5*time.Second, back)
	assert.Equal(t, 1, c.Regressions())

	// motion resumes from the regressed reading, not the old high-water mark
	src.Advance(100 * time.Millisecond)
	e, d := c.Advance(src.Now())
	assert.InDelta(t, 0.1, d, 1e-12)
	assert.InDelta(t, before+0.1, e, 1e-12)
}

func TestElapsedNeverDecreases(t *testing.T) {
	src := NewManual(time.Unix(0, 0))
	c := quiet()
	steps := []time.Duration{10, -30, 5, 0, -1, 40, -100, 7}
	prev := -1.0
	for _, s := range steps {
		src.Advance(s * time.Millisecond)
		e, d := c.Advance(src.Now())
		if e < prev {
			t.Fatalf("elapsed went backwards: %v -> %v", prev, e)
		}
		if d < 0 {
			t.Fatalf("negative delta %v", d)
		}
		prev = e
	}
}
