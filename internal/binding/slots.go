// Package binding attaches asynchronously loaded models to ghost slots.
package binding

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/coreman2200/funtimes-hauntlight/internal/scene"
)

var (
	ErrAlreadyBound = errors.New("slot already bound")
	ErrSlotFailed   = errors.New("slot load failed")
	ErrNoSlot       = errors.New("no such slot")
)

// Slots holds at most one model per slot. A slot is bound once and never
// rebound; a failed slot stays empty for the rest of the session.
type Slots struct {
	models []*scene.Model
	failed []error

	// OnFail is called once per slot when its load fails.
	OnFail func(slot int, err error)

	Log zerolog.Logger
}

func New(n int) *Slots {
	return &Slots{
		models: make([]*scene.Model, n),
		failed: make([]error, n),
		Log:    log.Logger.With().Str("component", "binding").Logger(),
	}
}

func (s *Slots) Len() int { return len(s.models) }

// Bind attaches m to slot. Binding a slot twice returns ErrAlreadyBound and
// keeps the first model.
func (s *Slots) Bind(slot int, m *scene.Model) error {
	if slot < 0 || slot >= len(s.models) {
		return fmt.Errorf("bind %d: %w", slot, ErrNoSlot)
	}
	if m == nil {
		return fmt.Errorf("bind %d: nil model", slot)
	}
	if s.failed[slot] != nil {
		return fmt.Errorf("bind %d: %w", slot, ErrSlotFailed)
	}
	if s.models[slot] != nil {
		return fmt.Errorf("bind %d: %w", slot, ErrAlreadyBound)
	}
	s.models[slot] = m
	s.Log.Info().Int("slot", slot).Str("model", m.Name).Msg("model bound")
	return nil
}

// Fail records a load failure for slot. The slot keeps animating its light
// and never receives a model.
func (s *Slots) Fail(slot int, err error) {
	if slot < 0 || slot >= len(s.models) || s.models[slot] != nil || s.failed[slot] != nil {
		return
	}
	if err == nil {
		err = errors.New("unknown load error")
	}
	s.failed[slot] = err
	s.Log.Error().Err(err).Int("slot", slot).Msg("model load failed; slot stays unbound")
	if s.OnFail != nil {
		s.OnFail(slot, err)
	}
}

// Model returns the model bound to slot, if any.
func (s *Slots) Model(slot int) (*scene.Model, bool) {
	if slot < 0 || slot >= len(s.models) {
		return nil, false
	}
	m := s.models[slot]
	return m, m != nil
}

// Failed returns the load error recorded for slot.
func (s *Slots) Failed(slot int) error {
	if slot < 0 || slot >= len(s.failed) {
		return nil
	}
	return s.failed[slot]
}

// Bound lists the bound slot indices in order.
func (s *Slots) Bound() []int {
	out := []int{}
	for i, m := range s.models {
		if m != nil {
			out = append(out, i)
		}
	}
	return out
}
