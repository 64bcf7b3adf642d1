package loader

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/coreman2200/funtimes-hauntlight/internal/scene"
)

// Result is delivered once per slot. Exactly one of Model and Err is set.
type Result struct {
	Slot  int
	Model *scene.Model
	Err   error
}

// Placement is the initial transform of a slot's copy.
type Placement struct {
	Position scene.Vec3
	Scale    scene.Vec3
}

// GhostPlacements are where the three ghost copies appear before their
// first frame.
var GhostPlacements = []Placement{
	{Position: scene.Vec3{4, 0.5, 0}, Scale: scene.Vec3{0.5, 0.5, 0.5}},
	{Position: scene.Vec3{-4, 0.5, 0}, Scale: scene.Vec3{0.5, 0.5, 0.5}},
	{Position: scene.Vec3{0, 0.5, 3}, Scale: scene.Vec3{0.5, 0.5, 0.5}},
}

// LoadFunc loads one model.
type LoadFunc func(path string) (*scene.Model, error)

// Async loads path once in a goroutine and sends one clone per placement.
// The channel is buffered for every result and closed afterwards, so the
// reader may drain it at its own pace or never. On failure every slot
// receives the error.
func Async(ctx context.Context, path string, placements []Placement, load LoadFunc) <-chan Result {
	if load == nil {
		load = LoadGLTF
	}
	out := make(chan Result, len(placements))
	go func() {
		defer close(out)
		m, err := load(path)
		if err != nil {
			log.Error().Err(err).Str("path", path).Msg("model load failed")
		}
		for i, p := range placements {
			if ctx.Err() != nil {
				return
			}
			if err != nil {
				out <- Result{Slot: i, Err: err}
				continue
			}
			c := m.Clone()
			c.Position = p.Position
			c.Scale = p.Scale
			out <- Result{Slot: i, Model: c}
		}
	}()
	return out
}
