package app

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/coreman2200/funtimes-hauntlight/internal/camera"
	"github.com/coreman2200/funtimes-hauntlight/internal/clock"
	"github.com/coreman2200/funtimes-hauntlight/internal/config"
	"github.com/coreman2200/funtimes-hauntlight/internal/lightning"
	"github.com/coreman2200/funtimes-hauntlight/internal/loader"
	"github.com/coreman2200/funtimes-hauntlight/internal/motion"
	"github.com/coreman2200/funtimes-hauntlight/internal/render"
	"github.com/coreman2200/funtimes-hauntlight/internal/scene"
	"github.com/coreman2200/funtimes-hauntlight/internal/world"
	"github.com/coreman2200/funtimes-hauntlight/internal/ws"
)

// Core is one running haunted-house instance.
type Core struct {
	World *world.World
	Eng   *render.Engine
	Orbit *camera.Orbit
}

// LightningOptions converts the configured flash pattern and delays.
func LightningOptions(c config.LightningCfg, seed int64) (lightning.Options, error) {
	opts := lightning.Options{
		MinDelay: time.Duration(c.MinDelayMs) * time.Millisecond,
		MaxDelay: time.Duration(c.MaxDelayMs) * time.Millisecond,
	}
	if opts.MaxDelay > 0 && opts.MaxDelay < opts.MinDelay {
		return opts, fmt.Errorf("lightning max_delay_ms %d below min_delay_ms %d", c.MaxDelayMs, c.MinDelayMs)
	}
	for i, st := range c.Pattern {
		switch s := lightning.State(st.State); s {
		case lightning.RisingFlash, lightning.DimFlicker, lightning.SecondFlash:
			if st.DurationMs <= 0 {
				return opts, fmt.Errorf("lightning stage %d: duration_ms must be positive", i)
			}
			opts.Pattern = append(opts.Pattern, lightning.Stage{State: s, Intensity: st.Intensity,
				Duration: time.Duration(st.DurationMs) * time.Millisecond})
		default:
			return opts, fmt.Errorf("lightning stage %d: unknown state %q", i, st.State)
		}
	}
	if seed != 0 {
		opts.Rand = rand.New(rand.NewSource(seed))
	}
	return opts, nil
}

// GhostProfiles checks the configured orbits: exactly one per ghost light,
// each with a radius. Multipliers left at zero take the default orbit's
// values, so a partial entry keeps its vertical bob.
func GhostProfiles(ps []motion.Profile) ([]motion.Profile, error) {
	if len(ps) != len(motion.Defaults) {
		return nil, fmt.Errorf("ghosts: %d profiles configured, want %d", len(ps), len(motion.Defaults))
	}
	out := make([]motion.Profile, len(ps))
	for i, p := range ps {
		if p.Radius == 0 {
			return nil, fmt.Errorf("ghost %d: radius must be non-zero", i)
		}
		d := motion.Defaults[i]
		if p.M1 == 0 {
			p.M1 = d.M1
		}
		if p.M2 == 0 {
			p.M2 = d.M2
		}
		if p.M3 == 0 {
			p.M3 = d.M3
		}
		out[i] = p
	}
	return out, nil
}

// Status is the /health snapshot of the running scene. Call it from the
// loop goroutine.
func (c *Core) Status() ws.Status {
	w := c.World
	return ws.Status{
		Elapsed:        c.Eng.Clock.Elapsed(),
		LightningState: string(w.Flash.State()),
		NextFlash:      w.Flash.NextTrigger(),
		BoundSlots:     w.Slots.Bound(),
	}
}

// InitCore builds the scene, world and engine from cfg and starts loading
// the ghost model. out receives every frame; src defaults to the wall clock.
func InitCore(ctx context.Context, cfg *config.Config, out render.Renderer, src clock.Source) (*Core, error) {
	lopts, err := LightningOptions(cfg.Lightning, cfg.Seed)
	if err != nil {
		return nil, err
	}
	ghosts, err := GhostProfiles(cfg.Ghosts)
	if err != nil {
		return nil, err
	}
	w, err := world.New(scene.NewHauntedHouse(), ghosts, lightning.New(lopts))
	if err != nil {
		return nil, err
	}

	cam := camera.NewPerspective(cfg.Camera.FOV, 16.0/9.0, 0.1, 1000)
	cam.Position = scene.Vec3(cfg.Camera.Position)
	orbit := camera.NewOrbit(cam)
	orbit.Damping = cfg.Camera.Damping

	eng, err := render.NewEngine(w, cam, orbit, out, src)
	if err != nil {
		return nil, err
	}

	if cfg.ModelPath != "" {
		eng.Loads = loader.Async(ctx, cfg.ModelPath, loader.GhostPlacements, nil)
	} else {
		log.Warn().Msg("no model_path; ghosts animate as lights only")
	}

	return &Core{World: w, Eng: eng, Orbit: orbit}, nil
}
