package fake

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/coreman2200/funtimes-hauntlight/internal/camera"
	"github.com/coreman2200/funtimes-hauntlight/internal/scene"
)

// LightState is a copy of one light at submission time.
type LightState struct {
	Name      string
	Position  scene.Vec3
	Intensity float64
}

// Driver is a headless renderer: it counts frames and keeps a copy of the
// last one. Every LogEvery frames it logs a one-line summary.
type Driver struct {
	Count    int
	LogEvery int
	Err      error // returned from Render when set

	Lights []LightState
	Models []scene.Vec3
	Camera camera.Camera

	Log zerolog.Logger
}

func New(logEvery int) *Driver {
	return &Driver{LogEvery: logEvery, Log: log.Logger.With().Str("driver", "sim").Logger()}
}

func (d *Driver) Render(g *scene.Graph, cam *camera.Camera) error {
	d.Count++
	d.Lights = d.Lights[:0]
	for _, l := range g.Lights() {
		d.Lights = append(d.Lights, LightState{Name: l.Name, Position: l.Position, Intensity: l.Intensity})
	}
	d.Models = d.Models[:0]
	for _, m := range g.Models() {
		d.Models = append(d.Models, m.Position)
	}
	if cam != nil {
		d.Camera = *cam
	}
	if d.LogEvery > 0 && d.Count%d.LogEvery == 0 {
		ev := d.Log.Debug().Int("frame", d.Count).Int("models", len(d.Models))
		if l, ok := g.Light(scene.LightningLight); ok {
			ev = ev.Float64("lightning", l.Intensity)
		}
		ev.Msg("frame")
	}
	return d.Err
}

// Light returns the captured state of the named light.
func (d *Driver) Light(name string) (LightState, bool) {
	for _, l := range d.Lights {
		if l.Name == name {
			return l, true
		}
	}
	return LightState{}, false
}
