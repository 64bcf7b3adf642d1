// Package world owns every piece of animated state for one scene instance.
package world

import (
	"errors"
	"fmt"

	"github.com/coreman2200/funtimes-hauntlight/internal/binding"
	"github.com/coreman2200/funtimes-hauntlight/internal/lightning"
	"github.com/coreman2200/funtimes-hauntlight/internal/motion"
	"github.com/coreman2200/funtimes-hauntlight/internal/scene"
)

// World ties the scene graph to the ghost controllers, the model slots and
// the lightning scheduler. Independent Worlds share nothing.
type World struct {
	Graph     *scene.Graph
	Ghosts    []*motion.Controller
	Slots     *binding.Slots
	Lightning *scene.Light
	Flash     *lightning.Scheduler
}

// New wires one ghost controller per profile to the graph light of the same
// index in scene.GhostLights.
func New(g *scene.Graph, profiles []motion.Profile, flash *lightning.Scheduler) (*World, error) {
	if len(profiles) > len(scene.GhostLights) {
		return nil, fmt.Errorf("%d ghost profiles, at most %d supported", len(profiles), len(scene.GhostLights))
	}
	if flash == nil {
		return nil, errors.New("lightning scheduler is nil")
	}
	bolt, ok := g.Light(scene.LightningLight)
	if !ok {
		return nil, fmt.Errorf("scene has no %q light", scene.LightningLight)
	}
	w := &World{
		Graph:     g,
		Slots:     binding.New(len(profiles)),
		Lightning: bolt,
		Flash:     flash,
	}
	for i, p := range profiles {
		l, ok := g.Light(scene.GhostLights[i])
		if !ok {
			return nil, fmt.Errorf("scene has no %q light", scene.GhostLights[i])
		}
		w.Ghosts = append(w.Ghosts, motion.NewController(i, p, l, w.Slots))
	}
	return w, nil
}

// Update moves every ghost to its position at elapsed and applies the
// lightning intensity. It returns the intensity.
func (w *World) Update(elapsed float64) float64 {
	for _, c := range w.Ghosts {
		c.Update(elapsed)
	}
	i := w.Flash.Tick(elapsed)
	w.Lightning.Intensity = i
	return i
}

// Attach binds m to slot and adds it to the graph so renderers draw it.
func (w *World) Attach(slot int, m *scene.Model) error {
	if err := w.Slots.Bind(slot, m); err != nil {
		return err
	}
	w.Graph.AddModel(m)
	return nil
}
