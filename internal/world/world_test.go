package world

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coreman2200/funtimes-hauntlight/internal/binding"
	"github.com/coreman2200/funtimes-hauntlight/internal/lightning"
	"github.com/coreman2200/funtimes-hauntlight/internal/motion"
	"github.com/coreman2200/funtimes-hauntlight/internal/scene"
)

type zeroRand struct{}

func (zeroRand) Int63n(int64) int64 { return 0 }

func newWorld(t *testing.T) *World {
	t.Helper()
	w, err := New(scene.NewHauntedHouse(), motion.Defaults[:], lightning.New(lightning.Options{Rand: zeroRand{}}))
	require.NoError(t, err)
	w.Slots.Log = zerolog.Nop()
	return w
}

func TestUpdateMovesGhostsAndFlashes(t *testing.T) {
	w := newWorld(t)
	assert.Equal(t, 0.0, w.Update(0))

	g1, _ := w.Graph.Light("ghost1")
	assert.Equal(t, scene.Vec3{4, 0, 0}, g1.Position)
	g3, _ := w.Graph.Light("ghost3")
	assert.InDelta(t, 6, g3.Position.X(), 1e-12)

	assert.Equal(t, 3.0, w.Update(2.0))
	assert.Equal(t, 3.0, w.Lightning.Intensity)
	assert.Equal(t, 0.0, w.Update(2.4))
	assert.Equal(t, 0.0, w.Lightning.Intensity)
}

func TestAttachAddsModelAndFollowsLight(t *testing.T) {
	w := newWorld(t)
	m := &scene.Model{Name: "ghost"}
	require.NoError(t, w.Attach(1, m))
	assert.Len(t, w.Graph.Models(), 1)

	w.Update(3.5)
	g2, _ := w.Graph.Light("ghost2")
	assert.Equal(t, g2.Position, m.Position)

	err := w.Attach(1, &scene.Model{Name: "other"})
	assert.True(t, errors.Is(err, binding.ErrAlreadyBound))
	assert.Len(t, w.Graph.Models(), 1)
}

func TestIndependentWorlds(t *testing.T) {
	a, b := newWorld(t), newWorld(t)
	a.Update(10)
	ga, _ := a.Graph.Light("ghost1")
	gb, _ := b.Graph.Light("ghost1")
	assert.NotEqual(t, ga.Position, gb.Position)
}

func TestNewRejectsMissingLights(t *testing.T) {
	_, err := New(scene.NewGraph(), motion.Defaults[:], lightning.New(lightning.Options{Rand: zeroRand{}}))
	assert.Error(t, err)
}
