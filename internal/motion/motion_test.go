package motion

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coreman2200/funtimes-hauntlight/internal/scene"
)

type mapModels map[int]*scene.Model

func (m mapModels) Model(slot int) (*scene.Model, bool) { mm, ok := m[slot]; return mm, ok }

func TestFirstGhostStartsOnPositiveX(t *testing.T) {
	p := Profile{AngularSpeed: 0.5, Radius: 4, M2: 2.34, M3: 0.345}
	assert.Equal(t, scene.Vec3{4, 0, 0}, p.Position(0))
}

func TestPositionIsDeterministic(t *testing.T) {
	for _, p := range Defaults {
		for _, tt := range []float64{0, 0.016, 1.5, 37.25, 1e4} {
			a := p.Position(tt)
			b := p.Position(tt)
			if math.Float64bits(a.X()) != math.Float64bits(b.X()) ||
				math.Float64bits(a.Y()) != math.Float64bits(b.Y()) ||
				math.Float64bits(a.Z()) != math.Float64bits(b.Z()) {
				t.Fatalf("profile %+v at t=%v not reproducible: %v vs %v", p, tt, a, b)
			}
		}
	}
}

func TestOrbitStaysOnRadiusAndBobsWithinUnit(t *testing.T) {
	for _, p := range Defaults {
		for i := 0; i < 500; i++ {
			pos := p.Position(float64(i) * 0.37)
			assert.InDelta(t, p.Radius, math.Hypot(pos.X(), pos.Z()), 1e-9)
			assert.LessOrEqual(t, math.Abs(pos.Y()), 1.0)
		}
	}
}

func TestSecondGhostOrbitsBackwards(t *testing.T) {
	p := Defaults[1]
	pos := p.Position(1)
	// negative angular speed moves into -Z first
	assert.Less(t, pos.Z(), 0.0)
}

func TestUpdateMovesLightOnlyWhenUnbound(t *testing.T) {
	light := &scene.Light{Name: "ghost1"}
	c := NewController(0, Defaults[0], light, mapModels{})
	pos := c.Update(2)
	assert.Equal(t, pos, light.Position)
}

func TestUpdateKeepsModelInLockstep(t *testing.T) {
	light := &scene.Light{Name: "ghost2"}
	model := &scene.Model{Name: "ghost"}
	c := NewController(1, Defaults[1], light, mapModels{1: model})

	for _, tt := range []float64{0, 0.5, 3.25, 120} {
		pos := c.Update(tt)
		require.Equal(t, pos, light.Position)
		require.Equal(t, light.Position, model.Position)
	}
}
