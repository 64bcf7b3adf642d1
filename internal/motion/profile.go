package motion

import (
	"math"

	"github.com/coreman2200/funtimes-hauntlight/internal/scene"
)

// Profile holds the orbital parameters of one ghost.
type Profile struct {
	AngularSpeed float64 `yaml:"angular_speed"` // rad/s, sign sets direction
	Radius       float64 `yaml:"radius"`
	M1           float64 `yaml:"m1"` // 0 means 1
	M2           float64 `yaml:"m2"`
	M3           float64 `yaml:"m3"`
}

// Defaults are the three ghost orbits of the haunted house.
var Defaults = [3]Profile{
	{AngularSpeed: 0.5, Radius: 4, M1: 1, M2: 2.34, M3: 0.345},
	{AngularSpeed: -0.38, Radius: 5, M1: 1, M2: 2.34, M3: 0.345},
	{AngularSpeed: 0.23, Radius: 6, M1: 1, M2: 2.34, M3: 0.345},
}

// Position evaluates the orbit at elapsed time t. It has no state, so the
// same t always gives the same vector.
func (p Profile) Position(t float64) scene.Vec3 {
	angle := t * p.AngularSpeed
	m1 := p.M1
	if m1 == 0 {
		m1 = 1
	}
	return scene.Vec3{
		math.Cos(angle) * p.Radius,
		math.Sin(angle*m1) * math.Sin(angle*p.M2) * math.Sin(angle*p.M3),
		math.Sin(angle) * p.Radius,
	}
}
