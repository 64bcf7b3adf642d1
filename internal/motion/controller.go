// Package motion moves the ghost lights, and their models once loaded,
// along procedural orbits.
package motion

import "github.com/coreman2200/funtimes-hauntlight/internal/scene"

// Models looks up the model bound to a slot, if any.
type Models interface {
	Model(slot int) (*scene.Model, bool)
}

// Controller drives one ghost slot.
type Controller struct {
	Slot    int
	Profile Profile
	Light   *scene.Light
	models  Models
}

func NewController(slot int, p Profile, light *scene.Light, models Models) *Controller {
	return &Controller{Slot: slot, Profile: p, Light: light, models: models}
}

// Update writes the orbit position for t to the light and, when the slot
// has a model, the same vector to the model. An unbound slot only moves
// the light.
func (c *Controller) Update(t float64) scene.Vec3 {
	pos := c.Profile.Position(t)
	if c.Light != nil {
		c.Light.Position = pos
	}
	if c.models != nil {
		if m, ok := c.models.Model(c.Slot); ok {
			m.Position = pos
		}
	}
	return pos
}
