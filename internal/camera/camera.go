// Package camera holds the perspective camera and its damped orbit
// controls.
package camera

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/coreman2200/funtimes-hauntlight/internal/scene"
)

// Up is the world up axis.
var Up = scene.Vec3{0, 1, 0}

type Camera struct {
	Position scene.Vec3
	Target   scene.Vec3
	FOV      float64 // degrees, vertical
	Aspect   float64
	Near     float64
	Far      float64
}

func NewPerspective(fov, aspect, near, far float64) *Camera {
	return &Camera{FOV: fov, Aspect: aspect, Near: near, Far: far}
}

// Resize updates the aspect ratio for a w×h surface.
func (c *Camera) Resize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	c.Aspect = float64(w) / float64(h)
}

func (c *Camera) Projection() mgl64.Mat4 {
	return mgl64.Perspective(mgl64.DegToRad(c.FOV), c.Aspect, c.Near, c.Far)
}

func (c *Camera) View() mgl64.Mat4 { return mgl64.LookAtV(c.Position, c.Target, Up) }

// ViewProjection maps world space to clip space.
func (c *Camera) ViewProjection() mgl64.Mat4 { return c.Projection().Mul4(c.View()) }
