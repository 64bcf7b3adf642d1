package camera

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coreman2200/funtimes-hauntlight/internal/scene"
)

func dist(a, b scene.Vec3) float64 { return a.Sub(b).Len() }

func TestUpdateWithoutInputKeepsPosition(t *testing.T) {
	c := NewPerspective(75, 16.0/9, 0.1, 1000)
	c.Position = scene.Vec3{1, 3, 10}
	o := NewOrbit(c)
	for i := 0; i < 10; i++ {
		o.Update()
	}
	assert.InDelta(t, 1, c.Position.X(), 1e-9)
	assert.InDelta(t, 3, c.Position.Y(), 1e-9)
	assert.InDelta(t, 10, c.Position.Z(), 1e-9)
}

func TestDampedRotationEasesOut(t *testing.T) {
	c := NewPerspective(75, 1, 0.1, 1000)
	c.Position = scene.Vec3{0, 0, 10}
	o := NewOrbit(c)
	o.Rotate(1, 0)

	o.Update()
	first := math.Atan2(c.Position.X(), c.Position.Z())
	assert.InDelta(t, DefaultDamping, first, 1e-9)

	for i := 0; i < 400; i++ {
		o.Update()
	}
	total := math.Atan2(c.Position.X(), c.Position.Z())
	assert.InDelta(t, 1, total, 1e-6)
	assert.InDelta(t, 10, dist(c.Position, c.Target), 1e-9)
}

func TestUndampedRotationAppliesAtOnce(t *testing.T) {
	c := NewPerspective(75, 1, 0.1, 1000)
	c.Position = scene.Vec3{0, 0, 10}
	o := NewOrbit(c)
	o.Damping = 0
	o.Rotate(math.Pi/2, 0)
	o.Update()
	assert.InDelta(t, 10, c.Position.X(), 1e-9)
	assert.InDelta(t, 0, c.Position.Z(), 1e-9)
}

func TestZoomClampsDistance(t *testing.T) {
	c := NewPerspective(75, 1, 0.1, 1000)
	c.Position = scene.Vec3{0, 0, 10}
	o := NewOrbit(c)
	o.MinDistance = 4
	o.Zoom(0.1)
	o.Update()
	assert.InDelta(t, 4, dist(c.Position, c.Target), 1e-9)
}

func TestResize(t *testing.T) {
	c := NewPerspective(75, 1, 0.1, 1000)
	c.Resize(1920, 1080)
	assert.InDelta(t, 16.0/9, c.Aspect, 1e-12)
	c.Resize(0, 100)
	assert.InDelta(t, 16.0/9, c.Aspect, 1e-12)
}

func TestQueuedResizeAppliedOnUpdate(t *testing.T) {
	c := NewPerspective(75, 1, 0.1, 1000)
	c.Position = scene.Vec3{0, 0, 10}
	o := NewOrbit(c)
	o.Resize(800, 400)
	assert.Equal(t, 1.0, c.Aspect)
	o.Update()
	assert.Equal(t, 2.0, c.Aspect)
}

func TestOrbitCrossesBehindTarget(t *testing.T) {
	c := NewPerspective(75, 1, 0.1, 1000)
	c.Position = scene.Vec3{0, 0, 10}
	o := NewOrbit(c)
	o.Damping = 0
	for i := 0; i < 3; i++ {
		o.Rotate(math.Pi/2, 0)
		o.Update()
	}
	assert.InDelta(t, -10, c.Position.X(), 1e-9)
	assert.InDelta(t, 0, c.Position.Z(), 1e-9)
}

func TestViewProjectionCentresTarget(t *testing.T) {
	c := NewPerspective(75, 16.0/9, 0.1, 1000)
	c.Position = scene.Vec3{1, 3, 10}
	clip := c.ViewProjection().Mul4x1(c.Target.Vec4(1))
	assert.InDelta(t, 0, clip.X()/clip.W(), 1e-9)
	assert.InDelta(t, 0, clip.Y()/clip.W(), 1e-9)
	assert.Greater(t, clip.W(), 0.0)
}
