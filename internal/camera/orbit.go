package camera

import (
	"math"
	"sync"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/coreman2200/funtimes-hauntlight/internal/scene"
)

// DefaultDamping matches the usual orbit-controls damping factor.
const DefaultDamping = 0.05

const minPolar = 1e-6

// Orbit rotates the camera around its target. Input arrives from other
// goroutines as pending deltas; Update folds them in once per frame.
type Orbit struct {
	Camera  *Camera
	Damping float64 // 0 disables damping

	MinDistance, MaxDistance float64

	mu     sync.Mutex
	dTheta float64
	dPhi   float64
	scale  float64
	resize [2]int
}

func NewOrbit(c *Camera) *Orbit {
	return &Orbit{Camera: c, Damping: DefaultDamping, MaxDistance: math.Inf(1), scale: 1}
}

// Rotate queues an azimuth/polar rotation in radians.
func (o *Orbit) Rotate(dTheta, dPhi float64) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.dTheta += dTheta
	o.dPhi += dPhi
}

// Zoom queues a distance multiplier; values below 1 move closer.
func (o *Orbit) Zoom(scale float64) {
	if scale <= 0 {
		return
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	o.scale *= scale
}

// Resize queues a surface resize, applied to the camera on the next Update.
func (o *Orbit) Resize(w, h int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.resize = [2]int{w, h}
}

// Update integrates pending input into the camera position. With damping
// a fraction of the pending rotation is applied each call and the rest
// decays, so motion eases out over following frames.
func (o *Orbit) Update() {
	o.mu.Lock()
	dTheta, dPhi, scale := o.dTheta, o.dPhi, o.scale
	k := 1.0
	if o.Damping > 0 {
		k = o.Damping
		o.dTheta *= 1 - o.Damping
		o.dPhi *= 1 - o.Damping
	} else {
		o.dTheta, o.dPhi = 0, 0
	}
	o.scale = 1
	resize := o.resize
	o.resize = [2]int{}
	o.mu.Unlock()

	c := o.Camera
	if resize[0] > 0 {
		c.Resize(resize[0], resize[1])
	}
	off := c.Position.Sub(c.Target)
	if off.Len() == 0 {
		return
	}
	// Y is up: inclination is measured from +Y and azimuth from +Z toward +X.
	r, phi, theta := mgl64.CartesianToSpherical(scene.Vec3{off.Z(), off.X(), off.Y()})

	theta += dTheta * k
	phi = mgl64.Clamp(phi+dPhi*k, minPolar, math.Pi-minPolar)
	r = mgl64.Clamp(r*scale, o.MinDistance, o.MaxDistance)

	s := mgl64.SphericalToCartesian(r, phi, theta)
	c.Position = c.Target.Add(scene.Vec3{s.Y(), s.Z(), s.X()})
}
