package scene

import "github.com/go-gl/mathgl/mgl64"

// Vec3 is a world-space position or scale, Y up.
type Vec3 = mgl64.Vec3

// Color is linear RGB in 0..1.
type Color struct{ R, G, B float32 }

// Hex converts a 0xRRGGBB value.
func Hex(v uint32) Color {
	return Color{
		R: float32((v>>16)&0xff) / 255,
		G: float32((v>>8)&0xff) / 255,
		B: float32(v&0xff) / 255,
	}
}

// Scale returns c multiplied by k.
func (c Color) Scale(k float32) Color { return Color{c.R * k, c.G * k, c.B * k} }

type LightKind string

const (
	Ambient     LightKind = "ambient"
	Directional LightKind = "directional"
	Point       LightKind = "point"
)

// Light is a scene-graph light node. BaseIntensity is what the light was
// created with; Intensity is the live value read by renderers.
type Light struct {
	Name          string
	Kind          LightKind
	Color         Color
	BaseIntensity float64
	Intensity     float64
	Position      Vec3
}

// Model is a loaded visual group (a glTF scene root).
type Model struct {
	Name     string
	Nodes    []string
	Position Vec3
	Scale    Vec3
}

// Clone returns a deep copy; the node list is not shared.
func (m *Model) Clone() *Model {
	c := *m
	c.Nodes = append([]string(nil), m.Nodes...)
	return &c
}
