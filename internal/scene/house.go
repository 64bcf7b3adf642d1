package scene

// Light names used by the animation core.
const (
	LightningLight = "lightning"
	MoonLight      = "moon"
	AmbientLight   = "ambient"
)

// GhostLights names the three orbiting ghost lights, in slot order.
var GhostLights = [3]string{"ghost1", "ghost2", "ghost3"}

// NewHauntedHouse builds the light rig of the haunted-house scene. Meshes
// are drawn by the host renderer and are not represented here.
func NewHauntedHouse() *Graph {
	g := NewGraph()
	g.AddLight(&Light{Name: AmbientLight, Kind: Ambient, Color: Hex(0x86cdff), BaseIntensity: 0.5, Intensity: 0.5})
	g.AddLight(&Light{Name: MoonLight, Kind: Directional, Color: Hex(0x86cdff), BaseIntensity: 1.5, Intensity: 1.5,
		Position: Vec3{10, 3, -8}})
	g.AddLight(&Light{Name: LightningLight, Kind: Directional, Color: Hex(0xffffff), Position: Vec3{0, 10, 0}})

	ghostColors := [3]uint32{0x8800ff, 0xff0088, 0xff0000}
	for i, name := range GhostLights {
		g.AddLight(&Light{Name: name, Kind: Point, Color: Hex(ghostColors[i]), BaseIntensity: 6, Intensity: 6})
	}

	// porch lights either side of the door
	g.AddLight(&Light{Name: "wall-left", Kind: Point, Color: Hex(0xff7d46), BaseIntensity: 1.5, Intensity: 1.5,
		Position: Vec3{-2, 2.7, 1.4}})
	g.AddLight(&Light{Name: "wall-right", Kind: Point, Color: Hex(0xff7d46), BaseIntensity: 1.5, Intensity: 1.5,
		Position: Vec3{2, 2.7, 1.4}})
	return g
}
