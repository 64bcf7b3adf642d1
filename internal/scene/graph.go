package scene

// Graph holds the lights and models the renderer draws. It is owned by the
// frame loop; nothing here is safe for concurrent mutation.
type Graph struct {
	lights []*Light
	byName map[string]*Light
	models []*Model
}

func NewGraph() *Graph { return &Graph{byName: map[string]*Light{}} }

// AddLight registers l and returns it. A light with an existing name
// replaces the lookup entry but both stay in draw order.
func (g *Graph) AddLight(l *Light) *Light {
	if l == nil {
		return nil
	}
	g.lights = append(g.lights, l)
	g.byName[l.Name] = l
	return l
}

func (g *Graph) AddModel(m *Model) {
	if m == nil {
		return
	}
	g.models = append(g.models, m)
}

func (g *Graph) Light(name string) (*Light, bool) { l, ok := g.byName[name]; return l, ok }

func (g *Graph) Lights() []*Light { return g.lights }
func (g *Graph) Models() []*Model { return g.models }
