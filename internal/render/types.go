package render

import (
	"errors"

	"github.com/coreman2200/funtimes-hauntlight/internal/camera"
	"github.com/coreman2200/funtimes-hauntlight/internal/scene"
)

// Renderer submits one frame of the scene. Implementations must not
// mutate the graph.
type Renderer interface {
	Render(g *scene.Graph, cam *camera.Camera) error
}

// CameraController is advanced once per frame before submission.
type CameraController interface {
	Update()
}

// Multi fans a frame out to several renderers. Every renderer is called
// even if an earlier one fails; the errors are joined.
type Multi []Renderer

func (m Multi) Render(g *scene.Graph, cam *camera.Camera) error {
	var errs []error
	for _, r := range m {
		if r == nil {
			continue
		}
		if err := r.Render(g, cam); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
