// Package loader reads the ghost model off the host's goroutine and hands
// one copy per slot back to the frame loop.
package loader

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/qmuntal/gltf"

	"github.com/coreman2200/funtimes-hauntlight/internal/scene"
)

var ErrUnsupportedVersion = errors.New("unsupported glTF version")

// LoadGLTF opens a .gltf or .glb file and returns its default scene as a
// Model named after the scene, or after the file's directory when the
// scene is unnamed.
func LoadGLTF(path string) (*scene.Model, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	if !strings.HasPrefix(doc.Asset.Version, "2.") {
		return nil, fmt.Errorf("load %s: %w: %q", path, ErrUnsupportedVersion, doc.Asset.Version)
	}

	m := &scene.Model{
		Name:  filepath.Base(filepath.Dir(path)),
		Scale: scene.Vec3{1, 1, 1},
	}
	idx := 0
	if doc.Scene != nil {
		idx = int(*doc.Scene)
	}
	if idx < 0 || idx >= len(doc.Scenes) {
		return m, nil
	}
	sc := doc.Scenes[idx]
	if sc.Name != "" {
		m.Name = sc.Name
	}
	for _, n := range sc.Nodes {
		if i := int(n); i >= 0 && i < len(doc.Nodes) {
			m.Nodes = append(m.Nodes, doc.Nodes[i].Name)
		}
	}
	return m, nil
}
