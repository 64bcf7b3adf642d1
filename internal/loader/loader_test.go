package loader

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/qmuntal/gltf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coreman2200/funtimes-hauntlight/internal/scene"
)

const ghostGLTF = `{
  "asset": {"version": "2.0", "generator": "Sketchfab-12.65.0"},
  "scene": 0,
  "scenes": [{"name": "Sketchfab_Scene", "nodes": [0, 1]}],
  "nodes": [{"name": "Sketchfab_model"}, {"name": "Ghost_body"}]
}`

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "ghost")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestLoadGLTF(t *testing.T) {
	p := writeFile(t, "scene.gltf", ghostGLTF)
	m, err := LoadGLTF(p)
	require.NoError(t, err)
	assert.Equal(t, "Sketchfab_Scene", m.Name)
	assert.Equal(t, []string{"Sketchfab_model", "Ghost_body"}, m.Nodes)
	assert.Equal(t, scene.Vec3{1, 1, 1}, m.Scale)
}

func TestLoadGLTFRejectsVersion1(t *testing.T) {
	p := writeFile(t, "scene.gltf", `{"asset":{"version":"1.0"}}`)
	_, err := LoadGLTF(p)
	assert.True(t, errors.Is(err, ErrUnsupportedVersion))
}

func TestLoadGLTFUnnamedSceneTakesDirName(t *testing.T) {
	sc := &gltf.Scene{}
	sc.Nodes = append(sc.Nodes, 0)
	doc := &gltf.Document{
		Asset:  gltf.Asset{Version: "2.0"},
		Nodes:  []*gltf.Node{{Name: "sheet"}},
		Scenes: []*gltf.Scene{sc},
	}
	p := writeFile(t, "scene.gltf", "")
	require.NoError(t, gltf.Save(doc, p))

	m, err := LoadGLTF(p)
	require.NoError(t, err)
	assert.Equal(t, "ghost", m.Name)
	assert.Equal(t, []string{"sheet"}, m.Nodes)
}

func TestLoadGLTFMalformed(t *testing.T) {
	p := writeFile(t, "scene.gltf", `{"asset":`)
	_, err := LoadGLTF(p)
	assert.Error(t, err)
	assert.False(t, errors.Is(err, ErrUnsupportedVersion))
}

func TestLoadGLTFMissingFile(t *testing.T) {
	_, err := LoadGLTF(filepath.Join(t.TempDir(), "nope.gltf"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestAsyncClonesPerSlot(t *testing.T) {
	p := writeFile(t, "scene.gltf", ghostGLTF)
	ch := Async(context.Background(), p, GhostPlacements, nil)

	var got []Result
	for r := range ch {
		got = append(got, r)
	}
	require.Len(t, got, 3)
	for i, r := range got {
		require.NoError(t, r.Err)
		assert.Equal(t, i, r.Slot)
		assert.Equal(t, GhostPlacements[i].Position, r.Model.Position)
		assert.Equal(t, GhostPlacements[i].Scale, r.Model.Scale)
	}
	assert.NotSame(t, got[0].Model, got[1].Model)
	got[0].Model.Nodes[0] = "changed"
	assert.Equal(t, "Sketchfab_model", got[1].Model.Nodes[0])
}

func TestAsyncDeliversFailureToEverySlot(t *testing.T) {
	boom := errors.New("boom")
	ch := Async(context.Background(), "ghost.gltf", GhostPlacements, func(string) (*scene.Model, error) {
		return nil, boom
	})
	n := 0
	for r := range ch {
		assert.Nil(t, r.Model)
		assert.Same(t, boom, r.Err)
		n++
	}
	assert.Equal(t, 3, n)
}
