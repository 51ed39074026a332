package fs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/tint/pkg/core"
	"github.com/aretw0/tint/pkg/tree"
)

func buildProject(t *testing.T, path string) (*Project, core.NodeID, core.NodeID) {
	t.Helper()
	p, err := NewProject(path, "", Config{})
	require.NoError(t, err)

	g, err := p.Tree.AddGroup("", "Roads")
	require.NoError(t, err)
	sub, err := p.Tree.AddGroup(g.ID, "Local")
	require.NoError(t, err)
	l, err := p.Tree.AddLayer(sub.ID, "streets")
	require.NoError(t, err)
	return p, g.ID, l.ID
}

func TestProject_RoundTrip(t *testing.T) {
	for _, ext := range []string{".yaml", ".yml", ".json"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "survey"+ext)
			p, g, l := buildProject(t, path)
			p.Properties["author"] = "gopher"
			p.SetRecords([]core.Record{
				{NodeID: string(g), R: 255, G: 204},
				{NodeID: string(l), B: 255},
			})
			require.NoError(t, p.Save())

			loaded, err := LoadProject(path, Config{})
			require.NoError(t, err)

			assert.Equal(t, "survey", loaded.Name)
			assert.Equal(t, p.Tree.IDs(), loaded.Tree.IDs())
			streets, _ := loaded.Tree.Path(l)
			assert.Equal(t, "Roads/Local/streets", streets)
			assert.Equal(t, "gopher", loaded.Properties["author"])

			records, err := loaded.Records()
			require.NoError(t, err)
			assert.Equal(t, []core.Record{
				{NodeID: string(g), R: 255, G: 204},
				{NodeID: string(l), B: 255},
			}, records)
		})
	}
}

func TestProject_YAMLLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "p.yaml")
	p, _, l := buildProject(t, path)
	p.SetRecords([]core.Record{{NodeID: string(l), R: 1, G: 2, B: 3}})
	require.NoError(t, p.Save())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)

	assert.Contains(t, text, "properties:")
	assert.Contains(t, text, PropertyHighlightColors+":")
	assert.Contains(t, text, "node_id: "+string(l))
	assert.Contains(t, text, "kind: group")
}

func TestProject_SetRecordsEmptyDropsKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "p.json")
	p, _, _ := buildProject(t, path)
	p.SetRecords([]core.Record{{NodeID: "x"}})
	p.SetRecords(nil)
	require.NoError(t, p.Save())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.False(t, strings.Contains(string(data), PropertyHighlightColors))

	loaded, err := LoadProject(path, Config{})
	require.NoError(t, err)
	records, err := loaded.Records()
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestLoadProject_HandWritten(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hand.yaml")
	content := `name: hand
tree:
  - id: g1
    kind: group
    name: Hydro
    children:
      - id: l1
        kind: layer
        name: rivers
properties:
  highlight_colors:
    - {node_id: l1, r: 10, g: 20, b: 30}
    - {node_id: ghost, r: 1, g: 1, b: 1}
  extra:
    nested: [1, 2]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	p, err := LoadProject(path, Config{})
	require.NoError(t, err)

	records, err := p.Records()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, core.RGB(10, 20, 30), records[0].Color())

	// Unknown properties survive a save.
	require.NoError(t, p.Save())
	again, err := LoadProject(path, Config{})
	require.NoError(t, err)
	assert.Contains(t, again.Properties, "extra")
}

func TestLoadProject_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadProject(filepath.Join(dir, "missing.yaml"), Config{})
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = LoadProject(filepath.Join(dir, "p.txt"), Config{})
	assert.ErrorContains(t, err, "unsupported project format")

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0644))
	_, err = LoadProject(bad, Config{})
	assert.ErrorContains(t, err, "invalid json")

	dup := filepath.Join(dir, "dup.yaml")
	require.NoError(t, os.WriteFile(dup, []byte("tree:\n  - {id: a, kind: layer, name: a}\n  - {id: a, kind: layer, name: b}\n"), 0644))
	_, err = LoadProject(dup, Config{})
	assert.ErrorIs(t, err, tree.ErrDuplicateID)
}

func TestProject_MalformedRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "p.yaml")
	content := "tree: []\nproperties:\n  highlight_colors:\n    - {node_id: a, r: 300, g: 0, b: 0}\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	p, err := LoadProject(path, Config{})
	require.NoError(t, err)
	_, err = p.Records()
	assert.ErrorContains(t, err, "malformed")
}

func TestProject_State(t *testing.T) {
	path := filepath.Join(t.TempDir(), "p.yaml")
	p, _, l := buildProject(t, path)
	p.SetRecords([]core.Record{{NodeID: string(l)}})

	st, ok := p.State().(ProjectState)
	require.True(t, ok)
	assert.Equal(t, 3, st.Nodes)
	assert.Equal(t, 1, st.Records)
	assert.Equal(t, []string{PropertyHighlightColors}, st.Properties)
	assert.Nil(t, st.SavedAt)
	assert.Equal(t, "project-file", p.ComponentType())
}
