package fs

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/tint/pkg/tree"
)

func TestSerializers(t *testing.T) {
	doc := Document{
		Name: "survey",
		Tree: []*tree.Node{
			{ID: "g1", Kind: tree.KindGroup, Name: "Roads", Children: []*tree.Node{
				{ID: "l1", Kind: tree.KindLayer, Name: "highways"},
			}},
			{ID: "l2", Kind: tree.KindLayer, Name: "rivers"},
		},
		Properties: map[string]any{
			"crs": "EPSG:4326",
		},
	}

	for ext, s := range DefaultSerializers(false) {
		t.Run(ext, func(t *testing.T) {
			data, err := s.Serialize(doc)
			require.NoError(t, err)

			got, err := s.Parse(bytes.NewReader(data))
			require.NoError(t, err)

			assert.Equal(t, doc.Name, got.Name)
			require.Len(t, got.Tree, 2)
			require.Len(t, got.Tree[0].Children, 1)
			assert.Equal(t, "highways", got.Tree[0].Children[0].Name)
			assert.Equal(t, tree.KindLayer, got.Tree[1].Kind)
			assert.Equal(t, "EPSG:4326", got.Properties["crs"])
		})
	}
}

func TestSerializerFor(t *testing.T) {
	serializers := DefaultSerializers(false)

	for _, path := range []string{"a.json", "a.yaml", "dir/a.YML"} {
		_, err := serializerFor(path, serializers)
		assert.NoError(t, err, path)
	}

	_, err := serializerFor("notes.md", serializers)
	assert.ErrorContains(t, err, "unsupported project format")
}

func TestJSONSerializer_Strict(t *testing.T) {
	input := `{"name":"p","tree":[],"properties":{"big":9007199254740993}}`

	doc, err := NewJSONSerializer(true).Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, json.Number("9007199254740993"), doc.Properties["big"])

	doc, err = NewJSONSerializer(false).Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.IsType(t, float64(0), doc.Properties["big"])
}

func TestSerializers_EmptyTree(t *testing.T) {
	data, err := NewYAMLSerializer().Serialize(Document{Name: "empty"})
	require.NoError(t, err)
	assert.Contains(t, string(data), "tree: []")

	data, err = NewJSONSerializer(false).Serialize(Document{Name: "empty"})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"tree": []`)
}

func TestSerializers_InvalidInput(t *testing.T) {
	_, err := NewJSONSerializer(false).Parse(strings.NewReader("{"))
	assert.ErrorContains(t, err, "invalid json")

	_, err = NewYAMLSerializer().Parse(strings.NewReader("tree: [\n"))
	assert.ErrorContains(t, err, "invalid yaml")
}
