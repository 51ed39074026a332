package render_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/tint/pkg/core"
	"github.com/aretw0/tint/pkg/render"
	"github.com/aretw0/tint/pkg/tree"
)

func sampleTree() *tree.Tree {
	return tree.New(
		&tree.Node{ID: "g", Kind: tree.KindGroup, Name: "Roads", Children: []*tree.Node{
			{ID: "l", Kind: tree.KindLayer, Name: "highways"},
		}},
		&tree.Node{ID: "b", Kind: tree.KindLayer, Name: "basemap"},
	)
}

func TestView_RenderOrderAndColors(t *testing.T) {
	tr := sampleTree()
	view := render.NewView(tr)
	store := core.NewStore(view, nil)
	view.Attach(store)

	store.Set("l", core.RGB(255, 204, 0))
	store.Set("b", core.RGB(0, 0, 128))

	var buf bytes.Buffer
	require.NoError(t, view.Render(&buf))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)

	assert.Contains(t, lines[0], "Roads")
	assert.NotContains(t, lines[0], "#")
	assert.True(t, strings.HasPrefix(lines[1], "  "), "nested rows are indented")
	assert.Contains(t, lines[1], "highways")
	assert.Contains(t, lines[1], "#ffcc00")
	assert.NotContains(t, lines[1], "low contrast")
	assert.Contains(t, lines[2], "#000080")
	assert.Contains(t, lines[2], "low contrast")
}

func TestView_RefreshFollowsStore(t *testing.T) {
	tr := sampleTree()
	view := render.NewView(tr)
	store := core.NewStore(view, nil)
	view.Attach(store)

	row, ok := view.Row("l")
	require.True(t, ok)
	assert.NotContains(t, row, "#")

	store.Set("l", core.RGB(1, 2, 3))
	row, _ = view.Row("l")
	assert.Contains(t, row, "#010203")

	store.Clear("l")
	row, _ = view.Row("l")
	assert.NotContains(t, row, "#010203")

	assert.Equal(t, []core.NodeID{"l", "l"}, view.Refreshed())

	var buf bytes.Buffer
	require.NoError(t, view.Render(&buf))
	assert.Empty(t, view.Refreshed())
}

func TestView_RefreshUnknownNode(t *testing.T) {
	view := render.NewView(sampleTree())
	view.RequestRowRefresh("ghost")

	_, ok := view.Row("ghost")
	assert.False(t, ok)
}

func TestView_InvalidateAfterMove(t *testing.T) {
	tr := sampleTree()
	view := render.NewView(tr)

	row, _ := view.Row("b")
	assert.False(t, strings.HasPrefix(row, "  "))

	require.NoError(t, tr.Move("b", "g", -1))
	view.Invalidate()

	row, _ = view.Row("b")
	assert.True(t, strings.HasPrefix(row, "  "))
}
