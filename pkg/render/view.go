// Package render paints the layer tree in the terminal, tinting each row with
// the node's background color.
package render

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/aretw0/tint/pkg/core"
	"github.com/aretw0/tint/pkg/tree"
)

// ColorSource looks up the current color of a node.
type ColorSource interface {
	Get(id core.NodeID) (core.Color, bool)
}

// Text is always black so the tint reads the way the contrast check assumes.
const textColor = "#000000"

var (
	groupGlyph = "▾"
	layerGlyph = "•"

	labelStyle = lipgloss.NewStyle().Padding(0, 1)
	hexStyle   = lipgloss.NewStyle().Faint(true)
	warnStyle  = lipgloss.NewStyle().Bold(true)
)

// View renders rows of a tree and implements core.Refresher.
// RequestRowRefresh repaints a single row; Render writes the whole tree.
type View struct {
	tree   *tree.Tree
	colors ColorSource

	mu        sync.Mutex
	rows      map[core.NodeID]string
	refreshed []core.NodeID
}

// NewView creates a view of t. Attach a ColorSource before rendering.
func NewView(t *tree.Tree) *View {
	return &View{
		tree: t,
		rows: make(map[core.NodeID]string),
	}
}

// Attach sets the source of row colors.
func (v *View) Attach(src ColorSource) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.colors = src
	v.rows = make(map[core.NodeID]string)
}

// SetTree swaps the tree, dropping every cached row.
func (v *View) SetTree(t *tree.Tree) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.tree = t
	v.rows = make(map[core.NodeID]string)
}

// Invalidate drops cached rows. Call it after the tree shape changes.
func (v *View) Invalidate() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.rows = make(map[core.NodeID]string)
}

// RequestRowRefresh implements core.Refresher.
func (v *View) RequestRowRefresh(id core.NodeID) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.refreshed = append(v.refreshed, id)
	n, ok := v.tree.Find(id)
	if !ok {
		delete(v.rows, id)
		return
	}
	depth, _ := v.tree.Depth(id)
	v.rows[id] = v.renderRow(n, depth)
}

// Row returns the current rendering of id.
func (v *View) Row(id core.NodeID) (string, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if row, ok := v.rows[id]; ok {
		return row, true
	}
	n, ok := v.tree.Find(id)
	if !ok {
		return "", false
	}
	depth, _ := v.tree.Depth(id)
	row := v.renderRow(n, depth)
	v.rows[id] = row
	return row, true
}

// Refreshed returns the rows repainted since the last Render.
func (v *View) Refreshed() []core.NodeID {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]core.NodeID(nil), v.refreshed...)
}

// Render writes every row in tree order.
func (v *View) Render(w io.Writer) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	var b strings.Builder
	v.tree.Walk(func(n *tree.Node, depth int, _ string) bool {
		row, ok := v.rows[n.ID]
		if !ok {
			row = v.renderRow(n, depth)
			v.rows[n.ID] = row
		}
		b.WriteString(row)
		b.WriteByte('\n')
		return true
	})
	v.refreshed = nil

	_, err := io.WriteString(w, b.String())
	return err
}

func (v *View) renderRow(n *tree.Node, depth int) string {
	glyph := layerGlyph
	if n.IsGroup() {
		glyph = groupGlyph
	}
	indent := strings.Repeat("  ", depth)

	var c core.Color
	var tinted bool
	if v.colors != nil {
		c, tinted = v.colors.Get(n.ID)
	}
	if !tinted {
		return fmt.Sprintf("%s%s %s", indent, glyph, labelStyle.Render(n.Name))
	}

	label := labelStyle.
		Background(lipgloss.Color(c.Hex())).
		Foreground(lipgloss.Color(textColor)).
		Render(n.Name)

	suffix := hexStyle.Render(c.Hex())
	if core.Evaluate(c) == core.Warn {
		suffix += " " + warnStyle.Render(fmt.Sprintf("low contrast %.2f:1", core.ContrastRatio(c)))
	}
	return fmt.Sprintf("%s%s %s %s", indent, glyph, label, suffix)
}
