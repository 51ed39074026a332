// Package tree models the host's layer tree: groups holding layers and
// other groups, each with a stable identity independent of its position.
package tree

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/google/uuid"

	"github.com/aretw0/tint/pkg/core"
)

// Kind distinguishes layers from groups.
type Kind string

const (
	KindLayer Kind = "layer"
	KindGroup Kind = "group"
)

var (
	ErrNodeNotFound = errors.New("node not found")
	ErrNotAGroup    = errors.New("node is not a group")
	ErrCycle        = errors.New("cannot move a group into itself")
	ErrDuplicateID  = errors.New("duplicate node id")
)

// Node is one entry of the tree.
type Node struct {
	ID       core.NodeID `json:"id" yaml:"id"`
	Kind     Kind        `json:"kind" yaml:"kind"`
	Name     string      `json:"name" yaml:"name"`
	Children []*Node     `json:"children,omitempty" yaml:"children,omitempty"`
}

// IsGroup reports whether n can hold children.
func (n *Node) IsGroup() bool {
	return n.Kind == KindGroup
}

// Tree is an ordered forest of nodes.
type Tree struct {
	Roots []*Node
}

// New returns a tree with the given top-level nodes.
func New(roots ...*Node) *Tree {
	return &Tree{Roots: roots}
}

// WalkFunc is called for every node in depth-first order. path is the
// slash-joined chain of names from the top level. Returning false skips the
// node's children.
type WalkFunc func(n *Node, depth int, path string) bool

// Walk visits every node depth-first, parents before children.
func (t *Tree) Walk(fn WalkFunc) {
	var visit func(nodes []*Node, depth int, prefix string)
	visit = func(nodes []*Node, depth int, prefix string) {
		for _, n := range nodes {
			path := n.Name
			if prefix != "" {
				path = prefix + "/" + n.Name
			}
			if fn(n, depth, path) {
				visit(n.Children, depth+1, path)
			}
		}
	}
	visit(t.Roots, 0, "")
}

// IDs returns every identity in the tree, at every depth.
func (t *Tree) IDs() []core.NodeID {
	var ids []core.NodeID
	t.Walk(func(n *Node, _ int, _ string) bool {
		ids = append(ids, n.ID)
		return true
	})
	return ids
}

// Live returns the set of identities currently in the tree.
func (t *Tree) Live() map[core.NodeID]bool {
	live := make(map[core.NodeID]bool)
	for _, id := range t.IDs() {
		live[id] = true
	}
	return live
}

// Find returns the node with the given identity.
func (t *Tree) Find(id core.NodeID) (*Node, bool) {
	n, _, _, ok := t.locate(id)
	return n, ok
}

// Depth returns how many groups enclose id.
func (t *Tree) Depth(id core.NodeID) (int, bool) {
	var (
		depth int
		found bool
	)
	t.Walk(func(n *Node, d int, _ string) bool {
		if found {
			return false
		}
		if n.ID == id {
			depth, found = d, true
			return false
		}
		return true
	})
	return depth, found
}

// Path returns the slash-joined names leading to id.
func (t *Tree) Path(id core.NodeID) (string, bool) {
	var (
		path  string
		found bool
	)
	t.Walk(func(n *Node, _ int, p string) bool {
		if found {
			return false
		}
		if n.ID == id {
			path, found = p, true
			return false
		}
		return true
	})
	return path, found
}

// Match returns the identities whose path matches the doublestar pattern,
// in tree order. "Roads/*" selects the direct children of the Roads group.
func (t *Tree) Match(pattern string) ([]core.NodeID, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("tree.Match: %w: %q", doublestar.ErrBadPattern, pattern)
	}

	var ids []core.NodeID
	t.Walk(func(n *Node, _ int, path string) bool {
		if ok, _ := doublestar.Match(pattern, path); ok {
			ids = append(ids, n.ID)
		}
		return true
	})
	return ids, nil
}

// AddGroup creates a group under parent ("" for the top level).
func (t *Tree) AddGroup(parent core.NodeID, name string) (*Node, error) {
	return t.add(parent, KindGroup, name)
}

// AddLayer creates a layer under parent ("" for the top level).
func (t *Tree) AddLayer(parent core.NodeID, name string) (*Node, error) {
	return t.add(parent, KindLayer, name)
}

func (t *Tree) add(parent core.NodeID, kind Kind, name string) (*Node, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("tree.add: node name cannot be empty")
	}

	n := &Node{ID: core.NodeID(uuid.NewString()), Kind: kind, Name: name}
	if kind == KindGroup {
		n.Children = []*Node{}
	}

	if err := t.Insert(parent, n, -1); err != nil {
		return nil, err
	}
	return n, nil
}

// Insert places n under parent at index. A negative or out of range index
// appends.
func (t *Tree) Insert(parent core.NodeID, n *Node, index int) error {
	if _, exists := t.Find(n.ID); exists {
		return fmt.Errorf("tree.Insert: %s: %w", n.ID, ErrDuplicateID)
	}

	if parent == "" {
		t.Roots = insertAt(t.Roots, n, index)
		return nil
	}

	p, ok := t.Find(parent)
	if !ok {
		return fmt.Errorf("tree.Insert: parent %s: %w", parent, ErrNodeNotFound)
	}
	if !p.IsGroup() {
		return fmt.Errorf("tree.Insert: parent %s: %w", parent, ErrNotAGroup)
	}
	p.Children = insertAt(p.Children, n, index)
	return nil
}

// Move detaches id and re-inserts it under parent at index. The node keeps
// its identity, and with it any color tagged on it.
func (t *Tree) Move(id, parent core.NodeID, index int) error {
	n, _, _, ok := t.locate(id)
	if !ok {
		return fmt.Errorf("tree.Move: %s: %w", id, ErrNodeNotFound)
	}

	if parent != "" {
		p, ok := t.Find(parent)
		if !ok {
			return fmt.Errorf("tree.Move: parent %s: %w", parent, ErrNodeNotFound)
		}
		if !p.IsGroup() {
			return fmt.Errorf("tree.Move: parent %s: %w", parent, ErrNotAGroup)
		}
		if parent == id || contains(n, parent) {
			return fmt.Errorf("tree.Move: %s: %w", id, ErrCycle)
		}
	}

	t.detach(id)
	return t.Insert(parent, n, index)
}

// Remove deletes id and its descendants and returns their identities.
func (t *Tree) Remove(id core.NodeID) ([]core.NodeID, error) {
	n, ok := t.detach(id)
	if !ok {
		return nil, fmt.Errorf("tree.Remove: %s: %w", id, ErrNodeNotFound)
	}
	return New(n).IDs(), nil
}

// Validate checks identities are present and unique and only groups have
// children.
func (t *Tree) Validate() error {
	seen := make(map[core.NodeID]bool)
	var err error
	t.Walk(func(n *Node, _ int, path string) bool {
		if err != nil {
			return false
		}
		switch {
		case n.ID == "":
			err = fmt.Errorf("tree.Validate: %q has no id", path)
		case seen[n.ID]:
			err = fmt.Errorf("tree.Validate: %s: %w", n.ID, ErrDuplicateID)
		case n.Kind != KindGroup && n.Kind != KindLayer:
			err = fmt.Errorf("tree.Validate: %s: unknown kind %q", n.ID, n.Kind)
		case n.Kind == KindLayer && len(n.Children) > 0:
			err = fmt.Errorf("tree.Validate: %s: %w", n.ID, ErrNotAGroup)
		}
		seen[n.ID] = true
		return true
	})
	return err
}

// locate finds id and the slice that holds it.
func (t *Tree) locate(id core.NodeID) (node *Node, parent *Node, index int, ok bool) {
	var search func(nodes []*Node, p *Node) bool
	search = func(nodes []*Node, p *Node) bool {
		for i, n := range nodes {
			if n.ID == id {
				node, parent, index = n, p, i
				return true
			}
			if search(n.Children, n) {
				return true
			}
		}
		return false
	}
	ok = search(t.Roots, nil)
	return node, parent, index, ok
}

func (t *Tree) detach(id core.NodeID) (*Node, bool) {
	n, parent, i, ok := t.locate(id)
	if !ok {
		return nil, false
	}
	if parent == nil {
		t.Roots = append(t.Roots[:i:i], t.Roots[i+1:]...)
	} else {
		parent.Children = append(parent.Children[:i:i], parent.Children[i+1:]...)
	}
	return n, true
}

func contains(n *Node, id core.NodeID) bool {
	for _, c := range n.Children {
		if c.ID == id || contains(c, id) {
			return true
		}
	}
	return false
}

func insertAt(nodes []*Node, n *Node, index int) []*Node {
	if index < 0 || index >= len(nodes) {
		return append(nodes, n)
	}
	out := make([]*Node, 0, len(nodes)+1)
	out = append(out, nodes[:index]...)
	out = append(out, n)
	return append(out, nodes[index:]...)
}
