package fs

import (
	"sort"
	"time"

	"github.com/aretw0/introspection"
)

// ProjectState exposes internal state for observability.
type ProjectState struct {
	Path       string     `json:"path"`
	Name       string     `json:"name"`
	Nodes      int        `json:"nodes"`
	Properties []string   `json:"properties,omitempty"`
	Records    int        `json:"records"`
	LoadedAt   *time.Time `json:"loaded_at,omitempty"`
	SavedAt    *time.Time `json:"saved_at,omitempty"`
}

// State implements introspection.Introspectable.
func (p *Project) State() any {
	keys := make([]string, 0, len(p.Properties))
	for k := range p.Properties {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	records, _ := p.Records()

	st := ProjectState{
		Path:       p.Path,
		Name:       p.Name,
		Nodes:      len(p.Tree.IDs()),
		Properties: keys,
		Records:    len(records),
	}
	if !p.loadedAt.IsZero() {
		t := p.loadedAt
		st.LoadedAt = &t
	}
	if !p.savedAt.IsZero() {
		t := p.savedAt
		st.SavedAt = &t
	}
	return st
}

// ComponentType implements introspection.Component.
func (p *Project) ComponentType() string {
	return "project-file"
}

var _ introspection.Introspectable = (*Project)(nil)
var _ introspection.Component = (*Project)(nil)
