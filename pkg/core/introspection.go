package core

import (
	"github.com/aretw0/introspection"
)

// StoreState exposes internal state for observability.
type StoreState struct {
	Tagged int               `json:"tagged"`
	Colors map[string]string `json:"colors,omitempty"`
}

// State implements introspection.Introspectable.
func (s *Store) State() any {
	snap := s.Snapshot()
	colors := make(map[string]string, len(snap))
	for id, c := range snap {
		colors[string(id)] = c.Hex()
	}
	return StoreState{Tagged: len(snap), Colors: colors}
}

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string {
	return "color-store"
}

// ControllerState exposes internal state for observability.
type ControllerState struct {
	Clipboard    string `json:"clipboard,omitempty"`
	StoreType    string `json:"store_type"`
	PrompterType string `json:"prompter_type"`
}

// State implements introspection.Introspectable.
func (ctl *Controller) State() any {
	st := ControllerState{
		StoreType:    ctl.store.ComponentType(),
		PrompterType: "prompter",
	}
	if c, ok := ctl.clipboard.Paste(); ok {
		st.Clipboard = c.Hex()
	}
	if comp, ok := ctl.prompter.(introspection.Component); ok {
		st.PrompterType = comp.ComponentType()
	}
	return st
}

// ComponentType implements introspection.Component.
func (ctl *Controller) ComponentType() string {
	return "selection-controller"
}

var _ introspection.Introspectable = (*Store)(nil)
var _ introspection.Component = (*Store)(nil)
var _ introspection.Introspectable = (*Controller)(nil)
var _ introspection.Component = (*Controller)(nil)
