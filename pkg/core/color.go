// Package core holds the color tagging domain: colors and their contrast
// verdict, the identity-keyed store, the clipboard slot, the selection
// controller and the bridge to the project's saved state.
package core

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// NodeID is the stable identity of a layer or group in the tree.
// It never encodes the node's position.
type NodeID string

// Color is the background color tagged on a node.
type Color struct {
	R uint8 `json:"r" yaml:"r"`
	G uint8 `json:"g" yaml:"g"`
	B uint8 `json:"b" yaml:"b"`
}

const hexDigits = "0123456789abcdef"

// RGB builds a Color from its channels.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// ParseColor accepts "#rrggbb", "rrggbb", "#rgb" and "rgb".
func ParseColor(s string) (Color, error) {
	v := strings.TrimSpace(s)
	if v == "" {
		return Color{}, fmt.Errorf("%w: empty value", ErrInvalidColor)
	}
	if !strings.HasPrefix(v, "#") {
		v = "#" + v
	}
	if len(v) != 4 && len(v) != 7 || strings.TrimLeft(strings.ToLower(v[1:]), hexDigits) != "" {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	c, err := colorful.Hex(strings.ToLower(v))
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	r, g, b := c.RGB255()
	return Color{R: r, G: g, B: b}, nil
}

// Hex returns the color as "#rrggbb".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c Color) String() string {
	return c.Hex()
}
