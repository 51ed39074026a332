package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aretw0/tint/pkg/core"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name    string
		color   core.Color
		want    core.Verdict
		ratio   float64
		epsilon float64
	}{
		{"white", core.RGB(255, 255, 255), core.Pass, 21, 1e-9},
		{"black", core.RGB(0, 0, 0), core.Warn, 1, 1e-9},
		{"pure yellow", core.RGB(255, 255, 0), core.Pass, 19.556, 1e-3},
		{"mid gray", core.RGB(150, 150, 150), core.Pass, 7.0997, 1e-3},
		{"lightest failing gray", core.RGB(116, 116, 116), core.Warn, 4.4929, 1e-3},
		{"darkest passing gray", core.RGB(117, 117, 117), core.Pass, 4.5578, 1e-3},
		{"pure blue", core.RGB(0, 0, 255), core.Warn, 2.444, 1e-3},
		{"pure red", core.RGB(255, 0, 0), core.Pass, 5.252, 1e-3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.ratio, core.ContrastRatio(tt.color), tt.epsilon)
			assert.Equal(t, tt.want, core.Evaluate(tt.color))
		})
	}
}

func TestEvaluate_ThresholdBoundary(t *testing.T) {
	// Ratio 4.5 is reached at luminance 0.175; every gray at or above the
	// first passing level passes and every one below fails.
	for v := 0; v <= 255; v++ {
		c := core.RGB(uint8(v), uint8(v), uint8(v))
		ratio := core.ContrastRatio(c)
		if ratio >= core.MinContrastRatio {
			assert.Equal(t, core.Pass, core.Evaluate(c), "gray %d ratio %f", v, ratio)
			assert.GreaterOrEqual(t, v, 117)
		} else {
			assert.Equal(t, core.Warn, core.Evaluate(c), "gray %d ratio %f", v, ratio)
			assert.Less(t, v, 117)
		}
	}
}

func TestEvaluate_Deterministic(t *testing.T) {
	c := core.RGB(12, 200, 99)
	first := core.ContrastRatio(c)
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, core.ContrastRatio(c))
		assert.Equal(t, core.Evaluate(c), core.Evaluate(c))
	}
}

func TestLuminance_Knee(t *testing.T) {
	// 10/255 sits below the 0.03928 knee and stays on the linear segment.
	c := core.RGB(10, 10, 10)
	assert.InDelta(t, (10.0/255)/12.92, core.Luminance(c), 1e-12)
}

func TestVerdict_String(t *testing.T) {
	assert.Equal(t, "PASS", core.Pass.String())
	assert.Equal(t, "WARN", core.Warn.String())
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    core.Color
		wantErr bool
	}{
		{in: "#ffcc00", want: core.RGB(255, 204, 0)},
		{in: "FFCC00", want: core.RGB(255, 204, 0)},
		{in: " #0a0b0c ", want: core.RGB(10, 11, 12)},
		{in: "#fff", want: core.RGB(255, 255, 255)},
		{in: "abc", want: core.RGB(0xaa, 0xbb, 0xcc)},
		{in: "", wantErr: true},
		{in: "#12345", wantErr: true},
		{in: "#12345g", wantErr: true},
		{in: "red", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := core.ParseColor(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, core.ErrInvalidColor)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, mustParse(t, got.Hex()))
		})
	}
}

func mustParse(t *testing.T, s string) core.Color {
	t.Helper()
	c, err := core.ParseColor(s)
	if err != nil {
		t.Fatalf("ParseColor(%q): %v", s, err)
	}
	return c
}
