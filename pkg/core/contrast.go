package core

import "math"

// MinContrastRatio is the WCAG AA minimum for normal-size text.
const MinContrastRatio = 4.5

// Verdict is the readability judgment for a background color.
type Verdict int

const (
	// Pass means black text on the color reaches MinContrastRatio.
	Pass Verdict = iota
	// Warn means the text may be hard to read. It is advice, not a rejection.
	Warn
)

func (v Verdict) String() string {
	switch v {
	case Pass:
		return "PASS"
	case Warn:
		return "WARN"
	default:
		return "UNKNOWN"
	}
}

// Luminance returns the WCAG 2.0 relative luminance of c.
func Luminance(c Color) float64 {
	r := linearize(float64(c.R) / 255)
	g := linearize(float64(c.G) / 255)
	b := linearize(float64(c.B) / 255)
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// linearize converts an sRGB channel in [0,1] to linear light.
func linearize(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastRatio returns the contrast between c as background and black text.
func ContrastRatio(c Color) float64 {
	bg := Luminance(c)
	const text = 0.0 // black

	lighter, darker := math.Max(bg, text), math.Min(bg, text)
	return (lighter + 0.05) / (darker + 0.05)
}

// Evaluate judges whether black text stays readable on c.
func Evaluate(c Color) Verdict {
	return verdictFor(ContrastRatio(c))
}

func verdictFor(ratio float64) Verdict {
	if ratio >= MinContrastRatio {
		return Pass
	}
	return Warn
}
