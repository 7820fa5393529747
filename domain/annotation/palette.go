package annotation

import "github.com/lucasb-eyer/go-colorful"

// defaultPalette is the fixed fallback cycle used when no class color mapping
// applies. Order matters: color assignment is deterministic in creation order.
var defaultPalette = []string{
	"#FF6B6B", // red
	"#4ECDC4", // teal
	"#45B7D1", // blue
	"#FFA07A", // light salmon
	"#98D8C8", // mint
	"#F7DC6F", // yellow
	"#BB8FCE", // purple
	"#85C1E2", // sky blue
}

// Palette resolves colors for new annotations: a label mapped in ByLabel wins,
// anything else cycles the fixed palette by creation index.
type Palette struct {
	ByLabel map[string]string
	cycle   []string
}

// NewPalette builds a palette from an optional label→color mapping. Changing
// the mapping later never recolors annotations that were already assigned.
func NewPalette(byLabel map[string]string) *Palette {
	return &Palette{ByLabel: byLabel, cycle: defaultPalette}
}

// ColorFor returns the color for an annotation with the given label created at
// the given index.
func (p *Palette) ColorFor(label string, index int) string {
	if p == nil {
		return defaultPalette[index%len(defaultPalette)]
	}
	if c, ok := p.ByLabel[label]; ok && label != "" {
		return c
	}
	cycle := p.cycle
	if len(cycle) == 0 {
		cycle = defaultPalette
	}
	if index < 0 {
		index = 0
	}
	return cycle[index%len(cycle)]
}

// ClassColors returns n distinct CSS hex colors for a class list. The first
// eight come from the fixed palette; beyond that, evenly spaced hues are
// generated so every class stays visually separable. Output is deterministic.
func ClassColors(n int) []string {
	if n <= 0 {
		return nil
	}
	out := make([]string, 0, n)
	for i := 0; i < n && i < len(defaultPalette); i++ {
		out = append(out, defaultPalette[i])
	}
	for i := len(out); i < n; i++ {
		h := float64(i) * 360.0 / float64(n)
		out = append(out, colorful.Hsv(h, 0.65, 0.90).Hex())
	}
	return out
}

// ParseHex parses a CSS hex color, falling back to the first palette entry on
// malformed input so rendering never fails on a bad stored color.
func ParseHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		c, _ = colorful.Hex(defaultPalette[0])
	}
	return c
}
