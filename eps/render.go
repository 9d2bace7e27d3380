// Public domain.

package eps

import (
	"fmt"
	"math"

	"seehuhn.de/go/geom/vec"
)

// DefaultSize is the default circle radius.
const DefaultSize = 2.5

// RenderConfig holds the options shared by every conversion in a run.
// It is not modified once built.
type RenderConfig struct {
	Size    float64 // circle radius
	Weight1 string  // line width of the first (primary) pass, as written
	Weight2 string  // line width of the second pass
	Switch  bool    // draw the black pass first

	// Keep, if not nil, is asked about every glyph before it is rendered.
	// Glyphs it rejects are left out of the rendered block.
	Keep func(label string, g Glyph) bool
}

// DefaultRenderConfig returns the configuration used when no options are
// given.
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		Size:    DefaultSize,
		Weight1: "1.0e0",
		Weight2: "3.0e-1",
	}
}

// Render returns the PostScript lines that replace glyph g.
func Render(s Shape, g Glyph, cfg *RenderConfig) []string {
	switch s {
	case Cross:
		return cross(g)
	case Plus:
		return []string{"    " + g.H.Text, "    " + g.V.Text}
	case Circle:
		return []string{circle(g, cfg.Size)}
	}
	return nil
}

// cos 45°
var scaler = math.Pow(2, -.5)

// cross rotates the glyph by 45°, shrinking each arm so the diagonals fit
// the original bounding box.  H gives the x extent, V the y extent.
func cross(g Glyph) []string {
	ur := vec.Vec2{X: g.H.X0, Y: g.V.Y0}
	ll := vec.Vec2{X: g.H.X1, Y: g.V.Y1}
	c := vec.Vec2{X: (ll.X + ur.X) / 2, Y: (ll.Y + ur.Y) / 2}
	lo := c.Add(ll.Sub(c).Mul(scaler))
	hi := c.Add(ur.Sub(c).Mul(scaler))
	return []string{
		fmt.Sprintf("    %.5f  %.5f M %.5f  %.5f D str", lo.X, lo.Y, hi.X, hi.Y),
		fmt.Sprintf("    %.5f  %.5f M %.5f  %.5f D str", lo.X, hi.Y, hi.X, lo.Y),
	}
}

// circle centres on the horizontal stroke: x is its midpoint, y is its
// starting y.  The leading stroke flushes any open path.
func circle(g Glyph, size float64) string {
	x := (g.H.X0 + g.H.X1) / 2
	return fmt.Sprintf("stroke    %.5f  %.5f  %.2f  0 360 arc closepath stroke",
		x, g.H.Y0, size)
}
