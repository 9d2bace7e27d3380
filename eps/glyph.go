// Public domain.

package eps

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"seehuhn.de/go/geom/vec"
)

// tolerance for two strokes sharing a centre.
const tolerance = 1e-5

// Stroke is one line of a glyph: "x0 y0 M x1 y1 D ...".  Only the four
// coordinates are interpreted.
type Stroke struct {
	Text   string // the line as read
	X0, Y0 float64
	X1, Y1 float64
}

// Mid returns the midpoint of the stroke.
func (s Stroke) Mid() vec.Vec2 {
	return vec.Vec2{X: (s.X0 + s.X1) / 2, Y: (s.Y0 + s.Y1) / 2}
}

// ParseError reports a coordinate token that is not a number.
type ParseError struct {
	Line  string
	Token string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("eps: bad coordinate %q in line %q: %v",
		e.Token, e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ParseStroke parses a glyph line.  ok is false if the line has fewer than
// five fields and so cannot be a stroke.  A line with enough fields but a
// coordinate that does not parse is an error.
func ParseStroke(line string) (s Stroke, ok bool, err error) {
	f := strings.Fields(line)
	if len(f) < 5 {
		return
	}
	var c [4]float64
	for i, x := range [4]int{0, 1, 3, 4} {
		if c[i], err = strconv.ParseFloat(f[x], 64); err != nil {
			return Stroke{}, false, &ParseError{line, f[x], err}
		}
	}
	return Stroke{line, c[0], c[1], c[2], c[3]}, true, nil
}

// Glyph is a "+" symbol, a horizontal stroke H followed by a vertical
// stroke V with a common midpoint.
type Glyph struct {
	H, V Stroke
}

// Pair returns the glyph formed by strokes a and b if their midpoints
// agree in both x and y.  The test is symmetric but the glyph is not:
// a supplies the x extent and b the y extent.
func Pair(a, b Stroke) (Glyph, bool) {
	ma, mb := a.Mid(), b.Mid()
	if math.Abs(ma.X-mb.X) > tolerance || math.Abs(ma.Y-mb.Y) > tolerance {
		return Glyph{}, false
	}
	return Glyph{a, b}, true
}

// Centre returns the centre of the glyph's bounding box.
func (g Glyph) Centre() vec.Vec2 {
	return vec.Vec2{X: (g.H.X0 + g.H.X1) / 2, Y: (g.V.Y0 + g.V.Y1) / 2}
}

// Glyphs returns the glyphs in region r of lines.  Candidate pairs are
// lines i and i+1 for every i after the marker line with i+1 still inside
// the region.  Lines that do not pair are skipped; skipped counts the
// candidates rejected.
func Glyphs(lines []string, r Region) (gs []Glyph, skipped int, err error) {
	strokes := make([]Stroke, r.Len())
	valid := make([]bool, r.Len())
	for i := r.Start + 1; i <= r.End; i++ {
		k := i - r.Start
		if strokes[k], valid[k], err = ParseStroke(lines[i]); err != nil {
			return nil, 0, err
		}
	}
	for k := 1; k+1 < len(strokes); k++ {
		if !valid[k] || !valid[k+1] {
			skipped++
			continue
		}
		g, ok := Pair(strokes[k], strokes[k+1])
		if !ok {
			skipped++
			continue
		}
		gs = append(gs, g)
	}
	return gs, skipped, nil
}
