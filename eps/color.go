// Public domain.

package eps

import (
	"fmt"
	"strings"
)

// Shape is a replacement shape for a "+" glyph.
type Shape int

const (
	Cross Shape = iota
	Plus
	Circle
	None
)

var shapeNames = [...]string{"cross", "plus", "circle", "none"}

func (s Shape) String() string {
	if s < 0 || int(s) >= len(shapeNames) {
		return fmt.Sprintf("Shape(%d)", int(s))
	}
	return shapeNames[s]
}

// ParseShape returns the shape named s.  Names are case insensitive.
func ParseShape(s string) (Shape, error) {
	for i, n := range shapeNames {
		if strings.EqualFold(s, n) {
			return Shape(i), nil
		}
	}
	return 0, fmt.Errorf("unknown shape %q (want cross, plus, circle or none)", s)
}

// Set lets a *Shape be used as a flag.Value.
func (s *Shape) Set(v string) (err error) {
	*s, err = ParseShape(v)
	return
}

// Colour is one of the annotation colours kvis writes.
type Colour struct {
	Name   string // command line name
	Label  string // used in comments and messages
	Marker string // setrgbcolor line that starts a block of this colour
}

// Colours lists the known annotation colours in processing order.
var Colours = []Colour{
	{"red", "Red", " 1.0000   0.0000   0.0000  setrgbcolor"},
	{"green", "Green", " 0.0000   1.0000   0.0000  setrgbcolor"},
	{"blue", "Blue", " 0.0000   0.0000   1.0000  setrgbcolor"},
	{"yellow", "Yellow", " 1.0000   1.0000   0.0000  setrgbcolor"},
	{"pink", "Pink", " 1.0000   0.7529   0.7961  setrgbcolor"},
}

// ColorSpec is one requested conversion: blocks of Colour get their
// glyphs replaced by Shape.
type ColorSpec struct {
	Colour
	Shape Shape
}

// NewColorSpec looks up the colour by name.
func NewColorSpec(name string, shape Shape) (ColorSpec, error) {
	for _, c := range Colours {
		if strings.EqualFold(name, c.Name) {
			return ColorSpec{c, shape}, nil
		}
	}
	return ColorSpec{}, fmt.Errorf("unknown colour %q", name)
}
