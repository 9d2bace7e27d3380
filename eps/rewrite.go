// Public domain.

package eps

import (
	"errors"

	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("eps")

const (
	white = "1.0000   1.0000   1.0000  setrgbcolor"
	black = "0.0000   0.0000   0.0000  setrgbcolor"
)

// commentPrefix marks a line of an original block kept for reference.
const commentPrefix = "%  "

var errMarker = errors.New("eps: start marker must be a setrgbcolor directive")

// Rewrite converts every block of spec's colour in d, returning the number
// of blocks converted.  Each pass replaces the first remaining block, so
// the loop ends when the start marker no longer occurs: rewritten blocks
// keep the marker only in commented form.
//
// A malformed coordinate stops the rewrite with a *ParseError; blocks
// converted before it stay converted.
func Rewrite(d *Document, spec ColorSpec, cfg *RenderConfig) (n int, err error) {
	if spec.Marker == "" || !EndPattern.MatchString(spec.Marker) {
		return 0, errMarker
	}
	for {
		r, ok := FindRegion(d.Annotations, spec.Marker, EndPattern)
		if !ok {
			return n, nil
		}
		gs, skipped, err := Glyphs(d.Annotations, r)
		if err != nil {
			return n, err
		}
		log.Infof("Found %d of %s.", len(gs), spec.Label)
		if skipped > 0 {
			log.Debugf("%s block at line %d: %d unpaired lines skipped",
				spec.Label, r.Start, skipped)
		}
		d.Annotations = splice(d.Annotations, r, block(spec, gs, cfg))
		n++
	}
}

// Convert runs Rewrite for each spec in order.  It returns the total
// number of blocks converted.
func Convert(d *Document, specs []ColorSpec, cfg *RenderConfig) (int, error) {
	total := 0
	for _, s := range specs {
		n, err := Rewrite(d, s, cfg)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// block returns the lines that follow the commented original: a section
// comment, then the rendered glyphs drawn once per monochrome pass.
func block(spec ColorSpec, gs []Glyph, cfg *RenderConfig) []string {
	var drawn []string
	for _, g := range gs {
		if cfg.Keep != nil && !cfg.Keep(spec.Label, g) {
			continue
		}
		drawn = append(drawn, Render(spec.Shape, g, cfg)...)
	}
	first, second := white, black
	if cfg.Switch {
		first, second = black, white
	}
	b := make([]string, 0, 7+2*len(drawn))
	b = append(b, "", "%% "+spec.Label+" plus symbols",
		first, cfg.Weight1+" setlinewidth")
	b = append(b, drawn...)
	b = append(b, "", second, cfg.Weight2+" setlinewidth")
	return append(b, drawn...)
}

// splice returns lines with region r commented out and followed by b.
func splice(lines []string, r Region, b []string) []string {
	out := make([]string, 0, len(lines)+len(b))
	out = append(out, lines[:r.Start]...)
	for _, l := range lines[r.Start : r.End+1] {
		out = append(out, commentPrefix+l)
	}
	out = append(out, b...)
	return append(out, lines[r.End+1:]...)
}
