// Public domain.

package eps

import (
	"regexp"

	"golang.org/x/exp/slices"
)

// EndPattern matches the directive that ends an annotation block, either a
// colour change or a line width change.
var EndPattern = regexp.MustCompile(`setrgbcolor|setlinewidth`)

// Region is an inclusive range of line indexes.  Start is the index of the
// block's start marker, End the index of the last line before the line
// that ends the block.
type Region struct {
	Start, End int
}

// FindRegion locates the first line equal to marker and extends the region
// forward until the line before the first line matching end.  If end never
// matches the region runs to the last line.  ok is false when marker does
// not occur in lines.
func FindRegion(lines []string, marker string, end *regexp.Regexp) (r Region, ok bool) {
	r.Start = slices.Index(lines, marker)
	if r.Start < 0 {
		return Region{}, false
	}
	r.End = r.Start
	for _, l := range lines[r.Start+1:] {
		if end.MatchString(l) {
			break
		}
		r.End++
	}
	return r, true
}

// Len returns the number of lines in the region, marker included.
func (r Region) Len() int {
	return r.End - r.Start + 1
}
