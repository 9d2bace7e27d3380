// Public domain.

package eps_test

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/obsflow/epsconvert/eps"
)

const red = " 1.0000   0.0000   0.0000  setrgbcolor"
const green = " 0.0000   1.0000   0.0000  setrgbcolor"

var header = []string{
	"%!PS-Adobe-3.0 EPSF-3.0",
	"%%BoundingBox: 0 0 100 100",
	"/str {stroke} def",
	"grestore",
}

// two red blocks around a green one.  The first red block holds two
// glyphs, the second one.
var body = []string{
	red,
	"    2.00000  1.00000 M 0.00000  1.00000 D str",
	"    1.00000  2.00000 M 1.00000  0.00000 D str",
	"    12.00000  11.00000 M 10.00000  11.00000 D str",
	"    11.00000  12.00000 M 11.00000  10.00000 D str",
	green,
	"    6.00000  5.00000 M 4.00000  5.00000 D str",
	"    5.00000  6.00000 M 5.00000  4.00000 D str",
	red,
	"    22.00000  21.00000 M 20.00000  21.00000 D str",
	"    21.00000  22.00000 M 21.00000  20.00000 D str",
	"1.0 setlinewidth",
	"showpage",
}

func testDoc(t *testing.T) *eps.Document {
	t.Helper()
	src := strings.Join(header, "\n") + "\n" + strings.Join(body, "\n") + "\n"
	d, err := eps.Parse(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func spec(t *testing.T, colour string, s eps.Shape) eps.ColorSpec {
	t.Helper()
	cs, err := eps.NewColorSpec(colour, s)
	if err != nil {
		t.Fatal(err)
	}
	return cs
}

func count(lines []string, s string) (n int) {
	for _, l := range lines {
		if l == s {
			n++
		}
	}
	return
}

func TestParse(t *testing.T) {
	d := testDoc(t)
	if diff := cmp.Diff(header, d.Header); diff != "" {
		t.Fatalf("header (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(body, d.Annotations); diff != "" {
		t.Fatalf("annotations (-want +got):\n%s", diff)
	}
}

func TestParseNoBoundary(t *testing.T) {
	_, err := eps.Parse(strings.NewReader("%!PS\ngsave\nshowpage\n"))
	var fe *eps.FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("got %v, want *FormatError", err)
	}
	// CR is not stripped, so a DOS line ending hides the boundary.
	_, err = eps.Parse(strings.NewReader("%!PS\r\ngrestore\r\n"))
	if !errors.As(err, &fe) {
		t.Fatalf("CRLF: got %v, want *FormatError", err)
	}
}

func TestFindRegion(t *testing.T) {
	for _, c := range []struct {
		name  string
		lines []string
		want  eps.Region
		ok    bool
	}{
		{"terminated", body, eps.Region{0, 4}, true},
		{"unterminated", []string{"x", red, "a", "b"}, eps.Region{1, 3}, true},
		{"empty block", []string{red, green}, eps.Region{0, 0}, true},
		{"linewidth ends", []string{red, "a", "2 setlinewidth", "b"},
			eps.Region{0, 1}, true},
		{"absent", []string{green, "a"}, eps.Region{}, false},
		{"marker must match exactly", []string{strings.TrimSpace(red)},
			eps.Region{}, false},
	} {
		r, ok := eps.FindRegion(c.lines, red, eps.EndPattern)
		if r != c.want || ok != c.ok {
			t.Errorf("%s: got %v %t, want %v %t", c.name, r, ok, c.want, c.ok)
		}
	}
}

func TestGlyphs(t *testing.T) {
	d := testDoc(t)
	gs, skipped, err := eps.Glyphs(d.Annotations, eps.Region{0, 4})
	if err != nil {
		t.Fatal(err)
	}
	if len(gs) != 2 || skipped != 1 {
		t.Fatalf("got %d glyphs, %d skipped, want 2, 1", len(gs), skipped)
	}
	if c := gs[1].Centre(); c.X != 11 || c.Y != 11 {
		t.Fatalf("centre = %v, want (11, 11)", c)
	}
}

func TestGlyphsShortLines(t *testing.T) {
	lines := []string{red, "newpath", body[1], body[2], "stroke"}
	gs, skipped, err := eps.Glyphs(lines, eps.Region{0, 4})
	if err != nil {
		t.Fatal(err)
	}
	if len(gs) != 1 || skipped != 2 {
		t.Fatalf("got %d glyphs, %d skipped, want 1, 2", len(gs), skipped)
	}
}

func TestParseError(t *testing.T) {
	lines := []string{red, body[1], "    2.0  x1 M 0.0  1.0 D str"}
	_, _, err := eps.Glyphs(lines, eps.Region{0, 2})
	var pe *eps.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("got %v, want *ParseError", err)
	}
	if pe.Token != "x1" {
		t.Fatalf("token = %q, want x1", pe.Token)
	}

	d := testDoc(t)
	d.Annotations[9] = "    22.0  21.0 M twenty  21.0 D str"
	n, err := eps.Rewrite(d, spec(t, "red", eps.Cross), cfg())
	if !errors.As(err, &pe) || n != 1 {
		t.Fatalf("Rewrite = %d, %v, want 1, *ParseError", n, err)
	}
}

func cfg() *eps.RenderConfig {
	c := eps.DefaultRenderConfig()
	return &c
}

func glyph(t *testing.T, a, b string) eps.Glyph {
	t.Helper()
	sa, _, err := eps.ParseStroke(a)
	if err != nil {
		t.Fatal(err)
	}
	sb, _, err := eps.ParseStroke(b)
	if err != nil {
		t.Fatal(err)
	}
	g, ok := eps.Pair(sa, sb)
	if !ok {
		t.Fatalf("%q and %q do not pair", a, b)
	}
	return g
}

func TestCross(t *testing.T) {
	g := glyph(t, body[1], body[2])
	want := []string{
		"    0.29289  0.29289 M 1.70711  1.70711 D str",
		"    0.29289  1.70711 M 1.70711  0.29289 D str",
	}
	if diff := cmp.Diff(want, eps.Render(eps.Cross, g, cfg())); diff != "" {
		t.Fatalf("cross (-want +got):\n%s", diff)
	}
}

func TestCircle(t *testing.T) {
	g := eps.Glyph{H: eps.Stroke{Text: "0.00000 1.00000 z 2.00000 w",
		X0: 0, Y0: 1, X1: 2}}
	want := []string{"stroke    1.00000  1.00000  2.50  0 360 arc closepath stroke"}
	if diff := cmp.Diff(want, eps.Render(eps.Circle, g, cfg())); diff != "" {
		t.Fatalf("circle (-want +got):\n%s", diff)
	}
	c := cfg()
	c.Size = 4
	if got := eps.Render(eps.Circle, g, c)[0]; !strings.Contains(got, "  4.00  0 360 arc") {
		t.Fatalf("size 4: %q", got)
	}
}

func TestPlusAndNone(t *testing.T) {
	g := glyph(t, body[1], body[2])
	want := []string{"    " + body[1], "    " + body[2]}
	if diff := cmp.Diff(want, eps.Render(eps.Plus, g, cfg())); diff != "" {
		t.Fatalf("plus (-want +got):\n%s", diff)
	}
	if got := eps.Render(eps.None, g, cfg()); len(got) != 0 {
		t.Fatalf("none rendered %q", got)
	}
}

// The pairing test is symmetric but the first stroke supplies x and the
// second y, so swapping them changes the geometry.
func TestPairOrder(t *testing.T) {
	a, _, _ := eps.ParseStroke(body[1])
	b, _, _ := eps.ParseStroke(body[2])
	ab, ok1 := eps.Pair(a, b)
	ba, ok2 := eps.Pair(b, a)
	if !ok1 || !ok2 {
		t.Fatal("pair rejected")
	}
	got := eps.Render(eps.Cross, ba, cfg())
	want := []string{
		"    1.00000  1.00000 M 1.00000  1.00000 D str",
		"    1.00000  1.00000 M 1.00000  1.00000 D str",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("swapped cross (-want +got):\n%s", diff)
	}
	if cmp.Equal(eps.Render(eps.Cross, ab, cfg()), got) {
		t.Fatal("cross does not depend on stroke order")
	}
	if got := eps.Render(eps.Circle, ba, cfg())[0]; got !=
		"stroke    1.00000  2.00000  2.50  0 360 arc closepath stroke" {
		t.Fatalf("swapped circle: %q", got)
	}
}

func TestPairRejects(t *testing.T) {
	a, _, _ := eps.ParseStroke(body[1])
	for _, l := range []string{
		body[4],
		"    1.00000  2.00000 M 1.00004  0.00000 D str",
		"    1.00000  2.00004 M 1.00000  0.00000 D str",
	} {
		b, _, _ := eps.ParseStroke(l)
		if _, ok := eps.Pair(a, b); ok {
			t.Errorf("%q paired", l)
		}
	}
	b, _, _ := eps.ParseStroke("    1.000001  2.00000 M 1.00000  0.00000 D str")
	if _, ok := eps.Pair(a, b); !ok {
		t.Error("midpoint within tolerance rejected")
	}
}

func TestRewriteLayout(t *testing.T) {
	d := &eps.Document{Annotations: []string{red, body[1], body[2], "1.0 setlinewidth"}}
	n, err := eps.Rewrite(d, spec(t, "red", eps.Cross), cfg())
	if err != nil || n != 1 {
		t.Fatalf("Rewrite = %d, %v", n, err)
	}
	x1 := "    0.29289  0.29289 M 1.70711  1.70711 D str"
	x2 := "    0.29289  1.70711 M 1.70711  0.29289 D str"
	want := []string{
		"%  " + red,
		"%  " + body[1],
		"%  " + body[2],
		"",
		"%% Red plus symbols",
		"1.0000   1.0000   1.0000  setrgbcolor",
		"1.0e0 setlinewidth",
		x1, x2,
		"",
		"0.0000   0.0000   0.0000  setrgbcolor",
		"3.0e-1 setlinewidth",
		x1, x2,
		"1.0 setlinewidth",
	}
	if diff := cmp.Diff(want, d.Annotations); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestRewriteCount(t *testing.T) {
	for _, s := range []eps.Shape{eps.Cross, eps.Plus, eps.Circle, eps.None} {
		d := testDoc(t)
		want := count(d.Annotations, red)
		n, err := eps.Rewrite(d, spec(t, "red", s), cfg())
		if err != nil {
			t.Fatal(err)
		}
		if n != want {
			t.Errorf("%v: %d blocks rewritten, want %d", s, n, want)
		}
		if c := count(d.Annotations, red); c != 0 {
			t.Errorf("%v: %d markers left", s, c)
		}
		if c := count(d.Annotations, "%  "+red); c != want {
			t.Errorf("%v: %d commented markers, want %d", s, c, want)
		}
		if c := count(d.Annotations, green); c != 1 {
			t.Errorf("%v: green marker lost", s)
		}
	}
}

func TestRewriteNone(t *testing.T) {
	d := testDoc(t)
	if _, err := eps.Rewrite(d, spec(t, "red", eps.None), cfg()); err != nil {
		t.Fatal(err)
	}
	for _, l := range d.Annotations {
		if strings.HasSuffix(l, " D str") && !strings.HasPrefix(l, "%") &&
			!strings.Contains(l, "5.00000") {
			t.Fatalf("drawing command left: %q", l)
		}
	}
}

func TestSwitch(t *testing.T) {
	passes := func(sw bool) []string {
		d := &eps.Document{Annotations: []string{red, body[1], body[2]}}
		c := cfg()
		c.Switch = sw
		if _, err := eps.Rewrite(d, spec(t, "red", eps.Plus), c); err != nil {
			t.Fatal(err)
		}
		var ps []string
		for _, l := range d.Annotations {
			if !strings.HasPrefix(l, "%") && eps.EndPattern.MatchString(l) {
				ps = append(ps, l)
			}
		}
		return ps
	}
	want := []string{
		"1.0000   1.0000   1.0000  setrgbcolor", "1.0e0 setlinewidth",
		"0.0000   0.0000   0.0000  setrgbcolor", "3.0e-1 setlinewidth",
	}
	if diff := cmp.Diff(want, passes(false)); diff != "" {
		t.Fatalf("default (-want +got):\n%s", diff)
	}
	want[0], want[2] = want[2], want[0]
	if diff := cmp.Diff(want, passes(true)); diff != "" {
		t.Fatalf("switched (-want +got):\n%s", diff)
	}
}

func TestKeep(t *testing.T) {
	d := testDoc(t)
	c := cfg()
	var asked []string
	c.Keep = func(label string, g eps.Glyph) bool {
		ctr := g.Centre()
		asked = append(asked, fmt.Sprintf("%s %g,%g", label, ctr.X, ctr.Y))
		return ctr.X != 11
	}
	if _, err := eps.Rewrite(d, spec(t, "red", eps.Circle), c); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"Red 1,1", "Red 11,11", "Red 21,21"}, asked); diff != "" {
		t.Fatalf("asked (-want +got):\n%s", diff)
	}
	circles := 0
	for _, l := range d.Annotations {
		if strings.HasPrefix(l, "stroke ") {
			circles++
			if strings.Contains(l, "11.00000") {
				t.Fatalf("rejected glyph drawn: %q", l)
			}
		}
	}
	if circles != 4 {
		t.Fatalf("%d circles, want 4", circles)
	}
}

func TestConvertPreservesHeader(t *testing.T) {
	d := testDoc(t)
	specs := []eps.ColorSpec{spec(t, "red", eps.Cross), spec(t, "green", eps.Circle)}
	n, err := eps.Convert(d, specs, cfg())
	if err != nil || n != 3 {
		t.Fatalf("Convert = %d, %v, want 3", n, err)
	}
	var buf bytes.Buffer
	if _, err := d.WriteTo(&buf); err != nil {
		t.Fatal(err)
	}
	want := strings.Join(header, "\n") + "\n"
	if got := buf.String(); !strings.HasPrefix(got, want) {
		t.Fatalf("header changed:\n%s", got[:len(want)])
	}
	if !strings.HasSuffix(buf.String(), "\nshowpage\n") {
		t.Fatal("trailing lines lost")
	}
}

func TestRewriteBadMarker(t *testing.T) {
	d := testDoc(t)
	s := eps.ColorSpec{Colour: eps.Colour{Label: "Empty"}}
	if _, err := eps.Rewrite(d, s, cfg()); err == nil {
		t.Fatal("empty marker accepted")
	}
}

func TestParseShape(t *testing.T) {
	for _, n := range []string{"cross", "plus", "circle", "none", "Circle"} {
		s, err := eps.ParseShape(n)
		if err != nil || !strings.EqualFold(s.String(), n) {
			t.Errorf("%s: got %v, %v", n, s, err)
		}
	}
	if _, err := eps.ParseShape("square"); err == nil {
		t.Error("square accepted")
	}
}

func ExampleOutputName() {
	fmt.Println(eps.OutputName("/data/n6744/mom0.eps"))
	fmt.Println(eps.OutputName("field.v2.ps"))
	fmt.Println(eps.OutputName("plot"))
	// Output:
	// mom0_modified.eps
	// field.v2_modified.ps
	// plot_modified
}

func ExampleRender() {
	h, _, _ := eps.ParseStroke("    2.00000  1.00000 M 0.00000  1.00000 D str")
	v, _, _ := eps.ParseStroke("    1.00000  2.00000 M 1.00000  0.00000 D str")
	g, _ := eps.Pair(h, v)
	c := eps.DefaultRenderConfig()
	for _, l := range eps.Render(eps.Cross, g, &c) {
		fmt.Println(l)
	}
	// Output:
	//     0.29289  0.29289 M 1.70711  1.70711 D str
	//     0.29289  1.70711 M 1.70711  0.29289 D str
}
