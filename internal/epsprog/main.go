// Public domain.

// Package epsprog is the epsconvert command.
package epsprog

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/soniakeys/exit"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
	"golang.org/x/term"

	"github.com/obsflow/epsconvert/eps"
)

const parentImport = "github.com/obsflow/epsconvert"
const versionString = "epsconvert version 1.0 Go source."
const copyrightString = "Public domain."

var log = commonlog.GetLogger("epsconvert")

func Main() {
	defer exit.Handler()

	cl := parseCommandLine()
	commonlog.Configure(cl.verbosity, nil)

	cfg := cl.renderConfig()
	if cl.interactive {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			exit.Log("-interactive needs a terminal on standard input.")
		}
		cfg.Keep = confirm(bufio.NewReader(os.Stdin), os.Stderr)
	}
	specs := cl.specs()
	if len(specs) == 0 {
		log.Warning("no colours selected, files will be copied unchanged")
	}

	failed := 0
	for _, fn := range cl.files {
		out, err := convertFile(fn, specs, &cfg)
		var fe *eps.FormatError
		switch {
		case errors.As(err, &fe):
			// not a kvis file.  report it and go on with the rest.
			log.Error(err.Error())
			failed++
			continue
		case err != nil:
			exit.Log(err)
		}
		fmt.Println("Updated file:", out)
	}
	if failed > 0 {
		exit.Log(fmt.Sprintf("%d of %d files not converted.",
			failed, len(cl.files)))
	}
}

// convertFile converts one file and writes the result to the current
// directory.  It returns the output file name.
func convertFile(fn string, specs []eps.ColorSpec, cfg *eps.RenderConfig) (string, error) {
	d, err := eps.Load(fn)
	if err != nil {
		return "", err
	}
	if _, err = eps.Convert(d, specs, cfg); err != nil {
		return "", fmt.Errorf("%s: %w", fn, err)
	}
	out := eps.OutputName(fn)
	return out, d.WriteFile(out)
}

// confirm returns a Keep function that asks on w and reads the answer
// from r.  An empty answer or one starting with y keeps the glyph.  At end
// of input every remaining glyph is kept.
func confirm(r *bufio.Reader, w io.Writer) func(string, eps.Glyph) bool {
	return func(label string, g eps.Glyph) bool {
		c := g.Centre()
		fmt.Fprintf(w, "Keep %s symbol at (%.5f, %.5f)? [Yn] ", label, c.X, c.Y)
		a, err := r.ReadString('\n')
		if err != nil && a == "" {
			fmt.Fprintln(w)
			return true
		}
		a = strings.ToLower(strings.TrimSpace(a))
		return a == "" || a[0] == 'y'
	}
}

// shapeOpt is a colour's shape flag.  It remembers whether it was given.
type shapeOpt struct {
	shape eps.Shape
	set   bool
}

func (o *shapeOpt) String() string {
	if o == nil || !o.set {
		return ""
	}
	return o.shape.String()
}

func (o *shapeOpt) Set(v string) error {
	if err := o.shape.Set(v); err != nil {
		return err
	}
	o.set = true
	return nil
}

// weightOpt is a line width.  The text is kept as given so it is written
// to the output unchanged.
type weightOpt string

func (w *weightOpt) String() string { return string(*w) }

func (w *weightOpt) Set(v string) error {
	if _, err := strconv.ParseFloat(v, 64); err != nil {
		return fmt.Errorf("invalid line width %q", v)
	}
	*w = weightOpt(v)
	return nil
}

type commandLine struct {
	shapes      []*shapeOpt // indexed like eps.Colours
	weight1     weightOpt
	weight2     weightOpt
	size        float64
	swap        bool
	interactive bool
	verbosity   int
	files       []string
}

func parseCommandLine() *commandLine {
	def := eps.DefaultRenderConfig()
	cl := &commandLine{
		weight1: weightOpt(def.Weight1),
		weight2: weightOpt(def.Weight2),
	}
	dh := flag.Bool("h", false, "")
	dv := flag.Bool("version", false, "")
	for _, c := range eps.Colours {
		o := new(shapeOpt)
		cl.shapes = append(cl.shapes, o)
		flag.Var(o, c.Name, "")
		flag.Var(o, c.Name[:1], "")
	}
	flag.Var(&cl.weight1, "weight1", "")
	flag.Var(&cl.weight2, "weight2", "")
	flag.Float64Var(&cl.size, "size", def.Size, "")
	for _, n := range []string{"s", "switch"} {
		flag.BoolVar(&cl.swap, n, false, "")
	}
	for _, n := range []string{"i", "interactive"} {
		flag.BoolVar(&cl.interactive, n, false, "")
	}
	flag.IntVar(&cl.verbosity, "verbose", 1, "")
	flag.Usage = func() {
		os.Stderr.WriteString(`
Usage: epsconvert [options] <file.eps> ...    convert files
       epsconvert -h                          display help and quick reference
       epsconvert -version                    display version and copyright

Options:
       -r, --red <shape>       -g, --green <shape>     -b, --blue <shape>
       -y, --yellow <shape>    -p, --pink <shape>
       --weight1 <width>       --weight2 <width>       --size <radius>
       -s, --switch            -i, --interactive       --verbose <n>
`)
	}
	flag.Parse()
	switch {
	case *dh:
		printHelp()
		os.Exit(0)
	case *dv:
		fmt.Println(versionString)
		fmt.Println(copyrightString)
		os.Exit(0)
	case flag.NArg() == 0:
		flag.Usage()
		os.Exit(1)
	}
	cl.files = flag.Args()
	return cl
}

func (cl *commandLine) renderConfig() eps.RenderConfig {
	return eps.RenderConfig{
		Size:    cl.size,
		Weight1: string(cl.weight1),
		Weight2: string(cl.weight2),
		Switch:  cl.swap,
	}
}

// specs returns the requested conversions in eps.Colours order.
func (cl *commandLine) specs() (s []eps.ColorSpec) {
	for i, o := range cl.shapes {
		if o.set {
			s = append(s, eps.ColorSpec{Colour: eps.Colours[i], Shape: o.shape})
		}
	}
	return
}

func printHelp() {
	fmt.Println(`
Epsconvert converts the red, green, blue, yellow and pink "+" annotation
symbols in kvis EPS files to another shape.  Each symbol is drawn twice,
in white and then black (or the reverse with -switch), so it shows on any
background.  The original annotations are kept as comments.  Output for
<name>.<ext> is written to <name>_modified.<ext> in the current directory.

Shapes:
   cross    plus rotated by 45 degrees, same bounding box
   plus     original symbol
   circle   circle of radius -size (default 2.5)
   none     symbol removed

Options:
   -weight1   line width of the first pass (default 1.0e0)
   -weight2   line width of the second pass (default 3.0e-1)
   -switch    draw black first, then white
   -interactive
              ask about each symbol before converting it

For full documentation:
   go doc ` + parentImport)
}
