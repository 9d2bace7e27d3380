// Public domain.

package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/soniakeys/exit"

	"github.com/obsflow/epsconvert/astro"
)

const parentImport = "github.com/obsflow/epsconvert"
const versionString = "radec version 0.1"
const copyrightString = "Public domain."

func main() {
	defer exit.Handler()

	flag.Usage = func() {
		os.Stderr.WriteString("Usage: radec [options] <ra> <dec>\n")
		flag.PrintDefaults()
		os.Stderr.WriteString(`
For full documentation:
   go doc ` + parentImport + `/radec
`)
	}
	gal := flag.Bool("g", false, "input is galactic longitude and latitude in degrees")
	ref := flag.String("ref", "", `reference position "ra,dec" for offsets`)
	vers := flag.Bool("v", false, "display version and copyright")
	flag.Parse()
	if *vers {
		fmt.Println(versionString)
		fmt.Println(copyrightString)
		os.Exit(0)
	}
	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(1)
	}
	if err := report(os.Stdout, flag.Arg(0), flag.Arg(1), *gal, *ref); err != nil {
		exit.Log(err)
	}
}

// report writes the position a, b in each coordinate form, and the offset
// from ref when ref is not empty.
func report(w io.Writer, a, b string, gal bool, ref string) error {
	var ra, dec float64
	var err error
	if gal {
		var l, b2 float64
		if l, err = strconv.ParseFloat(a, 64); err != nil {
			return err
		}
		if b2, err = strconv.ParseFloat(b, 64); err != nil {
			return err
		}
		ra, dec = astro.GalToEq(l, b2)
	} else if ra, dec, err = astro.ParseRADec(a, b); err != nil {
		return err
	}
	l, lat := astro.EqToGal(ra, dec)
	g := astro.FormatGalactic(l, lat)
	fmt.Fprintf(w, "J2000:     %s  %s\n", astro.FormatRA(ra), astro.FormatDMS(dec))
	fmt.Fprintf(w, "Degrees:   %.6f  %.6f\n", ra, dec)
	fmt.Fprintf(w, "Galactic:  %s  %s\n", g[0], g[1])
	if ref == "" {
		return nil
	}
	r := strings.Split(ref, ",")
	if len(r) != 2 {
		return fmt.Errorf("reference %q: want ra,dec", ref)
	}
	rra, rdec, err := astro.ParseRADec(r[0], r[1])
	if err != nil {
		return err
	}
	o := astro.Offset([2]float64{ra, dec}, [2]float64{rra, rdec})
	fmt.Fprintf(w, "Offset:    %s  %s\n", o[0], o[1])
	return nil
}
