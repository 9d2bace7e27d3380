// Public domain.

package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/soniakeys/exit"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
	"golang.org/x/term"

	"github.com/obsflow/epsconvert/astro"
	"github.com/obsflow/epsconvert/internal/miriad"
)

const parentImport = "github.com/obsflow/epsconvert"
const versionString = "moment version 0.2 Go source."
const copyrightString = "Public domain."

// maxWorkers bounds the files processed at once.
const maxWorkers = 4

func main() {
	defer exit.Handler()

	opt, quiet, verbosity := parseCommandLine()
	commonlog.Configure(verbosity, nil)
	workers := maxWorkers
	if opt.Policy == astro.Ask {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			exit.Log("Existing outputs need -f or -i when standard input is not a terminal.")
		}
		opt.Prompt = astro.NewPrompt(os.Stdin, os.Stdout)
		workers = 1 // prompts must not interleave
	}
	p := miriad.New(opt, miriad.Exec{})

	for r := range process(p, flag.Args(), workers) {
		if r.err != nil {
			exit.Log(fmt.Sprintf("%s: %v", r.file, r.err))
		}
		if !quiet {
			for _, t := range r.transcripts {
				fmt.Print(t)
			}
		}
	}
}

type result struct {
	file        string
	transcripts []string
	err         error
}

// process runs p on files with up to n workers and delivers results in
// the order of files.  Each file gets a return channel, a ticket queued
// for the reader before the file is handed to a worker.
func process(p *miriad.Pipeline, files []string, n int) <-chan result {
	type job struct {
		file string
		rch  chan result
	}
	jobCh := make(chan job)
	prCh := make(chan chan result, n*2)
	out := make(chan result)

	// dispatcher
	go func() {
		for _, f := range files {
			rch := make(chan result, 1)
			jobCh <- job{f, rch}
			prCh <- rch
		}
		close(jobCh)
		close(prCh)
	}()

	for i := 0; i < n; i++ {
		go func() {
			for j := range jobCh {
				tr, err := p.Process(j.file)
				j.rch <- result{j.file, tr, err}
			}
		}()
	}

	// reorder
	go func() {
		for rch := range prCh {
			out <- <-rch
		}
		close(out)
	}()
	return out
}

func parseCommandLine() (opt miriad.Options, quiet bool, verbosity int) {
	flag.Usage = func() {
		os.Stderr.WriteString(
			"Usage: moment [options] <file> ...\n")
		flag.PrintDefaults()
		os.Stderr.WriteString(`
For full documentation:
   go doc ` + parentImport + `/moment
`)
	}
	moments := flag.String("m", "", "moments to make, comma separated")
	binning := flag.String("b", "", "binning orders, comma separated")
	flag.StringVar(&opt.Smooth, "s", "", "smooth moment maps with this gaussian FWHM")
	flag.StringVar(&opt.Axis, "a", "", "axis for the moment")
	force := flag.Bool("f", false, "overwrite existing outputs")
	ignore := flag.Bool("i", false, "skip tasks whose outputs exist")
	flag.BoolVar(&quiet, "q", false, "do not print MIRIAD output")
	flag.IntVar(&verbosity, "verbose", 0, "log verbosity")
	vers := flag.Bool("v", false, "display version and copyright")
	flag.Parse()
	if *vers {
		fmt.Println(versionString)
		fmt.Println(copyrightString)
		os.Exit(0)
	}
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(1)
	}
	switch {
	case *force && *ignore:
		exit.Log("Cannot have force and ignore options enabled simultaneously!")
	case *force:
		opt.Policy = astro.Force
	case *ignore:
		opt.Policy = astro.Ignore
	}
	var err error
	if opt.Moments, err = intList(*moments); err != nil {
		exit.Log("Bad moment order: " + err.Error())
	}
	if opt.Binning, err = intList(*binning); err != nil {
		exit.Log("Bad binning order: " + err.Error())
	}
	return
}

// intList splits a comma separated list of integers.  The strings are
// returned as given.
func intList(s string) ([]string, error) {
	if s == "" {
		return nil, nil
	}
	l := strings.Split(s, ",")
	for _, e := range l {
		if _, err := strconv.Atoi(e); err != nil {
			return nil, err
		}
	}
	return l, nil
}
