// Public domain.

// Package miriad runs the MIRIAD tasks that make moment and binned maps
// of a data cube.
package miriad

import (
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/tliron/commonlog"

	"github.com/obsflow/epsconvert/astro"
)

var log = commonlog.GetLogger("miriad")

// Runner runs one MIRIAD task and returns its combined output.
type Runner interface {
	Run(task string, args ...string) (string, error)
}

// Exec runs tasks as external programs found on PATH.
type Exec struct{}

// Run runs task.  A task that exits with an error status is not an error
// here; MIRIAD reports its problems in the output, which is returned.
func (Exec) Run(task string, args ...string) (string, error) {
	out, err := exec.Command(task, args...).CombinedOutput()
	var ee *exec.ExitError
	if errors.As(err, &ee) {
		log.Warningf("%s exited with status %d", task, ee.ExitCode())
		err = nil
	}
	return string(out), err
}

// Options selects the tasks to run for each input.
type Options struct {
	Moments []string // moment orders, eg. "0", "-1"
	Binning []string // channel binning orders
	Smooth  string   // FWHM for gaussian smoothing of moment maps, "" for none
	Axis    string   // moment axis, "" for the task default

	Policy astro.Policy  // what to do about existing outputs
	Prompt *astro.Prompt // used with astro.Ask
}

// Pipeline processes input cubes.
type Pipeline struct {
	opt Options
	run Runner
}

// New returns a pipeline running tasks with r.
func New(opt Options, r Runner) *Pipeline {
	return &Pipeline{opt, r}
}

// Process converts file from FITS if needed, makes its moment maps, then
// for each binning order bins it and makes the moment maps of the binned
// cube.  Outputs go to the current directory.  The returned transcripts,
// one per cube, hold task output and progress notes.
func (p *Pipeline) Process(file string) (transcripts []string, err error) {
	c, err := p.open(file)
	if err != nil {
		return nil, err
	}
	if err = p.moments(c); err != nil {
		return nil, err
	}
	transcripts = append(transcripts, c.String())
	for _, b := range p.opt.Binning {
		binned, err := p.bin(c, b)
		if err != nil {
			return transcripts, err
		}
		bc := newCube(binned)
		if err = p.moments(bc); err != nil {
			return transcripts, err
		}
		transcripts = append(transcripts, bc.String())
	}
	return transcripts, nil
}

// cube is a MIRIAD data set and the transcript of tasks run on it.
type cube struct {
	name string
	out  strings.Builder
}

func newCube(name string) *cube {
	c := &cube{name: name}
	fmt.Fprintf(&c.out, "\n*** moment: Output for %s\n", name)
	return c
}

func (c *cube) String() string { return c.out.String() + "\n\n" }

var rxFITS = regexp.MustCompile(`(.*)\.fits`)

// open starts a cube for file, converting FITS input to a MIRIAD data set
// named for the file without its .fits extension.
func (p *Pipeline) open(file string) (*cube, error) {
	c := newCube(file)
	if !astro.IsFITS(file) {
		return c, nil
	}
	m := rxFITS.FindStringSubmatch(filepath.Base(file))
	if m == nil {
		return c, nil
	}
	c.name = m[1]
	return c, p.task(c, c.name, false, "fits", "in="+file, "out="+c.name, "op=xyin")
}

// task runs a task writing out, subject to the overwrite policy.  With
// note set the output name is added to the transcript before the task's
// own output.
func (p *Pipeline) task(c *cube, out string, note bool, task string, args ...string) error {
	_, err := p.taskOK(c, out, note, task, args...)
	return err
}

// taskOK is task, also reporting whether the task ran.
func (p *Pipeline) taskOK(c *cube, out string, note bool, task string, args ...string) (ok bool, err error) {
	ok, err = astro.Overwrite(out, p.opt.Policy, p.opt.Prompt)
	switch {
	case err != nil:
		return false, err
	case !ok:
		if p.opt.Policy == astro.Ignore {
			fmt.Fprintf(&c.out, "\n*** Ignoring %s\n", out)
		}
		return false, nil
	}
	if note {
		fmt.Fprintf(&c.out, "\n*** %s", out)
	}
	log.Debugf("%s %s", task, strings.Join(args, " "))
	o, err := p.run.Run(task, args...)
	c.out.WriteString(o)
	return err == nil, err
}

func (p *Pipeline) moments(c *cube) error {
	for _, order := range p.opt.Moments {
		mom := filepath.Base(c.name) + ".mom" + order
		args := []string{"in=" + c.name, "out=" + mom, "mom=" + order}
		if p.opt.Axis != "" {
			args = append(args, "axis="+p.opt.Axis)
		}
		ok, err := p.taskOK(c, mom, true, "moment", args...)
		if err != nil {
			return err
		}
		if !ok || p.opt.Smooth == "" {
			continue
		}
		smooth := mom + ".smooth"
		if err = p.task(c, smooth, true, "smooth", "in="+mom, "out="+smooth,
			"type=gaussian,gaussian", "fwhm="+p.opt.Smooth); err != nil {
			return err
		}
	}
	return nil
}

// bin bins the cube's channels by order and returns the name of the
// binned cube.  The name is returned even if the task was skipped.
func (p *Pipeline) bin(c *cube, order string) (string, error) {
	binned := filepath.Base(c.name) + ".bin" + order
	err := p.task(c, binned, true, "imbin", "in="+c.name, "out="+binned,
		"bin=1,1,1,1,"+order+","+order)
	return binned, err
}
