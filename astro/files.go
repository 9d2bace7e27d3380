// Public domain.

package astro

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// IsFITS reports whether path names a regular file with ".fits" in its
// name.
func IsFITS(path string) bool {
	if !strings.Contains(path, ".fits") {
		return false
	}
	fi, err := os.Stat(path)
	return err == nil && fi.Mode().IsRegular()
}

// Policy says what to do about an output that already exists.
type Policy int

const (
	Ask    Policy = iota // prompt the user
	Force                // delete the old output without asking
	Ignore               // keep the old output and skip the task
)

// Prompt asks yes/no questions.
type Prompt struct {
	In  *bufio.Reader
	Out io.Writer
}

// NewPrompt returns a Prompt on r and w.
func NewPrompt(r io.Reader, w io.Writer) *Prompt {
	return &Prompt{bufio.NewReader(r), w}
}

// Yes asks question and reports whether the answer is yes.  An empty
// answer is yes.
func (p *Prompt) Yes(question string) (bool, error) {
	fmt.Fprintf(p.Out, "%s [Yn]\n", question)
	a, err := p.In.ReadString('\n')
	if err != nil && (err != io.EOF || a == "") {
		return false, err
	}
	a = strings.ToLower(strings.TrimSpace(a))
	return a == "" || a == "y", nil
}

// Overwrite clears the way for writing path.  It reports whether the
// caller should go ahead; if so, any old file or directory at path has
// been removed.  The prompt is used only by the Ask policy.
func Overwrite(path string, pol Policy, p *Prompt) (bool, error) {
	if pol == Force {
		return true, os.RemoveAll(path)
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return true, nil
	}
	if pol == Ignore {
		return false, nil
	}
	ok, err := p.Yes(fmt.Sprintf("\n*** This file (%s) already exists! Overwrite?", path))
	if err != nil || !ok {
		fmt.Fprintln(p.Out, "*** Keeping old file.")
		return false, err
	}
	if err = os.RemoveAll(path); err != nil {
		return false, err
	}
	fmt.Fprintln(p.Out, "*** Old file deleted.")
	return true, nil
}
