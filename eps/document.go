// Public domain.

// Package eps rewrites the "+" annotation symbols that kvis writes into
// its EPS output.
//
// A kvis EPS file is a PostScript preamble terminated by a "grestore" line,
// followed by annotation blocks.  Each block starts with a setrgbcolor
// directive and holds one line per stroke of each "+" glyph.  The package
// finds the blocks of a requested colour, pairs the strokes into glyphs,
// and replaces them with a cross, plus, circle or nothing, drawn twice in
// white and black so the symbol shows on any background.  The original
// block is kept in the output as PostScript comments.
package eps

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Boundary is the line that ends the PostScript preamble.
const Boundary = "grestore"

// Document is an EPS file split at the Boundary line.  Header includes the
// boundary line and is never modified.  Lines are stored without their
// line terminators.
type Document struct {
	Header      []string
	Annotations []string
}

// FormatError reports a file that has no Boundary line.
type FormatError struct {
	File string
}

func (e *FormatError) Error() string {
	if e.File == "" {
		return "eps: no " + Boundary + " line, not a kvis annotation file"
	}
	return fmt.Sprintf("eps: %s: no %s line, not a kvis annotation file",
		e.File, Boundary)
}

// Load reads the file at path.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	d, err := Parse(f)
	if fe, ok := err.(*FormatError); ok {
		fe.File = path
	}
	return d, err
}

// Parse reads a document from r.
func Parse(r io.Reader) (*Document, error) {
	var lines []string
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 64*1024), 16*1024*1024)
	s.Split(scanLines)
	for s.Scan() {
		lines = append(lines, s.Text())
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	b := -1
	for i, l := range lines {
		if l == Boundary {
			b = i
			break
		}
	}
	if b < 0 {
		return nil, &FormatError{}
	}
	return &Document{
		Header:      lines[:b+1],
		Annotations: append([]string{}, lines[b+1:]...),
	}, nil
}

// scanLines is bufio.ScanLines without the CR stripping.  A "grestore\r"
// line is not a boundary.
func scanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		return i + 1, data[:i], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// WriteTo writes the header followed by the annotations, one line each,
// every line terminated by a newline.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var n int64
	for _, part := range [][]string{d.Header, d.Annotations} {
		for _, l := range part {
			m, err := bw.WriteString(l)
			n += int64(m)
			if err != nil {
				return n, err
			}
			if err = bw.WriteByte('\n'); err != nil {
				return n, err
			}
			n++
		}
	}
	return n, bw.Flush()
}

// WriteFile writes the document to a new file at path, replacing any
// existing file.
func (d *Document) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err = d.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// OutputName derives the name of the converted file from the input path:
// the base name with "_modified" inserted before the last extension.
// The result has no directory part; output goes to the current directory.
func OutputName(path string) string {
	base := filepath.Base(path)
	if i := strings.LastIndexByte(base, '.'); i >= 0 {
		return base[:i] + "_modified" + base[i:]
	}
	return base + "_modified"
}
