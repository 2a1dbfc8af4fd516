package citation

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/matsen/citeweight/internal/metadata"
)

// ForEach streams the edge list at path, calling fn with the 1-based line
// number of every non-blank line. It stops at the first error from fn or
// from parsing and returns the number of edges visited. The file is closed
// on every return path, so repeated scans do not leak descriptors.
func ForEach(path string, fn func(lineNum int, e Edge) error) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("opening edge list: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	buf := make([]byte, metadata.MaxLineCapacity)
	scanner.Buffer(buf, metadata.MaxLineCapacity)

	lineNum, visited := 0, 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		e, err := ParseLine(line)
		if err != nil {
			return visited, withLocation(err, path, lineNum)
		}
		visited++
		if err := fn(lineNum, e); err != nil {
			return visited, err
		}
	}
	if err := scanner.Err(); err != nil {
		return visited, fmt.Errorf("reading edge list: %w", err)
	}
	return visited, nil
}

// ReadWeighted reads every edge of a weighted edge list.
func ReadWeighted(path string) ([]Edge, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening weighted edge list: %w", err)
	}
	defer f.Close()

	var edges []Edge
	scanner := bufio.NewScanner(f)
	buf := make([]byte, metadata.MaxLineCapacity)
	scanner.Buffer(buf, metadata.MaxLineCapacity)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		e, err := ParseWeightedLine(line)
		if err != nil {
			return nil, withLocation(err, path, lineNum)
		}
		edges = append(edges, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading weighted edge list: %w", err)
	}
	return edges, nil
}

// DegreeCounts tallies the raw in-degree (times cited) and out-degree
// (references made) of every paper in an edge list.
func DegreeCounts(path string) (in, out map[string]int, err error) {
	in = make(map[string]int)
	out = make(map[string]int)
	_, err = ForEach(path, func(_ int, e Edge) error {
		out[e.Citing]++
		in[e.Cited]++
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return in, out, nil
}

func withLocation(err error, path string, line int) error {
	var pe *metadata.ParseError
	if errors.As(err, &pe) {
		pe.Path = path
		pe.Line = line
	}
	return err
}

// Writer writes weighted edges to a file.
type Writer struct {
	f *os.File
	w *bufio.Writer
	n int
}

// Create opens path for writing, truncating any existing content.
func Create(path string) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating weighted edge list: %w", err)
	}
	return &Writer{f: f, w: bufio.NewWriter(f)}, nil
}

// Write appends one weighted edge.
func (w *Writer) Write(e Edge) error {
	if _, err := w.w.WriteString(FormatWeighted(e)); err != nil {
		return fmt.Errorf("writing edge %s%s%s: %w", e.Citing, Separator, e.Cited, err)
	}
	w.n++
	return nil
}

// Count returns the number of edges written so far.
func (w *Writer) Count() int {
	return w.n
}

// Close flushes buffered edges and closes the file. It is safe to call
// more than once.
func (w *Writer) Close() error {
	if w.f == nil {
		return nil
	}
	flushErr := w.w.Flush()
	closeErr := w.f.Close()
	w.f = nil
	if flushErr != nil {
		return fmt.Errorf("flushing weighted edge list: %w", flushErr)
	}
	if closeErr != nil {
		return fmt.Errorf("closing weighted edge list: %w", closeErr)
	}
	return nil
}
