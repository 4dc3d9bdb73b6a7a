// Package runner is the solve harness: it reads puzzle input as lines, times
// each solver part, and prints one line per part.
package runner

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/vyevs/ansi"
)

// ErrNoSolver is returned when a Part has no Solve function.
var ErrNoSolver = errors.New("runner: part has no solver")

// Solver turns the input lines into a single scalar answer.
type Solver func(lines []string) (int, error)

// Part is one named solver, conventionally "A" or "B".
type Part struct {
	Name  string
	Solve Solver
}

// Outcome is the timed result of one Part.
type Outcome struct {
	Name    string
	Value   int
	Elapsed time.Duration
	Err     error
}

// ReadLines reads path and splits it with ParseLines. Inputs ending in .gz
// or .zst are decompressed first.
func ReadLines(path string) ([]string, error) {
	raw, err := ReadInput(path)
	if err != nil {
		return nil, err
	}
	return ParseLines(string(raw)), nil
}

// ReadInput returns the decompressed bytes of path.
func ReadInput(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("runner: read input: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	switch filepath.Ext(path) {
	case ".gz":
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("runner: gzip %s: %w", path, err)
		}
		defer zr.Close()
		r = zr
	case ".zst":
		dec, err := zstd.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("runner: zstd %s: %w", path, err)
		}
		defer dec.Close()
		r = dec
	}

	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("runner: read input %s: %w", path, err)
	}
	return raw, nil
}

// ParseLines drops one trailing newline (and any CR line endings) and splits
// on newlines. Empty input yields no lines.
func ParseLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// Measure runs one part on lines and records how long it took.
func Measure(p Part, lines []string) Outcome {
	o := Outcome{Name: p.Name}
	if p.Solve == nil {
		o.Err = fmt.Errorf("%w: part %s", ErrNoSolver, p.Name)
		return o
	}
	start := time.Now()
	o.Value, o.Err = p.Solve(lines)
	o.Elapsed = time.Since(start)

	return o
}

// Format renders the outcome as `part A: 1,234 (1.2ms)`. With color, the
// answer is green and failures red.
func (o Outcome) Format(color bool) string {
	var b strings.Builder
	b.WriteString("part ")
	b.WriteString(o.Name)
	b.WriteString(": ")
	if color {
		if o.Err != nil {
			b.WriteString(ansi.FGColorName("red"))
		} else {
			b.WriteString(ansi.FGColorName("green"))
		}
	}
	if o.Err != nil {
		b.WriteString(o.Err.Error())
	} else {
		b.WriteString(humanize.Comma(int64(o.Value)))
	}
	if color {
		b.WriteString(ansi.Clear)
	}
	fmt.Fprintf(&b, " (%s)", o.Elapsed.Round(time.Microsecond))

	return b.String()
}

// Run measures every part in order, prints each outcome on its own line and
// returns the outcomes. The first part error is returned after all parts
// have run.
func Run(w io.Writer, lines []string, color bool, parts ...Part) ([]Outcome, error) {
	outcomes := make([]Outcome, 0, len(parts))
	var first error
	for _, p := range parts {
		o := Measure(p, lines)
		outcomes = append(outcomes, o)
		if _, err := fmt.Fprintln(w, o.Format(color)); err != nil {
			return outcomes, fmt.Errorf("runner: write: %w", err)
		}
		if o.Err != nil && first == nil {
			first = fmt.Errorf("part %s: %w", o.Name, o.Err)
		}
	}

	return outcomes, first
}
