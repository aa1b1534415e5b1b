package calibrate

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Equation is one calibration line: a target value and the operands that
// must be combined, left to right, to reach it.
type Equation struct {
	Target   uint64
	Operands []uint64
}

func (e Equation) String() string {
	var sb strings.Builder
	sb.WriteString(strconv.FormatUint(e.Target, 10))
	sb.WriteByte(':')
	for _, o := range e.Operands {
		sb.WriteByte(' ')
		sb.WriteString(strconv.FormatUint(o, 10))
	}
	return sb.String()
}

// ErrMalformedLine is wrapped by every *LineError.
var ErrMalformedLine = errors.New("malformed equation")

// LineError describes an input line that could not be parsed.
type LineError struct {
	Line int // 1-based; 0 when parsing a lone line
	Text string
	Err  error
}

func (e *LineError) Error() string {
	if e.Text == "" {
		return fmt.Sprintf("line %d: %v: %v", e.Line, ErrMalformedLine, e.Err)
	}
	if e.Line == 0 {
		return fmt.Sprintf("%v %q: %v", ErrMalformedLine, e.Text, e.Err)
	}
	return fmt.Sprintf("line %d: %v %q: %v", e.Line, ErrMalformedLine, e.Text, e.Err)
}

func (e *LineError) Unwrap() []error { return []error{ErrMalformedLine, e.Err} }

var (
	errMissingColon = errors.New("missing ':'")
	errNoOperands   = errors.New("no operands")
)

// ParseLine parses a single "target: o1 o2 ... on" line.
func ParseLine(line string) (Equation, error) {
	fail := func(err error) (Equation, error) {
		return Equation{}, &LineError{Text: line, Err: err}
	}
	lhs, rhs, ok := strings.Cut(line, ":")
	if !ok {
		return fail(errMissingColon)
	}
	target, err := strconv.ParseUint(strings.TrimSpace(lhs), 10, 64)
	if err != nil {
		return fail(err)
	}
	fields := strings.Fields(rhs)
	if len(fields) == 0 {
		return fail(errNoOperands)
	}
	eq := Equation{
		Target:   target,
		Operands: make([]uint64, len(fields)),
	}
	for i, f := range fields {
		if eq.Operands[i], err = strconv.ParseUint(f, 10, 64); err != nil {
			return fail(err)
		}
	}
	return eq, nil
}

// maxLineSize is the longest input line Parse accepts.
const maxLineSize = 1 << 20

// Parse reads one equation per line from r. Blank lines are skipped. The
// first malformed line aborts the parse.
func Parse(r io.Reader) ([]Equation, error) {
	var eqs []Equation
	s := bufio.NewScanner(r)
	s.Buffer(nil, maxLineSize)
	y := 0
	for s.Scan() {
		y++
		line := strings.TrimSpace(s.Text())
		if line == "" {
			continue
		}
		eq, err := ParseLine(line)
		if err != nil {
			var le *LineError
			if errors.As(err, &le) {
				le.Line = y
			}
			return nil, err
		}
		eqs = append(eqs, eq)
	}
	if err := s.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, &LineError{Line: y + 1, Err: err}
		}
		return nil, fmt.Errorf("reading equations: %w", err)
	}
	return eqs, nil
}

// ParseString is Parse over an in-memory input.
func ParseString(s string) ([]Equation, error) {
	return Parse(strings.NewReader(s))
}

// ErrInputNotFound is returned by ParseFile when the input cannot be read.
var ErrInputNotFound = errors.New("input not found")

// ParseFile parses the equations in the named file.
func ParseFile(name string) ([]Equation, error) {
	b, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInputNotFound, err)
	}
	eqs, err := Parse(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return eqs, nil
}
