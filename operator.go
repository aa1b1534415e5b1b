package calibrate

import (
	"errors"
	"fmt"
	"strings"
)

// Operator is a binary operator that can be placed between two operands of
// an equation.
type Operator uint8

const (
	Add Operator = iota
	Multiply
	Concat
)

// Apply returns a op b. ok is false if the result overflows a uint64.
func (op Operator) Apply(a, b uint64) (v uint64, ok bool) {
	switch op {
	case Add:
		return checkedAdd(a, b)
	case Multiply:
		return checkedMul(a, b)
	case Concat:
		return Concatenate(a, b)
	}
	panic(fmt.Sprintf("unknown operator %d", op))
}

func (op Operator) String() string {
	switch op {
	case Add:
		return "+"
	case Multiply:
		return "*"
	case Concat:
		return "||"
	}
	return fmt.Sprintf("Operator(%d)", uint8(op))
}

// Alphabet is the ordered set of operators a search may use.
type Alphabet []Operator

var (
	// Part1 is the operator set of the first half of the puzzle.
	Part1 = Alphabet{Add, Multiply}
	// Part2 adds concatenation.
	Part2 = Alphabet{Add, Multiply, Concat}
)

// ErrUnknownPart is returned by AlphabetForPart for parts other than 1 and 2.
var ErrUnknownPart = errors.New("unknown puzzle part")

// AlphabetForPart returns the operator set used by the given puzzle part.
func AlphabetForPart(part int) (Alphabet, error) {
	switch part {
	case 1:
		return Part1, nil
	case 2:
		return Part2, nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownPart, part)
}

func (a Alphabet) String() string {
	ops := make([]string, len(a))
	for i, op := range a {
		ops[i] = op.String()
	}
	return "{" + strings.Join(ops, " ") + "}"
}
