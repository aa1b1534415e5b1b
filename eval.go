package calibrate

import (
	"fmt"
	"strings"
)

// Evaluate folds operands left to right with the operators of seq, ignoring
// usual precedence. ok is false if any intermediate value overflows a
// uint64. It panics if len(seq) != len(operands)-1.
func Evaluate(operands []uint64, seq Sequence) (v uint64, ok bool) {
	if len(seq) != len(operands)-1 {
		panic(fmt.Sprintf("%d operators for %d operands", len(seq), len(operands)))
	}
	acc := operands[0]
	for i, op := range seq {
		if acc, ok = op.Apply(acc, operands[i+1]); !ok {
			return 0, false
		}
	}
	return acc, true
}

// Calculation is an equation together with one operator sequence and the
// value that sequence produces.
type Calculation struct {
	Equation  Equation
	Operators Sequence
	Value     uint64
}

// Valid reports whether the calculation reaches the equation's target.
func (c Calculation) Valid() bool {
	return c.Value == c.Equation.Target
}

// String renders the calculation as e.g. "81 + 40 * 27 = 3267 = 3267".
func (c Calculation) String() string {
	var sb strings.Builder
	for i, o := range c.Equation.Operands {
		if i > 0 {
			fmt.Fprintf(&sb, " %v ", c.Operators[i-1])
		}
		fmt.Fprint(&sb, o)
	}
	eq := "="
	if !c.Valid() {
		eq = "≠"
	}
	fmt.Fprintf(&sb, " = %d %s %d", c.Value, eq, c.Equation.Target)
	return sb.String()
}
