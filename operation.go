package functerm

import (
	"math"
	"strconv"
)

// An Operation is a binary arithmetic operator combining two expressions.
type Operation int8

const (
	Add Operation = iota
	Subtract
	Multiply
	Divide
	Power
)

func (op Operation) String() string {
	switch op {
	case Add:
		return "+"
	case Subtract:
		return "-"
	case Multiply:
		return "*"
	case Divide:
		return "/"
	case Power:
		return "^"
	default:
		panic("functerm: invalid operation " + strconv.Itoa(int(op)))
	}
}

// Apply combines left and right according to the operation. Divide fails
// with ErrDivisionByZero when right is exactly zero. Power follows IEEE-754
// semantics, so ill-defined exponentiations like a negative base with a
// fractional exponent yield NaN rather than an error.
func (op Operation) Apply(left, right float64) (float64, error) {
	switch op {
	case Add:
		return left + right, nil
	case Subtract:
		return left - right, nil
	case Multiply:
		return left * right, nil
	case Divide:
		// Exact comparison; negative zero divides the same as zero.
		if right == 0 {
			return 0, ErrDivisionByZero
		}
		return left / right, nil
	case Power:
		return math.Pow(left, right), nil
	default:
		panic("functerm: invalid operation " + strconv.Itoa(int(op)))
	}
}
