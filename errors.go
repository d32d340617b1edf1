package functerm

import (
	"errors"
	"math/big"
	"strconv"
)

// ErrDivisionByZero is the error from a Divide application whose right
// operand is exactly zero.
var ErrDivisionByZero = errors.New("division by zero")

// A NoSuchVariableError is an error from referencing a variable name that is
// not among a function's declared parameters.
type NoSuchVariableError struct {
	// Variable is the name that is not declared.
	Variable string
}

func (err *NoSuchVariableError) Error() string {
	return "the variable " + strconv.Quote(err.Variable) + " does not exist for this function"
}

// An UnboundVariableError is an error from solving a term that references a
// variable with no value in the binding context.
type UnboundVariableError struct {
	// Variable is the name that has no binding.
	Variable string
}

func (err *UnboundVariableError) Error() string {
	return "no value bound for variable " + strconv.Quote(err.Variable)
}

// A Side identifies which operand of a calculation an error refers to.
type Side int8

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		panic("functerm: invalid side " + strconv.Itoa(int(s)))
	}
}

// An OperandError records that one side of a calculation failed to evaluate.
// Unwrap returns the underlying failure, so errors.Is and errors.As see
// through any depth of enclosing calculations.
type OperandError struct {
	// Side is the operand that failed.
	Side Side
	// Err is the failure.
	Err error
}

func (err *OperandError) Error() string {
	return "solving " + err.Side.String() + " operand: " + err.Err.Error()
}

func (err *OperandError) Unwrap() error {
	return err.Err
}

// A DomainError is an error from applying an operation to an operand outside
// its domain during arbitrary-precision evaluation, where there is no NaN to
// produce instead.
type DomainError struct {
	// X is the offending operand.
	X *big.Float
	// Op is the operation that rejected it.
	Op Operation
}

func (err *DomainError) Error() string {
	return "operand " + err.X.String() + " outside the domain of " + err.Op.String()
}
