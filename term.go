package functerm

import (
	"strconv"
	"strings"
)

// A Term is a node in a function's expression tree: a closed Value, a
// reference to one of the function's parameters, or a calculation combining
// two terms. Variable terms are created through Function.Variable, which
// checks the name against the function's declared parameters.
type Term struct {
	kind termKind

	name string
	val  *Value

	left, right *Term
	op          Operation
}

type termKind int8

const (
	termValue termKind = iota
	termVariable
	termCalc
)

// ValueTerm wraps a closed expression as a term.
func ValueTerm(v *Value) *Term {
	return &Term{kind: termValue, val: v}
}

// Constant is a shortcut for ValueTerm(Literal(x)).
func Constant(x float64) *Term {
	return ValueTerm(Literal(x))
}

// Calculation returns the term applying op to left and right.
func Calculation(left, right *Term, op Operation) *Term {
	return &Term{kind: termCalc, left: left, right: right, op: op}
}

// Solve evaluates the term with variables resolved from bindings. Resolution
// happens only here, at evaluation time; a variable with no binding is an
// UnboundVariableError. Evaluation is depth-first and strictly
// left-before-right, and a failure on either side of a calculation is
// wrapped in an OperandError naming that side.
func (t *Term) Solve(bindings map[string]float64) (float64, error) {
	switch t.kind {
	case termValue:
		return t.val.Get()
	case termVariable:
		x, ok := bindings[t.name]
		if !ok {
			return 0, &UnboundVariableError{Variable: t.name}
		}
		return x, nil
	case termCalc:
		l, err := t.left.Solve(bindings)
		if err != nil {
			return 0, &OperandError{Side: Left, Err: err}
		}
		r, err := t.right.Solve(bindings)
		if err != nil {
			return 0, &OperandError{Side: Right, Err: err}
		}
		return t.op.Apply(l, r)
	default:
		panic("functerm: invalid term kind " + strconv.Itoa(int(t.kind)))
	}
}

func (t *Term) String() string {
	var b strings.Builder
	t.fmt(&b)
	return b.String()
}

func (t *Term) fmt(b *strings.Builder) {
	switch t.kind {
	case termValue:
		t.val.fmt(b)
	case termVariable:
		b.WriteString(t.name)
	case termCalc:
		b.WriteByte('(')
		t.left.fmt(b)
		b.WriteByte(' ')
		b.WriteString(t.op.String())
		b.WriteByte(' ')
		t.right.fmt(b)
		b.WriteByte(')')
	default:
		panic("functerm: invalid term kind " + strconv.Itoa(int(t.kind)))
	}
}
