package functerm

import (
	"strconv"
	"strings"
)

// A Value is a closed numeric expression: a literal, or a calculation over
// other closed expressions. A Value contains no variable references, so it
// evaluates without any binding context.
type Value struct {
	kind valueKind

	lit float64

	left, right *Value
	op          Operation
}

type valueKind int8

const (
	valueLiteral valueKind = iota
	valueCalc
)

// Literal returns the closed expression holding a numeric constant.
func Literal(x float64) *Value {
	return &Value{kind: valueLiteral, lit: x}
}

// Combine returns the closed expression applying op to left and right.
func Combine(left, right *Value, op Operation) *Value {
	return &Value{kind: valueCalc, left: left, right: right, op: op}
}

// Get evaluates the expression. The left child of a calculation is evaluated
// before the right, and a failure on either side is wrapped in an
// OperandError naming that side.
func (v *Value) Get() (float64, error) {
	switch v.kind {
	case valueLiteral:
		return v.lit, nil
	case valueCalc:
		l, err := v.left.Get()
		if err != nil {
			return 0, &OperandError{Side: Left, Err: err}
		}
		r, err := v.right.Get()
		if err != nil {
			return 0, &OperandError{Side: Right, Err: err}
		}
		return v.op.Apply(l, r)
	default:
		panic("functerm: invalid value kind " + strconv.Itoa(int(v.kind)))
	}
}

func (v *Value) String() string {
	var b strings.Builder
	v.fmt(&b)
	return b.String()
}

func (v *Value) fmt(b *strings.Builder) {
	switch v.kind {
	case valueLiteral:
		b.WriteString(strconv.FormatFloat(v.lit, 'g', -1, 64))
	case valueCalc:
		b.WriteByte('(')
		v.left.fmt(b)
		b.WriteByte(' ')
		b.WriteString(v.op.String())
		b.WriteByte(' ')
		v.right.fmt(b)
		b.WriteByte(')')
	default:
		panic("functerm: invalid value kind " + strconv.Itoa(int(v.kind)))
	}
}
