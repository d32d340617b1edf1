package functerm

import (
	"math/big"
	"strconv"

	"github.com/zephyrtronium/bigfloat"
)

// A BigContext evaluates expression trees in arbitrary precision. It is not
// safe to use a BigContext concurrently.
//
// big.Float has no NaN, so the exponentiations and divisions that the
// float64 path leaves to IEEE-754 fail here with a DomainError instead.
type BigContext struct {
	prec  uint
	names map[string]*big.Float
}

// NewBigContext creates an evaluation context computing to prec bits.
func NewBigContext(prec uint) *BigContext {
	return &BigContext{prec: prec, names: make(map[string]*big.Float)}
}

// Prec returns the precision to which values are computed in the context.
func (ctx *BigContext) Prec() uint {
	return ctx.prec
}

// Set sets the value of a variable, copied at the context precision. Returns
// ctx for chaining.
func (ctx *BigContext) Set(name string, val *big.Float) *BigContext {
	ctx.names[name] = new(big.Float).SetPrec(ctx.prec).Set(val)
	return ctx
}

// Lookup returns a copy of the value of a variable. If there is no such
// variable in the context, then the result is nil.
func (ctx *BigContext) Lookup(name string) *big.Float {
	v := ctx.names[name]
	if v == nil {
		return nil
	}
	return new(big.Float).Copy(v)
}

// Clone creates a copy of the context with the same precision and bindings.
func (ctx *BigContext) Clone() *BigContext {
	n := &BigContext{prec: ctx.prec, names: make(map[string]*big.Float, len(ctx.names))}
	for name, val := range ctx.names {
		n.names[name] = val
	}
	return n
}

// Get evaluates a closed expression at the context precision.
func (ctx *BigContext) Get(v *Value) (*big.Float, error) {
	switch v.kind {
	case valueLiteral:
		return big.NewFloat(v.lit).SetPrec(ctx.prec), nil
	case valueCalc:
		l, err := ctx.Get(v.left)
		if err != nil {
			return nil, &OperandError{Side: Left, Err: err}
		}
		r, err := ctx.Get(v.right)
		if err != nil {
			return nil, &OperandError{Side: Right, Err: err}
		}
		return ctx.apply(v.op, l, r)
	default:
		panic("functerm: invalid value kind " + strconv.Itoa(int(v.kind)))
	}
}

// Solve evaluates a term at the context precision, resolving variables from
// the context's bindings. A variable with no binding is an
// UnboundVariableError, exactly as in Term.Solve.
func (ctx *BigContext) Solve(t *Term) (*big.Float, error) {
	switch t.kind {
	case termValue:
		return ctx.Get(t.val)
	case termVariable:
		v := ctx.names[t.name]
		if v == nil {
			return nil, &UnboundVariableError{Variable: t.name}
		}
		return new(big.Float).Copy(v), nil
	case termCalc:
		l, err := ctx.Solve(t.left)
		if err != nil {
			return nil, &OperandError{Side: Left, Err: err}
		}
		r, err := ctx.Solve(t.right)
		if err != nil {
			return nil, &OperandError{Side: Right, Err: err}
		}
		return ctx.apply(t.op, l, r)
	default:
		panic("functerm: invalid term kind " + strconv.Itoa(int(t.kind)))
	}
}

// apply performs op on l and r, storing the result in l.
func (ctx *BigContext) apply(op Operation, l, r *big.Float) (*big.Float, error) {
	switch op {
	case Add:
		return l.Add(l, r), nil
	case Subtract:
		return l.Sub(l, r), nil
	case Multiply:
		return l.Mul(l, r), nil
	case Divide:
		// Quo panics on 0/0 and inf/inf.
		if l.Sign() == 0 && r.Sign() == 0 || l.IsInf() && r.IsInf() {
			return nil, &DomainError{X: r, Op: op}
		}
		if r.Sign() == 0 {
			return nil, ErrDivisionByZero
		}
		return l.Quo(l, r), nil
	case Power:
		// TODO: allow a negative base with an integer exponent
		if l.Signbit() {
			return nil, &DomainError{X: l, Op: op}
		}
		return bigfloat.Pow(l, l, r), nil
	default:
		panic("functerm: invalid operation " + strconv.Itoa(int(op)))
	}
}

// SolveArgsBig evaluates f in arbitrary precision with values bound to
// parameters positionally, with the same truncation semantics as SolveArgs.
// Bindings already set on ctx remain visible; positional values shadow them.
// ctx itself is not modified.
func (f *Function) SolveArgsBig(ctx *BigContext, values ...*big.Float) (*big.Float, error) {
	ctx = ctx.Clone()
	for i, p := range f.params {
		if i >= len(values) {
			break
		}
		ctx.Set(p, values[i])
	}
	return ctx.Solve(f.Body)
}
