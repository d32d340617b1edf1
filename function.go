package functerm

import "strings"

// A Function is a mathematical function of named parameters with a single
// term as its body.
//
// Construction is two-phase: NewFunction declares the parameters and
// installs a literal-zero placeholder body, and the caller then assembles
// the real body, using Variable to reference the declared parameters, and
// assigns it to Body once before the first solve. After that the function is
// treated as immutable and may be solved any number of times.
type Function struct {
	// Body is the function's expression tree.
	Body *Term

	params []string
}

// NewFunction declares a function of the given parameters. The parameter
// names must be distinct; their order defines positional binding for
// SolveArgs.
func NewFunction(params ...string) *Function {
	f := &Function{params: make([]string, len(params))}
	copy(f.params, params)
	f.Body = Constant(0)
	return f
}

// Params returns a copy of the declared parameter names in order.
func (f *Function) Params() []string {
	p := make([]string, len(f.params))
	copy(p, f.params)
	return p
}

// Variable returns a term referencing the named parameter. Referencing a
// name that is not declared for f is a NoSuchVariableError.
func (f *Function) Variable(name string) (*Term, error) {
	for _, p := range f.params {
		if p == name {
			return &Term{kind: termVariable, name: name}, nil
		}
	}
	return nil, &NoSuchVariableError{Variable: name}
}

// SolveFor evaluates f's body with variables resolved from bindings. Every
// parameter the body actually references must have a binding; there is no
// arity check beyond that.
func (f *Function) SolveFor(bindings map[string]float64) (float64, error) {
	return f.Body.Solve(bindings)
}

// SolveArgs evaluates f with values bound to parameters positionally, in
// declared order. The pairing truncates to the shorter of the two sequences:
// extra values, or trailing parameters with no value, are dropped. Solving
// then fails with an UnboundVariableError only if the body references a
// parameter left unbound.
func (f *Function) SolveArgs(values ...float64) (float64, error) {
	bindings := make(map[string]float64, len(f.params))
	for i, p := range f.params {
		if i >= len(values) {
			break
		}
		bindings[p] = values[i]
	}
	return f.SolveFor(bindings)
}

func (f *Function) String() string {
	var b strings.Builder
	b.WriteString("f(")
	for i, p := range f.params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p)
	}
	b.WriteString(") = ")
	f.Body.fmt(&b)
	return b.String()
}
