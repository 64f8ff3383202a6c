package veq

import "math"

// constants are consulted when an identifier is absent from the
// caller's bindings.
var constants = map[string]float64{
	"pi": math.Pi,
	"e":  math.E,
	"g":  9.80665,
}

// Calculator compiles an expression once and evaluates it any number
// of times against different variable bindings. It owns its execution
// stack for its entire lifetime, so it is not safe to use a Calculator
// concurrently; independent Calculators are fully independent.
type Calculator struct {
	src   string
	prog  []token
	stack []float64
}

// New creates a Calculator for an expression. The expression is not
// compiled until the first call to Compile or Calculate.
func New(src string) *Calculator {
	return &Calculator{
		src:   src,
		stack: make([]float64, 0, 16),
	}
}

// Text returns the expression text the Calculator was created with.
func (c *Calculator) Text() string {
	return c.src
}

// Compile lexes and compiles the expression into its postfix program.
// Compiling is idempotent; once it succeeds, the compiled program is
// reused by every Calculate call until Invalidate. Errors are LexError
// or ParseError and are fatal to this expression.
func (c *Calculator) Compile() error {
	if c.prog != nil {
		return nil
	}
	prog, err := compile(c.src)
	if err != nil {
		return err
	}
	c.prog = prog
	return nil
}

// Invalidate discards the compiled program so that the next call to
// Compile or Calculate recompiles the expression.
func (c *Calculator) Invalidate() {
	c.prog = nil
}

// Vars returns the sorted variable names the expression needs from its
// bindings, i.e. identifiers that are not constants. It compiles the
// expression if that hasn't happened yet.
func (c *Calculator) Vars() ([]string, error) {
	if err := c.Compile(); err != nil {
		return nil, err
	}
	var names []string
	for _, t := range c.prog {
		if t.kind != tokenVariable {
			continue
		}
		if _, ok := constants[t.name]; ok {
			continue
		}
		if !contains(names, t.name) {
			names = append(names, t.name)
		}
	}
	sortstrs(names)
	return names, nil
}

// Calculate evaluates the expression with the given variable bindings
// and returns the result. Identifiers resolve first against bindings,
// then against the constants table. The result is always a finite real
// number; division or modulo by zero, non-real powers, out-of-domain
// function arguments, and non-finite results are DomainErrors, and an
// unresolvable identifier is an UndefinedVariableError. These are
// per-call: the same expression may succeed with other bindings.
func (c *Calculator) Calculate(bindings map[string]float64) (float64, error) {
	if err := c.Compile(); err != nil {
		return 0, err
	}
	c.stack = c.stack[:0]
	for _, t := range c.prog {
		switch t.kind {
		case tokenValue:
			c.push(t.val)
		case tokenVariable:
			v, ok := bindings[t.name]
			if !ok {
				v, ok = constants[t.name]
			}
			if !ok {
				return 0, &UndefinedVariableError{Name: t.name}
			}
			c.push(v)
		case tokenBinary:
			b := c.pop()
			a := c.pop()
			r, err := t.bin(a, b)
			if err != nil {
				return 0, err
			}
			c.push(r)
		case tokenUnary:
			r, err := t.un(c.pop())
			if err != nil {
				return 0, err
			}
			c.push(r)
		default:
			panic("veq: invalid token in program: " + t.String())
		}
	}
	// Compile's shape check guarantees this, but a malformed program
	// must fail hard rather than guess at a result.
	if len(c.stack) != 1 {
		return 0, &ParseError{Msg: "expression does not reduce to a single value"}
	}
	r := c.stack[0]
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0, &DomainError{X: r, Func: "result"}
	}
	return r, nil
}

func (c *Calculator) push(v float64) {
	c.stack = append(c.stack, v)
}

func (c *Calculator) pop() float64 {
	v := c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	return v
}

// Evaluate is a shortcut to compile and evaluate an expression once.
func Evaluate(src string, bindings map[string]float64) (float64, error) {
	return New(src).Calculate(bindings)
}

func contains(names []string, s string) bool {
	for _, n := range names {
		if n == s {
			return true
		}
	}
	return false
}

// sortstrs sorts a small string slice in place.
func sortstrs(names []string) {
	for i := 1; i < len(names); i++ {
		for j := i; j > 0 && names[j] < names[j-1]; j-- {
			names[j], names[j-1] = names[j-1], names[j]
		}
	}
}
