package veq

import (
	"strconv"
	"strings"
)

// token is one instruction of a compiled postfix program. The kind
// selects which fields are meaningful: val for tokenValue, name for
// tokenVariable, and name/prec plus one of bin or un for operators and
// functions. Grouping never appears here; the compiler resolves
// parentheses structurally.
type token struct {
	kind tokenKind

	prec int8
	val  float64
	name string

	bin func(a, b float64) (float64, error)
	un  func(a float64) (float64, error)
}

type tokenKind int8

const (
	tokenNone tokenKind = iota
	// tokenValue pushes a literal.
	tokenValue
	// tokenVariable pushes the binding or constant named by name.
	tokenVariable
	// tokenBinary pops two operands and pushes bin(a, b).
	tokenBinary
	// tokenUnary pops one operand and pushes un(a).
	tokenUnary
)

// Precedence classes. Functions bind tighter than any infix operator
// because their argument is delimited by parentheses.
const (
	precAdditive       int8 = 1
	precMultiplicative int8 = 2
	precPower          int8 = 3
	precFunction       int8 = 4
)

func (t token) String() string {
	switch t.kind {
	case tokenValue:
		return strconv.FormatFloat(t.val, 'g', -1, 64)
	case tokenVariable, tokenBinary, tokenUnary:
		return t.name
	default:
		return "<none>"
	}
}

// progString formats a compiled program for tests and diagnostics.
func progString(prog []token) string {
	var b strings.Builder
	for i, t := range prog {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(t.String())
	}
	return b.String()
}
