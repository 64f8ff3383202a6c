package veq

import "strconv"

// LexError indicates an expression fragment that cannot be classified
// as any known lexeme, number, or identifier. It implements InputError.
type LexError struct {
	// Text is the fragment the lexer was scanning when the invalid rune
	// was encountered, plus the invalid rune.
	Text string
	// Kind is the type of token being scanned, e.g. "number", or the
	// empty string if a token kind hadn't been decided.
	Kind string
	// Col is the number of runes scanned up to and including the error.
	Col int
}

func (err *LexError) Error() string {
	if err.Kind == "" {
		return errpos(err.Col, "invalid token "+strconv.Quote(err.Text))
	}
	return errpos(err.Col, "invalid "+err.Kind+" token "+strconv.Quote(err.Text))
}

func (err *LexError) Pos() int {
	return err.Col
}

// ParseError indicates a grammar violation during compilation: adjacent
// operands, unmatched brackets, or an operator missing operands. It
// implements InputError.
type ParseError struct {
	// Col is the rune position of the offending fragment, or 0 when the
	// problem is structural rather than tied to one fragment.
	Col int
	// Token is the offending fragment, if any.
	Token string
	// Msg describes the violation.
	Msg string
}

func (err *ParseError) Error() string {
	msg := err.Msg
	if err.Token != "" {
		msg += " " + strconv.Quote(err.Token)
	}
	if err.Col > 0 {
		return errpos(err.Col, msg)
	}
	return msg
}

func (err *ParseError) Pos() int {
	return err.Col
}

// UndefinedVariableError is an error from a lookup for an identifier
// that is in neither the caller's bindings nor the constants table.
type UndefinedVariableError struct {
	// Name is the identifier that was missing.
	Name string
}

func (err *UndefinedVariableError) Error() string {
	return "undefined variable: " + strconv.Quote(err.Name)
}

// DomainError is an error from an operation whose inputs are outside
// its mathematically valid domain, or from a result that is not a
// finite real number.
type DomainError struct {
	// X is the out-of-domain value.
	X float64
	// Func names the operator or function, or is "result" when the
	// final value of an evaluation is not finite.
	Func string
}

func (err *DomainError) Error() string {
	r := strconv.FormatFloat(err.X, 'g', -1, 64) + " outside domain"
	if err.Func != "" {
		r += " of " + err.Func
	}
	return r
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return "column " + strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every compile-time
// error resulting from invalid expression text implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up
	// to and including the start of the fragment that caused it.
	Pos() int
}

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*ParseError)(nil)
)
