package veq

// entry describes one registered operator or function: how the
// compiler should build its token and where the lexer should look for
// it. Function lexemes include their trailing "(".
type entry struct {
	kind tokenKind
	prec int8
	bin  func(a, b float64) (float64, error)
	un   func(a float64) (float64, error)
}

// registry maps surface lexemes to their entries. It is populated by
// register during init and read-only afterward; it is the single
// source of truth for what the lexer recognizes as an operator or
// function and for how the compiler types each fragment.
var registry = make(map[string]entry)

func register(lexeme string, e entry) {
	if _, ok := registry[lexeme]; ok {
		panic("veq: duplicate registration of " + lexeme)
	}
	registry[lexeme] = e
}

func registerBinary(lexeme string, prec int8, op func(a, b float64) (float64, error)) {
	register(lexeme, entry{kind: tokenBinary, prec: prec, bin: op})
}

func registerFunction(name string, fn func(a float64) (float64, error)) {
	register(name+"(", entry{kind: tokenUnary, prec: precFunction, un: fn})
}

// lookup resolves a lexeme against the registry.
func lookup(lexeme string) (entry, bool) {
	e, ok := registry[lexeme]
	return e, ok
}

// token builds the typed token for a registered lexeme.
func (e entry) token(lexeme string) token {
	return token{kind: e.kind, prec: e.prec, name: lexeme, bin: e.bin, un: e.un}
}

// isOperatorRune reports whether r alone is a registered operator
// lexeme. The lexer uses this to classify single-rune fragments.
func isOperatorRune(r rune) bool {
	_, ok := registry[string(r)]
	return ok
}

// isFunction reports whether name names a registered function, i.e.
// the registry holds name followed by "(".
func isFunction(name string) bool {
	e, ok := registry[name+"("]
	return ok && e.kind == tokenUnary
}
