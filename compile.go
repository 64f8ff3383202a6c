package veq

import (
	"strconv"
	"strings"
)

// compiler holds the state of one infix to postfix transformation: the
// fragment source, the program being emitted, and the value-expected
// flag that disambiguates unary minus from binary subtraction.
type compiler struct {
	scan      *lexer
	out       []token
	wantValue bool
}

// compile lexes src and compiles it into a postfix program.
func compile(src string) ([]token, error) {
	c := compiler{scan: lex(strings.NewReader(src)), wantValue: true}
	if err := c.expr(0); err != nil {
		return nil, err
	}
	if err := checkShape(c.out); err != nil {
		return nil, err
	}
	return c.out, nil
}

// expr compiles fragments until the close bracket matching this
// invocation, or until EOF for the outermost one. Each invocation owns
// its operator stack; a close bracket drains it into the output and
// returns, which terminates both groups and function arguments.
func (c *compiler) expr(depth int) error {
	var ops []token
	for {
		tok, err := c.scan.next()
		if err != nil {
			return err
		}
		switch tok.kind {
		case lexEOF:
			if depth > 0 {
				return &ParseError{Col: tok.pos, Msg: "missing closing bracket"}
			}
			c.drain(ops)
			return nil
		case lexNum:
			if !c.wantValue {
				return &ParseError{Col: tok.pos, Token: tok.text, Msg: "operand follows operand"}
			}
			v, err := strconv.ParseFloat(tok.text, 64)
			if err != nil {
				return &ParseError{Col: tok.pos, Token: tok.text, Msg: "invalid token"}
			}
			c.out = append(c.out, token{kind: tokenValue, val: v})
			c.wantValue = false
		case lexIdent:
			if !c.wantValue {
				return &ParseError{Col: tok.pos, Token: tok.text, Msg: "operand follows operand"}
			}
			c.out = append(c.out, token{kind: tokenVariable, name: tok.text})
			c.wantValue = false
		case lexFunc:
			if !c.wantValue {
				return &ParseError{Col: tok.pos, Token: tok.text, Msg: "operand follows operand"}
			}
			e, ok := lookup(tok.text)
			if !ok {
				// The lexer only fuses registered function lexemes.
				panic("veq: unregistered function lexeme " + tok.text)
			}
			// Compile the bracketed argument, then emit the function
			// directly; functions never wait on the operator stack.
			c.wantValue = true
			if err := c.expr(depth + 1); err != nil {
				return err
			}
			c.out = append(c.out, e.token(strings.TrimSuffix(tok.text, "(")))
			c.wantValue = false
		case lexOp:
			e, ok := lookup(tok.text)
			if !ok {
				panic("veq: unregistered operator lexeme " + tok.text)
			}
			t := e.token(tok.text)
			if c.wantValue {
				if tok.text != "-" {
					return &ParseError{Col: tok.pos, Token: tok.text, Msg: "missing operand before"}
				}
				// A minus where an operand is expected is negation. It
				// must not pop the stack: its operand hasn't been
				// emitted yet, so nothing can precede it in the output.
				t = negation()
			} else {
				// Left-associative resolution, for ^ as well.
				for len(ops) > 0 && ops[len(ops)-1].prec >= t.prec {
					c.out = append(c.out, ops[len(ops)-1])
					ops = ops[:len(ops)-1]
				}
			}
			ops = append(ops, t)
			c.wantValue = true
		case lexOpen:
			c.wantValue = true
			if err := c.expr(depth + 1); err != nil {
				return err
			}
			c.wantValue = false
		case lexClose:
			if depth == 0 {
				return &ParseError{Col: tok.pos, Token: tok.text, Msg: "unmatched"}
			}
			c.drain(ops)
			return nil
		default:
			panic("veq: unknown fragment: " + tok.String())
		}
	}
}

// drain empties an operator stack into the output in pop order.
func (c *compiler) drain(ops []token) {
	for i := len(ops) - 1; i >= 0; i-- {
		c.out = append(c.out, ops[i])
	}
}

// checkShape verifies that the program nets exactly one stack value: an
// operator never pops an operand it doesn't have, and no values are
// left over at the end. Leftover values are an error, never aggregated.
func checkShape(prog []token) error {
	depth := 0
	for _, t := range prog {
		switch t.kind {
		case tokenValue, tokenVariable:
			depth++
		case tokenUnary:
			if depth < 1 {
				return &ParseError{Token: t.name, Msg: "missing operand for"}
			}
		case tokenBinary:
			if depth < 2 {
				return &ParseError{Token: t.name, Msg: "missing operand for"}
			}
			depth--
		}
	}
	if depth != 1 {
		return &ParseError{Msg: "expression does not reduce to a single value"}
	}
	return nil
}
