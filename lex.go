package veq

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// lexToken is one textual fragment of an expression: a number, an
// identifier, a registered operator or function lexeme, or a bracket.
// Fragments are not yet typed tokens; the compiler resolves them
// against the registry.
type lexToken struct {
	text string
	kind lexKind
	pos  int
}

func (t lexToken) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

type lexKind int

const (
	lexNone lexKind = iota
	// lexEOF indicates the end of the input.
	lexEOF
	// lexNum is a numeric literal.
	lexNum
	// lexIdent is a variable or constant name.
	lexIdent
	// lexFunc is a registered function lexeme including its trailing (.
	lexFunc
	// lexOp is a registered operator lexeme.
	lexOp
	// lexOpen is a bare ( opening a group.
	lexOpen
	// lexClose is ).
	lexClose
)

func (k lexKind) String() string {
	switch k {
	case lexEOF:
		return "EOF"
	case lexNum:
		return "Num"
	case lexIdent:
		return "Ident"
	case lexFunc:
		return "Func"
	case lexOp:
		return "Op"
	case lexOpen:
		return "Open"
	case lexClose:
		return "Close"
	default:
		return "None"
	}
}

type lexer struct {
	src  io.RuneScanner
	buf  strings.Builder
	rune int
	eof  bool
}

func lex(src io.RuneScanner) *lexer {
	return &lexer{
		src:  src,
		rune: 1,
	}
}

// readRune reads a rune from the src and updates the lexer's position.
func (l *lexer) readRune() (r rune, err error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.rune++
	}
	return r, err
}

// unreadRune unreads a rune from the src and updates the lexer's
// position. Panics if unreading returns an error.
func (l *lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.rune--
}

// next scans the next fragment from the input. Once the input is
// exhausted, every call returns an EOF fragment. An unrecognized rune
// is a LexError, never silently skipped.
func (l *lexer) next() (lexToken, error) {
	tok := lexToken{pos: l.rune}
	if l.eof {
		tok.kind = lexEOF
		return tok, nil
	}
	defer l.buf.Reset()
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				tok.kind = lexEOF
				l.eof = true
				return tok, nil
			}
			return tok, err
		}
		switch {
		case unicode.IsSpace(r):
			tok.pos++
			continue
		case '0' <= r && r <= '9':
			l.unreadRune()
			if err := l.scanNum(); err != nil {
				return tok, err
			}
			tok.text = l.buf.String()
			tok.kind = lexNum
			return tok, nil
		case 'a' <= r && r <= 'z':
			l.unreadRune()
			l.scanIdent()
			tok.text = l.buf.String()
			tok.kind = lexIdent
			// A registered function lexeme includes its opening bracket.
			if l.fuseCall(tok.text) {
				tok.text += "("
				tok.kind = lexFunc
			}
			return tok, nil
		case r == '(':
			tok.text = "("
			tok.kind = lexOpen
			return tok, nil
		case r == ')':
			tok.text = ")"
			tok.kind = lexClose
			return tok, nil
		default:
			if isOperatorRune(r) {
				tok.text = string(r)
				tok.kind = lexOp
				return tok, nil
			}
			// Write the rune so that it shows up in the error message.
			l.buf.WriteRune(r)
			return tok, l.error("")
		}
	}
}

// scanNum scans digits with at most one decimal point.
func (l *lexer) scanNum() error {
	var dot bool
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		switch {
		case '0' <= r && r <= '9':
			l.buf.WriteRune(r)
		case r == '.':
			l.buf.WriteRune(r)
			if dot {
				return l.error("number")
			}
			dot = true
		default:
			l.unreadRune()
			return nil
		}
	}
}

// scanIdent scans one or more lowercase letters.
func (l *lexer) scanIdent() {
	for {
		r, err := l.readRune()
		if err != nil {
			// next unreads the rune that decides ident scanning before
			// calling scanIdent, so we have scanned at least one rune.
			return
		}
		if r < 'a' || 'z' < r {
			l.unreadRune()
			return
		}
		l.buf.WriteRune(r)
	}
}

// fuseCall consumes the ( following name when name( is a registered
// function lexeme.
func (l *lexer) fuseCall(name string) bool {
	if !isFunction(name) {
		return false
	}
	r, err := l.readRune()
	if err != nil {
		return false
	}
	if r != '(' {
		l.unreadRune()
		return false
	}
	return true
}

func (l *lexer) error(kind string) error {
	return &LexError{
		Text: l.buf.String(),
		Kind: kind,
		Col:  l.rune,
	}
}
