package parser

import (
	"fmt"
	"strconv"
)

// ParseError reports the position of a grammar mismatch. Line numbers
// count from the start of the chart file, including header lines.
type ParseError struct {
	Line int
	Col  int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Col, e.Msg)
}

// Arg is one positional argument of a raw command tuple. Word is empty
// for numeric arguments; IsFloat distinguishes the two literal forms.
type Arg struct {
	Word    string
	Int     int
	Float   float64
	IsFloat bool
}

func (a Arg) isWord() bool { return a.Word != "" }

func (a Arg) num() float64 {
	if a.IsFloat {
		return a.Float
	}
	return float64(a.Int)
}

type scanner struct {
	src  string
	pos  int
	line int
	col  int
}

func newScanner(src string, startLine int) *scanner {
	return &scanner{src: src, line: startLine, col: 1}
}

func (s *scanner) errf(format string, args ...interface{}) *ParseError {
	return &ParseError{Line: s.line, Col: s.col, Msg: fmt.Sprintf(format, args...)}
}

func (s *scanner) done() bool { return s.pos >= len(s.src) }

func (s *scanner) peek() byte {
	if s.done() {
		return 0
	}
	return s.src[s.pos]
}

func (s *scanner) advance() byte {
	b := s.src[s.pos]
	s.pos++
	if b == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}
	return b
}

func (s *scanner) skipSpace() {
	for !s.done() {
		switch s.peek() {
		case ' ', '\t', '\r', '\n':
			s.advance()
		default:
			return
		}
	}
}

func (s *scanner) eat(b byte) bool {
	if s.peek() != b {
		return false
	}
	s.advance()
	return true
}

func (s *scanner) expect(b byte) error {
	if !s.eat(b) {
		return s.errf("expected %q", string(b))
	}
	return nil
}

func isAlnum(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9'
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// ident reads an alphanumeric token, stopping at underscores. Used for
// timing group tags, which are underscore-delimited.
func (s *scanner) ident() (string, error) {
	start := s.pos
	for !s.done() && isAlnum(s.peek()) {
		s.advance()
	}
	if s.pos == start {
		return "", s.errf("expected identifier")
	}
	return s.src[start:s.pos], nil
}

// word reads an alphanumeric token that may contain underscores, such
// as custom *_wav hit sound names.
func (s *scanner) word() (string, error) {
	start := s.pos
	for !s.done() && (isAlnum(s.peek()) || s.peek() == '_') {
		s.advance()
	}
	if s.pos == start {
		return "", s.errf("expected word")
	}
	return s.src[start:s.pos], nil
}

// number reads a signed integer or float literal, preserving which of
// the two forms was written.
func (s *scanner) number() (Arg, error) {
	start := s.pos
	if s.peek() == '+' || s.peek() == '-' {
		s.advance()
	}
	digits := 0
	for !s.done() && isDigit(s.peek()) {
		s.advance()
		digits++
	}
	isFloat := false
	if s.eat('.') {
		isFloat = true
		for !s.done() && isDigit(s.peek()) {
			s.advance()
			digits++
		}
	}
	if digits == 0 {
		return Arg{}, s.errf("expected number")
	}
	if s.peek() == 'e' || s.peek() == 'E' {
		isFloat = true
		s.advance()
		if s.peek() == '+' || s.peek() == '-' {
			s.advance()
		}
		if !isDigit(s.peek()) {
			return Arg{}, s.errf("malformed exponent")
		}
		for !s.done() && isDigit(s.peek()) {
			s.advance()
		}
	}
	text := s.src[start:s.pos]
	if isFloat {
		f, err := strconv.ParseFloat(text, 64)
		if nil != err {
			return Arg{}, s.errf("malformed number %q", text)
		}
		return Arg{Float: f, IsFloat: true}, nil
	}
	n, err := strconv.Atoi(text)
	if nil != err {
		return Arg{}, s.errf("malformed number %q", text)
	}
	return Arg{Int: n}, nil
}
