// Package lexer turns mlsp source text into a lazy, forward-only sequence of
// tokens. The lexer is pull-based: each call to Next examines the unconsumed
// suffix of the input and applies ordered matching rules until one fires.
package lexer

import (
	"strconv"

	"github.com/sambeau/mlsp/pkg/mlsp/errors"
	"github.com/sambeau/mlsp/pkg/mlsp/token"
)

// Lexer holds the full source text, a byte cursor, and the current line
// counter. It is not restartable; create a new Lexer for a fresh pass.
type Lexer struct {
	input string
	pos   int // byte offset of the next unconsumed character
	line  int // 1-based, incremented on newline
}

// New creates a new lexer for the given source text.
func New(input string) *Lexer {
	return &Lexer{input: input, line: 1}
}

// Next returns the next token. The rules are tried in order:
//
//  1. '('               -> OPEN
//  2. ')'               -> CLOSE
//  3. [+-]?[0-9]+       -> INT (tried before symbols, so "-2" is a number
//     while "- " is the subtraction symbol)
//  4. [+\-*><=A-Za-z][A-Za-z0-9]*  -> SYMBOL
//  5. newline           -> skipped, line counter incremented
//  6. other whitespace  -> skipped
//  7. anything else     -> lexical error with line and offset
//
// When the input is exhausted Next returns an EOF token, not an error.
func (l *Lexer) Next() (token.Token, error) {
	for l.pos < len(l.input) {
		c := l.input[l.pos]
		switch {
		case c == '(':
			tok := token.Token{Kind: token.OPEN, Line: l.line, Pos: l.pos}
			l.pos++
			return tok, nil
		case c == ')':
			tok := token.Token{Kind: token.CLOSE, Line: l.line, Pos: l.pos}
			l.pos++
			return tok, nil
		case isDigit(c) || (isSign(c) && isDigit(l.peek())):
			return l.readNumber()
		case isSymbolStart(c):
			return l.readSymbol(), nil
		case c == '\n':
			l.pos++
			l.line++
		case isWhitespace(c):
			l.pos++
		default:
			return token.Token{}, errors.NewWithPosition("LEX-0001", l.line, l.pos,
				map[string]any{"Char": strconv.QuoteRune(rune(c))})
		}
	}
	return token.Token{Kind: token.EOF, Line: l.line, Pos: l.pos}, nil
}

// readNumber consumes an optional sign and one or more digits.
func (l *Lexer) readNumber() (token.Token, error) {
	start := l.pos
	if isSign(l.input[l.pos]) {
		l.pos++
	}
	for l.pos < len(l.input) && isDigit(l.input[l.pos]) {
		l.pos++
	}
	literal := l.input[start:l.pos]

	n, err := strconv.ParseInt(literal, 10, 32)
	if err != nil {
		return token.Token{}, errors.NewWithPosition("LEX-0002", l.line, start,
			map[string]any{"Literal": literal})
	}

	return token.Token{Kind: token.INT, Int: int32(n), Line: l.line, Pos: start}, nil
}

// readSymbol consumes an operator/letter head and any alphanumeric tail.
func (l *Lexer) readSymbol() token.Token {
	start := l.pos
	l.pos++ // the start character was already matched
	for l.pos < len(l.input) && isAlphanumeric(l.input[l.pos]) {
		l.pos++
	}
	return token.Token{
		Kind: token.SYMBOL,
		Sym:  l.input[start:l.pos],
		Line: l.line,
		Pos:  start,
	}
}

// peek returns the byte after the cursor, or 0 at end of input.
func (l *Lexer) peek() byte {
	if l.pos+1 >= len(l.input) {
		return 0
	}
	return l.input[l.pos+1]
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isSign(c byte) bool {
	return c == '+' || c == '-'
}

func isLetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

func isAlphanumeric(c byte) bool {
	return isLetter(c) || isDigit(c)
}

func isSymbolStart(c byte) bool {
	switch c {
	case '+', '-', '*', '>', '<', '=':
		return true
	}
	return isLetter(c)
}

func isWhitespace(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\v', '\f':
		return true
	}
	return false
}
