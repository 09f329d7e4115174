// Package token defines the tagged-union value type that flows through the
// whole mlsp pipeline: the lexer emits tokens, the parser nests them into
// lists, and the evaluator reduces them to new tokens. There is no separate
// runtime value type; an mlsp program and its results are both trees of
// Token.
package token

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sambeau/mlsp/pkg/mlsp/errors"
)

// Kind discriminates the token variants.
type Kind int

const (
	// EOF marks the end of the lexer's token sequence. It never survives
	// lexing; the parser consumes it as its termination signal.
	EOF Kind = iota

	// OPEN and CLOSE are structural markers, valid only during lexing and
	// parsing. They must never appear in a parsed tree.
	OPEN
	CLOSE

	INT    // signed 32-bit integer literal or arithmetic result
	SYMBOL // identifier: variable, operator name, or special-form keyword
	LIST   // ordered nested sequence
	TRUE   // boolean true; no surface literal, arises from comparisons
	FALSE  // boolean false
)

// String returns a string representation of the kind.
func (k Kind) String() string {
	switch k {
	case EOF:
		return "EOF"
	case OPEN:
		return "OPEN"
	case CLOSE:
		return "CLOSE"
	case INT:
		return "INT"
	case SYMBOL:
		return "SYMBOL"
	case LIST:
		return "LIST"
	case TRUE:
		return "TRUE"
	case FALSE:
		return "FALSE"
	}
	return "UNKNOWN"
}

// Token represents a single lexical unit or runtime value. Only the field
// matching Kind is meaningful; the rest stay at their zero values. Tokens are
// never mutated in place — every transformation produces a new one.
type Token struct {
	Kind  Kind
	Int   int32   // for INT
	Sym   string  // for SYMBOL
	Items []Token // for LIST
	Line  int     // 1-based source line, for diagnostics
	Pos   int     // 0-based byte offset, for diagnostics
}

// NewInt creates an integer token.
func NewInt(v int32) Token { return Token{Kind: INT, Int: v} }

// NewSymbol creates a symbol token.
func NewSymbol(name string) Token { return Token{Kind: SYMBOL, Sym: name} }

// NewList creates a list token wrapping the given items.
func NewList(items ...Token) Token { return Token{Kind: LIST, Items: items} }

// FromBool maps a native bool onto the TRUE/FALSE tokens.
func FromBool(v bool) Token {
	if v {
		return Token{Kind: TRUE}
	}
	return Token{Kind: FALSE}
}

// Inspect returns the debug representation of the token. This is what the
// `print` form emits, one line per invocation.
func (t Token) Inspect() string {
	switch t.Kind {
	case EOF:
		return "EOF"
	case OPEN:
		return "Open"
	case CLOSE:
		return "Close"
	case INT:
		return "Int(" + strconv.FormatInt(int64(t.Int), 10) + ")"
	case SYMBOL:
		return fmt.Sprintf("Symbol(%q)", t.Sym)
	case TRUE:
		return "True"
	case FALSE:
		return "False"
	case LIST:
		var out strings.Builder
		out.WriteString("List([")
		for i, item := range t.Items {
			if i > 0 {
				out.WriteString(", ")
			}
			out.WriteString(item.Inspect())
		}
		out.WriteString("])")
		return out.String()
	}
	return "UNKNOWN"
}

// String returns a string representation of the token for diagnostics.
func (t Token) String() string {
	return fmt.Sprintf("{Kind: %s, Value: %s, Line: %d, Pos: %d}",
		t.Kind.String(), t.Inspect(), t.Line, t.Pos)
}

// Equal reports structural equality, ignoring source positions. Structural
// markers never appear in valid trees; OPEN and CLOSE compare equal only to
// themselves.
func (t Token) Equal(other Token) bool {
	if t.Kind != other.Kind {
		return false
	}
	switch t.Kind {
	case INT:
		return t.Int == other.Int
	case SYMBOL:
		return t.Sym == other.Sym
	case LIST:
		if len(t.Items) != len(other.Items) {
			return false
		}
		for i := range t.Items {
			if !t.Items[i].Equal(other.Items[i]) {
				return false
			}
		}
		return true
	default:
		// EOF, OPEN, CLOSE, TRUE, FALSE carry no payload
		return true
	}
}

// Compare orders two tokens, returning <0, 0, or >0. Ordering is defined
// only between two INTs or two SYMBOLs (lexicographic); any other pairing
// is a type error.
func (t Token) Compare(other Token) (int, error) {
	switch {
	case t.Kind == INT && other.Kind == INT:
		switch {
		case t.Int < other.Int:
			return -1, nil
		case t.Int > other.Int:
			return 1, nil
		}
		return 0, nil
	case t.Kind == SYMBOL && other.Kind == SYMBOL:
		return strings.Compare(t.Sym, other.Sym), nil
	}
	return 0, errors.New("TYPE-0002", nil)
}

// Add sums two integer tokens. Arithmetic wraps at 32 bits.
func (t Token) Add(other Token) (Token, error) {
	if t.Kind != INT || other.Kind != INT {
		return Token{}, errors.New("TYPE-0001", map[string]any{"Operation": "add"})
	}
	return NewInt(t.Int + other.Int), nil
}

// Sub subtracts other from t. Arithmetic wraps at 32 bits.
func (t Token) Sub(other Token) (Token, error) {
	if t.Kind != INT || other.Kind != INT {
		return Token{}, errors.New("TYPE-0001", map[string]any{"Operation": "subtract"})
	}
	return NewInt(t.Int - other.Int), nil
}

// Mul multiplies two integer tokens. Arithmetic wraps at 32 bits.
func (t Token) Mul(other Token) (Token, error) {
	if t.Kind != INT || other.Kind != INT {
		return Token{}, errors.New("TYPE-0001", map[string]any{"Operation": "multiply"})
	}
	return NewInt(t.Int * other.Int), nil
}
