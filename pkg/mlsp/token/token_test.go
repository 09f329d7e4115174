package token

import (
	"math"
	"testing"
)

// TestInspect tests the debug representation used by print
func TestInspect(t *testing.T) {
	tests := []struct {
		token    Token
		expected string
	}{
		{NewInt(9), "Int(9)"},
		{NewInt(-15), "Int(-15)"},
		{NewSymbol("i"), `Symbol("i")`},
		{FromBool(true), "True"},
		{FromBool(false), "False"},
		{NewList(), "List([])"},
		{NewList(NewInt(5), NewInt(4)), "List([Int(5), Int(4)])"},
		{NewList(NewList(NewSymbol("x"))), `List([List([Symbol("x")])])`},
		{Token{Kind: OPEN}, "Open"},
		{Token{Kind: CLOSE}, "Close"},
	}

	for _, tt := range tests {
		if got := tt.token.Inspect(); got != tt.expected {
			t.Errorf("Inspect() = %q, want %q", got, tt.expected)
		}
	}
}

// TestEqual tests structural equality
func TestEqual(t *testing.T) {
	tests := []struct {
		a, b     Token
		expected bool
	}{
		{NewInt(5), NewInt(5), true},
		{NewInt(5), NewInt(6), false},
		{NewSymbol("x"), NewSymbol("x"), true},
		{NewSymbol("x"), NewSymbol("y"), false},
		{NewInt(5), NewSymbol("5"), false},
		{FromBool(true), FromBool(true), true},
		{FromBool(true), FromBool(false), false},
		{NewList(NewInt(1), NewInt(2)), NewList(NewInt(1), NewInt(2)), true},
		{NewList(NewInt(1)), NewList(NewInt(1), NewInt(2)), false},
		{NewList(NewList(NewInt(1))), NewList(NewList(NewInt(1))), true},
		// Structural markers are distinguishable, unlike the odd legacy
		// behavior where Close compared equal to Open
		{Token{Kind: OPEN}, Token{Kind: OPEN}, true},
		{Token{Kind: CLOSE}, Token{Kind: OPEN}, false},
	}

	for _, tt := range tests {
		if got := tt.a.Equal(tt.b); got != tt.expected {
			t.Errorf("%s.Equal(%s) = %v, want %v", tt.a.Inspect(), tt.b.Inspect(), got, tt.expected)
		}
	}
}

// TestEqualIgnoresPosition tests that source positions do not affect equality
func TestEqualIgnoresPosition(t *testing.T) {
	a := Token{Kind: INT, Int: 5, Line: 1, Pos: 0}
	b := Token{Kind: INT, Int: 5, Line: 7, Pos: 42}
	if !a.Equal(b) {
		t.Errorf("equal values at different positions should compare equal")
	}
}

// TestCompare tests ordering between ints and between symbols
func TestCompare(t *testing.T) {
	tests := []struct {
		a, b     Token
		expected int
	}{
		{NewInt(1), NewInt(2), -1},
		{NewInt(2), NewInt(1), 1},
		{NewInt(2), NewInt(2), 0},
		{NewSymbol("a"), NewSymbol("b"), -1},
		{NewSymbol("b"), NewSymbol("a"), 1},
		{NewSymbol("abc"), NewSymbol("abc"), 0},
	}

	for _, tt := range tests {
		got, err := tt.a.Compare(tt.b)
		if err != nil {
			t.Errorf("Compare(%s, %s) returned error: %v", tt.a.Inspect(), tt.b.Inspect(), err)
			continue
		}
		if got != tt.expected {
			t.Errorf("Compare(%s, %s) = %d, want %d", tt.a.Inspect(), tt.b.Inspect(), got, tt.expected)
		}
	}
}

// TestCompareTypeErrors tests that mixed or unsupported pairings fail
func TestCompareTypeErrors(t *testing.T) {
	pairs := []struct {
		a, b Token
	}{
		{NewInt(1), NewSymbol("a")},
		{NewSymbol("a"), NewInt(1)},
		{FromBool(true), FromBool(true)},
		{NewList(NewInt(1)), NewList(NewInt(1))},
		{NewInt(1), FromBool(false)},
	}

	for _, tt := range pairs {
		if _, err := tt.a.Compare(tt.b); err == nil {
			t.Errorf("Compare(%s, %s) should fail", tt.a.Inspect(), tt.b.Inspect())
		}
	}
}

// TestArithmetic tests integer arithmetic, including 32-bit wraparound
func TestArithmetic(t *testing.T) {
	tests := []struct {
		name     string
		run      func() (Token, error)
		expected int32
	}{
		{"add", func() (Token, error) { return NewInt(2).Add(NewInt(3)) }, 5},
		{"sub", func() (Token, error) { return NewInt(10).Sub(NewInt(5)) }, 5},
		{"sub negative", func() (Token, error) { return NewInt(5).Sub(NewInt(10)) }, -5},
		{"mul", func() (Token, error) { return NewInt(-2).Mul(NewInt(10)) }, -20},
		{"add wraps", func() (Token, error) { return NewInt(math.MaxInt32).Add(NewInt(1)) }, math.MinInt32},
		{"sub wraps", func() (Token, error) { return NewInt(math.MinInt32).Sub(NewInt(1)) }, math.MaxInt32},
		{"mul wraps", func() (Token, error) { return NewInt(math.MaxInt32).Mul(NewInt(2)) }, -2},
	}

	for _, tt := range tests {
		got, err := tt.run()
		if err != nil {
			t.Errorf("%s: unexpected error: %v", tt.name, err)
			continue
		}
		if got.Kind != INT || got.Int != tt.expected {
			t.Errorf("%s: got %s, want Int(%d)", tt.name, got.Inspect(), tt.expected)
		}
	}
}

// TestArithmeticTypeErrors tests that non-integer operands fail
func TestArithmeticTypeErrors(t *testing.T) {
	sym := NewSymbol("x")
	five := NewInt(5)

	if _, err := sym.Add(five); err == nil {
		t.Errorf("Add with symbol lhs should fail")
	}
	if _, err := five.Add(sym); err == nil {
		t.Errorf("Add with symbol rhs should fail")
	}
	if _, err := five.Sub(FromBool(true)); err == nil {
		t.Errorf("Sub with boolean rhs should fail")
	}
	if _, err := NewList().Mul(five); err == nil {
		t.Errorf("Mul with list lhs should fail")
	}
}
