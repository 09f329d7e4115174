package errors

import (
	"strings"
	"testing"
)

// TestNewFromCatalog tests template rendering from the catalog
func TestNewFromCatalog(t *testing.T) {
	tests := []struct {
		code          string
		data          map[string]any
		expectedClass ErrorClass
		expectedMsg   string
	}{
		{
			"TYPE-0001",
			map[string]any{"Operation": "add"},
			ClassType,
			"you can add only integers",
		},
		{
			"TYPE-0002",
			nil,
			ClassType,
			"comparison works only for numbers and symbols",
		},
		{
			"ARITY-0001",
			map[string]any{"Form": "if", "Want": 3, "Got": 2},
			ClassArity,
			"`if` expects 3 operand(s), got 2",
		},
		{
			"UNDEF-0001",
			map[string]any{"Name": "foo"},
			ClassUndefined,
			"unknown symbol: foo",
		},
		{
			"PARSE-0001",
			nil,
			ClassParse,
			"unexpected ')' with no open list",
		},
	}

	for _, tt := range tests {
		err := New(tt.code, tt.data)
		if err.Class != tt.expectedClass {
			t.Errorf("%s: class = %s, want %s", tt.code, err.Class, tt.expectedClass)
		}
		if err.Message != tt.expectedMsg {
			t.Errorf("%s: message = %q, want %q", tt.code, err.Message, tt.expectedMsg)
		}
		if err.Code != tt.code {
			t.Errorf("%s: code = %q", tt.code, err.Code)
		}
	}
}

// TestUnknownCode tests the generic fallback for unknown codes
func TestUnknownCode(t *testing.T) {
	err := New("NOPE-9999", map[string]any{"message": "something odd"})
	if err.Message != "something odd" {
		t.Errorf("message = %q, want fallback message", err.Message)
	}
	if err.Code != "NOPE-9999" {
		t.Errorf("code = %q", err.Code)
	}
}

// TestPositionFormatting tests that positions show up in String output
func TestPositionFormatting(t *testing.T) {
	err := NewWithPosition("PARSE-0001", 3, 17, nil)
	got := err.String()
	if !strings.Contains(got, "line 3, position 17") {
		t.Errorf("String() = %q, missing position prefix", got)
	}

	// Without a line number there is no position prefix
	bare := New("PARSE-0001", nil)
	if strings.Contains(bare.String(), "line") {
		t.Errorf("String() = %q, unexpected position prefix", bare.String())
	}
}

// TestWithPosition tests that WithPosition copies rather than mutates
func TestWithPosition(t *testing.T) {
	base := New("TYPE-0002", nil)
	stamped := base.WithPosition(5, 9)
	if base.Line != 0 {
		t.Errorf("WithPosition mutated the original")
	}
	if stamped.Line != 5 || stamped.Pos != 9 {
		t.Errorf("stamped position = %d/%d, want 5/9", stamped.Line, stamped.Pos)
	}
}

// TestPrettyString tests the error-class headers
func TestPrettyString(t *testing.T) {
	tests := []struct {
		err            *LangError
		expectedHeader string
	}{
		{New("LEX-0001", map[string]any{"Char": "'#'"}), "Lexical error"},
		{New("PARSE-0002", map[string]any{"Count": 1}), "Parse error"},
		{New("TYPE-0001", map[string]any{"Operation": "multiply"}), "Runtime error"},
		{New("UNDEF-0001", map[string]any{"Name": "x"}), "Runtime error"},
	}

	for _, tt := range tests {
		if got := tt.err.PrettyString(); !strings.HasPrefix(got, tt.expectedHeader) {
			t.Errorf("PrettyString() = %q, want %s header", got, tt.expectedHeader)
		}
	}
}

// TestIsParseError tests the lex/parse vs runtime split
func TestIsParseError(t *testing.T) {
	if !New("LEX-0001", nil).IsParseError() {
		t.Errorf("lex errors are parse errors")
	}
	if !New("PARSE-0001", nil).IsParseError() {
		t.Errorf("parse errors are parse errors")
	}
	if New("TYPE-0001", nil).IsParseError() {
		t.Errorf("type errors are not parse errors")
	}
}

// TestFindClosestMatch tests the fuzzy matching thresholds
func TestFindClosestMatch(t *testing.T) {
	candidates := []string{"counter", "index", "total", "i"}

	tests := []struct {
		input    string
		expected string
	}{
		{"countr", "counter"},  // one edit
		{"indx", "index"},      // one edit, medium word
		{"totel", "total"},     // one edit
		{"zzzzzz", ""},         // nothing close
		{"counter", ""},        // exact matches produce no hint
		{"", ""},               // empty input
	}

	for _, tt := range tests {
		if got := FindClosestMatch(tt.input, candidates); got != tt.expected {
			t.Errorf("FindClosestMatch(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

// TestNewUndefinedSymbol tests the "Did you mean?" hint wiring
func TestNewUndefinedSymbol(t *testing.T) {
	err := NewUndefinedSymbol("countr", []string{"counter", "total"})
	if err.Code != "UNDEF-0001" {
		t.Errorf("code = %q, want UNDEF-0001", err.Code)
	}
	found := false
	for _, hint := range err.Hints {
		if strings.Contains(hint, "`counter`") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a Did-you-mean hint for counter, got %v", err.Hints)
	}

	// No candidates close enough: no hint
	err = NewUndefinedSymbol("xyz", []string{"counter"})
	if len(err.Hints) != 0 {
		t.Errorf("expected no hints, got %v", err.Hints)
	}
}
