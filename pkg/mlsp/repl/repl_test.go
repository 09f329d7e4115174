package repl

import "testing"

// TestNeedsMoreInput tests parenthesis-balance continuation
func TestNeedsMoreInput(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"(+ 1 2)", false},
		{"(+ 1 2", true},
		{"(do (set i 5)", true},
		{"(do\n(set i 5)\n(print i))", false},
		{"42", false},
		{"", false},
		// Extra closes are complete; evaluation reports the parse error
		{"(+ 1 2))", false},
		{")", false},
	}

	for _, tt := range tests {
		if got := needsMoreInput(tt.input); got != tt.expected {
			t.Errorf("needsMoreInput(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

// TestFilterCompletions tests special-form tab completion
func TestFilterCompletions(t *testing.T) {
	tests := []struct {
		line     string
		expected []string
	}{
		{"(wh", []string{"(while"}},
		{"(s", []string{"(set"}},
		{"(p", []string{"(print"}},
		{"(do (i", []string{"(do (if"}},
	}

	for _, tt := range tests {
		got := filterCompletions(tt.line)
		if len(got) != len(tt.expected) {
			t.Errorf("filterCompletions(%q) = %v, want %v", tt.line, got, tt.expected)
			continue
		}
		for i := range got {
			if got[i] != tt.expected[i] {
				t.Errorf("filterCompletions(%q)[%d] = %q, want %q", tt.line, i, got[i], tt.expected[i])
			}
		}
	}
}
