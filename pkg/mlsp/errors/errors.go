// Package errors provides structured error types for the mlsp language.
//
// This package defines LangError, a unified error type that can represent
// lexical, parse, and runtime errors with enough metadata for display and
// programmatic handling. Every failure in the interpreter is fatal for the
// run it belongs to, but it is reported as an ordinary error value so a
// hosting application can decide what to do next.
package errors

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
)

// ErrorClass categorizes errors for filtering and templating.
type ErrorClass string

const (
	ClassLex       ErrorClass = "lex"       // Unrecognized input
	ClassParse     ErrorClass = "parse"     // Unbalanced parentheses
	ClassStructure ErrorClass = "structure" // Malformed tree reaching the evaluator
	ClassType      ErrorClass = "type"      // Operand type mismatches
	ClassArity     ErrorClass = "arity"     // Wrong operand count
	ClassUndefined ErrorClass = "undefined" // Unknown symbol in call position
)

// LangError represents any error from lexing, parsing, or evaluation.
type LangError struct {
	Class   ErrorClass     // Error category
	Code    string         // Error code (e.g., "TYPE-0001")
	Message string         // Human-readable message
	Hints   []string       // Suggestions for fixing
	Line    int            // 1-based line (0 if unknown)
	Pos     int            // 0-based byte offset (-1 if unknown)
	Data    map[string]any // Template variables
}

// Error implements the error interface.
func (e *LangError) Error() string {
	return e.String()
}

// String returns a formatted string representation of the error.
func (e *LangError) String() string {
	var sb strings.Builder

	if e.Line > 0 {
		sb.WriteString(fmt.Sprintf("line %d, position %d: ", e.Line, e.Pos))
	}
	sb.WriteString(e.Message)

	for _, hint := range e.Hints {
		sb.WriteString("\n  ")
		sb.WriteString(hint)
	}

	return sb.String()
}

// PrettyString returns a multi-line formatted string for display.
func (e *LangError) PrettyString() string {
	var sb strings.Builder

	switch e.Class {
	case ClassLex:
		sb.WriteString("Lexical error")
	case ClassParse:
		sb.WriteString("Parse error")
	default:
		sb.WriteString("Runtime error")
	}

	if e.Line > 0 {
		sb.WriteString(fmt.Sprintf(": line %d, position %d\n  ", e.Line, e.Pos))
	} else {
		sb.WriteString(":\n  ")
	}

	sb.WriteString(e.Message)

	for i, hint := range e.Hints {
		sb.WriteString("\n  ")
		if i == 0 {
			sb.WriteString("Use: ")
		} else {
			sb.WriteString(" or: ")
		}
		sb.WriteString(hint)
	}

	return sb.String()
}

// WithPosition returns a copy of the error with line and position set.
func (e *LangError) WithPosition(line, pos int) *LangError {
	copy := *e
	copy.Line = line
	copy.Pos = pos
	return &copy
}

// IsParseError returns true if this error came from lexing or parsing.
func (e *LangError) IsParseError() bool {
	return e.Class == ClassLex || e.Class == ClassParse
}

// ErrorDef defines an error in the catalog.
type ErrorDef struct {
	Class    ErrorClass // Error category
	Template string     // Message template with {{.placeholders}}
	Hints    []string   // Hint templates (may use {{.placeholders}})
}

// ErrorCatalog maps error codes to their definitions.
var ErrorCatalog = map[string]ErrorDef{
	// ========================================
	// Lexical errors (LEX-0xxx)
	// ========================================
	"LEX-0001": {
		Class:    ClassLex,
		Template: "unrecognized character {{.Char}}",
	},
	"LEX-0002": {
		Class:    ClassLex,
		Template: "integer literal out of range: {{.Literal}}",
		Hints:    []string{"integers are 32-bit signed"},
	},

	// ========================================
	// Parse errors (PARSE-0xxx)
	// ========================================
	"PARSE-0001": {
		Class:    ClassParse,
		Template: "unexpected ')' with no open list",
	},
	"PARSE-0002": {
		Class:    ClassParse,
		Template: "unmatched '(': {{.Count}} list(s) still open at end of input",
	},

	// ========================================
	// Structural errors (STRUCT-0xxx)
	// ========================================
	"STRUCT-0001": {
		Class:    ClassStructure,
		Template: "{{.Kind}} token in the tree makes no sense",
	},
	"STRUCT-0002": {
		Class:    ClassStructure,
		Template: "cannot evaluate list, first item must be a symbol",
	},

	// ========================================
	// Type errors (TYPE-0xxx)
	// ========================================
	"TYPE-0001": {
		Class:    ClassType,
		Template: "you can {{.Operation}} only integers",
	},
	"TYPE-0002": {
		Class:    ClassType,
		Template: "comparison works only for numbers and symbols",
	},
	"TYPE-0003": {
		Class:    ClassType,
		Template: "`set` expects a symbol as its first operand, got {{.Got}}",
	},

	// ========================================
	// Arity errors (ARITY-0xxx)
	// ========================================
	"ARITY-0001": {
		Class:    ClassArity,
		Template: "`{{.Form}}` expects {{.Want}} operand(s), got {{.Got}}",
	},

	// ========================================
	// Undefined errors (UNDEF-0xxx)
	// ========================================
	"UNDEF-0001": {
		Class:    ClassUndefined,
		Template: "unknown symbol: {{.Name}}",
		// Hint "Did you mean `X`?" added dynamically by fuzzy matching
	},
}

// New creates a LangError from the catalog.
// If the code is not found, creates a generic error with the message.
func New(code string, data map[string]any) *LangError {
	def, ok := ErrorCatalog[code]
	if !ok {
		msg := code
		if data != nil {
			if m, ok := data["message"].(string); ok {
				msg = m
			}
		}
		return &LangError{
			Class:   ClassStructure,
			Code:    code,
			Message: msg,
			Pos:     -1,
			Data:    data,
		}
	}

	msg := renderTemplate(def.Template, data)

	var hints []string
	for _, hintTmpl := range def.Hints {
		rendered := renderTemplate(hintTmpl, data)
		if rendered != "" {
			hints = append(hints, rendered)
		}
	}

	return &LangError{
		Class:   def.Class,
		Code:    code,
		Message: msg,
		Hints:   hints,
		Pos:     -1,
		Data:    data,
	}
}

// NewWithPosition creates a LangError with position information.
func NewWithPosition(code string, line, pos int, data map[string]any) *LangError {
	err := New(code, data)
	err.Line = line
	err.Pos = pos
	return err
}

// NewSimple creates a simple error without using the catalog.
func NewSimple(class ErrorClass, message string) *LangError {
	return &LangError{
		Class:   class,
		Message: message,
		Pos:     -1,
	}
}

// renderTemplate renders a Go template with the given data.
func renderTemplate(tmplStr string, data map[string]any) string {
	if data == nil {
		return tmplStr
	}

	tmpl, err := template.New("").Parse(tmplStr)
	if err != nil {
		return tmplStr
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return tmplStr
	}

	return buf.String()
}

// ============================================================================
// Fuzzy Matching - "Did you mean?" suggestions
// ============================================================================

// levenshteinDistance computes the edit distance between two strings.
func levenshteinDistance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	matrix := make([][]int, len(a)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(b)+1)
		matrix[i][0] = i
	}
	for j := range matrix[0] {
		matrix[0][j] = j
	}

	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}
			matrix[i][j] = min(
				matrix[i-1][j]+1,      // deletion
				matrix[i][j-1]+1,      // insertion
				matrix[i-1][j-1]+cost, // substitution
			)
		}
	}

	return matrix[len(a)][len(b)]
}

// FindClosestMatch finds the closest match to the given string from candidates.
// Returns the best match if the distance is within the threshold, otherwise
// empty string. The threshold is calculated from the length of the input.
func FindClosestMatch(input string, candidates []string) string {
	if len(input) == 0 || len(candidates) == 0 {
		return ""
	}

	inputLower := strings.ToLower(input)

	var bestMatch string
	bestDistance := -1

	for _, candidate := range candidates {
		candidateLower := strings.ToLower(candidate)

		dist := levenshteinDistance(inputLower, candidateLower)

		if bestDistance == -1 || dist < bestDistance {
			bestDistance = dist
			bestMatch = candidate
		}
	}

	// Short words (1-3): max 1 edit
	// Medium words (4-6): max 2 edits
	// Longer words (7+): max 3 edits
	threshold := 1
	if len(input) >= 4 && len(input) <= 6 {
		threshold = 2
	} else if len(input) >= 7 {
		threshold = 3
	}

	// Don't suggest if distance is 0 (exact match) or over threshold
	if bestDistance <= 0 || bestDistance > threshold {
		return ""
	}

	return bestMatch
}

// NewUndefinedSymbol creates an unknown-symbol error with optional fuzzy matching.
func NewUndefinedSymbol(name string, availableSymbols []string) *LangError {
	data := map[string]any{"Name": name}
	err := New("UNDEF-0001", data)

	if suggestion := FindClosestMatch(name, availableSymbols); suggestion != "" {
		err.Hints = append(err.Hints, "Did you mean `"+suggestion+"`?")
	}

	return err
}

// SpecialForms lists the reserved form names, for fuzzy matching against typos.
var SpecialForms = []string{
	"if", "while", "do", "set", "print",
}
