package evaluator

import (
	"sort"

	"github.com/sambeau/mlsp/pkg/mlsp/token"
)

// Environment is the single flat variable mapping shared by every form in a
// run. mlsp has no lexical scoping: `set` anywhere in the tree, however
// deeply nested, mutates this one mapping, and all later forms see it. That
// is language semantics, not an implementation shortcut — do not add an
// outer-scope chain here.
type Environment struct {
	store  map[string]token.Token
	Logger Logger // receives `print` output
}

// NewEnvironment creates an empty environment writing to the default logger.
func NewEnvironment() *Environment {
	return &Environment{
		store:  make(map[string]token.Token),
		Logger: DefaultLogger,
	}
}

// Get retrieves a binding.
func (e *Environment) Get(name string) (token.Token, bool) {
	value, ok := e.store[name]
	return value, ok
}

// Set stores a binding, replacing any previous one.
func (e *Environment) Set(name string, val token.Token) token.Token {
	e.store[name] = val
	return val
}

// Clear removes every binding. Used by the REPL's :clear command.
func (e *Environment) Clear() {
	e.store = make(map[string]token.Token)
}

// AllSymbols returns the bound names sorted, for the REPL's :env listing and
// for fuzzy matching in error messages.
func (e *Environment) AllSymbols() []string {
	result := make([]string, 0, len(e.store))
	for name := range e.store {
		result = append(result, name)
	}
	sort.Strings(result)
	return result
}
