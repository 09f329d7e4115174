// Package mlsp provides a public API for embedding the mlsp interpreter.
package mlsp

import (
	"github.com/sambeau/mlsp/pkg/mlsp/evaluator"
	"github.com/sambeau/mlsp/pkg/mlsp/lexer"
	"github.com/sambeau/mlsp/pkg/mlsp/parser"
	"github.com/sambeau/mlsp/pkg/mlsp/token"
)

// Run lexes, parses, and evaluates source text in a fresh environment and
// returns the ordered results of the top-level forms. The first error of any
// kind aborts the run; no partial result sequence is returned.
func Run(source string) ([]token.Token, error) {
	return RunWithEnv(source, evaluator.NewEnvironment())
}

// RunWithEnv is Run against a caller-supplied environment, so bindings
// persist across calls. The REPL is built on this.
func RunWithEnv(source string, env *evaluator.Environment) ([]token.Token, error) {
	l := lexer.New(source)
	nodes, err := parser.Parse(l)
	if err != nil {
		return nil, err
	}

	results := make([]token.Token, 0, len(nodes))
	for _, node := range nodes {
		value, err := evaluator.Eval(node, env)
		if err != nil {
			return nil, err
		}
		results = append(results, value)
	}
	return results, nil
}
