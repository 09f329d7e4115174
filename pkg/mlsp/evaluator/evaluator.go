// Package evaluator reduces parsed mlsp trees to values by direct structural
// recursion. A list is dispatched on its head symbol: the special forms
// (if, while, do, set, print) and the arithmetic/comparison operators have
// bespoke rules; any other head is a variable lookup. Every error is fatal
// for the run and propagates up as a *errors.LangError.
package evaluator

import (
	"github.com/sambeau/mlsp/pkg/mlsp/errors"
	"github.com/sambeau/mlsp/pkg/mlsp/token"
)

// Eval reduces one tree node to one value against the shared environment.
//
// A SYMBOL in value position that has no binding evaluates to itself.
// A symbol in call position (head of a list) with no binding is a fatal
// unknown-symbol error instead. The asymmetry is deliberate, inherited
// language behavior; see DESIGN.md.
func Eval(node token.Token, env *Environment) (token.Token, error) {
	switch node.Kind {
	case token.INT, token.TRUE, token.FALSE:
		return node, nil

	case token.SYMBOL:
		if value, ok := env.Get(node.Sym); ok {
			return value, nil
		}
		return node, nil // self-quoting fallback

	case token.LIST:
		return evalList(node, env)

	default:
		// OPEN/CLOSE/EOF reaching the evaluator means the parser invariant
		// was violated.
		return token.Token{}, errors.NewWithPosition("STRUCT-0001", node.Line, node.Pos,
			map[string]any{"Kind": node.Kind.String()})
	}
}

func evalList(node token.Token, env *Environment) (token.Token, error) {
	if len(node.Items) == 0 {
		return token.Token{}, errors.NewWithPosition("STRUCT-0002", node.Line, node.Pos, nil)
	}

	head := node.Items[0]
	if head.Kind != token.SYMBOL {
		return token.Token{}, errors.NewWithPosition("STRUCT-0002", node.Line, node.Pos, nil)
	}

	switch head.Sym {
	case "+", "-", "*":
		return evalArithmetic(head.Sym, node, env)
	case ">", "<":
		return evalOrdering(head.Sym, node, env)
	case "=":
		return evalEquality(node, env)
	case "if":
		return evalIf(node, env)
	case "while":
		return evalWhile(node, env)
	case "do":
		return evalDo(node, env)
	case "set":
		return evalSet(node, env)
	case "print":
		return evalPrint(node, env)
	}

	// Any other head symbol is a variable reference in call position.
	if value, ok := env.Get(head.Sym); ok {
		return value, nil
	}
	err := errors.NewUndefinedSymbol(head.Sym, env.AllSymbols())
	return token.Token{}, err.WithPosition(head.Line, head.Pos)
}

// evalArithmetic handles (+ a b), (- a b), and (* a b). Operands evaluate
// left to right; results wrap at 32 bits.
func evalArithmetic(op string, node token.Token, env *Environment) (token.Token, error) {
	lhs, rhs, err := evalOperandPair(op, node, env)
	if err != nil {
		return token.Token{}, err
	}

	var result token.Token
	switch op {
	case "+":
		result, err = lhs.Add(rhs)
	case "-":
		result, err = lhs.Sub(rhs)
	case "*":
		result, err = lhs.Mul(rhs)
	}
	if err != nil {
		return token.Token{}, at(err, node)
	}
	return result, nil
}

// evalOrdering handles (> a b) and (< a b). Ordering is defined only for
// two integers or two symbols.
func evalOrdering(op string, node token.Token, env *Environment) (token.Token, error) {
	lhs, rhs, err := evalOperandPair(op, node, env)
	if err != nil {
		return token.Token{}, err
	}

	cmp, err := lhs.Compare(rhs)
	if err != nil {
		return token.Token{}, at(err, node)
	}
	if op == ">" {
		return token.FromBool(cmp > 0), nil
	}
	return token.FromBool(cmp < 0), nil
}

// evalEquality handles (= a b) with structural equality over any two values.
func evalEquality(node token.Token, env *Environment) (token.Token, error) {
	lhs, rhs, err := evalOperandPair("=", node, env)
	if err != nil {
		return token.Token{}, err
	}
	return token.FromBool(lhs.Equal(rhs)), nil
}

// evalIf handles (if cond then else). The then-branch runs only when the
// condition evaluates to exactly True; anything else takes the else-branch,
// which is required.
func evalIf(node token.Token, env *Environment) (token.Token, error) {
	if err := wantOperands("if", node, 3); err != nil {
		return token.Token{}, err
	}

	cond, err := Eval(node.Items[1], env)
	if err != nil {
		return token.Token{}, err
	}
	if cond.Kind == token.TRUE {
		return Eval(node.Items[2], env)
	}
	return Eval(node.Items[3], env)
}

// evalWhile handles (while cond body). The body runs as long as the
// condition evaluates to exactly True; the result is the last body value,
// or False when the body never ran.
func evalWhile(node token.Token, env *Environment) (token.Token, error) {
	if err := wantOperands("while", node, 2); err != nil {
		return token.Token{}, err
	}

	value := token.FromBool(false)
	for {
		cond, err := Eval(node.Items[1], env)
		if err != nil {
			return token.Token{}, err
		}
		if cond.Kind != token.TRUE {
			return value, nil
		}
		value, err = Eval(node.Items[2], env)
		if err != nil {
			return token.Token{}, err
		}
	}
}

// evalDo handles (do e1 e2 ... eN): every operand evaluates in order against
// the shared environment and the results are collected into a new list. The
// list is a first-class value, not unwrapped.
func evalDo(node token.Token, env *Environment) (token.Token, error) {
	results := make([]token.Token, 0, len(node.Items)-1)
	for _, item := range node.Items[1:] {
		value, err := Eval(item, env)
		if err != nil {
			return token.Token{}, err
		}
		results = append(results, value)
	}
	return token.NewList(results...), nil
}

// evalSet handles (set name expr). The name is NOT evaluated; it must
// literally be a symbol token. The evaluated value is bound in the shared
// mapping and returned.
func evalSet(node token.Token, env *Environment) (token.Token, error) {
	if err := wantOperands("set", node, 2); err != nil {
		return token.Token{}, err
	}

	name := node.Items[1]
	if name.Kind != token.SYMBOL {
		return token.Token{}, errors.NewWithPosition("TYPE-0003", name.Line, name.Pos,
			map[string]any{"Got": name.Kind.String()})
	}

	value, err := Eval(node.Items[2], env)
	if err != nil {
		return token.Token{}, err
	}
	return env.Set(name.Sym, value), nil
}

// evalPrint handles (print expr): the evaluated value's debug representation
// goes to the environment's logger, one line per invocation, and the value
// is returned unchanged.
func evalPrint(node token.Token, env *Environment) (token.Token, error) {
	if err := wantOperands("print", node, 1); err != nil {
		return token.Token{}, err
	}

	value, err := Eval(node.Items[1], env)
	if err != nil {
		return token.Token{}, err
	}
	env.Logger.LogLine(value.Inspect())
	return value, nil
}

// evalOperandPair evaluates the two operands of a binary form, left first.
func evalOperandPair(form string, node token.Token, env *Environment) (token.Token, token.Token, error) {
	if err := wantOperands(form, node, 2); err != nil {
		return token.Token{}, token.Token{}, err
	}

	lhs, err := Eval(node.Items[1], env)
	if err != nil {
		return token.Token{}, token.Token{}, err
	}
	rhs, err := Eval(node.Items[2], env)
	if err != nil {
		return token.Token{}, token.Token{}, err
	}
	return lhs, rhs, nil
}

// wantOperands checks a form's operand count (list length minus the head).
func wantOperands(form string, node token.Token, want int) error {
	got := len(node.Items) - 1
	if got != want {
		return errors.NewWithPosition("ARITY-0001", node.Line, node.Pos,
			map[string]any{"Form": form, "Want": want, "Got": got})
	}
	return nil
}

// at stamps a position onto an error that was raised without one.
func at(err error, node token.Token) error {
	if lerr, ok := err.(*errors.LangError); ok && lerr.Line == 0 {
		return lerr.WithPosition(node.Line, node.Pos)
	}
	return err
}
