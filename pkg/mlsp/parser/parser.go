// Package parser builds nested-list trees from the flat token sequence. The
// grammar is all parentheses: an explicit stack of in-progress lists tracks
// nesting, so parser depth equals source nesting depth and there is no
// recursion.
package parser

import (
	"github.com/sambeau/mlsp/pkg/mlsp/errors"
	"github.com/sambeau/mlsp/pkg/mlsp/lexer"
	"github.com/sambeau/mlsp/pkg/mlsp/token"
)

// Parse consumes the lexer's token sequence and returns the top-level forms.
// OPEN and CLOSE never survive parsing: an OPEN pushes a fresh list, a CLOSE
// pops the top list and appends it as a LIST token to its parent. The stack
// is seeded with one empty list holding the top-level forms; its contents
// are returned once the sequence is exhausted.
func Parse(l *lexer.Lexer) ([]token.Token, error) {
	stack := [][]token.Token{{}}
	var opens []token.Token // OPEN tokens for the lists still in progress

	for {
		tok, err := l.Next()
		if err != nil {
			return nil, err
		}

		switch tok.Kind {
		case token.EOF:
			if len(stack) != 1 {
				open := opens[len(opens)-1]
				return nil, errors.NewWithPosition("PARSE-0002", open.Line, open.Pos,
					map[string]any{"Count": len(stack) - 1})
			}
			return stack[0], nil

		case token.OPEN:
			stack = append(stack, []token.Token{})
			opens = append(opens, tok)

		case token.CLOSE:
			if len(stack) == 1 {
				return nil, errors.NewWithPosition("PARSE-0001", tok.Line, tok.Pos, nil)
			}
			items := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			open := opens[len(opens)-1]
			opens = opens[:len(opens)-1]
			list := token.Token{Kind: token.LIST, Items: items, Line: open.Line, Pos: open.Pos}
			stack[len(stack)-1] = append(stack[len(stack)-1], list)

		case token.INT, token.SYMBOL, token.LIST, token.TRUE, token.FALSE:
			stack[len(stack)-1] = append(stack[len(stack)-1], tok)

		default:
			return nil, errors.NewWithPosition("STRUCT-0001", tok.Line, tok.Pos,
				map[string]any{"Kind": tok.Kind.String()})
		}
	}
}
