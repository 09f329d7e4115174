// Package repl implements the interactive mlsp session with line editing,
// history, and tab completion.
package repl

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
	"github.com/sambeau/mlsp/config"
	"github.com/sambeau/mlsp/pkg/mlsp/errors"
	"github.com/sambeau/mlsp/pkg/mlsp/evaluator"
	"github.com/sambeau/mlsp/pkg/mlsp/mlsp"
)

const logo = `
█▄░▄█ █░░ █▀▀ █▀█
█░▀░█ █▄▄ ▄▄█ █▀▀ `

// Special form names for tab completion
var completionWords = []string{
	"if", "while", "do", "set", "print",
}

// Start starts the REPL with line editing, history, and tab completion.
// One environment is shared across the whole session, so `set` bindings
// persist between inputs.
func Start(out io.Writer, cfg *config.Config, version string) {
	line := liner.NewLiner()
	defer line.Close()

	// Enable Ctrl+C to abort current line
	line.SetCtrlCAborts(true)

	line.SetCompleter(func(line string) []string {
		return filterCompletions(line)
	})

	// Load command history from file
	if f, err := os.Open(cfg.REPL.HistoryFile); err == nil {
		line.ReadHistory(f)
		f.Close()
	}

	// Save history on exit
	defer func() {
		if f, err := os.Create(cfg.REPL.HistoryFile); err == nil {
			line.WriteHistory(f)
			f.Close()
		}
	}()

	env := evaluator.NewEnvironment()
	env.Logger = mlsp.WriterLogger(out)

	fmt.Fprintf(out, "%s", logo)
	fmt.Fprintln(out, "v", version)
	fmt.Fprintln(out, "")
	fmt.Fprintln(out, "Type 'exit' or Ctrl+D to quit")
	fmt.Fprintln(out, "Use Tab for completion, ↑↓ for history")
	fmt.Fprintln(out, "Type ':help' for REPL commands")
	fmt.Fprintln(out, "")

	var inputBuffer strings.Builder

	for {
		currentPrompt := cfg.REPL.Prompt
		if inputBuffer.Len() > 0 {
			currentPrompt = cfg.REPL.Continuation
		}
		input, err := line.Prompt(currentPrompt)
		if err != nil {
			if err == liner.ErrPromptAborted {
				// Ctrl+C - clear any buffered input and return to main prompt
				if inputBuffer.Len() > 0 {
					fmt.Fprintln(out, "^C (cleared)")
				} else {
					fmt.Fprintln(out, "^C")
				}
				inputBuffer.Reset()
				continue
			}
			if err == io.EOF {
				fmt.Fprintln(out, "\nGoodbye!")
				return
			}
			fmt.Fprintf(out, "Error reading input: %v\n", err)
			continue
		}

		trimmed := strings.TrimSpace(input)
		if inputBuffer.Len() == 0 && (trimmed == "exit" || trimmed == "quit") {
			fmt.Fprintln(out, "Goodbye!")
			return
		}

		// Handle REPL commands (start with :)
		if inputBuffer.Len() == 0 && strings.HasPrefix(trimmed, ":") {
			handleReplCommand(trimmed, env, out)
			continue
		}

		// Skip empty lines when no input buffered
		if inputBuffer.Len() == 0 && trimmed == "" {
			continue
		}

		if inputBuffer.Len() > 0 {
			inputBuffer.WriteString("\n")
		}
		inputBuffer.WriteString(input)

		// Keep reading while parentheses are unbalanced
		fullInput := inputBuffer.String()
		if needsMoreInput(fullInput) {
			continue
		}

		if trimmed != "" {
			line.AppendHistory(fullInput)
		}

		results, err := mlsp.RunWithEnv(fullInput, env)
		if err != nil {
			printError(out, err)
		} else {
			for _, result := range results {
				fmt.Fprintln(out, result.Inspect())
			}
		}

		inputBuffer.Reset()
	}
}

// handleReplCommand handles REPL meta-commands that start with ':'
func handleReplCommand(cmd string, env *evaluator.Environment, out io.Writer) {
	switch cmd {
	case ":help", ":h", ":?":
		fmt.Fprintln(out, "REPL Commands:")
		fmt.Fprintln(out, "  :help, :h, :?   Show this help")
		fmt.Fprintln(out, "  :env            Show variables in scope")
		fmt.Fprintln(out, "  :clear          Clear all variables")
		fmt.Fprintln(out, "  exit, quit      Exit the REPL")

	case ":env":
		names := env.AllSymbols()
		if len(names) == 0 {
			fmt.Fprintln(out, "(no variables)")
			return
		}
		for _, name := range names {
			if value, ok := env.Get(name); ok {
				fmt.Fprintf(out, "  %s = %s\n", name, value.Inspect())
			}
		}

	case ":clear":
		env.Clear()
		fmt.Fprintln(out, "Variables cleared")

	default:
		fmt.Fprintf(out, "Unknown command %s (try :help)\n", cmd)
	}
}

// needsMoreInput reports whether the input has more opens than closes, in
// which case the REPL keeps reading continuation lines. A surplus of closes
// is complete; evaluation will report the parse error.
func needsMoreInput(input string) bool {
	depth := 0
	for i := 0; i < len(input); i++ {
		switch input[i] {
		case '(':
			depth++
		case ')':
			depth--
		}
	}
	return depth > 0
}

// filterCompletions returns completion words matching the last token of the
// current line.
func filterCompletions(line string) []string {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ' ' || r == '(' || r == ')'
	})
	prefix := ""
	if len(fields) > 0 && !strings.HasSuffix(line, " ") && !strings.HasSuffix(line, "(") {
		prefix = fields[len(fields)-1]
	}

	var matches []string
	for _, word := range completionWords {
		if strings.HasPrefix(word, prefix) {
			matches = append(matches, line[:len(line)-len(prefix)]+word)
		}
	}
	return matches
}

// printError writes an interpreter error in its pretty multi-line form, or
// falls back to the plain error text.
func printError(out io.Writer, err error) {
	if lerr, ok := err.(*errors.LangError); ok {
		fmt.Fprintln(out, lerr.PrettyString())
		return
	}
	fmt.Fprintln(out, "Error:", err)
}
