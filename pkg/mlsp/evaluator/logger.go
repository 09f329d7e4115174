package evaluator

import "fmt"

// Logger receives the output of the `print` special form. The CLI and REPL
// use the stdout default; embedders and tests can substitute their own.
type Logger interface {
	Log(values ...any)
	LogLine(values ...any)
}

// defaultStdoutLogger writes to standard output.
type defaultStdoutLogger struct{}

func (l *defaultStdoutLogger) Log(values ...any) {
	fmt.Print(values...)
}

func (l *defaultStdoutLogger) LogLine(values ...any) {
	fmt.Println(values...)
}

// DefaultLogger is the logger used when an Environment is created without
// one.
var DefaultLogger Logger = &defaultStdoutLogger{}
