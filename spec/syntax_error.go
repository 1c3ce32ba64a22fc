package spec

import "fmt"

type SyntaxError struct {
	message string
}

func newSyntaxError(message string) *SyntaxError {
	return &SyntaxError{
		message: message,
	}
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error: %s", e.message)
}

var (
	SynErrNoProduction = newSyntaxError("a grammar must contain at least one production")
	SynErrNoState      = newSyntaxError("an automaton description must mention at least one state")
)
