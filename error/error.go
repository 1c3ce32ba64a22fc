package error

import (
	"fmt"
	"strings"
)

// SourceError annotates an error raised while reading a grammar or automaton
// description with the name of its source and the row the error occurred on.
type SourceError struct {
	Cause      error
	SourceName string
	Row        int
	Line       string
}

func (e *SourceError) Error() string {
	var b strings.Builder
	if e.SourceName != "" {
		fmt.Fprintf(&b, "%v: ", e.SourceName)
	}
	if e.Row != 0 {
		fmt.Fprintf(&b, "%v: ", e.Row)
	}
	fmt.Fprintf(&b, "error: %v", e.Cause)
	if e.Line != "" {
		fmt.Fprintf(&b, "\n    %v", e.Line)
	}
	return b.String()
}

func (e *SourceError) Unwrap() error {
	return e.Cause
}

type SourceErrors []*SourceError

func (e SourceErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%v", e[0])
	for _, err := range e[1:] {
		fmt.Fprintf(&b, "\n%v", err)
	}
	return b.String()
}
