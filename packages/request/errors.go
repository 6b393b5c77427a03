package request

import "fmt"

// ParseError reports a command-line argument that could not be parsed.
type ParseError struct {
	Input  string
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to parse %q: %s: %v", e.Input, e.Reason, e.Err)
	}
	return fmt.Sprintf("failed to parse %q: %s", e.Input, e.Reason)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
