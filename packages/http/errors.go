package http

import "fmt"

// TransportError reports a request that never produced a response, such as
// a refused connection or a DNS failure. HTTP error statuses are not
// TransportErrors.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
