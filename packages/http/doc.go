// Package http provides the HTTP client used by hitpie subcommands.
//
// It wraps go-resty with:
//   - Explicit default headers supplied through Config
//   - GET and JSON-body POST requests built from a request.Spec
//   - Transport failures reported as *TransportError
//   - A Response type that keeps headers in a stable order for rendering
package http
