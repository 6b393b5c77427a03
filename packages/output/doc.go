// Package output renders HTTP responses for the terminal.
//
// A rendered response has three sections:
//   - Status line: protocol and status, colored
//   - Headers: one "Name: value" line per header value
//   - Body: highlighted for JSON and HTML, printed as-is otherwise
//
// Highlighting is best-effort. When a grammar or theme cannot be loaded the
// body is printed plain and a warning is logged.
package output
