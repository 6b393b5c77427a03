// Package cmd implements the hitpie CLI commands using Cobra.
//
// Available commands:
//   - get: Send a GET request and print the response
//   - post: Send key=value pairs as a JSON object and print the response
//   - version: Show hitpie version information
//   - completion: Generate shell completion scripts
//
// Global flags control coloring, JSON reformatting and diagnostic logging.
package cmd
