// Package request turns command-line arguments into an outbound request.
//
// It provides:
//   - key=value token parsing for JSON request bodies
//   - absolute URL validation
//   - the Spec type describing a single GET or POST
//
// Everything here runs before a client is constructed, so malformed input
// is rejected without touching the network.
package request
