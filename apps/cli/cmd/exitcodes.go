package cmd

// Exit codes for hitpie CLI
const (
	// ExitSuccess indicates the response was received and rendered
	ExitSuccess = 0

	// ExitFailure indicates an error outside the other categories
	ExitFailure = 1

	// ExitConfigError indicates an invalid HITPIE_* environment variable
	ExitConfigError = 3

	// ExitNetworkError indicates a network/connection error
	ExitNetworkError = 4

	// ExitRenderError indicates the response could not be written out
	ExitRenderError = 5

	// ExitUsageError indicates invalid CLI usage, including a malformed URL
	// or key=value argument
	ExitUsageError = 64
)
