// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion, including a declined confirmation.
	Success = 0

	// UserError indicates a user error (bad args or rejected input).
	UserError = 1

	// AuthError indicates an auth/config error.
	AuthError = 2

	// BackendError indicates a storage or remote API error.
	BackendError = 3
)
