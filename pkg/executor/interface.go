package executor

import "context"

// Executor defines the interface for executing external commands
type Executor interface {
	// Execute runs name with args and returns its stdout.
	// A non-zero exit is returned as an error carrying the command's stderr.
	Execute(ctx context.Context, name string, args ...string) (string, error)
	// LookPath reports whether name resolves to an executable
	LookPath(name string) (string, error)
}
