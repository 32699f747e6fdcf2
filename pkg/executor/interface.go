package executor

import "context"

// Executor runs external commands and resolves binaries on PATH.
type Executor interface {
	Execute(ctx context.Context, name string, args ...string) (string, error)
	LookPath(name string) (string, error)
}
