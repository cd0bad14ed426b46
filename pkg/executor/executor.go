package executor

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/skyezerfox/tackle/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=executor.go -destination=mocks/executor.gen.go -package=mocks

// Status classifies a finished command.
type Status int

// Command statuses.
const (
	StatusSuccessful Status = iota
	StatusFailed
)

func (s Status) String() string {
	if s == StatusSuccessful {
		return "successful"
	}
	return "failed"
}

// Command is an argv to run.
type Command struct {
	Args []string
	// Dir overrides the executor's working directory when set.
	Dir string
	// Env is appended to the inherited environment.
	Env []string
}

// Result describes a finished command.
type Result struct {
	Status   Status
	ExitCode int
	Duration time.Duration
}

// Executor interface runs commands.
type Executor interface {
	// Execute runs cmd to completion. A non-zero exit is a Failed result, not an error.
	Execute(ctx context.Context, cmd Command) (Result, error)
}

type realExecutor struct {
	dir    string
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	logger logger.Logger
}

// NewExecutorParams contains parameters for creating a new Executor instance.
// Nil streams default to the process's own.
type NewExecutorParams struct {
	Dir    string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger logger.Logger
}

// NewExecutor creates a new Executor instance.
func NewExecutor(params NewExecutorParams) Executor {
	e := &realExecutor{
		dir:    params.Dir,
		stdin:  params.Stdin,
		stdout: params.Stdout,
		stderr: params.Stderr,
		logger: params.Logger,
	}
	if e.stdin == nil {
		e.stdin = os.Stdin
	}
	if e.stdout == nil {
		e.stdout = os.Stdout
	}
	if e.stderr == nil {
		e.stderr = os.Stderr
	}
	if e.logger == nil {
		e.logger = logger.NewNoopLogger()
	}
	return e
}
