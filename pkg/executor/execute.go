package executor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"
)

// Execute runs cmd to completion with the executor's streams.
func (e *realExecutor) Execute(ctx context.Context, cmd Command) (Result, error) {
	if len(cmd.Args) == 0 {
		return Result{}, ErrEmptyCommand
	}

	path, err := exec.LookPath(cmd.Args[0])
	if err != nil {
		return Result{}, fmt.Errorf("%w: %s", ErrCommandNotFound, cmd.Args[0])
	}

	c := exec.CommandContext(ctx, path, cmd.Args[1:]...)
	c.Dir = e.dir
	if cmd.Dir != "" {
		c.Dir = cmd.Dir
	}
	c.Stdin = e.stdin
	c.Stdout = e.stdout
	c.Stderr = e.stderr
	if len(cmd.Env) > 0 {
		c.Env = append(os.Environ(), cmd.Env...)
	}

	e.logger.Debugf("Running %s", strings.Join(cmd.Args, " "))

	start := time.Now()
	err = c.Run()
	duration := time.Since(start)

	var exitErr *exec.ExitError
	switch {
	case err == nil:
		return Result{Status: StatusSuccessful, Duration: duration}, nil
	case errors.As(err, &exitErr) && ctx.Err() == nil:
		return Result{Status: StatusFailed, ExitCode: exitErr.ExitCode(), Duration: duration}, nil
	case ctx.Err() != nil:
		return Result{}, fmt.Errorf("%w: %s: %w", ErrStartFailed, cmd.Args[0], ctx.Err())
	default:
		return Result{}, fmt.Errorf("%w: %s: %w", ErrStartFailed, cmd.Args[0], err)
	}
}
