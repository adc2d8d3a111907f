package executor

import (
	"context"
	"errors"
	"fmt"
	"io"

	"releng-sop/core/command"

	"go.uber.org/zap"
)

// Runner prints and executes invocations one after another.
type Runner struct {
	exec   Executor
	out    io.Writer
	logger *zap.Logger
}

// NewRunner creates a runner printing commands to out.
func NewRunner(exec Executor, out io.Writer, logger *zap.Logger) *Runner {
	return &Runner{exec: exec, out: out, logger: logger}
}

// Run prints the invocation and, if execute is set, runs it.
func (r *Runner) Run(ctx context.Context, inv command.Invocation, execute bool) error {
	fmt.Fprintln(r.out, inv.String())
	if !execute {
		return nil
	}

	r.logger.Debug("Executing command", zap.Strings("command", inv.Print))
	if _, err := r.exec.Run(ctx, inv.Exec); err != nil {
		// The executor only knows the argv that may carry a password
		var cmdErr *CommandError
		if errors.As(err, &cmdErr) {
			cmdErr.Command = inv.String()
		}
		return err
	}
	return nil
}

// RunAll runs invocations in order and stops at the first failure.
// It returns the number of invocations that completed.
func (r *Runner) RunAll(ctx context.Context, invocations []command.Invocation, execute bool) (int, error) {
	done := 0
	for _, inv := range invocations {
		if err := r.Run(ctx, inv, execute); err != nil {
			r.logger.Error("Command failed, aborting remaining commands",
				zap.Int("completed", done),
				zap.Int("remaining", len(invocations)-done-1),
			)
			return done, err
		}
		done++
	}
	return done, nil
}
