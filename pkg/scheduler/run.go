package scheduler

import (
	"context"
	"fmt"
	"strings"

	"github.com/skyezerfox/tackle/pkg/executor"
)

// Run drives a whole pass: it executes the next eligible hook and records its
// outcome until none is left. When Pending hooks remain but none is eligible,
// the first of them is marked Skipped and reported as blocked, which lets
// hooks conditioned on skipped ones proceed. Each iteration settles exactly
// one hook, so the pass ends after at most Len iterations.
func (r *Runner) Run(ctx context.Context, exec executor.Executor) (*Report, error) {
	results := make([]HookResult, len(r.hooks))
	for i, h := range r.hooks {
		results[i] = HookResult{
			ID:      h.def.IDValue(),
			Label:   r.label(i),
			Command: h.def.Command,
		}
	}

	for {
		if err := ctx.Err(); err != nil {
			return r.report(results), err
		}

		i := r.nextIndex()
		if i < 0 {
			i = r.firstPending()
			if i < 0 {
				break
			}
			reason := r.blockReason(i)
			r.logger.Warnf("Hook %s is blocked: %s", r.label(i), reason)
			if err := r.setState(i, Skipped); err != nil {
				return r.report(results), err
			}
			results[i].Blocked = true
			results[i].Reason = reason
			continue
		}

		r.logger.Logf("Running hook %s", r.label(i))

		res, err := exec.Execute(ctx, executor.Command{Args: r.hooks[i].def.Command})
		if err != nil && ctx.Err() != nil {
			return r.report(results), err
		}

		state := Successful
		switch {
		case err != nil:
			state = Failed
			results[i].Reason = err.Error()
			r.logger.Warnf("Hook %s could not run: %v", r.label(i), err)
		case res.Status == executor.StatusFailed:
			state = Failed
			results[i].ExitCode = res.ExitCode
			r.logger.Logf("Hook %s failed with exit code %d", r.label(i), res.ExitCode)
		default:
			r.logger.Debugf("Hook %s succeeded in %s", r.label(i), res.Duration)
		}
		results[i].Duration = res.Duration

		if err := r.setState(i, state); err != nil {
			return r.report(results), err
		}
	}

	return r.report(results), nil
}

func (r *Runner) report(results []HookResult) *Report {
	for i := range results {
		results[i].State = r.hooks[i].state
	}
	return &Report{Results: results}
}

// blockReason explains why a Pending hook cannot become eligible.
func (r *Runner) blockReason(i int) string {
	if dep := r.missingDependency(i); dep != "" {
		return fmt.Sprintf("executable %q not found on PATH", dep)
	}
	if len(r.hooks[i].def.Conditions) == 0 {
		return "no condition clause"
	}

	var unmet []string
	for _, c := range r.hooks[i].def.Conditions {
		unmet = append(unmet, r.describeClause(c))
	}
	return "no condition clause holds (" + strings.Join(unmet, "; ") + ")"
}
