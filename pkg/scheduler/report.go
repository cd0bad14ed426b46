package scheduler

import "time"

// HookResult is the final state of one hook after a pass.
type HookResult struct {
	ID      string
	Label   string
	Command []string
	State   HookState
	// Blocked is set when the hook was skipped because no progress was possible.
	Blocked bool
	// Reason explains a blocked hook or an execution error.
	Reason   string
	ExitCode int
	Duration time.Duration
}

// Report summarizes a scheduling pass in declaration order.
type Report struct {
	Results []HookResult
}

// Failed reports whether any hook failed.
func (r *Report) Failed() bool {
	for _, res := range r.Results {
		if res.State == Failed {
			return true
		}
	}
	return false
}

// Blocked returns the hooks that were skipped because they could not become eligible.
func (r *Report) Blocked() []HookResult {
	var blocked []HookResult
	for _, res := range r.Results {
		if res.Blocked {
			blocked = append(blocked, res)
		}
	}
	return blocked
}

// Count returns the number of hooks that ended in state.
func (r *Report) Count(state HookState) int {
	n := 0
	for _, res := range r.Results {
		if res.State == state {
			n++
		}
	}
	return n
}
