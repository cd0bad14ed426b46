package scheduler

import "github.com/skyezerfox/tackle/pkg/manifest"

// IsEligible reports whether the hook at index i may run now: it is Pending,
// every executable it depends on is on PATH, and at least one of its condition
// clauses holds. A hook with no clause at all is never eligible.
func (r *Runner) IsEligible(i int) bool {
	h := r.hooks[i]

	if h.state != Pending {
		return false
	}

	if r.missingDependency(i) != "" {
		return false
	}

	for _, clause := range h.def.Conditions {
		if r.clauseHolds(clause) {
			return true
		}
	}

	return false
}

// missingDependency returns the first dependency not found on PATH.
func (r *Runner) missingDependency(i int) string {
	for _, dep := range r.hooks[i].def.Dependencies {
		if !r.env.ExecutableAvailable(dep) {
			return dep
		}
	}
	return ""
}

// clauseHolds requires every member of every field. Branch names are compared
// one by one against the single current branch, so a clause listing two
// different branches can never hold.
func (r *Runner) clauseHolds(c manifest.HookCondition) bool {
	return r.allInState(c.Successful, Successful) &&
		r.allInState(c.Failed, Failed) &&
		r.allInState(c.Skipped, Skipped) &&
		r.allExist(c.Exists) &&
		r.allBranches(c.Branch)
}

func (r *Runner) allInState(ids []string, state HookState) bool {
	for _, id := range ids {
		if !r.anyInState(id, state) {
			return false
		}
	}
	return true
}

func (r *Runner) anyInState(id string, state HookState) bool {
	for _, h := range r.hooks {
		if h.def.HasID(id) && h.state == state {
			return true
		}
	}
	return false
}

func (r *Runner) allExist(paths []string) bool {
	for _, p := range paths {
		if !r.env.FileExists(p) {
			return false
		}
	}
	return true
}

func (r *Runner) allBranches(branches []string) bool {
	if len(branches) == 0 {
		return true
	}
	current := r.env.CurrentBranch()
	for _, b := range branches {
		if b != current {
			return false
		}
	}
	return true
}
