package scheduler

import "github.com/skyezerfox/tackle/pkg/manifest"

// NextHook returns the first eligible hook in declaration order.
// It returns false both when every hook is done and when the remaining
// Pending hooks are blocked; use Pending to tell the two apart.
func (r *Runner) NextHook() (*manifest.HookDefinition, bool) {
	i := r.nextIndex()
	if i < 0 {
		return nil, false
	}
	def := r.hooks[i].def
	return &def, true
}

func (r *Runner) nextIndex() int {
	for i := range r.hooks {
		if r.IsEligible(i) {
			return i
		}
	}
	return -1
}

// Pending returns the hooks still in the Pending state, in declaration order.
func (r *Runner) Pending() []manifest.HookDefinition {
	var pending []manifest.HookDefinition
	for _, h := range r.hooks {
		if h.state == Pending {
			pending = append(pending, h.def)
		}
	}
	return pending
}

func (r *Runner) firstPending() int {
	for i, h := range r.hooks {
		if h.state == Pending {
			return i
		}
	}
	return -1
}
