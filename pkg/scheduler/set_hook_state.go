package scheduler

import "fmt"

// SetHookState records the outcome of the first hook carrying id.
func (r *Runner) SetHookState(id string, state HookState) error {
	i := r.indexOf(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrUnknownHookID, id)
	}
	return r.setState(i, state)
}

func (r *Runner) setState(i int, state HookState) error {
	from := r.hooks[i].state
	if !canTransition(from, state) {
		return fmt.Errorf("%w: %s from %s to %s", ErrInvalidTransition, r.label(i), from, state)
	}
	r.hooks[i].state = state
	return nil
}
