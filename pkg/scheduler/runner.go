package scheduler

import (
	"fmt"
	"strings"

	"github.com/skyezerfox/tackle/pkg/logger"
	"github.com/skyezerfox/tackle/pkg/manifest"
)

type hookWithState struct {
	def   manifest.HookDefinition
	state HookState
}

// Runner owns the hook states of one scheduling pass. It is not safe for
// concurrent use; hooks run one at a time because eligibility depends on the
// outcome of earlier hooks.
type Runner struct {
	hooks  []hookWithState
	env    Env
	logger logger.Logger
}

// FromHooks creates a Runner with every hook Pending, in declaration order.
func FromHooks(defs []manifest.HookDefinition, env Env) *Runner {
	hooks := make([]hookWithState, len(defs))
	for i, def := range defs {
		hooks[i] = hookWithState{def: def, state: Pending}
	}

	return &Runner{
		hooks:  hooks,
		env:    env,
		logger: logger.NewNoopLogger(),
	}
}

// WithLogger sets the logger and returns the runner for chaining.
func (r *Runner) WithLogger(l logger.Logger) *Runner {
	r.logger = l
	return r
}

// Len returns the number of hooks.
func (r *Runner) Len() int {
	return len(r.hooks)
}

// Hook returns the definition at index i.
func (r *Runner) Hook(i int) manifest.HookDefinition {
	return r.hooks[i].def
}

// State returns the state of the hook at index i.
func (r *Runner) State(i int) HookState {
	return r.hooks[i].state
}

// StateOf returns the state of the first hook carrying id.
func (r *Runner) StateOf(id string) (HookState, error) {
	i := r.indexOf(id)
	if i < 0 {
		return Pending, fmt.Errorf("%w: %s", ErrUnknownHookID, id)
	}
	return r.hooks[i].state, nil
}

func (r *Runner) indexOf(id string) int {
	for i, h := range r.hooks {
		if h.def.HasID(id) {
			return i
		}
	}
	return -1
}

// label names a hook in logs and reports.
func (r *Runner) label(i int) string {
	if id := r.hooks[i].def.IDValue(); id != "" {
		return id
	}
	return fmt.Sprintf("#%d (%s)", i+1, strings.Join(r.hooks[i].def.Command, " "))
}
