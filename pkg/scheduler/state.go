package scheduler

// HookState is the scheduling state of a hook. Running is owned by the
// executor and not tracked here.
type HookState int

// Hook states.
const (
	Pending HookState = iota
	Successful
	Failed
	Skipped
)

func (s HookState) String() string {
	switch s {
	case Pending:
		return "pending"
	case Successful:
		return "successful"
	case Failed:
		return "failed"
	case Skipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// IsTerminal reports whether no transition may leave s.
func (s HookState) IsTerminal() bool {
	return s == Successful || s == Failed || s == Skipped
}

// canTransition allows exactly Pending to a terminal state.
func canTransition(from, to HookState) bool {
	return from == Pending && to.IsTerminal()
}
