package scheduler

import (
	"fmt"
	"strings"

	"github.com/skyezerfox/tackle/pkg/manifest"
)

// describeClause lists the unmet parts of a clause.
func (r *Runner) describeClause(c manifest.HookCondition) string {
	var parts []string
	for _, id := range c.Successful {
		if !r.anyInState(id, Successful) {
			parts = append(parts, fmt.Sprintf("%s not successful", id))
		}
	}
	for _, id := range c.Failed {
		if !r.anyInState(id, Failed) {
			parts = append(parts, fmt.Sprintf("%s not failed", id))
		}
	}
	for _, id := range c.Skipped {
		if !r.anyInState(id, Skipped) {
			parts = append(parts, fmt.Sprintf("%s not skipped", id))
		}
	}
	for _, p := range c.Exists {
		if !r.env.FileExists(p) {
			parts = append(parts, fmt.Sprintf("%s missing", p))
		}
	}
	if len(c.Branch) > 0 && !r.allBranches(c.Branch) {
		parts = append(parts, fmt.Sprintf("branch %s is not %s", r.env.CurrentBranch(), strings.Join(c.Branch, " and ")))
	}
	if len(parts) == 0 {
		return "satisfied"
	}
	return strings.Join(parts, ", ")
}
