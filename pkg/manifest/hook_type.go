package manifest

import (
	"fmt"
	"strings"
)

// HookType names a git hook managed by tackle.
type HookType string

// Hook types, spelled as in manifest keys.
const (
	PreCommit  HookType = "precommit"
	PostCommit HookType = "postcommit"
	PrePush    HookType = "prepush"
)

// HookTypes lists every managed hook type in installation order.
var HookTypes = []HookType{PreCommit, PostCommit, PrePush}

// ParseHookType accepts both manifest ("precommit") and git ("pre-commit") spellings.
func ParseHookType(s string) (HookType, error) {
	normalized := HookType(strings.ReplaceAll(strings.ToLower(s), "-", ""))
	for _, t := range HookTypes {
		if t == normalized {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownHookType, s)
}

// GitHookName returns the file name git uses for the hook, such as "pre-commit".
func (t HookType) GitHookName() string {
	s := string(t)
	for _, prefix := range []string{"pre", "post"} {
		if strings.HasPrefix(s, prefix) {
			return prefix + "-" + strings.TrimPrefix(s, prefix)
		}
	}
	return s
}
