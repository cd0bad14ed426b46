package project

import (
	"bytes"
	"fmt"
	"path/filepath"

	"github.com/skyezerfox/tackle/pkg/manifest"
)

const shimMarker = "# Installed by tackle."

// shimHookTypes are the hook types git itself invokes.
var shimHookTypes = []manifest.HookType{manifest.PreCommit, manifest.PostCommit, manifest.PrePush}

func shimScript(t manifest.HookType) []byte {
	return []byte(fmt.Sprintf("#!/bin/sh\n%s Do not edit.\nexec tackle run %s \"$@\"\n", shimMarker, t.GitHookName()))
}

// InstallShims writes git hooks that call tackle. Hooks previously written by
// tackle are rewritten; any other existing hook is left alone and reported.
func (p *realProject) InstallShims() ([]string, error) {
	gitDir := filepath.Join(p.root, ".git")
	isDir, err := p.fs.IsDir(gitDir)
	if err != nil || !isDir {
		return nil, fmt.Errorf("%w: %s", ErrNotGitDirectory, gitDir)
	}

	hooksDir := filepath.Join(gitDir, "hooks")
	if err := p.fs.MkdirAll(hooksDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", hooksDir, err)
	}

	var installed []string
	for _, t := range shimHookTypes {
		path := filepath.Join(hooksDir, t.GitHookName())

		exists, err := p.fs.Exists(path)
		if err != nil {
			return installed, err
		}
		if exists {
			content, err := p.fs.ReadFile(path)
			if err != nil {
				return installed, err
			}
			if !bytes.Contains(content, []byte(shimMarker)) {
				return installed, fmt.Errorf("%w: %s", ErrHookAlreadyExists, path)
			}
		}

		if err := p.fs.WriteFileAtomic(path, shimScript(t), 0755); err != nil {
			return installed, fmt.Errorf("failed to write %s: %w", path, err)
		}
		p.logger.Debugf("Installed %s", path)
		installed = append(installed, path)
	}

	return installed, nil
}
