//go:build unit

package git

import (
	"errors"
	"testing"

	"github.com/go-git/go-git/v5/plumbing/transport/http"
	"github.com/stretchr/testify/assert"
)

func TestEnvAuthProvider_For(t *testing.T) {
	env := map[string]string{
		"GITHUB_TOKEN": "gh-secret",
		"GIT_TOKEN":    "generic-secret",
	}
	p := &envAuthProvider{
		getenv:  func(k string) string { return env[k] },
		homeDir: func() (string, error) { return "", errors.New("no home") },
	}

	tests := []struct {
		name string
		url  string
		want *http.BasicAuth
	}{
		{"github https", "https://github.com/org/repo.git", &http.BasicAuth{Username: "x-access-token", Password: "gh-secret"}},
		{"other https", "https://example.org/org/repo.git", &http.BasicAuth{Username: "git", Password: "generic-secret"}},
		{"local path", "/tmp/repo", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.For(tt.url)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEnvAuthProvider_SSHWithoutHome(t *testing.T) {
	p := &envAuthProvider{
		getenv:  func(string) string { return "" },
		homeDir: func() (string, error) { return "", errors.New("no home") },
	}
	assert.Nil(t, p.For("git@github.com:org/repo.git"))
}
