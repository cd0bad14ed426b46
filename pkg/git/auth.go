package git

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5/plumbing/transport"
	"github.com/go-git/go-git/v5/plumbing/transport/http"
	"github.com/go-git/go-git/v5/plumbing/transport/ssh"
)

// authProvider picks the authentication method for a remote URL.
type authProvider interface {
	For(repoURL string) transport.AuthMethod
}

type envAuthProvider struct {
	getenv  func(string) string
	homeDir func() (string, error)
}

func newEnvAuthProvider() authProvider {
	return &envAuthProvider{
		getenv:  os.Getenv,
		homeDir: os.UserHomeDir,
	}
}

// For returns SSH key auth for SSH remotes and token auth for HTTPS remotes.
// A nil method means anonymous access, which is enough for public repositories.
func (p *envAuthProvider) For(repoURL string) transport.AuthMethod {
	if isSSHURL(repoURL) {
		return p.sshAuth()
	}
	if strings.HasPrefix(repoURL, "https://") || strings.HasPrefix(repoURL, "http://") {
		return p.httpAuth(repoURL)
	}
	return nil
}

func isSSHURL(repoURL string) bool {
	return strings.HasPrefix(repoURL, "git@") || strings.HasPrefix(repoURL, "ssh://")
}

func (p *envAuthProvider) sshAuth() transport.AuthMethod {
	homeDir, err := p.homeDir()
	if err != nil {
		return nil
	}

	for _, name := range []string{"id_ed25519", "id_rsa", "id_ecdsa"} {
		keyPath := filepath.Join(homeDir, ".ssh", name)
		if _, err := os.Stat(keyPath); err != nil {
			continue
		}
		if auth, err := ssh.NewPublicKeysFromFile("git", keyPath, ""); err == nil {
			return auth
		}
	}

	return nil
}

func (p *envAuthProvider) httpAuth(repoURL string) transport.AuthMethod {
	if token := p.getenv("GITHUB_TOKEN"); token != "" && strings.Contains(repoURL, "github.com") {
		return &http.BasicAuth{Username: "x-access-token", Password: token}
	}
	if token := p.getenv("GITLAB_TOKEN"); token != "" && strings.Contains(repoURL, "gitlab") {
		return &http.BasicAuth{Username: "gitlab-ci-token", Password: token}
	}
	if token := p.getenv("GIT_TOKEN"); token != "" {
		return &http.BasicAuth{Username: "git", Password: token}
	}
	return nil
}
