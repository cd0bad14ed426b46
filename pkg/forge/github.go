package forge

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/google/go-github/v62/github"

	"github.com/skyezerfox/tackle/pkg/identifier"
)

const (
	// GitHubName is the name identifier for GitHub forge.
	GitHubName = "github"
	// GitHubDomain is the GitHub domain packages are served from.
	GitHubDomain = "github.com"
	// MaxSearchResults caps a single search page.
	MaxSearchResults = 100
)

// GitHub represents the GitHub forge implementation.
type GitHub struct {
	client *github.Client
}

// GitHubOptions configures NewGitHub.
type GitHubOptions struct {
	// Token authenticates requests. Defaults to GITHUB_TOKEN.
	Token string
	// BaseURL points the client at another API endpoint, such as GitHub Enterprise.
	BaseURL string
	// HTTPClient replaces the default HTTP client.
	HTTPClient *http.Client
}

// NewGitHub creates a new GitHub forge instance.
func NewGitHub(opts GitHubOptions) *GitHub {
	client := github.NewClient(opts.HTTPClient)

	token := opts.Token
	if token == "" {
		token = os.Getenv("GITHUB_TOKEN")
	}
	if token != "" {
		client = client.WithAuthToken(token)
	}

	if opts.BaseURL != "" {
		if u, err := url.Parse(strings.TrimSuffix(opts.BaseURL, "/") + "/"); err == nil {
			client.BaseURL = u
		}
	}

	return &GitHub{client: client}
}

// Name returns the name of the forge.
func (g *GitHub) Name() string {
	return GitHubName
}

// Host returns the domain the forge serves packages from.
func (g *GitHub) Host() string {
	return GitHubDomain
}

// SearchPackages lists repositories tagged with Topic that match query, most starred first.
func (g *GitHub) SearchPackages(ctx context.Context, query string, limit int) ([]PackageInfo, error) {
	query = strings.TrimSpace(query)
	if strings.ContainsAny(query, "\n\r") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidQuery, query)
	}
	if limit <= 0 || limit > MaxSearchResults {
		limit = MaxSearchResults
	}

	q := "topic:" + Topic
	if query != "" {
		q += " " + query
	}

	result, resp, err := g.client.Search.Repositories(ctx, q, &github.SearchOptions{
		Sort:        "stars",
		Order:       "desc",
		ListOptions: github.ListOptions{PerPage: limit},
	})
	if err != nil {
		return nil, g.handleGitHubError(err, resp, q)
	}

	packages := make([]PackageInfo, 0, len(result.Repositories))
	for _, repo := range result.Repositories {
		packages = append(packages, toPackageInfo(repo))
	}

	return packages, nil
}

// GetPackage fetches the repository metadata of a package.
func (g *GitHub) GetPackage(ctx context.Context, id identifier.ID) (*PackageInfo, error) {
	if id.Host() != GitHubDomain {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedForge, id.Host())
	}

	repo, resp, err := g.client.Repositories.Get(ctx, id.Owner(), id.Name())
	if err != nil {
		return nil, g.handleGitHubError(err, resp, id.Repository)
	}

	info := toPackageInfo(repo)
	return &info, nil
}

func toPackageInfo(repo *github.Repository) PackageInfo {
	return PackageInfo{
		Identifier:  GitHubDomain + "/" + repo.GetFullName(),
		Description: repo.GetDescription(),
		Stars:       repo.GetStargazersCount(),
		URL:         repo.GetHTMLURL(),
		Topics:      repo.Topics,
		UpdatedAt:   repo.GetUpdatedAt().Time,
	}
}

// handleGitHubError handles GitHub API errors and returns appropriate error messages.
func (g *GitHub) handleGitHubError(err error, resp *github.Response, subject string) error {
	var rateErr *github.RateLimitError
	var abuseErr *github.AbuseRateLimitError
	if errors.As(err, &rateErr) || errors.As(err, &abuseErr) {
		return fmt.Errorf("%w: %w", ErrRateLimited, err)
	}

	if resp != nil {
		switch resp.StatusCode {
		case http.StatusNotFound:
			return fmt.Errorf("%w: %s", ErrPackageNotFound, subject)
		case http.StatusUnauthorized:
			return fmt.Errorf("%w: check GITHUB_TOKEN environment variable", ErrUnauthorized)
		case http.StatusForbidden:
			if resp.Header.Get("X-RateLimit-Remaining") == "0" {
				return fmt.Errorf("%w: GitHub API rate limit exceeded", ErrRateLimited)
			}
			return fmt.Errorf("%w: access forbidden", ErrUnauthorized)
		case http.StatusUnprocessableEntity:
			return fmt.Errorf("%w: %s: %w", ErrInvalidQuery, subject, err)
		}
	}

	return fmt.Errorf("failed to query GitHub for %s: %w", subject, err)
}
