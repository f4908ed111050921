// Package selfupdate checks for and applies new lessonforge releases
// published on GitHub.
package selfupdate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/mod/semver"
)

const (
	defaultAPIBaseURL      = "https://api.github.com"
	defaultDownloadBaseURL = "https://github.com"
	defaultOwner           = "lessonforge"
	defaultRepo            = "lessonforge"
)

// Checker talks to the GitHub releases API for one repository.
type Checker struct {
	owner           string
	repo            string
	apiBaseURL      string
	downloadBaseURL string
	client          *http.Client
	execPath        func() (string, error)
}

// Option configures a Checker.
type Option func(*Checker)

// WithBaseURL overrides the GitHub API base URL.
func WithBaseURL(url string) Option {
	return func(c *Checker) { c.apiBaseURL = url }
}

// WithDownloadBaseURL overrides the release-asset download base URL.
func WithDownloadBaseURL(url string) Option {
	return func(c *Checker) { c.downloadBaseURL = url }
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Checker) { c.client.Timeout = d }
}

// withExecPath overrides executable path resolution, for tests.
func withExecPath(f func() (string, error)) Option {
	return func(c *Checker) { c.execPath = f }
}

// NewChecker creates a Checker for the lessonforge release repository.
func NewChecker(opts ...Option) *Checker {
	c := &Checker{
		owner:           defaultOwner,
		repo:            defaultRepo,
		apiBaseURL:      defaultAPIBaseURL,
		downloadBaseURL: defaultDownloadBaseURL,
		client:          &http.Client{Timeout: 30 * time.Second},
		execPath:        os.Executable,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CheckInput carries the running version.
type CheckInput struct {
	Version string
}

// CheckResult describes the latest published release relative to the
// running version.
type CheckResult struct {
	UpdateAvailable bool
	LatestVersion   string
	ReleaseURL      string
}

type releaseResponse struct {
	TagName string `json:"tag_name"`
	HTMLURL string `json:"html_url"`
}

// Check queries the latest release and compares it to the running
// version. A development build never reports an available update.
func (c *Checker) Check(ctx context.Context, input *CheckInput) (*CheckResult, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/releases/latest", c.apiBaseURL, c.owner, c.repo)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("query latest release: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d from %s", resp.StatusCode, url)
	}

	var release releaseResponse
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return nil, fmt.Errorf("decode release: %w", err)
	}

	result := &CheckResult{
		LatestVersion: release.TagName,
		ReleaseURL:    release.HTMLURL,
	}

	if input.Version == "(devel)" {
		return result, nil
	}

	current := canonicalVersion(input.Version)
	latest := canonicalVersion(release.TagName)
	if semver.IsValid(current) && semver.IsValid(latest) {
		result.UpdateAvailable = semver.Compare(latest, current) > 0
	}

	return result, nil
}

// canonicalVersion normalizes a release tag into semver form.
func canonicalVersion(v string) string {
	if v == "" {
		return ""
	}
	if v[0] != 'v' {
		v = "v" + v
	}
	return v
}
