package update

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// SourceArchiveName is the name of the synthetic asset representing the
// release's source archive. It mirrors the label GitHub shows on a release
// page and is what the selector's fallback matches on.
const SourceArchiveName = "Source code (zip)"

const defaultFeedTimeout = 10 * time.Second

// FeedClient fetches latest-release metadata from the GitHub API.
type FeedClient struct {
	owner   string
	repo    string
	token   string // Optional, for rate limiting
	client  *http.Client
	baseURL string // Base URL for the API (overridable for testing)
}

// feedRelease is the wire shape of the latest-release response. Only the
// fields the updater consumes are listed.
type feedRelease struct {
	TagName    string `json:"tag_name"`
	Body       string `json:"body"`
	ZipballURL string `json:"zipball_url"`
	Assets     []struct {
		Name               string `json:"name"`
		BrowserDownloadURL string `json:"browser_download_url"`
	} `json:"assets"`
}

// NewFeedClient creates a feed client for owner/repo.
func NewFeedClient(owner, repo string) *FeedClient {
	return &FeedClient{
		owner: owner,
		repo:  repo,
		client: &http.Client{
			Timeout: defaultFeedTimeout,
		},
		baseURL: "https://api.github.com",
	}
}

// WithToken sets an optional API token for authentication.
func (c *FeedClient) WithToken(token string) *FeedClient {
	c.token = token
	return c
}

// WithTimeout overrides the request timeout.
func (c *FeedClient) WithTimeout(d time.Duration) *FeedClient {
	c.client.Timeout = d
	return c
}

// FetchLatest performs a single GET against the latest-release endpoint and
// returns the parsed metadata. Failures map onto the check-phase taxonomy:
// ErrFeedUnavailable for transport or status errors, ErrFeedMalformed for
// unparseable bodies, ErrFeedEmpty when no version tag is present.
func (c *FeedClient) FetchLatest() (*Release, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/releases/latest", c.baseURL, c.owner, c.repo)

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFeedUnavailable, err)
	}

	req.Header.Set("Accept", "application/vnd.github.v3+json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFeedUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: feed returned status %d", ErrFeedUnavailable, resp.StatusCode)
	}

	var raw feedRelease
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFeedMalformed, err)
	}

	tag := strings.TrimPrefix(raw.TagName, "v")
	if tag == "" {
		return nil, ErrFeedEmpty
	}

	release := &Release{
		TagName: tag,
		Notes:   raw.Body,
	}
	for _, a := range raw.Assets {
		release.Assets = append(release.Assets, Asset{
			Name:        a.Name,
			DownloadURL: a.BrowserDownloadURL,
		})
	}
	// The source archive is not a real asset on the wire; synthesize it from
	// the release's zipball so the selector's fallback has something to match.
	if raw.ZipballURL != "" {
		release.Assets = append(release.Assets, Asset{
			Name:       SourceArchiveName,
			ArchiveURL: raw.ZipballURL,
		})
	}

	return release, nil
}
