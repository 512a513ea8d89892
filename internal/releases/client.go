// Package releases talks to the GitHub Releases API and picks the asset a
// package installer should download.
//
// Every call goes to the network: there is no cache and no retry. Calls happen
// at most once per install action, which a person triggers by hand.
package releases

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	ghApi "github.com/google/go-github/v26/github"
	"github.com/pkg/errors"
	"golang.org/x/oauth2"

	"worbots-setup/internal/logger"
)

const (
	// UserAgent identifies the tool to GitHub, which rejects requests without one.
	UserAgent = "Worbots 4145 Setup Tool"

	// DefaultAPIURL is the public GitHub REST endpoint.
	DefaultAPIURL = "https://api.github.com/"

	listPageSize = 100
)

var errMissingTag = errors.New("response has no release tag")

// Options configures a Client.
type Options struct {
	// Token authenticates API requests when set. Downloads are never authenticated
	// because assets may be served from hosts other than GitHub.
	Token string
	// APIURL overrides DefaultAPIURL, e.g. for GitHub Enterprise or tests.
	APIURL string
	// HTTPClient is shared by API calls and downloads. Defaults to a new http.Client.
	HTTPClient *http.Client
}

// Client fetches release metadata and downloads assets.
type Client struct {
	gh      *ghApi.Client
	http    *http.Client
	baseURL string
}

// NewClient builds a Client from opts.
func NewClient(opts Options) (*Client, error) {
	base := opts.HTTPClient
	if base == nil {
		base = &http.Client{}
	}

	apiClient := base
	if opts.Token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: opts.Token})
		apiClient = &http.Client{
			Transport: &oauth2.Transport{Source: ts, Base: base.Transport},
			Timeout:   base.Timeout,
		}
	}

	gh := ghApi.NewClient(apiClient)
	gh.UserAgent = UserAgent

	apiURL := opts.APIURL
	if apiURL == "" {
		apiURL = DefaultAPIURL
	}
	if !strings.HasSuffix(apiURL, "/") {
		apiURL += "/"
	}
	parsed, err := url.Parse(apiURL)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid GitHub API URL %q", apiURL)
	}
	gh.BaseURL = parsed

	return &Client{gh: gh, http: base, baseURL: apiURL}, nil
}

// LatestRelease fetches the release GitHub marks as latest for org/repo.
func (c *Client) LatestRelease(ctx context.Context, org, repo string) (Release, error) {
	endpoint := c.endpoint("repos/%s/%s/releases/latest", org, repo)
	logger.Debug("[DEBUG] Fetching GitHub release from URL: %s\n", endpoint)

	rel, resp, err := c.gh.Repositories.GetLatestRelease(ctx, org, repo)
	if err != nil {
		return Release{}, classify(endpoint, resp, err)
	}
	// go-github treats an empty body as success.
	if rel == nil || rel.TagName == nil {
		return Release{}, &DecodeError{URL: endpoint, Err: errMissingTag}
	}

	release := fromGitHub(rel)
	logger.Debug("[DEBUG] Release tag: %s with %d assets\n", release.Tag, len(release.Assets))
	return release, nil
}

// AllReleases fetches the first page of releases for org/repo, newest first.
// Callers use it when they need to filter by tag before matching asset names.
func (c *Client) AllReleases(ctx context.Context, org, repo string) ([]Release, error) {
	endpoint := c.endpoint("repos/%s/%s/releases", org, repo)
	logger.Debug("[DEBUG] Fetching GitHub releases from URL: %s\n", endpoint)

	rels, resp, err := c.gh.Repositories.ListReleases(ctx, org, repo, &ghApi.ListOptions{PerPage: listPageSize})
	if err != nil {
		return nil, classify(endpoint, resp, err)
	}

	out := make([]Release, 0, len(rels))
	for i, rel := range rels {
		if rel == nil || rel.TagName == nil {
			return nil, &DecodeError{URL: endpoint, Err: errors.Wrapf(errMissingTag, "release %d", i)}
		}
		out = append(out, fromGitHub(rel))
	}
	logger.Debug("[DEBUG] Found %d releases for %s/%s\n", len(out), org, repo)
	return out, nil
}

func (c *Client) endpoint(format string, a ...any) string {
	return c.baseURL + fmt.Sprintf(format, a...)
}

func fromGitHub(rel *ghApi.RepositoryRelease) Release {
	if rel == nil {
		return Release{}
	}
	out := Release{Tag: rel.GetTagName()}
	for _, a := range rel.Assets {
		out.Assets = append(out.Assets, Asset{
			Name:        a.GetName(),
			DownloadURL: a.GetBrowserDownloadURL(),
		})
	}
	return out
}

// classify maps a go-github failure onto the package's error kinds.
// go-github checks the status before decoding, so a non-2xx response is
// always an HTTPError and never a DecodeError.
func classify(endpoint string, resp *ghApi.Response, err error) error {
	var errResp *ghApi.ErrorResponse
	if errors.As(err, &errResp) && errResp.Response != nil {
		return &HTTPError{URL: endpoint, Status: errResp.Response.StatusCode}
	}
	var rateErr *ghApi.RateLimitError
	if errors.As(err, &rateErr) && rateErr.Response != nil {
		return &HTTPError{URL: endpoint, Status: rateErr.Response.StatusCode}
	}
	var abuseErr *ghApi.AbuseRateLimitError
	if errors.As(err, &abuseErr) && abuseErr.Response != nil {
		return &HTTPError{URL: endpoint, Status: abuseErr.Response.StatusCode}
	}

	if resp == nil || resp.Response == nil {
		return &NetworkError{URL: endpoint, Err: err}
	}
	if status := resp.StatusCode; status < 200 || status > 299 {
		return &HTTPError{URL: endpoint, Status: status}
	}
	return &DecodeError{URL: endpoint, Err: err}
}
