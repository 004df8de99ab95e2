// Package whop is a small client for the membership platform's REST API and
// OAuth endpoints.
package whop

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/dalemusser/whopinsights/internal/app/system/limits"
	"github.com/dalemusser/whopinsights/internal/domain/models"
	"golang.org/x/oauth2"
)

const (
	// DefaultAPIBase is the REST API root.
	DefaultAPIBase = "https://api.whop.com/api/v5"
	// DefaultAuthorizeURL is where operators are sent to grant access.
	DefaultAuthorizeURL = "https://whop.com/oauth/authorize"
	// DefaultTokenURL exchanges an authorization code for an access token.
	DefaultTokenURL = "https://api.whop.com/api/v5/oauth/token"
	// DefaultScopes are requested during sign-in.
	DefaultScopes = "user:read companies:read"

	defaultPageSize = 50
	maxPages        = 500
)

// ErrUnauthorized is returned when the platform rejects the credential.
var ErrUnauthorized = errors.New("whop: unauthorized")

// StatusError reports a non-2xx response.
type StatusError struct {
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("whop: unexpected status %d: %s", e.Status, e.Body)
}

// Client talks to the REST API. The zero value is not usable; use NewClient.
type Client struct {
	base     string
	apiKey   string
	http     *http.Client
	pageSize int
}

// NewClient returns a client for baseURL authenticating list calls with
// apiKey. A nil httpClient uses http.DefaultClient.
func NewClient(baseURL, apiKey string, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultAPIBase
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		base:     strings.TrimRight(baseURL, "/"),
		apiKey:   apiKey,
		http:     httpClient,
		pageSize: defaultPageSize,
	}
}

// HasAPIKey reports whether a server credential is configured.
func (c *Client) HasAPIKey() bool {
	return c.apiKey != ""
}

// ListMembers fetches every member page by page using the server API key.
// Any failing page fails the whole call; partial lists are never returned.
func (c *Client) ListMembers(ctx context.Context) ([]models.Member, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("list members: %w: no api key configured", ErrUnauthorized)
	}

	var out []models.Member
	for page := 1; page <= maxPages; page++ {
		q := url.Values{}
		q.Set("page", strconv.Itoa(page))
		q.Set("per", strconv.Itoa(c.pageSize))

		var resp memberPage
		if err := c.getJSON(ctx, "/members?"+q.Encode(), c.apiKey, &resp); err != nil {
			return nil, fmt.Errorf("list members page %d: %w", page, err)
		}
		for _, d := range resp.Data {
			out = append(out, d.toModel())
		}

		if resp.Pagination == nil || resp.Pagination.TotalPages <= page || len(resp.Data) == 0 {
			break
		}
	}
	return out, nil
}

// Me returns the operator that owns accessToken.
func (c *Client) Me(ctx context.Context, accessToken string) (models.Operator, error) {
	var d meDTO
	if err := c.getJSON(ctx, "/me", accessToken, &d); err != nil {
		return models.Operator{}, fmt.Errorf("fetch profile: %w", err)
	}
	return d.toModel(), nil
}

// CheckAccess reports whether the owner of accessToken may view companyID.
func (c *Client) CheckAccess(ctx context.Context, accessToken, companyID string) (models.CompanyAccess, error) {
	var d accessDTO
	path := "/me/has_access/" + url.PathEscape(companyID)
	if err := c.getJSON(ctx, path, accessToken, &d); err != nil {
		return models.CompanyAccess{}, fmt.Errorf("check access to %s: %w", companyID, err)
	}
	return models.CompanyAccess(d), nil
}

func (c *Client) getJSON(ctx context.Context, path, bearer string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return ErrUnauthorized
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, limits.MaxErrorBody))
		return &StatusError{Status: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, limits.MaxUpstreamBody)).Decode(dst); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// Endpoint returns the OAuth2 endpoint for the given URLs, falling back to
// the platform defaults. Client credentials are sent in the request body.
func Endpoint(authorizeURL, tokenURL string) oauth2.Endpoint {
	if authorizeURL == "" {
		authorizeURL = DefaultAuthorizeURL
	}
	if tokenURL == "" {
		tokenURL = DefaultTokenURL
	}
	return oauth2.Endpoint{
		AuthURL:   authorizeURL,
		TokenURL:  tokenURL,
		AuthStyle: oauth2.AuthStyleInParams,
	}
}

// CloseIdleConnections closes idle keep-alive connections held by the
// underlying HTTP client.
func (c *Client) CloseIdleConnections() {
	c.http.CloseIdleConnections()
}
