// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package hub

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"iter"
	"net/http"
	"net/url"
	"strconv"

	"github.com/stacklok/hubclean/httperr"
	"github.com/stacklok/hubclean/validation"
)

// defaultPageSize is the page size requested from the tag listing endpoint.
const defaultPageSize = 100

// Compile-time interface check.
var _ TagAPI = (*Client)(nil)

// Client talks to the Docker Hub v2 API. It authenticates lazily on the
// first authorized request, caches the bearer token for the run, and
// re-authenticates once if a request comes back 401 (token expiry).
//
// The client is synchronous and issues one request at a time; it is not
// safe for concurrent use.
type Client struct {
	baseURL    string
	username   string
	password   string
	pageSize   int
	httpClient *http.Client

	token string
}

// Option configures a Client.
type Option func(*Client)

// WithCredentials sets the username and password used to obtain a token.
func WithCredentials(username, password string) Option {
	return func(c *Client) {
		c.username = username
		c.password = password
	}
}

// WithHTTPClient sets a custom HTTP client. Used in tests to point the
// client at an httptest server with a short timeout.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithPageSize sets the page size for tag listing.
func WithPageSize(pageSize int) Option {
	return func(c *Client) {
		c.pageSize = pageSize
	}
}

// NewClient creates a Docker Hub client for the given API base URL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		pageSize:   defaultPageSize,
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// loginRequest is the body of the login endpoint.
type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// loginResponse is the reply of the login endpoint.
type loginResponse struct {
	Token string `json:"token"`
}

// tagPage is one page of the tag listing endpoint. Next is empty on the
// last page (the server sends null).
type tagPage struct {
	Results []Tag  `json:"results"`
	Next    string `json:"next"`
}

// Login obtains a bearer token for the configured credentials. A rejected
// login returns an error wrapping ErrAuth.
func (c *Client) Login(ctx context.Context) (string, error) {
	body, err := json.Marshal(loginRequest{Username: c.username, Password: c.password})
	if err != nil {
		return "", fmt.Errorf("encoding login request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/users/login", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("building login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("login: %w", err)
	}
	defer resp.Body.Close()

	if err := httperr.FromResponse("login", resp); err != nil {
		return "", fmt.Errorf("%w: %w", ErrAuth, err)
	}

	var reply loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&reply); err != nil {
		return "", fmt.Errorf("decoding login response: %w", err)
	}
	if err := validation.ValidateHeaderValue(reply.Token); err != nil {
		return "", fmt.Errorf("%w: unusable token: %w", ErrAuth, err)
	}

	return reply.Token, nil
}

// Tags iterates the repository's tags in server order, requesting pages of
// c.pageSize ordered by name and following the server's next links.
//
// A 404 on any page request, including the first, silently ends the
// sequence; this mirrors how the Hub API signals running past the last
// page. The side effect is that a nonexistent repository lists as empty
// rather than failing. Any other non-2xx status is yielded as an error.
func (c *Client) Tags(ctx context.Context, organization, repository string) iter.Seq2[Tag, error] {
	first := fmt.Sprintf("%s/namespaces/%s/repositories/%s/tags?page_size=%d&ordering=name",
		c.baseURL, url.PathEscape(organization), url.PathEscape(repository), c.pageSize)

	return func(yield func(Tag, error) bool) {
		pageURL := first
		for pageURL != "" {
			page, err := c.fetchPage(ctx, pageURL)
			if err != nil {
				if httperr.IsStatus(err, http.StatusNotFound) {
					return
				}
				yield(Tag{}, err)
				return
			}
			for _, tag := range page.Results {
				if !yield(tag, nil) {
					return
				}
			}
			pageURL = page.Next
		}
	}
}

// ListTags collects the Tags sequence into a list of tag names.
func (c *Client) ListTags(ctx context.Context, organization, repository string) ([]string, error) {
	var names []string
	for tag, err := range c.Tags(ctx, organization, repository) {
		if err != nil {
			return nil, err
		}
		names = append(names, tag.Name)
	}
	return names, nil
}

// DeleteTag deletes the named tag from the repository. Any non-2xx status
// is returned as a coded error; deleting a tag that is already gone yields
// a 404 the caller can detect with httperr.IsStatus.
func (c *Client) DeleteTag(ctx context.Context, organization, repository, tag string) error {
	if err := validation.ValidateTag(tag); err != nil {
		return err
	}

	deleteURL := fmt.Sprintf("%s/namespaces/%s/repositories/%s/tags/%s",
		c.baseURL, url.PathEscape(organization), url.PathEscape(repository), url.PathEscape(tag))

	resp, err := c.doAuthorized(ctx, http.MethodDelete, deleteURL)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return httperr.FromResponse("delete tag "+strconv.Quote(tag), resp)
}

// fetchPage requests one page of the tag listing.
func (c *Client) fetchPage(ctx context.Context, pageURL string) (*tagPage, error) {
	resp, err := c.doAuthorized(ctx, http.MethodGet, pageURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := httperr.FromResponse("list tags", resp); err != nil {
		return nil, err
	}

	var page tagPage
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("decoding tag page: %w", err)
	}
	return &page, nil
}

// doAuthorized issues a request with the cached bearer token, logging in
// first if no token is held yet. On a 401 it re-authenticates once and
// retries the request, so a token expiring mid-run does not fail the run.
func (c *Client) doAuthorized(ctx context.Context, method, requestURL string) (*http.Response, error) {
	if c.token == "" {
		token, err := c.Login(ctx)
		if err != nil {
			return nil, err
		}
		c.token = token
	}

	resp, err := c.send(ctx, method, requestURL)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusUnauthorized {
		return resp, nil
	}
	resp.Body.Close()

	token, err := c.Login(ctx)
	if err != nil {
		return nil, err
	}
	c.token = token
	return c.send(ctx, method, requestURL)
}

func (c *Client) send(ctx context.Context, method, requestURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, requestURL, err)
	}
	return resp, nil
}
