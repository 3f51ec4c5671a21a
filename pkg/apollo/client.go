// Package apollo provides a client for the Apollo.io enrichment and search API.
package apollo

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rotisserie/eris"
)

const (
	defaultBaseURL = "https://api.apollo.io/api/v1"
	defaultTimeout = 15 * time.Second
)

// ErrEnrichmentUnavailable signals that the person-match endpoint is not
// entitled on the current plan or could not be reached. Callers are expected
// to stop attempting live enrichment and switch to search-based fallback.
var ErrEnrichmentUnavailable = eris.New("apollo: person enrichment unavailable")

// Client defines the Apollo lookup operations.
type Client interface {
	// MatchPerson enriches a person identified by a LinkedIn profile URL.
	// Returns (nil, nil) when the service has no match for the profile.
	MatchPerson(ctx context.Context, linkedinURL string) (*Person, error)
	// SearchTopPeople returns the most prominent people at a company domain.
	SearchTopPeople(ctx context.Context, domain string) ([]Person, error)
	// EnrichCompany looks up organization data for a company domain.
	EnrichCompany(ctx context.Context, domain string) (Company, error)
}

// Option configures the Apollo client.
type Option func(*httpClient)

// WithBaseURL sets a custom API base URL (for testing).
func WithBaseURL(url string) Option {
	return func(c *httpClient) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *httpClient) {
		c.http = hc
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *httpClient) {
		c.http.Timeout = d
	}
}

type httpClient struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

// NewClient creates an Apollo API client.
func NewClient(apiKey string, opts ...Option) Client {
	c := &httpClient{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		http: &http.Client{
			Timeout: defaultTimeout,
			Transport: &http.Transport{
				MaxIdleConnsPerHost: 20,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// MatchPerson posts a person-match request. Entitlement denials (401/403/404)
// and transport-level failures both yield ErrEnrichmentUnavailable: the paid
// endpoint is treated as gone for the rest of the run either way. Any other
// non-success status is a hard failure.
func (c *httpClient) MatchPerson(ctx context.Context, linkedinURL string) (*Person, error) {
	body, err := json.Marshal(matchRequest{LinkedinURL: linkedinURL})
	if err != nil {
		return nil, eris.Wrap(err, "apollo: marshal match request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/people/match", bytes.NewReader(body))
	if err != nil {
		return nil, eris.Wrap(err, "apollo: create match request")
	}
	c.setHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, ErrEnrichmentUnavailable
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized,
		resp.StatusCode == http.StatusForbidden,
		resp.StatusCode == http.StatusNotFound:
		return nil, ErrEnrichmentUnavailable
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, eris.Errorf("apollo: people match: unexpected status %d", resp.StatusCode)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, ErrEnrichmentUnavailable
	}

	var result matchResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, ErrEnrichmentUnavailable
	}

	return result.Person, nil
}

// SearchTopPeople queries the top-people search endpoint. A 401/403/404/422 is
// a localized miss for that domain and yields an empty result without touching
// enrichment availability.
func (c *httpClient) SearchTopPeople(ctx context.Context, domain string) ([]Person, error) {
	domain = NormalizeDomain(domain)
	if domain == "" {
		return nil, nil
	}

	endpoint := c.baseURL + "/mixed_people/organization_top_people?domain=" + url.QueryEscape(domain)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, eris.Wrap(err, "apollo: create search request")
	}
	c.setHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, eris.Wrap(err, "apollo: top people search")
	}
	defer resp.Body.Close()

	if softMiss(resp.StatusCode) {
		return nil, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, eris.Errorf("apollo: top people search: unexpected status %d", resp.StatusCode)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, eris.Wrap(err, "apollo: read search response")
	}

	var result searchResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, eris.Wrap(err, "apollo: unmarshal search response")
	}

	return result.People, nil
}

// EnrichCompany posts an organization enrichment request, with the same
// soft-miss status set as SearchTopPeople.
func (c *httpClient) EnrichCompany(ctx context.Context, domain string) (Company, error) {
	domain = NormalizeDomain(domain)
	if domain == "" {
		return Company{}, nil
	}

	body, err := json.Marshal(enrichRequest{Domain: domain})
	if err != nil {
		return Company{}, eris.Wrap(err, "apollo: marshal enrich request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/organizations/enrich", bytes.NewReader(body))
	if err != nil {
		return Company{}, eris.Wrap(err, "apollo: create enrich request")
	}
	c.setHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return Company{}, eris.Wrap(err, "apollo: organization enrich")
	}
	defer resp.Body.Close()

	if softMiss(resp.StatusCode) {
		return Company{}, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Company{}, eris.Errorf("apollo: organization enrich: unexpected status %d", resp.StatusCode)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return Company{}, eris.Wrap(err, "apollo: read enrich response")
	}

	var result enrichResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return Company{}, eris.Wrap(err, "apollo: unmarshal enrich response")
	}

	return result.Organization, nil
}

func (c *httpClient) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Api-Key", c.apiKey)
}

// softMiss reports whether a status means "no data for this query" rather
// than a provider error: 422 covers domains Apollo refuses to parse.
func softMiss(status int) bool {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound, http.StatusUnprocessableEntity:
		return true
	}
	return false
}
