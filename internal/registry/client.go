// Package registry is the Companies House API collaborator: it fetches raw
// company data and maps profiles into portfolio records. Every lookup
// failure collapses to one signal; the core never distinguishes not-found
// from transport or auth errors.
package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/chconnect-dev/chconnect/internal/deadline"
	"github.com/chconnect-dev/chconnect/internal/model"
)

// DefaultBaseURL is the public Companies House data API.
const DefaultBaseURL = "https://api.company-information.service.gov.uk"

// Client calls the Companies House REST API. The API key is sent as the
// basic-auth username with an empty password, per the CH auth scheme.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithDiskCache caches successful responses on disk for the rest of the
// calendar day, so repeated lookups of the same company do not re-hit the
// API.
func WithDiskCache(dir string) Option {
	return func(c *Client) {
		base := c.httpClient.Transport
		if base == nil {
			base = http.DefaultTransport
		}
		hc := *c.httpClient
		hc.Transport = &diskCache{base: base, dir: dir}
		c.httpClient = &hc
	}
}

// NewClient creates a Client for the given API base URL and key.
func NewClient(baseURL, apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// getJSON performs an authenticated GET and decodes the body into v.
func (c *Client) getJSON(ctx context.Context, endpoint string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.SetBasicAuth(c.apiKey, "")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("calling %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: %s", endpoint, resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decoding %s: %w", endpoint, err)
	}
	return nil
}

// Profile fetches the company profile for a CRN.
func (c *Client) Profile(ctx context.Context, crn string) (*Profile, error) {
	var p Profile
	if err := c.getJSON(ctx, "/company/"+crn, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Officers fetches the officer appointments for a CRN.
func (c *Client) Officers(ctx context.Context, crn string) (*OfficerList, error) {
	var l OfficerList
	if err := c.getJSON(ctx, "/company/"+crn+"/officers", &l); err != nil {
		return nil, err
	}
	return &l, nil
}

// Charges fetches the registered charges for a CRN.
func (c *Client) Charges(ctx context.Context, crn string) (*ChargeList, error) {
	var l ChargeList
	if err := c.getJSON(ctx, "/company/"+crn+"/charges", &l); err != nil {
		return nil, err
	}
	return &l, nil
}

// FilingHistory fetches the most recent filings for a CRN.
func (c *Client) FilingHistory(ctx context.Context, crn string, itemsPerPage int) (*FilingList, error) {
	var l FilingList
	endpoint := fmt.Sprintf("/company/%s/filing-history?items_per_page=%d", crn, itemsPerPage)
	if err := c.getJSON(ctx, endpoint, &l); err != nil {
		return nil, err
	}
	return &l, nil
}

// FetchCompany fetches a profile and maps it into the portfolio record
// shape. Missing due dates default to the unknown sentinel and LastUpdated
// is stamped with today's date. The second return is false on any failure.
func (c *Client) FetchCompany(ctx context.Context, crn string) (model.Company, bool) {
	p, err := c.Profile(ctx, crn)
	if err != nil {
		return model.Company{}, false
	}
	return MapProfile(crn, p, time.Now()), true
}

// MapProfile builds a portfolio record from a profile response.
func MapProfile(crn string, p *Profile, now time.Time) model.Company {
	return model.Company{
		CRN:         crn,
		Name:        p.CompanyName,
		Status:      p.CompanyStatus,
		AccountsDue: orUnknown(p.Accounts.NextDue),
		CSDue:       orUnknown(p.ConfirmationStatement.NextDue),
		LastUpdated: now.Format(deadline.DateFormat),
	}
}

func orUnknown(s string) string {
	if s == "" {
		return model.UnknownDate
	}
	return s
}
