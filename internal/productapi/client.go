// Package productapi is the client for the external product API this
// storefront renders from. The API is treated as untrusted, partial input:
// responses are decoded into loose maps and handed to catalog.Normalize.
package productapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

// Params narrows the upstream product listing.
type Params struct {
	Type     string // pet category: dogs, cats, small-pets...
	Category string
	Sub      string
	Limit    int
}

// Client fetches raw product records over REST with retries on transient
// failures.
type Client struct {
	baseURL string
	http    *retryablehttp.Client
}

func NewClient(baseURL string) *Client {
	rc := retryablehttp.NewClient()
	rc.RetryMax = 2
	rc.RetryWaitMin = 200 * time.Millisecond
	rc.RetryWaitMax = 2 * time.Second
	rc.HTTPClient.Timeout = 10 * time.Second
	rc.Logger = nil

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    rc,
	}
}

// BaseURL is also what the image resolver anchors relative paths to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// GetCustomerProducts fetches the raw product list for a listing page. The
// endpoint has returned both a bare JSON array and a {"products": [...]}
// envelope across backend versions; both are accepted.
func (c *Client) GetCustomerProducts(ctx context.Context, p Params) ([]map[string]any, error) {
	q := url.Values{}
	if p.Type != "" {
		q.Set("type", p.Type)
	}
	if p.Category != "" {
		q.Set("category", p.Category)
	}
	if p.Sub != "" {
		q.Set("sub", p.Sub)
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}

	endpoint := c.baseURL + "/api/customer/products"
	if encoded := q.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("product api: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return decodeProducts(body)
}

func decodeProducts(body []byte) ([]map[string]any, error) {
	var envelope struct {
		Products []map[string]any `json:"products"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Products != nil {
		return envelope.Products, nil
	}

	var bare []map[string]any
	if err := json.Unmarshal(body, &bare); err != nil {
		return nil, fmt.Errorf("product api: undecodable response: %w", err)
	}
	return bare, nil
}
