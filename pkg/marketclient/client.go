package marketclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	jsoniter "github.com/json-iterator/go"

	"weapon_market/pkg/httpx"
	"weapon_market/pkg/rest"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

// APIError is returned for every non-2xx response.
type APIError struct {
	StatusCode int
	Body       rest.Error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("market api: status %d: %s: %s", e.StatusCode, e.Body.Code, e.Body.Error)
}

// Client is a typed client of the weapon market HTTP API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

type Option func(*Client)

// WithHTTPClient replaces the underlying client. Apply it before the
// transport wrapping options.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithToken authenticates every request with a static bearer token.
func WithToken(token string) Option {
	return func(c *Client) {
		c.wrapTransport(func(next http.RoundTripper) http.RoundTripper {
			return httpx.NewAuthBearerRoundTripper(next, StaticToken(token))
		})
	}
}

// WithLogging logs requests and responses through the context logger.
// Options apply inside out: put it before WithToken to see the
// Authorization header (masked by logx.SensitiveDataMasker) in the dump.
func WithLogging(opts ...httpx.Option) Option {
	return func(c *Client) {
		c.wrapTransport(func(next http.RoundTripper) http.RoundTripper {
			return httpx.NewLoggingRoundTripper(next, opts...)
		})
	}
}

func New(baseURL string, opts ...Option) Client {
	c := Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Transport: http.DefaultTransport},
	}

	for _, opt := range opts {
		opt(&c)
	}

	return c
}

func (c *Client) wrapTransport(wrap func(http.RoundTripper) http.RoundTripper) {
	transport := c.httpClient.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}

	httpClient := *c.httpClient
	httpClient.Transport = wrap(transport)
	c.httpClient = &httpClient
}

// Search returns a page of open listings and whether it was served from cache.
func (c Client) Search(ctx context.Context, query url.Values) (rest.SearchPage, bool, error) {
	var page rest.SearchPage

	endpoint := "/static/market/weapon"
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	resp, err := c.do(ctx, http.MethodGet, endpoint, nil, &page)
	if err != nil {
		return rest.SearchPage{}, false, err
	}

	return page, resp.Header.Get("X-Cache") == "HIT", nil
}

func (c Client) Upsert(ctx context.Context, network, weaponID string, listing rest.WeaponListing) error {
	var ack rest.Added

	_, err := c.do(ctx, http.MethodPut, weaponPath(network, weaponID), listing, &ack)

	return err
}

func (c Client) MarkSold(ctx context.Context, network, weaponID string) error {
	var ack rest.Sold

	_, err := c.do(ctx, http.MethodGet, weaponPath(network, weaponID)+"/sell", nil, &ack)

	return err
}

func (c Client) Delete(ctx context.Context, network, weaponID string) error {
	var ack rest.Deleted

	_, err := c.do(ctx, http.MethodDelete, weaponPath(network, weaponID), nil, &ack)

	return err
}

func (c Client) DeleteAllForSeller(ctx context.Context, sellerAddress string) error {
	var ack rest.Deleted

	_, err := c.do(ctx, http.MethodDelete, "/market/weapon/all/"+url.PathEscape(sellerAddress), nil, &ack)

	return err
}

func weaponPath(network, weaponID string) string {
	return "/market/weapon/" + url.PathEscape(network) + "/" + url.PathEscape(weaponID)
}

func (c Client) do(
	ctx context.Context,
	httpMethod string,
	endpoint string,
	request any,
	dest any,
) (*http.Response, error) {
	payload := io.Reader(http.NoBody)

	if request != nil {
		b, err := json.Marshal(request)
		if err != nil {
			return nil, fmt.Errorf("json.Marshal: %w", err)
		}

		payload = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, httpMethod, c.baseURL+endpoint, payload)
	if err != nil {
		return nil, fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	if request != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("httpClient.Do: %w", err)
	}

	defer resp.Body.Close()

	if err = parseResponse(resp, dest); err != nil {
		return nil, err
	}

	return resp, nil
}

func parseResponse(r *http.Response, dest any) error {
	if r.StatusCode < http.StatusOK || r.StatusCode >= http.StatusMultipleChoices {
		apiErr := &APIError{StatusCode: r.StatusCode}

		if err := json.NewDecoder(r.Body).Decode(&apiErr.Body); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("json.Decode(err destination): %w", err)
		}

		return apiErr
	}

	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		return fmt.Errorf("json.Decode(success destination): %w", err)
	}

	return nil
}
