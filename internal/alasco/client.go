package alasco

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/sylvainHellin/Alasco/internal/alasco/types"
	"github.com/sylvainHellin/Alasco/internal/logger"
)

const DefaultBaseURL = "https://api.alasco.de/v1/"

// Per-endpoint chunk sizes for filter value lists. The reporting endpoint
// enforces a stricter server-side limit than the regular resources.
const (
	defaultChunkSize   = 50
	reportingChunkSize = 10
)

type Config struct {
	BaseURL    string
	APIKey     string
	APIToken   string
	HTTPClient *http.Client
	Logger     *logger.Logger
}

// Client talks to the Alasco REST API. All calls are synchronous and
// blocking; failed requests are surfaced immediately and never retried.
type Client struct {
	baseURL    string
	apiKey     string
	apiToken   string
	httpClient *http.Client
	log        *logger.Logger
}

func New(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	appLogger := cfg.Logger
	if appLogger == nil {
		appLogger = logger.New(logger.LevelInfo)
	}

	return &Client{
		baseURL:    baseURL,
		apiKey:     cfg.APIKey,
		apiToken:   cfg.APIToken,
		httpClient: httpClient,
		log:        appLogger,
	}
}

// Resource endpoints.
func (c *Client) propertiesURL() string         { return c.baseURL + "properties/" }
func (c *Client) projectsURL() string           { return c.baseURL + "projects/" }
func (c *Client) contractUnitsURL() string      { return c.baseURL + "contract_units/" }
func (c *Client) contractsURL() string          { return c.baseURL + "contracts/" }
func (c *Client) contractorsURL() string        { return c.baseURL + "contractors/" }
func (c *Client) contractingEntitiesURL() string { return c.baseURL + "contracting_entities/" }
func (c *Client) invoicesURL() string           { return c.baseURL + "invoices/" }
func (c *Client) changeOrdersURL() string       { return c.baseURL + "change_orders/" }
func (c *Client) reportingURL() string          { return c.baseURL + "reporting/contract_units" }

// Document endpoints, exposed because downloader and uploader share them.
func (c *Client) ContractDocumentsURL(contractID string) string {
	return fmt.Sprintf("%scontracts/%s/documents/", c.baseURL, contractID)
}

func (c *Client) ChangeOrderDocumentsURL(changeOrderID string) string {
	return fmt.Sprintf("%schange_orders/%s/documents/", c.baseURL, changeOrderID)
}

func (c *Client) InvoiceDocumentsURL(invoiceID string) string {
	return fmt.Sprintf("%sinvoices/%s/documents/", c.baseURL, invoiceID)
}

/*
GetJSON fetches every page of the given resource URL. The optional filter is
applied to the first request only: the "links.next" URL already embeds the
pagination state, so follow-up pages are requested as-is. Pages come back in
request order, first page first.

Pagination is an explicit loop with an accumulator so arbitrarily deep result
sets cannot exhaust the stack.
*/
func (c *Client) GetJSON(ctx context.Context, url string, filter *types.Filter) ([]types.Page, error) {
	const component = "Fetcher"

	if filter != nil {
		url = filter.Apply(url)
	}

	var pages []types.Page
	next := url
	for next != "" {
		c.log.Debug(component, "API call: url=%s", truncate(next, 100))

		page, err := c.getPage(ctx, next)
		if err != nil {
			return nil, err
		}
		pages = append(pages, page)
		next = page.NextLink()
	}

	return pages, nil
}

func (c *Client) getPage(ctx context.Context, url string) (types.Page, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &types.FetchError{URL: url, Err: err}
	}
	c.setAuthHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &types.FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &types.FetchError{URL: url, Err: fmt.Errorf("unexpected status: %s", resp.Status)}
	}

	var page types.Page
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, &types.FetchError{URL: url, Err: fmt.Errorf("decoding response: %w", err)}
	}

	return page, nil
}

// DownloadFile fetches a binary document body, typically from a download
// link carried by a documents table.
func (c *Client) DownloadFile(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &types.FetchError{URL: url, Err: err}
	}
	c.setAuthHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &types.FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &types.FetchError{URL: url, Err: fmt.Errorf("unexpected status: %s", resp.Status)}
	}

	return io.ReadAll(resp.Body)
}

// UploadMultipart posts a prepared multipart form body, used by the document
// uploader. Validation of the form content happens before this call.
func (c *Client) UploadMultipart(ctx context.Context, url, contentType string, body io.Reader) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return &types.FetchError{URL: url, Err: err}
	}
	c.setAuthHeaders(req)
	req.Header.Set("Content-Type", contentType)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &types.FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &types.FetchError{URL: url, Err: fmt.Errorf("unexpected status: %s", resp.Status)}
	}

	return nil
}

func (c *Client) setAuthHeaders(req *http.Request) {
	req.Header.Set("X-API-KEY", c.apiKey)
	req.Header.Set("X-API-TOKEN", c.apiToken)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
