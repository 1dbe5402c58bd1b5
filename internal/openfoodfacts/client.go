package openfoodfacts

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/pkg/errors"

	"github.com/scan-track/fridge-service/internal/models"
)

const (
	// SearchPageSize is how many products one keyword search requests
	// from the upstream API.
	SearchPageSize = 24

	defaultTimeout = 30 * time.Second
	maxRetries     = 2
	baseBackoff    = 500 * time.Millisecond

	userAgent = "ScanTrack-FridgeService/1.0"

	unknownProductName = "名称不明"
)

// ErrProductNotFound is returned when the upstream knows nothing about
// a barcode.
var ErrProductNotFound = errors.New("product not found")

// Client talks to the Open Food Facts API with retry on transient
// failures.
type Client struct {
	httpClient *http.Client
	productURL string
	searchURL  string
	logger     *slog.Logger
}

// NewClient creates a new Open Food Facts client. productURL is the
// base of the by-barcode endpoint, searchURL the full search.pl URL.
func NewClient(productURL, searchURL string, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		productURL: productURL,
		searchURL:  searchURL,
		logger:     logger,
	}
}

type productResponse struct {
	Status  int            `json:"status"`
	Product productPayload `json:"product"`
}

type productPayload struct {
	Code          string `json:"code"`
	ProductNameJa string `json:"product_name_ja"`
	ProductName   string `json:"product_name"`
	ImageURL      string `json:"image_url"`
	ImageFrontURL string `json:"image_front_url"`
	Categories    string `json:"categories"`
}

type searchResponse struct {
	Products []productPayload `json:"products"`
}

// FetchByBarcode looks a single product up by barcode. Returns
// ErrProductNotFound when the upstream has no record for the code.
func (c *Client) FetchByBarcode(ctx context.Context, barcode string) (*models.ProductCandidate, error) {
	reqURL := c.productURL + "/" + url.PathEscape(barcode) + ".json"

	body, err := c.get(ctx, reqURL)
	if err != nil {
		return nil, err
	}

	var resp productResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, errors.Wrap(err, "failed to decode product response")
	}

	if resp.Status != 1 {
		return nil, ErrProductNotFound
	}

	candidate := mapCandidate(resp.Product)
	if candidate.Code == "" {
		candidate.Code = barcode
	}

	return &candidate, nil
}

// SearchByKeyword runs a free-text product search and returns raw,
// not-yet-deduplicated candidates.
func (c *Client) SearchByKeyword(ctx context.Context, keyword string) ([]models.ProductCandidate, error) {
	params := url.Values{}
	params.Set("search_terms", keyword)
	params.Set("search_simple", "1")
	params.Set("action", "process")
	params.Set("json", "1")
	params.Set("page_size", strconv.Itoa(SearchPageSize))

	body, err := c.get(ctx, c.searchURL+"?"+params.Encode())
	if err != nil {
		return nil, err
	}

	var resp searchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, errors.Wrap(err, "failed to decode search response")
	}

	candidates := make([]models.ProductCandidate, 0, len(resp.Products))
	for _, p := range resp.Products {
		candidates = append(candidates, mapCandidate(p))
	}

	return candidates, nil
}

// mapCandidate applies the upstream field fallbacks: Japanese name
// first, then the generic name, then a fixed unknown marker.
func mapCandidate(p productPayload) models.ProductCandidate {
	name := p.ProductNameJa
	if name == "" {
		name = p.ProductName
	}
	if name == "" {
		name = unknownProductName
	}

	image := p.ImageURL
	if image == "" {
		image = p.ImageFrontURL
	}

	return models.ProductCandidate{
		Name:       name,
		Image:      image,
		Code:       p.Code,
		Categories: p.Categories,
	}
}

// get performs a GET with retry on transport errors, 429 and 5xx.
func (c *Client) get(ctx context.Context, reqURL string) ([]byte, error) {
	var lastErr error

	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			backoff := baseBackoff << (attempt - 1)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
		if err != nil {
			return nil, errors.Wrap(err, "failed to build request")
		}
		req.Header.Set("User-Agent", userAgent)
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			c.logger.Warn("product lookup request failed",
				"url", reqURL,
				"attempt", attempt+1,
				"error", err,
			)
			continue
		}

		if resp.StatusCode == http.StatusOK {
			body, err := io.ReadAll(resp.Body)
			resp.Body.Close()
			if err != nil {
				return nil, errors.Wrap(err, "failed to read response body")
			}
			return body, nil
		}

		resp.Body.Close()

		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			lastErr = fmt.Errorf("upstream returned status %d", resp.StatusCode)
			c.logger.Warn("product lookup retryable status",
				"url", reqURL,
				"status", resp.StatusCode,
				"attempt", attempt+1,
			)
			continue
		}

		return nil, fmt.Errorf("upstream returned status %d", resp.StatusCode)
	}

	return nil, errors.Wrapf(lastErr, "lookup failed after %d attempts", maxRetries+1)
}
