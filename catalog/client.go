// Package catalog fetches product listings from the remote storefront API.
package catalog

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
	"time"

	"github.com/sirupsen/logrus"

	"go-storefront/models"
	"go-storefront/utils"
)

// ErrNotFound is returned when no product matches the requested slug.
var ErrNotFound = errors.New("product not found")

// Client calls the remote product API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *logrus.Logger
}

// NewClient creates a catalog client for the given API base URL.
func NewClient(baseURL string, log *logrus.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		log: log,
	}
}

// Filter narrows a product listing. Zero values mean no constraint; an
// empty Filter returns the full catalog. Prices are major units.
type Filter struct {
	Sex      string
	Brand    string
	MinPrice float64
	MaxPrice float64
}

func (f Filter) query() string {
	q := url.Values{}
	if f.Sex != "" {
		q.Set("sex", f.Sex)
	}
	if f.Brand != "" {
		q.Set("brand", f.Brand)
	}
	if f.MinPrice > 0 {
		q.Set("minPrice", strconv.FormatFloat(f.MinPrice, 'f', -1, 64))
	}
	if f.MaxPrice > 0 {
		q.Set("maxPrice", strconv.FormatFloat(f.MaxPrice, 'f', -1, 64))
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}

// ListProducts fetches products matching the filter.
func (c *Client) ListProducts(ctx context.Context, filter Filter) ([]models.Product, error) {
	endpoint := c.baseURL + "/products" + filter.query()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("building product request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching products: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("product API returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var products []models.Product
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		return nil, fmt.Errorf("decoding products: %w", err)
	}

	c.log.WithField("count", len(products)).Debug("fetched products")
	return products, nil
}

// ProductBySlug finds a product whose slugified name matches. The remote
// API exposes no detail endpoint to this app, so the lookup goes through
// the listing.
func (c *Client) ProductBySlug(ctx context.Context, slug string) (*models.Product, error) {
	products, err := c.ListProducts(ctx, Filter{})
	if err != nil {
		return nil, err
	}
	for i := range products {
		if utils.Slugify(products[i].Name) == slug {
			return &products[i], nil
		}
	}
	return nil, ErrNotFound
}
