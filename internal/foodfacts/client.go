// Package foodfacts looks up scanned barcodes against the OpenFoodFacts
// database and maps the result onto the inventory's product shape.
package foodfacts

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"shelfsmart/internal/domain"
)

// DefaultBaseURL is the public OpenFoodFacts endpoint.
const DefaultBaseURL = "https://world.openfoodfacts.org"

var (
	quantityDigits    = regexp.MustCompile(`[^0-9.]`)
	quantityNonDigits = regexp.MustCompile(`[0-9.]`)
)

// Client is a thin HTTP client for the OpenFoodFacts product API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the given base URL (DefaultBaseURL when
// empty).
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

type productResponse struct {
	Status  int `json:"status"`
	Product *struct {
		ProductName         string `json:"product_name"`
		Brands              string `json:"brands"`
		ManufacturingPlaces string `json:"manufacturing_places"`
		Categories          string `json:"categories"`
		ImageURL            string `json:"image_url"`
		Quantity            string `json:"quantity"`
	} `json:"product"`
}

// LookupBarcode fetches product details for a barcode. A barcode the database
// does not know yields (nil, nil) so the caller can fall back to manual
// entry; blank fields map to zero values rather than failing.
func (c *Client) LookupBarcode(ctx context.Context, barcode string) (*domain.Product, error) {
	endpoint := fmt.Sprintf("%s/api/v0/product/%s.json", c.baseURL, url.PathEscape(barcode))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("barcode lookup failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d from food database", resp.StatusCode)
	}

	var payload productResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if payload.Status != 1 || payload.Product == nil {
		return nil, nil
	}

	p := payload.Product
	product := &domain.Product{
		Name:         p.ProductName,
		Barcode:      barcode,
		Brand:        p.Brands,
		Manufacturer: p.ManufacturingPlaces,
		Category:     MapCategory(p.Categories, p.ProductName),
		Units:        1,
	}
	if p.ImageURL != "" {
		photo := p.ImageURL
		product.PhotoURL = &photo
	}
	if value, unit, ok := parseQuantity(p.Quantity); ok {
		product.QuantityValue = &value
		if unit != "" {
			product.QuantityUnit = &unit
		}
	}
	return product, nil
}

// parseQuantity splits an OpenFoodFacts quantity string such as "330 ml" or
// "1.5kg" into its numeric value and unit.
func parseQuantity(quantity string) (float64, string, bool) {
	if quantity == "" {
		return 0, "", false
	}
	valueStr := quantityDigits.ReplaceAllString(quantity, "")
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return 0, "", false
	}
	unit := strings.TrimSpace(quantityNonDigits.ReplaceAllString(quantity, ""))
	return value, unit, true
}
