// Package mealdb implements the recipe-source contract against TheMealDB
// public API (filter.php / lookup.php).
package mealdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"shelfsmart/internal/domain"
)

// DefaultBaseURL is the public v1 endpoint.
const DefaultBaseURL = "https://www.themealdb.com/api/json/v1/1"

// maxIngredientSlots is the number of numbered strIngredientN/strMeasureN
// pairs TheMealDB returns per meal.
const maxIngredientSlots = 20

// Client is a thin HTTP client for TheMealDB.
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

// mealListResponse mirrors the filter.php payload. The API returns
// {"meals": null} when nothing matches.
type mealListResponse struct {
	Meals []struct {
		IDMeal       string `json:"idMeal"`
		StrMeal      string `json:"strMeal"`
		StrMealThumb string `json:"strMealThumb"`
	} `json:"meals"`
}

// mealDetailResponse mirrors the lookup.php payload. The numbered ingredient
// fields are decoded as a loose map so the twenty slots can be walked without
// forty struct fields; JSON nulls come back as empty strings.
type mealDetailResponse struct {
	Meals []map[string]string `json:"meals"`
}

// SearchByIngredient returns shallow summaries of the recipes containing the
// given ingredient. An empty result is not an error.
func (c *Client) SearchByIngredient(ctx context.Context, ingredient string) ([]domain.RecipeSummary, error) {
	endpoint := fmt.Sprintf("%s/filter.php?i=%s", c.baseURL, url.QueryEscape(ingredient))

	var payload mealListResponse
	if err := c.get(ctx, endpoint, &payload); err != nil {
		return nil, err
	}

	summaries := make([]domain.RecipeSummary, 0, len(payload.Meals))
	for _, meal := range payload.Meals {
		summaries = append(summaries, domain.RecipeSummary{
			ID:        meal.IDMeal,
			Name:      meal.StrMeal,
			Thumbnail: meal.StrMealThumb,
		})
	}
	return summaries, nil
}

// LookupByID fetches the full recipe record, flattening the numbered
// ingredient/measure pairs into an ordered list and skipping blank slots.
// A missing id yields (nil, nil).
func (c *Client) LookupByID(ctx context.Context, id string) (*domain.RecipeDetail, error) {
	endpoint := fmt.Sprintf("%s/lookup.php?i=%s", c.baseURL, url.QueryEscape(id))

	var payload mealDetailResponse
	if err := c.get(ctx, endpoint, &payload); err != nil {
		return nil, err
	}
	if len(payload.Meals) == 0 {
		return nil, nil
	}

	meal := payload.Meals[0]
	detail := &domain.RecipeDetail{
		ID:           meal["idMeal"],
		Name:         meal["strMeal"],
		Category:     meal["strCategory"],
		Area:         meal["strArea"],
		Instructions: meal["strInstructions"],
		Thumbnail:    meal["strMealThumb"],
		YoutubeURL:   meal["strYoutube"],
	}

	for i := 1; i <= maxIngredientSlots; i++ {
		name := strings.TrimSpace(meal[fmt.Sprintf("strIngredient%d", i)])
		if name == "" {
			continue
		}
		detail.Ingredients = append(detail.Ingredients, domain.IngredientMeasure{
			Name:    name,
			Measure: strings.TrimSpace(meal[fmt.Sprintf("strMeasure%d", i)]),
		})
	}
	return detail, nil
}

func (c *Client) get(ctx context.Context, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d from recipe source", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
