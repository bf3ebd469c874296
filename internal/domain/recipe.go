package domain

// RecipeSummary is the shallow search result returned by the recipe source
// when filtering by a single ingredient.
type RecipeSummary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Thumbnail string `json:"thumbnail"`
}

// IngredientMeasure is one ingredient slot of a recipe detail, before
// availability has been computed.
type IngredientMeasure struct {
	Name    string `json:"name"`
	Measure string `json:"measure"`
}

// RecipeDetail is the full recipe record fetched by id from the recipe
// source. Ingredients are ordered and blank slots have already been dropped.
type RecipeDetail struct {
	ID           string              `json:"id"`
	Name         string              `json:"name"`
	Category     string              `json:"category"`
	Area         string              `json:"area"`
	Instructions string              `json:"instructions"`
	Thumbnail    string              `json:"thumbnail"`
	YoutubeURL   string              `json:"youtube_url,omitempty"`
	Ingredients  []IngredientMeasure `json:"ingredients"`
}

// RecipeIngredient is an ingredient with its availability against the pantry
// snapshot used at construction time. Available is frozen when the Recipe is
// built; a changed inventory means rebuilding the Recipe, not patching it.
type RecipeIngredient struct {
	Name      string `json:"name"`
	Measure   string `json:"measure"`
	Available bool   `json:"available"`
}

// Recipe is an ephemeral search result. It exists only within one result set
// and is never persisted.
type Recipe struct {
	ID           string             `json:"id"`
	Name         string             `json:"name"`
	Category     string             `json:"category"`
	Area         string             `json:"area"`
	Instructions string             `json:"instructions"`
	Thumbnail    string             `json:"thumbnail"`
	YoutubeURL   string             `json:"youtube_url,omitempty"`
	Ingredients  []RecipeIngredient `json:"ingredients"`
}

// MissingCount returns how many of the recipe's ingredients were not
// available in the pantry when the recipe was built.
func (r Recipe) MissingCount() int {
	missing := 0
	for _, ing := range r.Ingredients {
		if !ing.Available {
			missing++
		}
	}
	return missing
}
