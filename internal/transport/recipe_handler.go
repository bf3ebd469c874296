package transport

import (
	"errors"
	"net/http"

	"shelfsmart/internal/domain"
	"shelfsmart/internal/middleware"
	"shelfsmart/internal/recipe"
	"shelfsmart/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// SearchRecipesRequest carries the pantry ingredient names to search with.
type SearchRecipesRequest struct {
	Ingredients []string `json:"ingredients"`
}

// RecipesResponse groups search results by completeness.
type RecipesResponse struct {
	Complete       []domain.Recipe         `json:"complete"`
	AlmostComplete []domain.Recipe         `json:"almost_complete"`
	Groups         map[int][]domain.Recipe `json:"groups"`
}

// RecipeHandler serves recipe searches from explicit ingredient lists and
// from the current inventory.
type RecipeHandler struct {
	matcher   recipe.Searcher
	inventory service.InventoryService
	logger    *zap.Logger
}

// NewRecipeHandler creates a new RecipeHandler.
func NewRecipeHandler(matcher recipe.Searcher, inventory service.InventoryService, logger *zap.Logger) *RecipeHandler {
	return &RecipeHandler{matcher: matcher, inventory: inventory, logger: logger}
}

// RegisterRoutes registers the recipe routes.
func (h *RecipeHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/recipes", func(r chi.Router) {
		r.Post("/search", h.Search)
		r.Get("/suggestions", h.Suggestions)
	})
}

// Search runs a recipe search over the submitted ingredient names.
func (h *RecipeHandler) Search(w http.ResponseWriter, r *http.Request) {
	var req SearchRecipesRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	h.search(w, r, req.Ingredients)
}

// Suggestions runs a recipe search seeded from the names of everything
// currently in the inventory.
func (h *RecipeHandler) Suggestions(w http.ResponseWriter, r *http.Request) {
	products, err := h.inventory.ListProducts(r.Context())
	if err != nil {
		h.logger.Error("Failed to load inventory for suggestions", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to load inventory")
		return
	}

	ingredients := make([]string, 0, len(products))
	for _, p := range products {
		ingredients = append(ingredients, p.Name)
	}
	h.search(w, r, ingredients)
}

func (h *RecipeHandler) search(w http.ResponseWriter, r *http.Request, ingredients []string) {
	grouped, err := h.matcher.Search(r.Context(), ingredients)
	if err != nil {
		if errors.Is(err, recipe.ErrNoIngredients) {
			middleware.RespondWithError(w, http.StatusBadRequest, "no ingredients in your inventory")
			return
		}
		h.logger.Error("Recipe search failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusBadGateway, "failed to search recipes")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, RecipesResponse{
		Complete:       recipe.Complete(grouped),
		AlmostComplete: recipe.AlmostComplete(grouped),
		Groups:         grouped,
	})
}
