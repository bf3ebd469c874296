package recipe

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"shelfsmart/internal/domain"

	"go.uber.org/zap"
)

// MaxSearchTerms caps how many distinct candidate terms are queried per
// search, bounding the external call volume.
const MaxSearchTerms = 10

var (
	// ErrNoIngredients is returned before any network call when the caller
	// supplies an empty pantry.
	ErrNoIngredients = errors.New("no ingredients to search with")
)

// Source is the recipe-source collaborator contract: a shallow
// search-by-ingredient plus a detail fetch by id.
type Source interface {
	SearchByIngredient(ctx context.Context, ingredient string) ([]domain.RecipeSummary, error)
	LookupByID(ctx context.Context, id string) (*domain.RecipeDetail, error)
}

// Searcher is the matcher behavior consumed by the transport layer.
type Searcher interface {
	Search(ctx context.Context, ingredients []string) (map[int][]domain.Recipe, error)
}

// Matcher ranks recipes from an external source by how completely the
// caller's pantry covers their ingredients.
type Matcher struct {
	source Source
	logger *zap.Logger
}

// NewMatcher creates a Matcher over the given recipe source.
func NewMatcher(source Source, logger *zap.Logger) *Matcher {
	return &Matcher{source: source, logger: logger}
}

// Search translates the pantry ingredient names to canonical terms, queries
// the source once per term (up to MaxSearchTerms), deduplicates results by
// recipe id and groups the materialized recipes by missing ingredient count.
// A failure while processing one term skips the rest of that term only; the
// search as a whole fails when every queried term failed and nothing was
// found.
func (m *Matcher) Search(ctx context.Context, ingredients []string) (map[int][]domain.Recipe, error) {
	if len(ingredients) == 0 {
		return nil, ErrNoIngredients
	}

	terms := candidateTerms(ingredients)
	candidateSet := make(map[string]struct{}, len(terms))
	for _, t := range terms {
		candidateSet[strings.ToLower(strings.TrimSpace(t))] = struct{}{}
	}

	if len(terms) > MaxSearchTerms {
		terms = terms[:MaxSearchTerms]
	}

	seen := make(map[string]domain.Recipe)
	order := make([]string, 0)
	failedTerms := 0
	var lastErr error

	for _, term := range terms {
		summaries, err := m.source.SearchByIngredient(ctx, term)
		if err != nil {
			m.logger.Warn("Recipe search failed for ingredient, skipping",
				zap.String("ingredient", term),
				zap.Error(err),
			)
			failedTerms++
			lastErr = err
			continue
		}

		for _, summary := range summaries {
			if _, ok := seen[summary.ID]; ok {
				continue
			}
			detail, err := m.source.LookupByID(ctx, summary.ID)
			if err != nil {
				// The whole term is abandoned on the first detail failure,
				// matching the per-term recovery scope.
				m.logger.Warn("Recipe detail fetch failed, skipping rest of term",
					zap.String("ingredient", term),
					zap.String("recipe_id", summary.ID),
					zap.Error(err),
				)
				failedTerms++
				lastErr = err
				break
			}
			if detail == nil {
				continue
			}
			seen[summary.ID] = buildRecipe(detail, candidateSet)
			order = append(order, summary.ID)
		}
	}

	if len(seen) == 0 && failedTerms == len(terms) && lastErr != nil {
		return nil, fmt.Errorf("recipe source unreachable: %w", lastErr)
	}

	grouped := make(map[int][]domain.Recipe)
	for _, id := range order {
		r := seen[id]
		missing := r.MissingCount()
		grouped[missing] = append(grouped[missing], r)
	}
	return grouped, nil
}

// Complete returns the recipes whose ingredients are all available.
func Complete(grouped map[int][]domain.Recipe) []domain.Recipe {
	return grouped[0]
}

// AlmostComplete returns the recipes missing one or two ingredients, the
// one-missing recipes first.
func AlmostComplete(grouped map[int][]domain.Recipe) []domain.Recipe {
	almost := make([]domain.Recipe, 0, len(grouped[1])+len(grouped[2]))
	almost = append(almost, grouped[1]...)
	almost = append(almost, grouped[2]...)
	sort.SliceStable(almost, func(i, j int) bool {
		return almost[i].MissingCount() < almost[j].MissingCount()
	})
	return almost
}

// candidateTerms expands every pantry name through the translation table and
// deduplicates while preserving first-seen order.
func candidateTerms(ingredients []string) []string {
	seen := make(map[string]struct{})
	terms := make([]string, 0, len(ingredients))
	for _, ingredient := range ingredients {
		for _, term := range Translate(ingredient) {
			if _, ok := seen[term]; ok {
				continue
			}
			seen[term] = struct{}{}
			terms = append(terms, term)
		}
	}
	return terms
}

// buildRecipe materializes a Recipe from a detail record, computing the
// availability of each ingredient against the candidate set once. The
// heuristic is deliberately loose: an ingredient counts as available when it
// contains, or is contained by, any candidate term, case-insensitively.
func buildRecipe(detail *domain.RecipeDetail, candidateSet map[string]struct{}) domain.Recipe {
	ingredients := make([]domain.RecipeIngredient, 0, len(detail.Ingredients))
	for _, im := range detail.Ingredients {
		name := strings.TrimSpace(im.Name)
		if name == "" {
			continue
		}
		ingredients = append(ingredients, domain.RecipeIngredient{
			Name:      name,
			Measure:   strings.TrimSpace(im.Measure),
			Available: isAvailable(name, candidateSet),
		})
	}
	return domain.Recipe{
		ID:           detail.ID,
		Name:         detail.Name,
		Category:     detail.Category,
		Area:         detail.Area,
		Instructions: detail.Instructions,
		Thumbnail:    detail.Thumbnail,
		YoutubeURL:   detail.YoutubeURL,
		Ingredients:  ingredients,
	}
}

func isAvailable(ingredient string, candidateSet map[string]struct{}) bool {
	lower := strings.ToLower(ingredient)
	for candidate := range candidateSet {
		if strings.Contains(lower, candidate) || strings.Contains(candidate, lower) {
			return true
		}
	}
	return false
}
