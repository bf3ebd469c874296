package recipe

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"shelfsmart/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSource struct {
	summaries map[string][]domain.RecipeSummary
	details   map[string]*domain.RecipeDetail

	searchErr map[string]error
	detailErr map[string]error

	searchCalls []string
}

func (f *fakeSource) SearchByIngredient(_ context.Context, ingredient string) ([]domain.RecipeSummary, error) {
	f.searchCalls = append(f.searchCalls, ingredient)
	if err, ok := f.searchErr[ingredient]; ok {
		return nil, err
	}
	return f.summaries[ingredient], nil
}

func (f *fakeSource) LookupByID(_ context.Context, id string) (*domain.RecipeDetail, error) {
	if err, ok := f.detailErr[id]; ok {
		return nil, err
	}
	return f.details[id], nil
}

func detail(id, name string, ingredients ...string) *domain.RecipeDetail {
	d := &domain.RecipeDetail{ID: id, Name: name}
	for _, ing := range ingredients {
		d.Ingredients = append(d.Ingredients, domain.IngredientMeasure{Name: ing, Measure: "1"})
	}
	return d
}

func TestSearchEmptyPantry(t *testing.T) {
	m := NewMatcher(&fakeSource{}, zap.NewNop())

	_, err := m.Search(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNoIngredients)
}

func TestSearchGroupsByMissingCount(t *testing.T) {
	source := &fakeSource{
		summaries: map[string][]domain.RecipeSummary{
			"chicken": {{ID: "r1"}, {ID: "r2"}},
			"rice":    {{ID: "r3"}},
		},
		details: map[string]*domain.RecipeDetail{
			"r1": detail("r1", "Chicken Rice", "Chicken Breast", "Rice"),
			"r2": detail("r2", "Chicken Curry", "Chicken", "Curry Paste"),
			"r3": detail("r3", "Paella", "Rice", "Saffron", "Mussels"),
		},
	}
	m := NewMatcher(source, zap.NewNop())

	grouped, err := m.Search(context.Background(), []string{"pollo", "arroz"})
	require.NoError(t, err)

	// "Chicken Breast" is available via substring containment against the
	// candidate term "chicken breast", "Rice" against "rice".
	require.Len(t, grouped[0], 1)
	assert.Equal(t, "Chicken Rice", grouped[0][0].Name)

	require.Len(t, grouped[1], 1)
	assert.Equal(t, "Chicken Curry", grouped[1][0].Name)

	require.Len(t, grouped[2], 1)
	assert.Equal(t, "Paella", grouped[2][0].Name)

	assert.Equal(t, []domain.Recipe{grouped[0][0]}, Complete(grouped))
	almost := AlmostComplete(grouped)
	require.Len(t, almost, 2)
	assert.Equal(t, "Chicken Curry", almost[0].Name)
	assert.Equal(t, "Paella", almost[1].Name)
}

func TestSearchDeduplicatesAcrossTerms(t *testing.T) {
	source := &fakeSource{
		summaries: map[string][]domain.RecipeSummary{
			"chicken":        {{ID: "r1"}},
			"chicken breast": {{ID: "r1"}},
		},
		details: map[string]*domain.RecipeDetail{
			"r1": detail("r1", "Roast Chicken", "Chicken"),
		},
	}
	m := NewMatcher(source, zap.NewNop())

	grouped, err := m.Search(context.Background(), []string{"pollo"})
	require.NoError(t, err)

	total := 0
	for _, recipes := range grouped {
		total += len(recipes)
	}
	assert.Equal(t, 1, total)
}

func TestSearchSkipsFailedTerm(t *testing.T) {
	source := &fakeSource{
		summaries: map[string][]domain.RecipeSummary{
			"rice": {{ID: "r1"}},
		},
		details: map[string]*domain.RecipeDetail{
			"r1": detail("r1", "Fried Rice", "Rice"),
		},
		searchErr: map[string]error{
			"chicken":        errors.New("timeout"),
			"chicken breast": errors.New("timeout"),
		},
	}
	m := NewMatcher(source, zap.NewNop())

	grouped, err := m.Search(context.Background(), []string{"pollo", "arroz"})
	require.NoError(t, err)
	require.Len(t, grouped[0], 1)
	assert.Equal(t, "Fried Rice", grouped[0][0].Name)
}

func TestSearchFailsWhenEveryTermFails(t *testing.T) {
	cause := errors.New("connection refused")
	source := &fakeSource{
		searchErr: map[string]error{
			"chicken":        cause,
			"chicken breast": cause,
		},
	}
	m := NewMatcher(source, zap.NewNop())

	_, err := m.Search(context.Background(), []string{"pollo"})
	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
}

func TestSearchCapsQueriedTerms(t *testing.T) {
	source := &fakeSource{}
	m := NewMatcher(source, zap.NewNop())

	var pantry []string
	for i := 0; i < 30; i++ {
		pantry = append(pantry, fmt.Sprintf("exotic-%d", i))
	}

	_, err := m.Search(context.Background(), pantry)
	require.NoError(t, err)
	assert.Len(t, source.searchCalls, MaxSearchTerms)
}

func TestSearchAvailabilityBeyondQueriedTerms(t *testing.T) {
	// Terms past the query cap still count toward availability: the candidate
	// set is built from the full pantry before the cap is applied.
	summaries := map[string][]domain.RecipeSummary{}
	details := map[string]*domain.RecipeDetail{
		"r1": detail("r1", "Fruit Bowl", "item-0", "item-12"),
	}
	for i := 0; i < 15; i++ {
		summaries[fmt.Sprintf("item-%d", i)] = nil
	}
	summaries["item-0"] = []domain.RecipeSummary{{ID: "r1"}}

	m := NewMatcher(&fakeSource{summaries: summaries, details: details}, zap.NewNop())

	var pantry []string
	for i := 0; i < 15; i++ {
		pantry = append(pantry, fmt.Sprintf("item-%d", i))
	}

	grouped, err := m.Search(context.Background(), pantry)
	require.NoError(t, err)
	require.Len(t, grouped[0], 1, "both ingredients should be available")
}

func TestSearchSkipsBlankIngredientNames(t *testing.T) {
	source := &fakeSource{
		summaries: map[string][]domain.RecipeSummary{
			"rice": {{ID: "r1"}},
		},
		details: map[string]*domain.RecipeDetail{
			"r1": detail("r1", "Plain Rice", "Rice", "", "  "),
		},
	}
	m := NewMatcher(source, zap.NewNop())

	grouped, err := m.Search(context.Background(), []string{"arroz"})
	require.NoError(t, err)
	require.Len(t, grouped[0], 1)
	assert.Len(t, grouped[0][0].Ingredients, 1)
}
