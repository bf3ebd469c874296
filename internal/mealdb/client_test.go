package mealdb

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchByIngredient(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/filter.php", r.URL.Path)
		assert.Equal(t, "chicken breast", r.URL.Query().Get("i"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"meals":[
			{"idMeal":"52940","strMeal":"Brown Stew Chicken","strMealThumb":"https://example.com/1.jpg"},
			{"idMeal":"52846","strMeal":"Chicken Basquaise","strMealThumb":"https://example.com/2.jpg"}
		]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	summaries, err := client.SearchByIngredient(context.Background(), "chicken breast")
	require.NoError(t, err)

	require.Len(t, summaries, 2)
	assert.Equal(t, "52940", summaries[0].ID)
	assert.Equal(t, "Brown Stew Chicken", summaries[0].Name)
}

func TestSearchByIngredientNoMatches(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"meals":null}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	summaries, err := client.SearchByIngredient(context.Background(), "nothing")
	require.NoError(t, err)
	assert.Empty(t, summaries)
}

func TestLookupByIDFlattensIngredients(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/lookup.php", r.URL.Path)
		assert.Equal(t, "52940", r.URL.Query().Get("i"))

		// Real payloads mix populated slots, empty strings and nulls.
		w.Write([]byte(`{"meals":[{
			"idMeal":"52940",
			"strMeal":"Brown Stew Chicken",
			"strCategory":"Chicken",
			"strArea":"Jamaican",
			"strInstructions":"Squeeze lime over chicken.",
			"strMealThumb":"https://example.com/1.jpg",
			"strYoutube":"https://youtube.com/watch?v=x",
			"strIngredient1":"Chicken",
			"strMeasure1":"1 whole",
			"strIngredient2":"Tomato",
			"strMeasure2":"1 chopped",
			"strIngredient3":" ",
			"strMeasure3":" ",
			"strIngredient4":"",
			"strMeasure4":"",
			"strIngredient5":null,
			"strMeasure5":null
		}]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	detail, err := client.LookupByID(context.Background(), "52940")
	require.NoError(t, err)
	require.NotNil(t, detail)

	assert.Equal(t, "Brown Stew Chicken", detail.Name)
	assert.Equal(t, "Jamaican", detail.Area)

	require.Len(t, detail.Ingredients, 2)
	assert.Equal(t, "Chicken", detail.Ingredients[0].Name)
	assert.Equal(t, "1 whole", detail.Ingredients[0].Measure)
	assert.Equal(t, "Tomato", detail.Ingredients[1].Name)
}

func TestLookupByIDMissing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"meals":null}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	detail, err := client.LookupByID(context.Background(), "99999")
	require.NoError(t, err)
	assert.Nil(t, detail)
}

func TestServerErrorIsReported(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.SearchByIngredient(context.Background(), "chicken")
	assert.Error(t, err)
}
