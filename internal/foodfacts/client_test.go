package foodfacts

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupBarcode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v0/product/7501000123456.json", r.URL.Path)

		w.Write([]byte(`{
			"status": 1,
			"product": {
				"product_name": "Leche Entera",
				"brands": "Lala",
				"manufacturing_places": "Mexico",
				"categories": "Dairies, Milks",
				"image_url": "https://example.com/milk.jpg",
				"quantity": "1 L"
			}
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	product, err := client.LookupBarcode(context.Background(), "7501000123456")
	require.NoError(t, err)
	require.NotNil(t, product)

	assert.Equal(t, "Leche Entera", product.Name)
	assert.Equal(t, "7501000123456", product.Barcode)
	assert.Equal(t, "Lala", product.Brand)
	assert.Equal(t, "Lácteos y derivados", product.Category)
	assert.Equal(t, 1, product.Units)

	require.NotNil(t, product.PhotoURL)
	assert.Equal(t, "https://example.com/milk.jpg", *product.PhotoURL)

	require.NotNil(t, product.QuantityValue)
	assert.Equal(t, 1.0, *product.QuantityValue)
	require.NotNil(t, product.QuantityUnit)
	assert.Equal(t, "L", *product.QuantityUnit)
}

func TestLookupBarcodeUnknown(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": 0, "status_verbose": "product not found"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	product, err := client.LookupBarcode(context.Background(), "0000000000000")
	require.NoError(t, err)
	assert.Nil(t, product)
}

func TestLookupBarcodeNotFoundStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	product, err := client.LookupBarcode(context.Background(), "0000000000000")
	require.NoError(t, err)
	assert.Nil(t, product)
}

func TestLookupBarcodeServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.LookupBarcode(context.Background(), "7501000123456")
	assert.Error(t, err)
}

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		input     string
		wantValue float64
		wantUnit  string
		wantOK    bool
	}{
		{"330 ml", 330, "ml", true},
		{"1.5kg", 1.5, "kg", true},
		{"500g", 500, "g", true},
		{"12", 12, "", true},
		{"", 0, "", false},
		{"approx", 0, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			value, unit, ok := parseQuantity(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantValue, value)
				assert.Equal(t, tt.wantUnit, unit)
			}
		})
	}
}
