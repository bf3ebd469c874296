package foodfacts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapCategory(t *testing.T) {
	tests := []struct {
		name        string
		apiCategory string
		productName string
		want        string
	}{
		{"dairy from api category", "Dairies, Milks", "Leche Entera", "Lácteos y derivados"},
		{"meat in spanish", "", "Pechuga de Pollo", "Carnes y pescados"},
		{"fruit in english", "Fruits, Apples", "", "Frutas"},
		{"beverage", "Beverages, Sodas", "", "Bebidas"},
		{"cleaning product", "", "Detergente líquido", "Productos de limpieza"},
		{"name rescues empty category", "", "Arroz integral", "Granos y cereales"},
		{"no match falls back", "Unknown", "Mystery Item", "Otros"},
		{"empty input falls back", "", "", "Otros"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MapCategory(tt.apiCategory, tt.productName))
		})
	}
}

func TestMapCategoryFirstMatchWins(t *testing.T) {
	// Dairy is checked before meat, so a cheese-and-ham product maps to dairy.
	assert.Equal(t, "Lácteos y derivados", MapCategory("Cheese, Ham", ""))
}
