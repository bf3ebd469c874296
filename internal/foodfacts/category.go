package foodfacts

import "strings"

// FallbackCategory is assigned when no keyword matches.
const FallbackCategory = "Otros"

// categoryKeywords maps the app's fixed category vocabulary to the bilingual
// keywords recognized in OpenFoodFacts category strings and product names.
// The vocabulary is Spanish because that is what the stored data uses.
var categoryKeywords = []struct {
	category string
	keywords []string
}{
	{"Lácteos y derivados", []string{
		"milk", "dairy", "cheese", "yogurt", "yoghurt", "butter", "cream",
		"leche", "lácteo", "queso", "yogur", "mantequilla", "crema",
		"lactose", "lacteos", "dairies",
	}},
	{"Carnes y pescados", []string{
		"meat", "beef", "pork", "chicken", "fish", "seafood", "poultry",
		"carne", "res", "cerdo", "pollo", "pescado", "mariscos", "aves",
		"turkey", "pavo", "salmon", "tuna", "atún",
	}},
	{"Frutas", []string{
		"fruit", "apple", "banana", "orange", "grape", "strawberry",
		"fruta", "manzana", "plátano", "naranja", "uva", "fresa",
		"berry", "melon", "watermelon", "pineapple", "piña",
	}},
	{"Verduras", []string{
		"vegetable", "lettuce", "tomato", "carrot", "onion", "potato",
		"verdura", "lechuga", "tomate", "zanahoria", "cebolla", "papa",
		"broccoli", "spinach", "espinaca", "brocoli",
	}},
	{"Granos y cereales", []string{
		"grain", "cereal", "bread", "rice", "pasta", "wheat", "oat",
		"grano", "pan", "arroz", "trigo", "avena",
		"corn", "maíz", "flour", "harina",
	}},
	{"Bebidas", []string{
		"beverage", "drink", "juice", "soda", "water", "tea", "coffee",
		"bebida", "jugo", "refresco", "agua", "té", "café",
		"beer", "wine", "cerveza", "vino", "cola",
	}},
	{"Condimentos y especias", []string{
		"condiment", "spice", "salt", "pepper", "sauce", "seasoning",
		"condimento", "especia", "sal", "pimienta", "salsa", "sazonador",
		"ketchup", "mustard", "mostaza", "mayonnaise", "mayonesa",
	}},
	{"Snacks y dulces", []string{
		"snack", "candy", "chocolate", "cookie", "chip", "sweet", "dessert",
		"dulce", "galleta", "postre",
		"cake", "pastel", "ice cream", "helado", "gum", "chicle",
	}},
	{"Productos de limpieza", []string{
		"cleaning", "detergent", "soap", "bleach", "disinfectant",
		"limpieza", "detergente", "jabón", "cloro", "desinfectante",
		"cleaner", "limpiador",
	}},
}

// MapCategory maps a comma-separated OpenFoodFacts category string, helped by
// the product name, onto the app's category vocabulary. Unmatched input falls
// back to FallbackCategory.
func MapCategory(apiCategory, productName string) string {
	var sb strings.Builder
	sb.WriteString(strings.ToLower(apiCategory))
	sb.WriteString(" ")
	sb.WriteString(strings.ToLower(productName))
	searchText := sb.String()

	for _, entry := range categoryKeywords {
		for _, keyword := range entry.keywords {
			if strings.Contains(searchText, keyword) {
				return entry.category
			}
		}
	}
	return FallbackCategory
}
