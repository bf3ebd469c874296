package recipe

import "strings"

// translationRule maps trigger substrings found in a pantry ingredient name
// to the canonical English terms used to query the recipe source. Rules are
// evaluated top to bottom and the first rule with a matching trigger wins for
// that source term. Extend the vocabulary by adding rows, nothing else.
type translationRule struct {
	triggers []string
	terms    []string
}

var translationRules = []translationRule{
	// Meat and fish
	{triggers: []string{"pollo", "chicken"}, terms: []string{"chicken", "chicken breast"}},
	{triggers: []string{"carne", "res", "beef"}, terms: []string{"beef", "ground beef"}},
	{triggers: []string{"cerdo", "pork"}, terms: []string{"pork"}},
	{triggers: []string{"pescado", "fish"}, terms: []string{"fish", "salmon", "cod"}},
	{triggers: []string{"camarón", "camaron", "shrimp"}, terms: []string{"shrimp", "prawns"}},

	// Dairy
	{triggers: []string{"leche", "milk"}, terms: []string{"milk"}},
	{triggers: []string{"queso", "cheese"}, terms: []string{"cheese", "cheddar", "parmesan"}},
	{triggers: []string{"yogurt"}, terms: []string{"yogurt"}},
	{triggers: []string{"mantequilla", "butter"}, terms: []string{"butter"}},
	{triggers: []string{"crema", "cream"}, terms: []string{"cream", "heavy cream"}},

	// Vegetables
	{triggers: []string{"tomate", "tomato"}, terms: []string{"tomato", "tomatoes"}},
	{triggers: []string{"cebolla", "onion"}, terms: []string{"onion", "onions"}},
	{triggers: []string{"ajo", "garlic"}, terms: []string{"garlic"}},
	{triggers: []string{"papa", "patata", "potato"}, terms: []string{"potato", "potatoes"}},
	{triggers: []string{"zanahoria", "carrot"}, terms: []string{"carrot", "carrots"}},
	{triggers: []string{"lechuga", "lettuce"}, terms: []string{"lettuce"}},
	{triggers: []string{"espinaca", "spinach"}, terms: []string{"spinach"}},
	{triggers: []string{"brócoli", "brocoli", "broccoli"}, terms: []string{"broccoli"}},
	{triggers: []string{"pimiento", "pepper"}, terms: []string{"pepper", "bell pepper"}},
	{triggers: []string{"chile"}, terms: []string{"chili", "pepper"}},

	// Grains
	{triggers: []string{"arroz", "rice"}, terms: []string{"rice"}},
	{triggers: []string{"pasta", "spaghetti"}, terms: []string{"pasta", "spaghetti"}},
	{triggers: []string{"pan", "bread"}, terms: []string{"bread"}},
	{triggers: []string{"harina", "flour"}, terms: []string{"flour"}},
	{triggers: []string{"avena", "oats"}, terms: []string{"oats"}},

	// Fruit
	{triggers: []string{"manzana", "apple"}, terms: []string{"apple"}},
	{triggers: []string{"plátano", "platano", "banana"}, terms: []string{"banana"}},
	{triggers: []string{"naranja", "orange"}, terms: []string{"orange"}},
	{triggers: []string{"limón", "limon", "lemon"}, terms: []string{"lemon"}},
	{triggers: []string{"fresa", "strawberry"}, terms: []string{"strawberry"}},

	// Staples
	{triggers: []string{"huevo", "egg"}, terms: []string{"egg", "eggs"}},
	{triggers: []string{"aceite", "oil"}, terms: []string{"oil", "olive oil"}},
	{triggers: []string{"sal", "salt"}, terms: []string{"salt"}},
	{triggers: []string{"azúcar", "azucar", "sugar"}, terms: []string{"sugar"}},
}

// Translate maps a free-text pantry ingredient name to its canonical search
// terms. Unrecognized input passes through lower-cased and trimmed as its own
// single candidate.
func Translate(ingredient string) []string {
	normalized := strings.ToLower(strings.TrimSpace(ingredient))
	for _, rule := range translationRules {
		for _, trigger := range rule.triggers {
			if strings.Contains(normalized, trigger) {
				return rule.terms
			}
		}
	}
	return []string{normalized}
}
