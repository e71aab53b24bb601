package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPayload() map[string]interface{} {
	return map[string]interface{}{
		"name":     "Chicken Stir Fry",
		"servings": float64(4),
		"ingredients": []interface{}{
			map[string]interface{}{"name": "chicken breast", "amount": float64(500), "unit": "g"},
			map[string]interface{}{"name": "soy sauce", "amount": float64(60), "unit": "ml"},
		},
		"categories": []interface{}{"Asian", "Quick Meals"},
	}
}

func TestValidateRecipeValid(t *testing.T) {
	assert.Empty(t, ValidateRecipe(validPayload()))
}

func TestValidateRecipeMissingName(t *testing.T) {
	payload := validPayload()
	delete(payload, "name")
	assert.Contains(t, ValidateRecipe(payload), "Recipe name is required")

	payload["name"] = ""
	assert.Contains(t, ValidateRecipe(payload), "Recipe name is required")
}

func TestValidateRecipeServings(t *testing.T) {
	cases := []struct {
		name     string
		servings interface{}
		valid    bool
	}{
		{"positive int", float64(1), true},
		{"zero", float64(0), false},
		{"negative", float64(-2), false},
		{"fractional", 2.5, false},
		{"string", "4", false},
		{"missing", nil, false},
		{"native int", 3, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			payload := validPayload()
			if tc.servings == nil {
				delete(payload, "servings")
			} else {
				payload["servings"] = tc.servings
			}
			errs := ValidateRecipe(payload)
			if tc.valid {
				assert.NotContains(t, errs, "Servings must be a positive integer")
			} else {
				assert.Contains(t, errs, "Servings must be a positive integer")
			}
		})
	}
}

func TestValidateRecipeIngredients(t *testing.T) {
	payload := validPayload()
	payload["ingredients"] = []interface{}{}
	assert.Contains(t, ValidateRecipe(payload), "At least one ingredient is required")

	payload["ingredients"] = "not a list"
	assert.Contains(t, ValidateRecipe(payload), "At least one ingredient is required")

	payload["ingredients"] = []interface{}{
		"not an object",
		map[string]interface{}{"name": "", "amount": float64(-1), "unit": ""},
	}
	errs := ValidateRecipe(payload)
	assert.Contains(t, errs, "Ingredient 1 is invalid")
	assert.Contains(t, errs, "Ingredient 2 name is required")
	assert.Contains(t, errs, "Ingredient 2 amount must be a positive number")
	assert.Contains(t, errs, "Ingredient 2 unit is required")
	// Ingredient 1 gets no per-field errors once flagged invalid.
	assert.NotContains(t, errs, "Ingredient 1 name is required")
}

func TestValidateRecipeAmountTypes(t *testing.T) {
	payload := validPayload()
	payload["ingredients"] = []interface{}{
		map[string]interface{}{"name": "flour", "amount": "lots", "unit": "g"},
	}
	assert.Contains(t, ValidateRecipe(payload), "Ingredient 1 amount must be a positive number")

	payload["ingredients"] = []interface{}{
		map[string]interface{}{"name": "flour", "amount": float64(0), "unit": "g"},
	}
	assert.Contains(t, ValidateRecipe(payload), "Ingredient 1 amount must be a positive number")
}

func TestValidateRecipeCategories(t *testing.T) {
	payload := validPayload()
	payload["categories"] = "Asian"
	assert.Contains(t, ValidateRecipe(payload), "Categories must be a list")

	// Absent categories are fine.
	delete(payload, "categories")
	assert.Empty(t, ValidateRecipe(payload))
}

func TestValidateRecipeCollectsAllErrors(t *testing.T) {
	errs := ValidateRecipe(map[string]interface{}{
		"servings":   "four",
		"categories": 7,
	})
	assert.Len(t, errs, 4)
	assert.Equal(t, []string{
		"Recipe name is required",
		"Servings must be a positive integer",
		"At least one ingredient is required",
		"Categories must be a list",
	}, errs)
}

func TestValidateRecipeUpdatePartial(t *testing.T) {
	// Only the supplied fields are checked.
	assert.Empty(t, ValidateRecipeUpdate(map[string]interface{}{"name": "New Name"}))
	assert.Empty(t, ValidateRecipeUpdate(map[string]interface{}{"servings": float64(6)}))
	assert.Empty(t, ValidateRecipeUpdate(map[string]interface{}{}))

	errs := ValidateRecipeUpdate(map[string]interface{}{"name": ""})
	assert.Equal(t, []string{"Recipe name is required"}, errs)

	errs = ValidateRecipeUpdate(map[string]interface{}{"servings": float64(0)})
	assert.Equal(t, []string{"Servings must be a positive integer"}, errs)

	errs = ValidateRecipeUpdate(map[string]interface{}{"ingredients": []interface{}{}})
	assert.Equal(t, []string{"At least one ingredient is required"}, errs)
}

func TestRecipeFromPayloadRoundTrip(t *testing.T) {
	payload := validPayload()
	require.Empty(t, ValidateRecipe(payload))

	recipe := RecipeFromPayload(payload)
	assert.Equal(t, "Chicken Stir Fry", recipe.Name)
	assert.Equal(t, 4, recipe.Servings)
	require.Len(t, recipe.Ingredients, 2)
	assert.Equal(t, "chicken breast", recipe.Ingredients[0].Name)
	assert.Equal(t, 500.0, recipe.Ingredients[0].Amount)
	assert.Equal(t, "g", recipe.Ingredients[0].Unit)
	assert.ElementsMatch(t, []string{"Asian", "Quick Meals"}, []string(recipe.Categories))
}

func TestRecipeFromPayloadNoCategories(t *testing.T) {
	payload := validPayload()
	delete(payload, "categories")
	recipe := RecipeFromPayload(payload)
	assert.Empty(t, recipe.Categories)
	assert.NotNil(t, recipe.Categories)
}
