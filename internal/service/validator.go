package service

import (
	"fmt"
	"math"

	"github.com/recipebox/backend/internal/model"
)

// ValidateRecipe checks a full recipe payload and returns every problem
// found as a human-readable message. An empty slice means the payload is
// valid. Errors are collected rather than returned one at a time so the
// caller can fix everything in a single pass.
func ValidateRecipe(data map[string]interface{}) []string {
	var errs []string

	if !hasNonEmptyString(data, "name") {
		errs = append(errs, "Recipe name is required")
	}

	if _, ok := positiveInt(data["servings"]); !ok {
		errs = append(errs, "Servings must be a positive integer")
	}

	errs = append(errs, validateIngredients(data["ingredients"])...)

	if raw, ok := data["categories"]; ok {
		if _, isList := raw.([]interface{}); !isList {
			errs = append(errs, "Categories must be a list")
		}
	}

	return errs
}

// ValidateRecipeUpdate applies the same rules as ValidateRecipe but only
// to the fields present in the payload, for partial updates.
func ValidateRecipeUpdate(data map[string]interface{}) []string {
	var errs []string

	if _, ok := data["name"]; ok && !hasNonEmptyString(data, "name") {
		errs = append(errs, "Recipe name is required")
	}

	if raw, ok := data["servings"]; ok {
		if _, valid := positiveInt(raw); !valid {
			errs = append(errs, "Servings must be a positive integer")
		}
	}

	if raw, ok := data["ingredients"]; ok {
		errs = append(errs, validateIngredients(raw)...)
	}

	if raw, ok := data["categories"]; ok {
		if _, isList := raw.([]interface{}); !isList {
			errs = append(errs, "Categories must be a list")
		}
	}

	return errs
}

func validateIngredients(raw interface{}) []string {
	list, ok := raw.([]interface{})
	if !ok || len(list) == 0 {
		return []string{"At least one ingredient is required"}
	}

	var errs []string
	for i, item := range list {
		ing, ok := item.(map[string]interface{})
		if !ok {
			errs = append(errs, fmt.Sprintf("Ingredient %d is invalid", i+1))
			continue
		}
		if !hasNonEmptyString(ing, "name") {
			errs = append(errs, fmt.Sprintf("Ingredient %d name is required", i+1))
		}
		if amt, ok := numeric(ing["amount"]); !ok || amt <= 0 {
			errs = append(errs, fmt.Sprintf("Ingredient %d amount must be a positive number", i+1))
		}
		if !hasNonEmptyString(ing, "unit") {
			errs = append(errs, fmt.Sprintf("Ingredient %d unit is required", i+1))
		}
	}
	return errs
}

// RecipeFromPayload converts a validated payload into a typed recipe.
// It must only be called after ValidateRecipe returned no errors.
func RecipeFromPayload(data map[string]interface{}) *model.Recipe {
	servings, _ := positiveInt(data["servings"])

	return &model.Recipe{
		Name:        data["name"].(string),
		Servings:    servings,
		Ingredients: ingredientsFromPayload(data["ingredients"].([]interface{})),
		Categories:  categoriesFromPayload(data["categories"]),
	}
}

func ingredientsFromPayload(raw []interface{}) model.IngredientList {
	ingredients := make(model.IngredientList, 0, len(raw))
	for _, item := range raw {
		ing := item.(map[string]interface{})
		amount, _ := numeric(ing["amount"])
		ingredients = append(ingredients, model.Ingredient{
			Name:   ing["name"].(string),
			Amount: amount,
			Unit:   ing["unit"].(string),
		})
	}
	return ingredients
}

func categoriesFromPayload(raw interface{}) model.StringList {
	categories := model.StringList{}
	if list, ok := raw.([]interface{}); ok {
		for _, c := range list {
			if str, ok := c.(string); ok {
				categories = append(categories, str)
			}
		}
	}
	return categories
}

func hasNonEmptyString(data map[string]interface{}, key string) bool {
	s, ok := data[key].(string)
	return ok && s != ""
}

// positiveInt accepts int-typed values and integral JSON numbers, which
// decode as float64.
func positiveInt(raw interface{}) (int, bool) {
	switch v := raw.(type) {
	case int:
		return v, v >= 1
	case int64:
		return int(v), v >= 1
	case float64:
		if v != math.Trunc(v) {
			return 0, false
		}
		return int(v), v >= 1
	default:
		return 0, false
	}
}

func numeric(raw interface{}) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}
