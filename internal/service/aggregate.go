package service

import (
	"context"
	"fmt"
	"math"

	"github.com/recipebox/backend/internal/model"
)

// Selection names one recipe and the serving count to scale it to.
// Servings may be fractional.
type Selection struct {
	RecipeID int64   `json:"id"`
	Servings float64 `json:"servings"`
}

// InvalidServingsError reports a selection with a negative serving count.
type InvalidServingsError struct {
	RecipeID int64
}

func (e *InvalidServingsError) Error() string {
	return fmt.Sprintf("Invalid servings for recipe %d", e.RecipeID)
}

// AggregateIngredients combines the ingredient lists of the selected
// recipes, each scaled by requested/stored servings, summed per
// (name, unit) key. Output keeps first-seen order; totals are rounded to
// two decimals (half away from zero). An empty selection yields an empty
// list.
func (s *RecipeService) AggregateIngredients(ctx context.Context, selections []Selection) ([]model.Ingredient, error) {
	type key struct {
		name, unit string
	}

	totals := make(map[key]float64)
	var order []key

	for _, sel := range selections {
		if sel.Servings < 0 {
			return nil, &InvalidServingsError{RecipeID: sel.RecipeID}
		}

		recipe, err := s.GetRecipe(ctx, sel.RecipeID)
		if err != nil {
			return nil, err
		}

		multiplier := sel.Servings / float64(recipe.Servings)
		for _, ing := range recipe.Ingredients {
			k := key{name: ing.Name, unit: ing.Unit}
			if _, seen := totals[k]; !seen {
				order = append(order, k)
			}
			totals[k] += ing.Amount * multiplier
		}
	}

	out := make([]model.Ingredient, 0, len(order))
	for _, k := range order {
		out = append(out, model.Ingredient{
			Name:   k.name,
			Amount: round2(totals[k]),
			Unit:   k.unit,
		})
	}
	return out, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
