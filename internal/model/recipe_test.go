package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIngredientListValueScan(t *testing.T) {
	list := IngredientList{
		{Name: "chicken breast", Amount: 500, Unit: "g"},
		{Name: "soy sauce", Amount: 60.5, Unit: "ml"},
	}

	val, err := list.Value()
	require.NoError(t, err)

	var decoded IngredientList
	require.NoError(t, decoded.Scan(val))
	assert.Equal(t, list, decoded)
}

func TestIngredientListScanString(t *testing.T) {
	var list IngredientList
	require.NoError(t, list.Scan(`[{"name":"quinoa","amount":200,"unit":"g"}]`))
	require.Len(t, list, 1)
	assert.Equal(t, Ingredient{Name: "quinoa", Amount: 200, Unit: "g"}, list[0])
}

func TestIngredientListEmptyValue(t *testing.T) {
	val, err := IngredientList{}.Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", val)

	var list IngredientList
	require.NoError(t, list.Scan(nil))
	assert.Empty(t, list)
}

func TestStringListValueScan(t *testing.T) {
	cats := StringList{"Asian", "Quick Meals"}

	val, err := cats.Value()
	require.NoError(t, err)

	var decoded StringList
	require.NoError(t, decoded.Scan(val))
	assert.Equal(t, cats, decoded)
}

func TestStringListScanUnsupportedType(t *testing.T) {
	var cats StringList
	assert.Error(t, cats.Scan(12))
}

func TestCategorySetDeduplicates(t *testing.T) {
	recipe := Recipe{Categories: StringList{"B", "A", "B", "A"}}
	assert.Equal(t, []string{"A", "B"}, recipe.CategorySet())
}

func TestToResponse(t *testing.T) {
	now := time.Date(2026, 2, 14, 12, 0, 0, 0, time.UTC)
	recipe := Recipe{
		ID:       7,
		Name:     "Quinoa Bowl",
		Servings: 3,
		Ingredients: IngredientList{
			{Name: "quinoa", Amount: 200, Unit: "g"},
			{Name: "chickpeas", Amount: 400, Unit: "g"},
		},
		Categories: StringList{"Vegetarian", "Healthy", "Vegetarian"},
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	resp := recipe.ToResponse()
	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, "Quinoa Bowl", resp.Name)
	assert.Equal(t, 3, resp.Servings)
	// Ingredient order survives; categories dedupe and sort.
	assert.Equal(t, []Ingredient(recipe.Ingredients), resp.Ingredients)
	assert.Equal(t, []string{"Healthy", "Vegetarian"}, resp.Categories)
	assert.Equal(t, "2026-02-14T12:00:00Z", resp.CreatedAt)
}
