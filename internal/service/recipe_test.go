package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/recipebox/backend/internal/model"
)

// setupTestDB opens an isolated in-memory SQLite database. The shared
// cache keeps the database alive across the pool's connections.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Recipe{}))
	return db
}

func seedRecipe(t *testing.T, svc *RecipeService, name string, servings int, ingredients model.IngredientList, categories model.StringList) *model.Recipe {
	t.Helper()
	recipe, err := svc.CreateRecipe(context.Background(), &model.Recipe{
		Name:        name,
		Servings:    servings,
		Ingredients: ingredients,
		Categories:  categories,
	})
	require.NoError(t, err)
	return recipe
}

func TestCreateAndGetRecipe(t *testing.T) {
	svc := NewRecipeService(setupTestDB(t))

	created := seedRecipe(t, svc, "Chicken Stir Fry", 4,
		model.IngredientList{{Name: "chicken breast", Amount: 500, Unit: "g"}},
		model.StringList{"Asian"})
	assert.NotZero(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := svc.GetRecipe(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Chicken Stir Fry", got.Name)
	assert.Equal(t, 4, got.Servings)
	require.Len(t, got.Ingredients, 1)
	assert.Equal(t, model.Ingredient{Name: "chicken breast", Amount: 500, Unit: "g"}, got.Ingredients[0])
}

func TestGetRecipeNotFound(t *testing.T) {
	svc := NewRecipeService(setupTestDB(t))

	_, err := svc.GetRecipe(context.Background(), 42)
	var notFound *RecipeNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, int64(42), notFound.ID)
	assert.Equal(t, "Recipe 42 not found", err.Error())
}

func TestUpdateRecipePartial(t *testing.T) {
	svc := NewRecipeService(setupTestDB(t))
	ctx := context.Background()

	created := seedRecipe(t, svc, "Quinoa Bowl", 3,
		model.IngredientList{{Name: "quinoa", Amount: 200, Unit: "g"}},
		model.StringList{"Vegetarian"})

	updated, err := svc.UpdateRecipe(ctx, created.ID, map[string]interface{}{
		"servings": float64(6),
	})
	require.NoError(t, err)

	// Only servings changed.
	assert.Equal(t, 6, updated.Servings)
	assert.Equal(t, "Quinoa Bowl", updated.Name)
	assert.Equal(t, created.Ingredients, updated.Ingredients)
	assert.Equal(t, created.Categories, updated.Categories)
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))

	updated, err = svc.UpdateRecipe(ctx, created.ID, map[string]interface{}{
		"name": "Protein Quinoa Bowl",
		"ingredients": []interface{}{
			map[string]interface{}{"name": "quinoa", "amount": float64(250), "unit": "g"},
			map[string]interface{}{"name": "tofu", "amount": float64(150), "unit": "g"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Protein Quinoa Bowl", updated.Name)
	assert.Equal(t, 6, updated.Servings)
	require.Len(t, updated.Ingredients, 2)
	assert.Equal(t, "tofu", updated.Ingredients[1].Name)
}

func TestUpdateRecipeNotFound(t *testing.T) {
	svc := NewRecipeService(setupTestDB(t))

	_, err := svc.UpdateRecipe(context.Background(), 99, map[string]interface{}{"name": "x"})
	var notFound *RecipeNotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestListRecipesFilter(t *testing.T) {
	svc := NewRecipeService(setupTestDB(t))
	ctx := context.Background()

	ingredients := model.IngredientList{{Name: "x", Amount: 1, Unit: "g"}}
	both := seedRecipe(t, svc, "Both", 2, ingredients, model.StringList{"A", "B"})
	onlyA := seedRecipe(t, svc, "Only A", 2, ingredients, model.StringList{"A"})
	onlyB := seedRecipe(t, svc, "Only B", 2, ingredients, model.StringList{"B"})

	names := func(recipes []model.Recipe) []string {
		out := make([]string, len(recipes))
		for i, r := range recipes {
			out[i] = r.Name
		}
		return out
	}

	// No filter: everything.
	all, err := svc.ListRecipes(ctx, nil, FilterOR)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{both.Name, onlyA.Name, onlyB.Name}, names(all))

	// AND on [A,B]: only the recipe holding both.
	matched, err := svc.ListRecipes(ctx, []string{"A", "B"}, FilterAND)
	require.NoError(t, err)
	assert.Equal(t, []string{"Both"}, names(matched))

	// OR on [A,B]: all three.
	matched, err = svc.ListRecipes(ctx, []string{"A", "B"}, FilterOR)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Both", "Only A", "Only B"}, names(matched))

	// Single category OR.
	matched, err = svc.ListRecipes(ctx, []string{"B"}, FilterOR)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Both", "Only B"}, names(matched))

	// Unknown category matches nothing.
	matched, err = svc.ListRecipes(ctx, []string{"C"}, FilterOR)
	require.NoError(t, err)
	assert.Empty(t, matched)
}

func TestListRecipesCategoryExactMatch(t *testing.T) {
	svc := NewRecipeService(setupTestDB(t))
	ctx := context.Background()

	ingredients := model.IngredientList{{Name: "x", Amount: 1, Unit: "g"}}
	seedRecipe(t, svc, "Thai Curry", 2, ingredients, model.StringList{"Thai"})
	seedRecipe(t, svc, "Thailand Travel Snack", 2, ingredients, model.StringList{"Thailand"})

	matched, err := svc.ListRecipes(ctx, []string{"Thai"}, FilterOR)
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "Thai Curry", matched[0].Name)
}

func TestListCategories(t *testing.T) {
	svc := NewRecipeService(setupTestDB(t))
	ctx := context.Background()

	ingredients := model.IngredientList{{Name: "x", Amount: 1, Unit: "g"}}
	seedRecipe(t, svc, "One", 2, ingredients, model.StringList{"Vegetarian", "Asian"})
	seedRecipe(t, svc, "Two", 2, ingredients, model.StringList{"Asian", "Quick Meals"})

	categories, err := svc.ListCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Asian", "Quick Meals", "Vegetarian"}, categories)
}

func TestListCategoriesEmpty(t *testing.T) {
	svc := NewRecipeService(setupTestDB(t))

	categories, err := svc.ListCategories(context.Background())
	require.NoError(t, err)
	assert.Empty(t, categories)
}

func TestParseFilterMode(t *testing.T) {
	assert.Equal(t, FilterAND, ParseFilterMode("AND"))
	assert.Equal(t, FilterOR, ParseFilterMode("OR"))
	assert.Equal(t, FilterOR, ParseFilterMode(""))
	assert.Equal(t, FilterOR, ParseFilterMode("and"))
}
