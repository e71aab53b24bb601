package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/recipebox/backend/internal/model"
)

// FilterMode controls how multiple category filters combine.
type FilterMode string

const (
	// FilterOR matches recipes carrying at least one requested category.
	FilterOR FilterMode = "OR"
	// FilterAND matches recipes carrying every requested category.
	FilterAND FilterMode = "AND"
)

// ParseFilterMode maps a request parameter onto a filter mode. Anything
// other than "AND" falls back to OR, matching the default.
func ParseFilterMode(s string) FilterMode {
	if s == string(FilterAND) {
		return FilterAND
	}
	return FilterOR
}

// RecipeNotFoundError reports a recipe id that does not exist.
type RecipeNotFoundError struct {
	ID int64
}

func (e *RecipeNotFoundError) Error() string {
	return fmt.Sprintf("Recipe %d not found", e.ID)
}

// RecipeService handles recipe operations
type RecipeService struct {
	db *gorm.DB
}

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

// CreateRecipe persists a new recipe and returns it with its assigned id.
func (s *RecipeService) CreateRecipe(ctx context.Context, recipe *model.Recipe) (*model.Recipe, error) {
	if err := s.db.WithContext(ctx).Create(recipe).Error; err != nil {
		return nil, err
	}
	return recipe, nil
}

// GetRecipe retrieves a recipe by ID
func (s *RecipeService) GetRecipe(ctx context.Context, id int64) (*model.Recipe, error) {
	var recipe model.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &RecipeNotFoundError{ID: id}
		}
		return nil, err
	}
	return &recipe, nil
}

// UpdateRecipe applies a partial update. Only the supplied fields change;
// UpdatedAt is refreshed on every mutation.
func (s *RecipeService) UpdateRecipe(ctx context.Context, id int64, fields map[string]interface{}) (*model.Recipe, error) {
	if _, err := s.GetRecipe(ctx, id); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{"updated_at": time.Now()}
	if name, ok := fields["name"].(string); ok {
		updates["name"] = name
	}
	if raw, ok := fields["servings"]; ok {
		if servings, valid := positiveInt(raw); valid {
			updates["servings"] = servings
		}
	}
	if raw, ok := fields["ingredients"].([]interface{}); ok {
		updates["ingredients"] = ingredientsFromPayload(raw)
	}
	if _, ok := fields["categories"]; ok {
		updates["categories"] = categoriesFromPayload(fields["categories"])
	}

	if err := s.db.WithContext(ctx).Model(&model.Recipe{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetRecipe(ctx, id)
}

// ListRecipes returns recipes matching the category filter. An empty
// category list disables filtering. Matching is done against the
// JSON-encoded categories column: each category matches as a quoted JSON
// string so "Thai" never matches "Thailand"-only recipes by accident.
func (s *RecipeService) ListRecipes(ctx context.Context, categories []string, mode FilterMode) ([]model.Recipe, error) {
	query := s.db.WithContext(ctx).Model(&model.Recipe{})

	if len(categories) > 0 {
		if mode == FilterAND {
			for _, category := range categories {
				query = query.Where("categories LIKE ?", categoryPattern(category))
			}
		} else {
			or := s.db.Where("categories LIKE ?", categoryPattern(categories[0]))
			for _, category := range categories[1:] {
				or = or.Or("categories LIKE ?", categoryPattern(category))
			}
			query = query.Where(or)
		}
	}

	var recipes []model.Recipe
	if err := query.Order("id").Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// ListCategories returns the sorted distinct union of every recipe's
// category set.
func (s *RecipeService) ListCategories(ctx context.Context) ([]string, error) {
	var rows []string
	if err := s.db.WithContext(ctx).Model(&model.Recipe{}).Distinct("categories").Pluck("categories", &rows).Error; err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	for _, row := range rows {
		var cats []string
		if err := json.Unmarshal([]byte(row), &cats); err != nil {
			// A malformed row should not take down the endpoint.
			continue
		}
		for _, c := range cats {
			seen[c] = struct{}{}
		}
	}

	out := make([]string, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Strings(out)
	return out, nil
}

func categoryPattern(category string) string {
	quoted, _ := json.Marshal(category)
	return "%" + string(quoted) + "%"
}
