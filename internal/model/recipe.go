package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"sort"
	"time"
)

// Ingredient is a single entry in a recipe's ingredient list.
type Ingredient struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

// IngredientList is a custom type for storing ingredients as a JSON column.
type IngredientList []Ingredient

// Value implements the driver.Valuer interface
func (l IngredientList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	return json.Marshal(l)
}

// Scan implements the sql.Scanner interface
func (l *IngredientList) Scan(value interface{}) error {
	if value == nil {
		*l = IngredientList{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("unsupported ingredient column type %T", value)
	}

	return json.Unmarshal(bytes, l)
}

// StringList is a custom type for storing string collections as a JSON column.
type StringList []string

// Value implements the driver.Valuer interface
func (a StringList) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	return json.Marshal(a)
}

// Scan implements the sql.Scanner interface
func (a *StringList) Scan(value interface{}) error {
	if value == nil {
		*a = StringList{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("unsupported category column type %T", value)
	}

	return json.Unmarshal(bytes, a)
}

// Recipe is the persisted recipe entity. Ingredients and categories are
// stored as JSON-encoded text so the same model works on PostgreSQL and
// SQLite.
type Recipe struct {
	ID          int64          `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"size:255;not null" json:"name"`
	Servings    int            `gorm:"not null" json:"servings"`
	Ingredients IngredientList `gorm:"type:text;not null" json:"ingredients"`
	Categories  StringList     `gorm:"type:text;not null" json:"categories"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// CategorySet returns the recipe's categories with duplicates collapsed,
// sorted for stable output.
func (r *Recipe) CategorySet() []string {
	seen := make(map[string]struct{}, len(r.Categories))
	out := make([]string, 0, len(r.Categories))
	for _, c := range r.Categories {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// RecipeResponse is the JSON representation returned by the API.
type RecipeResponse struct {
	ID          int64        `json:"id"`
	Name        string       `json:"name"`
	Servings    int          `json:"servings"`
	Ingredients []Ingredient `json:"ingredients"`
	Categories  []string     `json:"categories"`
	CreatedAt   string       `json:"created_at"`
	UpdatedAt   string       `json:"updated_at"`
}

// ToResponse shapes a recipe for the API. Ingredient order is preserved;
// categories come back deduplicated and sorted.
func (r *Recipe) ToResponse() RecipeResponse {
	return RecipeResponse{
		ID:          r.ID,
		Name:        r.Name,
		Servings:    r.Servings,
		Ingredients: []Ingredient(r.Ingredients),
		Categories:  r.CategorySet(),
		CreatedAt:   r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   r.UpdatedAt.Format(time.RFC3339),
	}
}
