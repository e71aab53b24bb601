package api

import "github.com/recipebox/backend/internal/service"

// StatusResponse is the envelope used for create/update outcomes and
// errors.
type StatusResponse struct {
	Status   string   `json:"status"`
	Message  string   `json:"message"`
	RecipeID int64    `json:"recipe_id,omitempty"`
	Errors   []string `json:"errors,omitempty"`
}

// CalculateRequest selects recipes and target servings for ingredient
// aggregation.
type CalculateRequest struct {
	Recipes []service.Selection `json:"recipes"`
}

// IndexResponse carries what the landing page needs: the known
// categories and a fresh anti-forgery token.
type IndexResponse struct {
	Categories []string `json:"categories"`
	CSRFToken  string   `json:"csrf_token"`
}
