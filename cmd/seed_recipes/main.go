package main

import (
	"log"

	"github.com/recipebox/backend/config"
	"github.com/recipebox/backend/internal/database"
	"github.com/recipebox/backend/internal/model"
)

var sampleRecipes = []model.Recipe{
	{
		Name:     "Chicken Stir Fry",
		Servings: 4,
		Ingredients: model.IngredientList{
			{Name: "chicken breast", Amount: 500, Unit: "g"},
			{Name: "bell pepper", Amount: 2, Unit: "whole"},
			{Name: "broccoli", Amount: 300, Unit: "g"},
			{Name: "soy sauce", Amount: 60, Unit: "ml"},
		},
		Categories: model.StringList{"Asian", "High-Protein", "Quick Meals"},
	},
	{
		Name:     "Quinoa Bowl",
		Servings: 3,
		Ingredients: model.IngredientList{
			{Name: "quinoa", Amount: 200, Unit: "g"},
			{Name: "chickpeas", Amount: 400, Unit: "g"},
			{Name: "cucumber", Amount: 1, Unit: "whole"},
			{Name: "cherry tomatoes", Amount: 200, Unit: "g"},
		},
		Categories: model.StringList{"Vegetarian", "Healthy", "Meal Prep"},
	},
}

// Seeds the sample recipes into an empty database. A database that
// already holds recipes is left untouched.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	var count int64
	if err := db.Model(&model.Recipe{}).Count(&count).Error; err != nil {
		log.Fatalf("Failed to count recipes: %v", err)
	}
	if count > 0 {
		log.Printf("Database already has %d recipes, nothing to seed", count)
		return
	}

	for i := range sampleRecipes {
		if err := db.Create(&sampleRecipes[i]).Error; err != nil {
			log.Fatalf("Failed to seed recipe %q: %v", sampleRecipes[i].Name, err)
		}
		log.Printf("Seeded recipe %q with ID %d", sampleRecipes[i].Name, sampleRecipes[i].ID)
	}
}
