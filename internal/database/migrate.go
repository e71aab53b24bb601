package database

import (
	"gorm.io/gorm"

	"github.com/recipebox/backend/internal/model"
)

// Migrate brings the schema up to date. The model set is small enough
// for GORM auto-migration on both supported drivers.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&model.Recipe{})
}
