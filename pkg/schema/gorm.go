package schema

import (
	"gorm.io/gorm"
)

// AllModels returns all schema models in creation order.
func AllModels() []Model {
	return []Model{
		&JoinedTable{},
		&PlayerSummary{},
	}
}

// Migrate runs GORM AutoMigrate to create or update schema.
func Migrate(db *gorm.DB) error {
	models := AllModels()
	res := make([]any, len(models))
	for i := range models {
		res[i] = models[i]
	}
	return db.AutoMigrate(res...)
}
