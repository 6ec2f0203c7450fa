package migrations

import (
	"github.com/yaarastore/backend/app/models"
	"gorm.io/gorm"
)

// AutoMigrate synchronizes the schema directly from the model definitions.
// There are no versioned migration files in the runtime path.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.ProductImage{},
		&models.Order{},
		&models.OrderItem{},
	)
}
