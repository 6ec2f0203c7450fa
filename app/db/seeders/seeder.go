package seeders

import (
	"github.com/yaarastore/backend/app/db/fakers"
	"github.com/yaarastore/backend/app/models"
	"gorm.io/gorm"
)

const (
	seedCategories          = 4
	seedProductsPerCategory = 5
	seedOrders              = 6
)

// DBSeed fills an empty database with demo data: one admin user, a few
// categories with products, and a handful of orders in mixed statuses.
func DBSeed(db *gorm.DB) error {
	user := fakers.UserFaker()
	if err := db.Create(user).Error; err != nil {
		return err
	}

	var products []models.Product
	for i := 0; i < seedCategories; i++ {
		category := fakers.CategoryFaker(i + 1)
		if err := db.Create(category).Error; err != nil {
			return err
		}
		for j := 0; j < seedProductsPerCategory; j++ {
			product := fakers.ProductFaker(category)
			if err := db.Create(product).Error; err != nil {
				return err
			}
			products = append(products, *product)
		}
	}

	for i := 0; i < seedOrders; i++ {
		if err := db.Create(fakers.OrderFaker(products)).Error; err != nil {
			return err
		}
	}

	return nil
}
