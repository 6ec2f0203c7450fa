package repositories

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/yaarastore/backend/app/models"
	"github.com/yaarastore/backend/app/models/migrations"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{})
	require.NoError(t, err)

	// A fresh connection would see a fresh in-memory database, so pin the
	// pool to a single one.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, migrations.AutoMigrate(db))
	return db
}

func createTestCategory(t *testing.T, db *gorm.DB, title string, position int) *models.Category {
	category := &models.Category{Title: title, Handle: title, Position: position}
	require.NoError(t, db.Create(category).Error)
	return category
}

func testProduct(categoryID uint, title string, images ...string) *models.Product {
	product := &models.Product{
		Title:       title,
		Handle:      title,
		Description: "a plant",
		Price:       decimal.NewFromFloat(25.50),
		Available:   true,
		CategoryID:  categoryID,
	}
	for i, url := range images {
		product.Images = append(product.Images, models.ProductImage{
			URL:      url,
			AltText:  title,
			Position: i,
		})
	}
	return product
}

func testContext() context.Context {
	return context.Background()
}
