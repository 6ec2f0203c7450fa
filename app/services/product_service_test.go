package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yaarastore/backend/app/helpers"
	"github.com/yaarastore/backend/app/models"
	"github.com/yaarastore/backend/app/repositories"
	"gorm.io/gorm"
)

func seedCategory(t *testing.T, db *gorm.DB) *models.Category {
	category := &models.Category{Title: "Herbs", Handle: "Herbs", Position: 1}
	require.NoError(t, db.Create(category).Error)
	return category
}

func TestProductService_Create(t *testing.T) {
	db := setupTestDB(t)
	svc := NewProductService(repositories.NewProductRepository(db))
	ctx := context.Background()

	category := seedCategory(t, db)

	t.Run("rejects a product without images", func(t *testing.T) {
		_, err := svc.Create(ctx, ProductPayload{
			Title:       "Basil",
			Description: "Fresh basil",
			Price:       decimal.NewFromFloat(18.00),
			CategoryID:  category.ID,
		})
		require.ErrorIs(t, err, helpers.ErrNoImages)
	})

	t.Run("creates product with derived handle and positioned images", func(t *testing.T) {
		product, err := svc.Create(ctx, ProductPayload{
			Title:       "Sweet Basil",
			Description: "Fresh basil",
			Price:       decimal.NewFromFloat(18.00),
			Available:   true,
			CategoryID:  category.ID,
			Images: []ProductImagePayload{
				{URL: "basil-1.jpg", AltText: "Basil"},
				{URL: "basil-2.jpg", AltText: "Basil close-up"},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, "Sweet-Basil", product.Handle)
		require.Len(t, product.Images, 2)
		assert.Equal(t, 0, product.Images[0].Position)
		assert.Equal(t, 1, product.Images[1].Position)
	})
}

func TestProductService_Update(t *testing.T) {
	db := setupTestDB(t)
	svc := NewProductService(repositories.NewProductRepository(db))
	ctx := context.Background()

	category := seedCategory(t, db)

	product, err := svc.Create(ctx, ProductPayload{
		Title:       "Basil",
		Description: "Fresh basil",
		Price:       decimal.NewFromFloat(18.00),
		Available:   true,
		CategoryID:  category.ID,
		Images:      []ProductImagePayload{{URL: "old.jpg", AltText: "Basil"}},
	})
	require.NoError(t, err)

	t.Run("rejects an empty image set", func(t *testing.T) {
		_, err := svc.Update(ctx, product.ID, ProductPayload{
			Title:       "Basil",
			Description: "Fresh basil",
			CategoryID:  category.ID,
		})
		require.ErrorIs(t, err, helpers.ErrNoImages)
	})

	t.Run("missing product is a 404", func(t *testing.T) {
		_, err := svc.Update(ctx, 999, ProductPayload{
			Title:       "Ghost",
			Description: "none",
			CategoryID:  category.ID,
			Images:      []ProductImagePayload{{URL: "x.jpg", AltText: "x"}},
		})
		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, helpers.ToHTTPError(err).Status)
	})

	t.Run("replaces fields and the image set", func(t *testing.T) {
		updated, err := svc.Update(ctx, product.ID, ProductPayload{
			Title:       "Thai Basil",
			Description: "Spicier basil",
			Price:       decimal.NewFromFloat(22.00),
			Available:   false,
			CategoryID:  category.ID,
			Images:      []ProductImagePayload{{URL: "new.jpg", AltText: "Thai basil"}},
		})
		require.NoError(t, err)
		assert.Equal(t, "Thai-Basil", updated.Handle)
		assert.False(t, updated.Available)

		var images []models.ProductImage
		require.NoError(t, db.Where("product_id = ?", product.ID).Find(&images).Error)
		require.Len(t, images, 1)
		assert.Equal(t, "new.jpg", images[0].URL)
	})
}

func TestProductService_Delete(t *testing.T) {
	db := setupTestDB(t)
	svc := NewProductService(repositories.NewProductRepository(db))
	ctx := context.Background()

	category := seedCategory(t, db)
	product, err := svc.Create(ctx, ProductPayload{
		Title:       "Basil",
		Description: "Fresh basil",
		CategoryID:  category.ID,
		Images:      []ProductImagePayload{{URL: "basil.jpg", AltText: "Basil"}},
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, product.ID))

	err = svc.Delete(ctx, product.ID)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, helpers.ToHTTPError(err).Status)
}
