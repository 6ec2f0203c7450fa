package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yaarastore/backend/app/models"
)

func TestCategoryRepository_GetAll(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCategoryRepository(db)
	ctx := testContext()

	createTestCategory(t, db, "Pots", 3)
	createTestCategory(t, db, "Herbs", 1)
	createTestCategory(t, db, "Flowers", 2)

	categories, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 3)
	assert.Equal(t, "Herbs", categories[0].Title)
	assert.Equal(t, "Flowers", categories[1].Title)
	assert.Equal(t, "Pots", categories[2].Title)
}

func TestCategoryRepository_SaveAll(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCategoryRepository(db)
	ctx := testContext()

	a := createTestCategory(t, db, "A", 1)
	b := createTestCategory(t, db, "B", 2)

	a.Position = 2
	b.Position = 1
	require.NoError(t, repo.SaveAll(ctx, []models.Category{*a, *b}))

	categories, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, "B", categories[0].Title)
	assert.Equal(t, "A", categories[1].Title)
}

func TestCategoryRepository_DeleteCascadesToProducts(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCategoryRepository(db)
	ctx := testContext()

	category := createTestCategory(t, db, "Herbs", 1)
	product := testProduct(category.ID, "Basil", "basil.jpg")
	require.NoError(t, db.Create(product).Error)

	require.NoError(t, repo.Delete(ctx, category.ID))

	var productCount, imageCount int64
	require.NoError(t, db.Model(&models.Product{}).Count(&productCount).Error)
	require.NoError(t, db.Model(&models.ProductImage{}).Count(&imageCount).Error)
	assert.EqualValues(t, 0, productCount)
	assert.EqualValues(t, 0, imageCount)
}
