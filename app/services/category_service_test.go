package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yaarastore/backend/app/helpers"
	"github.com/yaarastore/backend/app/models"
	"github.com/yaarastore/backend/app/repositories"
	"gorm.io/gorm"
)

func intPtr(i int) *int { return &i }

func categoryTitles(t *testing.T, db *gorm.DB) []string {
	var categories []models.Category
	require.NoError(t, db.Order("position ASC").Find(&categories).Error)

	titles := make([]string, len(categories))
	for i, c := range categories {
		titles[i] = c.Title
		assert.Equal(t, i+1, c.Position, "positions must be dense 1..N")
	}
	return titles
}

func TestCategoryService_Create(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCategoryService(repositories.NewCategoryRepository(db))
	ctx := context.Background()

	t.Run("derives handle and lands at position 1 by default", func(t *testing.T) {
		category, err := svc.Create(ctx, CategoryPayload{Title: "Indoor Plants"})
		require.NoError(t, err)
		assert.Equal(t, "Indoor-Plants", category.Handle)
		assert.Equal(t, 1, category.Position)
	})

	t.Run("inserts at the requested position and shifts the rest", func(t *testing.T) {
		_, err := svc.Create(ctx, CategoryPayload{Title: "Flowers", Position: intPtr(2)})
		require.NoError(t, err)

		herbs, err := svc.Create(ctx, CategoryPayload{Title: "Herbs", Position: intPtr(2)})
		require.NoError(t, err)
		assert.Equal(t, 2, herbs.Position)

		assert.Equal(t, []string{"Indoor Plants", "Herbs", "Flowers"}, categoryTitles(t, db))
	})

	t.Run("clamps an out-of-range position to the end", func(t *testing.T) {
		last, err := svc.Create(ctx, CategoryPayload{Title: "Pots", Position: intPtr(99)})
		require.NoError(t, err)
		assert.Equal(t, 4, last.Position)

		assert.Equal(t, []string{"Indoor Plants", "Herbs", "Flowers", "Pots"}, categoryTitles(t, db))
	})
}

func TestCategoryService_InsertAtFrontShiftsExisting(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCategoryService(repositories.NewCategoryRepository(db))
	ctx := context.Background()

	herbs, err := svc.Create(ctx, CategoryPayload{Title: "Herbs"})
	require.NoError(t, err)
	assert.Equal(t, 1, herbs.Position)
	assert.Equal(t, "Herbs", herbs.Handle)

	flowers, err := svc.Create(ctx, CategoryPayload{Title: "Flowers", Position: intPtr(1)})
	require.NoError(t, err)
	assert.Equal(t, 1, flowers.Position)

	assert.Equal(t, []string{"Flowers", "Herbs"}, categoryTitles(t, db))
}

func TestCategoryService_Update(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCategoryService(repositories.NewCategoryRepository(db))
	ctx := context.Background()

	herbs, err := svc.Create(ctx, CategoryPayload{Title: "Herbs"})
	require.NoError(t, err)
	flowers, err := svc.Create(ctx, CategoryPayload{Title: "Flowers", Position: intPtr(2)})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CategoryPayload{Title: "Pots", Position: intPtr(3)})
	require.NoError(t, err)

	t.Run("moves a category and keeps positions dense", func(t *testing.T) {
		moved, err := svc.Update(ctx, herbs.ID, CategoryPayload{Title: "Herbs", Position: intPtr(3)})
		require.NoError(t, err)
		assert.Equal(t, 3, moved.Position)

		assert.Equal(t, []string{"Flowers", "Pots", "Herbs"}, categoryTitles(t, db))
	})

	t.Run("omitted position keeps the current one", func(t *testing.T) {
		renamed, err := svc.Update(ctx, flowers.ID, CategoryPayload{Title: "Cut Flowers"})
		require.NoError(t, err)
		assert.Equal(t, "Cut-Flowers", renamed.Handle)
		assert.Equal(t, 1, renamed.Position)
	})

	t.Run("missing category is a 404", func(t *testing.T) {
		_, err := svc.Update(ctx, 999, CategoryPayload{Title: "Ghost"})
		require.Error(t, err)

		httpErr := helpers.ToHTTPError(err)
		assert.Equal(t, http.StatusNotFound, httpErr.Status)
		assert.Equal(t, "Category not found", httpErr.Message)
	})
}

func TestCategoryService_Delete(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCategoryService(repositories.NewCategoryRepository(db))
	ctx := context.Background()

	herbs, err := svc.Create(ctx, CategoryPayload{Title: "Herbs"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, herbs.ID))

	err = svc.Delete(ctx, herbs.ID)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, helpers.ToHTTPError(err).Status)
}
