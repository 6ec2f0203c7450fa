package services

import (
	"context"
	"net/http"
	"time"

	"github.com/yaarastore/backend/app/helpers"
	"github.com/yaarastore/backend/app/models"
	"github.com/yaarastore/backend/app/repositories"
)

type CategoryPayload struct {
	Title    string `json:"title" validate:"required"`
	Position *int   `json:"position"`
}

type CategoryService struct {
	categoryRepo repositories.CategoryRepositoryImpl
}

func NewCategoryService(categoryRepo repositories.CategoryRepositoryImpl) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// Create saves a new category and reindexes the whole set so it lands at
// its requested (clamped) position.
func (s *CategoryService) Create(ctx context.Context, payload CategoryPayload) (*models.Category, error) {
	category := &models.Category{
		Title:     payload.Title,
		Handle:    helpers.TitleToHandle(payload.Title),
		UpdatedAt: time.Now(),
	}
	if payload.Position != nil {
		category.Position = *payload.Position
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}

	return s.reorder(ctx, category)
}

// Update patches an existing category and reindexes. An omitted position
// keeps the category's current one.
func (s *CategoryService) Update(ctx context.Context, id uint, payload CategoryPayload) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, helpers.NewHTTPError(http.StatusNotFound, "Category not found")
	}

	if payload.Title != "" {
		category.Title = payload.Title
		category.Handle = helpers.TitleToHandle(payload.Title)
	}
	if payload.Position != nil {
		category.Position = *payload.Position
	}
	category.UpdatedAt = time.Now()

	if err := s.categoryRepo.Save(ctx, category); err != nil {
		return nil, err
	}

	return s.reorder(ctx, category)
}

func (s *CategoryService) Delete(ctx context.Context, id uint) error {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if category == nil {
		return helpers.NewHTTPError(http.StatusNotFound, "Category not found")
	}
	return s.categoryRepo.Delete(ctx, id)
}

// reorder recomputes a dense 1..N ordering across all categories. The
// just-saved target is pulled out of the persisted set, its requested
// position is clamped into [1, N+1], and sequential positions are assigned
// to the merged sequence, which is persisted as one bulk write.
func (s *CategoryService) reorder(ctx context.Context, saved *models.Category) (*models.Category, error) {
	all, err := s.categoryRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	rest := make([]models.Category, 0, len(all))
	for _, c := range all {
		if c.ID != saved.ID {
			rest = append(rest, c)
		}
	}

	target := saved.Position
	if target < 1 {
		target = 1
	}
	if target > len(rest)+1 {
		target = len(rest) + 1
	}

	updated := make([]models.Category, 0, len(rest)+1)
	pos := 1
	for i := 0; i <= len(rest); i++ {
		if pos == target {
			saved.Position = pos
			updated = append(updated, *saved)
			pos++
		}
		if i < len(rest) {
			rest[i].Position = pos
			updated = append(updated, rest[i])
			pos++
		}
	}

	if err := s.categoryRepo.SaveAll(ctx, updated); err != nil {
		return nil, err
	}

	return saved, nil
}
