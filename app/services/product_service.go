package services

import (
	"context"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
	"github.com/yaarastore/backend/app/helpers"
	"github.com/yaarastore/backend/app/models"
	"github.com/yaarastore/backend/app/repositories"
)

type ProductImagePayload struct {
	URL     string `json:"url" validate:"required"`
	AltText string `json:"altText" validate:"required"`
}

type ProductPayload struct {
	Title       string                `json:"title" validate:"required"`
	Description string                `json:"description" validate:"required"`
	Price       decimal.Decimal       `json:"price"`
	Available   bool                  `json:"available"`
	CategoryID  uint                  `json:"category_id" validate:"required"`
	Images      []ProductImagePayload `json:"images" validate:"required,min=1,dive"`
}

type ProductService struct {
	productRepo repositories.ProductRepositoryImpl
}

func NewProductService(productRepo repositories.ProductRepositoryImpl) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// Create inserts a product together with its image set in one transaction.
// A product with no images is rejected before anything is written.
func (s *ProductService) Create(ctx context.Context, payload ProductPayload) (*models.Product, error) {
	if len(payload.Images) == 0 {
		return nil, helpers.ErrNoImages
	}

	product := &models.Product{
		Title:       payload.Title,
		Handle:      helpers.TitleToHandle(payload.Title),
		Description: payload.Description,
		Price:       payload.Price,
		Available:   payload.Available,
		CategoryID:  payload.CategoryID,
		UpdatedAt:   time.Now(),
	}

	if err := s.productRepo.SaveWithImages(ctx, product, imageModels(payload.Images)); err != nil {
		return nil, err
	}
	return product, nil
}

// Update patches the product row and atomically replaces its image set.
func (s *ProductService) Update(ctx context.Context, id uint, payload ProductPayload) (*models.Product, error) {
	if len(payload.Images) == 0 {
		return nil, helpers.ErrNoImages
	}

	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, helpers.NewHTTPError(http.StatusNotFound, "Product not found")
	}

	if payload.Title != "" {
		product.Title = payload.Title
		product.Handle = helpers.TitleToHandle(payload.Title)
	}
	product.Description = payload.Description
	product.Price = payload.Price
	product.Available = payload.Available
	product.CategoryID = payload.CategoryID
	product.UpdatedAt = time.Now()

	if err := s.productRepo.SaveWithImages(ctx, product, imageModels(payload.Images)); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) Delete(ctx context.Context, id uint) error {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return helpers.NewHTTPError(http.StatusNotFound, "Product not found")
	}
	return s.productRepo.Delete(ctx, id)
}

func imageModels(payloads []ProductImagePayload) []models.ProductImage {
	images := make([]models.ProductImage, len(payloads))
	for i, img := range payloads {
		images[i] = models.ProductImage{URL: img.URL, AltText: img.AltText, Position: i}
	}
	return images
}
