package services

import (
	"context"

	"github.com/yaarastore/backend/app/models"
	"github.com/yaarastore/backend/app/repositories"
)

// CatalogProduct is a Product decorated with the handle of its category
// and its first image, the shape the storefront consumes.
type CatalogProduct struct {
	models.Product
	Category      string               `json:"category"`
	FeaturedImage *models.ProductImage `json:"featuredImage"`
}

type CatalogData struct {
	Products   []CatalogProduct  `json:"products"`
	Categories []models.Category `json:"categories"`
}

type CatalogService struct {
	productRepo  repositories.ProductRepositoryImpl
	categoryRepo repositories.CategoryRepositoryImpl
}

func NewCatalogService(productRepo repositories.ProductRepositoryImpl, categoryRepo repositories.CategoryRepositoryImpl) *CatalogService {
	return &CatalogService{productRepo: productRepo, categoryRepo: categoryRepo}
}

func (s *CatalogService) GetData(ctx context.Context) (*CatalogData, error) {
	products, err := s.productRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	categories, err := s.categoryRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	handleByID := make(map[uint]string, len(categories))
	for _, c := range categories {
		handleByID[c.ID] = c.Handle
	}

	formatted := make([]CatalogProduct, len(products))
	for i, p := range products {
		cp := CatalogProduct{Product: p, Category: handleByID[p.CategoryID]}
		if len(p.Images) > 0 {
			cp.FeaturedImage = &p.Images[0]
		}
		formatted[i] = cp
	}

	return &CatalogData{Products: formatted, Categories: categories}, nil
}
