package repositories

import (
	"context"
	"errors"

	"github.com/yaarastore/backend/app/models"
	"gorm.io/gorm"
)

type ProductRepositoryImpl interface {
	GetByID(ctx context.Context, id uint) (*models.Product, error)
	GetAll(ctx context.Context) ([]models.Product, error)
	SaveWithImages(ctx context.Context, product *models.Product, images []models.ProductImage) error
	Delete(ctx context.Context, id uint) error
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepositoryImpl {
	return &productRepository{db}
}

func (p *productRepository) GetByID(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	err := p.db.WithContext(ctx).
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&product, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (p *productRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := p.db.WithContext(ctx).
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Order("updated_at DESC").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

// SaveWithImages atomically replaces the product's image set: the product
// row is upserted, every existing image row is deleted, and the new set is
// inserted with sequential positions. Any failure rolls the whole write
// back so the product is never left with a mismatched image set.
func (p *productRepository) SaveWithImages(ctx context.Context, product *models.Product, images []models.ProductImage) error {
	return p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		product.Images = nil

		if err := tx.Save(product).Error; err != nil {
			return err
		}

		if err := tx.Where("product_id = ?", product.ID).Delete(&models.ProductImage{}).Error; err != nil {
			return err
		}

		for i := range images {
			images[i].ID = 0
			images[i].ProductID = product.ID
			images[i].Position = i
		}
		if err := tx.Create(&images).Error; err != nil {
			return err
		}

		product.Images = images
		return nil
	})
}

func (p *productRepository) Delete(ctx context.Context, id uint) error {
	return p.db.WithContext(ctx).Delete(&models.Product{}, "id = ?", id).Error
}
