package services

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"

	"github.com/yaarastore/backend/app/helpers"
	"github.com/yaarastore/backend/app/models"
	"gorm.io/gorm"
)

type MockData struct {
	Categories []models.Category `json:"categories"`
	Products   []models.Product  `json:"products"`
	Orders     []models.Order    `json:"orders"`
}

// MockResetService wipes the catalog and orders and reloads them from a
// mock-data JSON file. It only runs when explicitly enabled, never in a
// real deployment.
type MockResetService struct {
	db       *gorm.DB
	dataPath string
	allowed  bool
}

func NewMockResetService(db *gorm.DB, dataPath string, allowed bool) *MockResetService {
	return &MockResetService{db: db, dataPath: dataPath, allowed: allowed}
}

func (s *MockResetService) Reset(ctx context.Context) error {
	if !s.allowed {
		return helpers.NewHTTPError(http.StatusForbidden, "Reset Mock Data is disabled")
	}

	raw, err := os.ReadFile(s.dataPath)
	if err != nil {
		return helpers.NewHTTPError(http.StatusForbidden, "No mock-data.json File")
	}

	var data MockData
	if err := json.Unmarshal(raw, &data); err != nil {
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		session := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
		if err := session.Delete(&models.Order{}).Error; err != nil {
			return err
		}
		if err := session.Delete(&models.Category{}).Error; err != nil {
			return err
		}

		// Best effort: MySQL only, irrelevant under other dialects.
		for _, table := range []string{"categories", "products", "orders"} {
			if err := tx.Exec("ALTER TABLE " + table + " AUTO_INCREMENT = 1").Error; err != nil {
				log.Printf("Could not reset auto increment for %s: %v", table, err)
			}
		}

		if len(data.Categories) > 0 {
			if err := tx.Create(&data.Categories).Error; err != nil {
				return err
			}
		}
		if len(data.Products) > 0 {
			if err := tx.Create(&data.Products).Error; err != nil {
				return err
			}
		}
		if len(data.Orders) > 0 {
			if err := tx.Create(&data.Orders).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
