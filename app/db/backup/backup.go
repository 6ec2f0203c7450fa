package backup

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/yaarastore/backend/app/models"
	"gorm.io/gorm"
)

var httpClient = &http.Client{Timeout: 30 * time.Second}

// Run exports all store data to a timestamped directory: one JSON file per
// table plus a local copy of every product image. Image downloads are
// best-effort; a failed download is logged and recorded as missing in the
// mapping file.
func Run(db *gorm.DB, baseDir string) (string, error) {
	dir := filepath.Join(baseDir, fmt.Sprintf("backup-%s", time.Now().Format("2006-01-02-150405")))
	imagesDir := filepath.Join(dir, "images")
	if err := os.MkdirAll(imagesDir, 0o755); err != nil {
		return "", err
	}

	var categories []models.Category
	if err := db.Order("position ASC").Find(&categories).Error; err != nil {
		return "", err
	}

	var products []models.Product
	if err := db.Preload("Images", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("position ASC")
	}).Find(&products).Error; err != nil {
		return "", err
	}

	var orders []models.Order
	if err := db.Preload("Items").Order("created_at DESC").Find(&orders).Error; err != nil {
		return "", err
	}

	if err := writeJSON(filepath.Join(dir, "categories.json"), categories); err != nil {
		return "", err
	}
	if err := writeJSON(filepath.Join(dir, "products.json"), products); err != nil {
		return "", err
	}
	if err := writeJSON(filepath.Join(dir, "orders.json"), orders); err != nil {
		return "", err
	}

	mapping := map[string]string{}
	for _, product := range products {
		for _, image := range product.Images {
			if _, ok := mapping[image.URL]; ok {
				continue
			}
			name := fmt.Sprintf("%d-%s", image.ID, path.Base(image.URL))
			if err := downloadImage(image.URL, filepath.Join(imagesDir, name)); err != nil {
				log.Printf("❌ Failed to download %s: %v", image.URL, err)
				mapping[image.URL] = ""
				continue
			}
			mapping[image.URL] = filepath.Join("images", name)
		}
	}
	if err := writeJSON(filepath.Join(dir, "image-mapping.json"), mapping); err != nil {
		return "", err
	}

	return dir, nil
}

func writeJSON(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func downloadImage(url, dest string) error {
	resp, err := httpClient.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, resp.Body)
	return err
}
