package fakers

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/go-faker/faker/v4"
	"github.com/shopspring/decimal"
	"github.com/yaarastore/backend/app/helpers"
	"github.com/yaarastore/backend/app/models"
)

var sampleImageURLs = []string{
	"https://picsum.photos/seed/plant1/500/500",
	"https://picsum.photos/seed/plant2/500/500",
	"https://picsum.photos/seed/plant3/500/500",
}

func ProductFaker(category *models.Category) *models.Product {
	title := fmt.Sprintf("%s %d", faker.Word(), rand.Intn(10000))

	numImages := rand.Intn(3) + 1
	images := make([]models.ProductImage, numImages)
	for i := 0; i < numImages; i++ {
		images[i] = models.ProductImage{
			URL:      sampleImageURLs[rand.Intn(len(sampleImageURLs))],
			AltText:  faker.Word(),
			Position: i,
		}
	}

	return &models.Product{
		Title:       title,
		Handle:      helpers.TitleToHandle(title),
		Description: faker.Paragraph(),
		Price:       decimal.NewFromFloat(float64(rand.Intn(19000)+1000) / 100),
		Available:   rand.Intn(10) > 1,
		CategoryID:  category.ID,
		UpdatedAt:   time.Now(),
		Images:      images,
	}
}
