package fakers

import (
	"math/rand"
	"time"

	"github.com/go-faker/faker/v4"
	"github.com/shopspring/decimal"
	"github.com/yaarastore/backend/app/models"
)

func OrderFaker(products []models.Product) *models.Order {
	numItems := rand.Intn(3) + 1
	if numItems > len(products) {
		numItems = len(products)
	}

	items := make([]models.OrderItem, 0, numItems)
	totalQuantity := 0
	cost := decimal.Zero
	for i := 0; i < numItems; i++ {
		product := products[rand.Intn(len(products))]
		quantity := rand.Intn(3) + 1

		imageURL := sampleImageURLs[0]
		imageAlt := product.Title
		if len(product.Images) > 0 {
			imageURL = product.Images[0].URL
			imageAlt = product.Images[0].AltText
		}

		total := product.Price.Mul(decimal.NewFromInt(int64(quantity)))
		items = append(items, models.OrderItem{
			ProductID:   product.ID,
			Handle:      product.Handle,
			Title:       product.Title,
			ImageURL:    imageURL,
			ImageAlt:    imageAlt,
			Quantity:    quantity,
			UnitAmount:  product.Price,
			TotalAmount: total,
		})

		totalQuantity += quantity
		cost = cost.Add(total)
	}

	statuses := []string{
		models.OrderStatusNew,
		models.OrderStatusReady,
		models.OrderStatusDone,
		models.OrderStatusCanceled,
	}

	return &models.Order{
		Name:          faker.Name(),
		Email:         faker.Email(),
		Phone:         faker.Phonenumber(),
		TotalQuantity: totalQuantity,
		Cost:          cost,
		Status:        statuses[rand.Intn(len(statuses))],
		CreatedAt:     time.Now().Add(-time.Duration(rand.Intn(720)) * time.Hour),
		Items:         items,
	}
}
