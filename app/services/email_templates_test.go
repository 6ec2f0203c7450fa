package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/yaarastore/backend/app/models"
)

func TestEmailStringsFor(t *testing.T) {
	assert.Equal(t, "rtl", EmailStringsFor("he").Dir)
	assert.Equal(t, "rtl", EmailStringsFor("").Dir)
	assert.Equal(t, "ltr", EmailStringsFor("en").Dir)
}

func TestOrderEmailHTML(t *testing.T) {
	order := &models.Order{
		ID:            42,
		Name:          "Dana Levi",
		Cost:          decimal.NewFromFloat(60.50),
		TotalQuantity: 3,
		Items: []models.OrderItem{{
			Title:       "Basil",
			ImageURL:    "https://example.com/basil.jpg",
			ImageAlt:    "Basil plant",
			Quantity:    2,
			UnitAmount:  decimal.NewFromFloat(18.00),
			TotalAmount: decimal.NewFromFloat(36.00),
		}},
	}

	t.Run("hebrew body", func(t *testing.T) {
		body := OrderEmailHTML(order, EmailStringsFor("he"))
		assert.Contains(t, body, `dir="rtl"`)
		assert.Contains(t, body, "שלום Dana Levi")
		assert.Contains(t, body, "#42")
		assert.Contains(t, body, "₪60.50")
		assert.Contains(t, body, "https://example.com/basil.jpg")
	})

	t.Run("english body", func(t *testing.T) {
		body := OrderEmailHTML(order, EmailStringsFor("en"))
		assert.Contains(t, body, `dir="ltr"`)
		assert.Contains(t, body, "Hello Dana Levi")
		assert.Contains(t, body, "₪36.00")
		assert.Contains(t, body, "Order number:")
	})
}
