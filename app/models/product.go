package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Title       string          `gorm:"size:255;not null;check:chk_product_title,title <> ''" json:"title"`
	Handle      string          `gorm:"size:255;not null;uniqueIndex;check:chk_product_handle,handle <> ''" json:"handle"`
	Description string          `gorm:"type:text;not null;check:chk_product_description,description <> ''" json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Available   bool            `gorm:"not null" json:"available"`
	CategoryID  uint            `gorm:"not null;index" json:"category_id"`
	UpdatedAt   time.Time       `json:"updatedAt"`

	Images []ProductImage `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"images"`
}
