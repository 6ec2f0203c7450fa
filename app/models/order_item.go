package models

import (
	"github.com/shopspring/decimal"
)

// OrderItem is a point-in-time copy of the product display data at order
// time. ProductID is a plain column, not a foreign key, so historical
// orders survive product edits and deletions.
type OrderItem struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	OrderID     uint            `gorm:"not null;index" json:"order_id"`
	ProductID   uint            `gorm:"not null" json:"productId"`
	Handle      string          `gorm:"size:255;not null;check:chk_item_handle,handle <> ''" json:"handle"`
	Title       string          `gorm:"size:255;not null;check:chk_item_title,title <> ''" json:"title"`
	ImageURL    string          `gorm:"size:1024;not null;check:chk_item_image_url,image_url <> ''" json:"imageUrl"`
	ImageAlt    string          `gorm:"size:255;not null;check:chk_item_image_alt,image_alt <> ''" json:"imageAlt"`
	Quantity    int             `gorm:"not null" json:"quantity"`
	UnitAmount  decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"unitAmount"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"totalAmount"`
}
