package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	OrderStatusNew      = "new"
	OrderStatusReady    = "ready"
	OrderStatusDone     = "done"
	OrderStatusCanceled = "canceled"
)

type Order struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	Name          string          `gorm:"size:255;not null;check:chk_order_name,name <> ''" json:"name"`
	Email         string          `gorm:"size:255;not null;check:chk_order_email,email <> ''" json:"email"`
	Phone         string          `gorm:"size:50;not null;check:chk_order_phone,phone <> ''" json:"phone"`
	TotalQuantity int             `gorm:"not null" json:"totalQuantity"`
	Cost          decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"cost"`
	Status        string          `gorm:"size:20;not null;default:'new';check:chk_order_status,status IN ('new','ready','done','canceled')" json:"status"`
	CreatedAt     time.Time       `json:"createdAt"`

	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
}
