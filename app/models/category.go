package models

import (
	"time"
)

type Category struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"size:255;not null;check:chk_category_title,title <> ''" json:"title"`
	Handle    string    `gorm:"size:255;not null;uniqueIndex;check:chk_category_handle,handle <> ''" json:"handle"`
	Position  int       `gorm:"not null;default:0" json:"position"`
	UpdatedAt time.Time `json:"updatedAt"`

	Products []Product `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"-"`
}
