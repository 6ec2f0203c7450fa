package models

type ProductImage struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	URL       string `gorm:"size:1024;not null;check:chk_image_url,url <> ''" json:"url"`
	AltText   string `gorm:"size:255;not null;check:chk_image_alt,alt_text <> ''" json:"altText"`
	Position  int    `gorm:"not null;default:0" json:"position"`
	ProductID uint   `gorm:"not null;index" json:"product_id"`
}
