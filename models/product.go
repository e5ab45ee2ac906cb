package models

import "time"

type ProductCategory string

const (
	CategoryFood  ProductCategory = "food"
	CategoryDrink ProductCategory = "drink"
	CategorySet   ProductCategory = "set"
	CategoryOther ProductCategory = "other"
)

// Categories lists every selectable category, in display order.
var Categories = []ProductCategory{CategoryFood, CategoryDrink, CategorySet, CategoryOther}

func (c ProductCategory) Valid() bool {
	switch c {
	case CategoryFood, CategoryDrink, CategorySet, CategoryOther:
		return true
	}
	return false
}

// Label returns the display name used across the UI.
func (c ProductCategory) Label() string {
	switch c {
	case CategoryFood:
		return "フード"
	case CategoryDrink:
		return "ドリンク"
	case CategorySet:
		return "セット"
	case CategoryOther:
		return "その他"
	}
	return string(c)
}

type Product struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Name        string          `gorm:"type:varchar(255);not null" json:"name"`
	ImageURL    string          `gorm:"type:varchar(255)" json:"image_url,omitempty"`
	Price       *float64        `gorm:"type:decimal(10,2)" json:"price,omitempty"`
	IsActive    bool            `gorm:"not null;default:true" json:"is_active"`
	Category    ProductCategory `gorm:"type:varchar(20);not null" json:"category"`
	Description string          `gorm:"type:text" json:"description,omitempty"`
	CreatedAt   time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null" json:"updated_at"`
}

// UnitPrice returns the price, treating an unset price as zero.
func (p Product) UnitPrice() float64 {
	if p.Price == nil {
		return 0
	}
	return *p.Price
}
