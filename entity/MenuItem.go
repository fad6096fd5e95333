package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	RestaurantID uint       `gorm:"index;not null" json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	CategoryID *uint         `json:"categoryId"`
	Category   *MenuCategory `json:"-"`

	Name        string          `gorm:"not null" json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(8,2);not null" json:"price"`
	Image       string          `json:"image"`
	IsAvailable bool            `gorm:"default:true" json:"isAvailable"`
}
