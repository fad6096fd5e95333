package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Order is created once at checkout. The delivery address is copied in,
// not referenced, so editing a saved address never rewrites history; only
// Status mutates afterwards.
type Order struct {
	gorm.Model
	UserID uint `gorm:"index;not null" json:"userId"`
	User   User `json:"-"`

	RestaurantID uint       `gorm:"index;not null" json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	Status OrderStatus     `gorm:"type:varchar(20);not null;default:pending" json:"status"`
	Total  decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total"`

	PaymentMethod PaymentMethod `gorm:"type:varchar(20);not null;default:cod" json:"paymentMethod"`

	// address snapshot
	AddressLine1 string          `gorm:"not null" json:"addressLine1"`
	AddressLine2 string          `json:"addressLine2"`
	City         string          `gorm:"not null" json:"city"`
	PostalCode   string          `json:"postalCode"`
	Latitude     decimal.Decimal `gorm:"type:decimal(9,6)" json:"latitude"`
	Longitude    decimal.Decimal `gorm:"type:decimal(9,6)" json:"longitude"`

	Items []OrderItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
}
