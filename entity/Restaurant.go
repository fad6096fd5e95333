package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Restaurant struct {
	gorm.Model
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
	Phone       string `json:"phone"`

	AddressLine1 string          `json:"addressLine1"`
	AddressLine2 string          `json:"addressLine2"`
	City         string          `json:"city"`
	PostalCode   string          `json:"postalCode"`
	Latitude     decimal.Decimal `gorm:"type:decimal(9,6)" json:"latitude"`
	Longitude    decimal.Decimal `gorm:"type:decimal(9,6)" json:"longitude"`

	// restaurants do not accept orders beyond this distance
	ServiceRadiusKm decimal.Decimal `gorm:"type:decimal(5,2);default:5" json:"serviceRadiusKm"`

	IsOpen    bool   `gorm:"default:true" json:"isOpen"`
	OpenTime  string `json:"openTime"`
	CloseTime string `json:"closeTime"`

	// owner (users.id)
	UserID uint `json:"userId"`
	User   User `json:"-"`

	Categories []MenuCategory `json:"categories,omitempty"`
	Items      []MenuItem     `json:"items,omitempty"`
	Orders     []Order        `json:"-"`
}
