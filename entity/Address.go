package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	AddressLabelHome  = "home"
	AddressLabelWork  = "work"
	AddressLabelOther = "other"
)

type Address struct {
	gorm.Model
	UserID uint `gorm:"index;not null" json:"userId"`
	User   User `json:"-"`

	Label      string          `gorm:"not null;default:home" json:"label"`
	Line1      string          `gorm:"not null" json:"line1"`
	Line2      string          `json:"line2"`
	City       string          `gorm:"not null" json:"city"`
	PostalCode string          `json:"postalCode"`
	Latitude   decimal.Decimal `gorm:"type:decimal(9,6)" json:"latitude"`
	Longitude  decimal.Decimal `gorm:"type:decimal(9,6)" json:"longitude"`

	// at most one default per user, kept by AddressService.SetDefault
	IsDefault bool `gorm:"default:false" json:"isDefault"`
}
