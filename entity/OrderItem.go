package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderItem snapshots name and price from the cart line; it keeps no
// reference to the menu item so menu edits never alter past orders.
type OrderItem struct {
	gorm.Model
	OrderID uint  `gorm:"index;not null" json:"orderId"`
	Order   Order `json:"-"`

	ItemName  string          `gorm:"not null" json:"itemName"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(8,2);not null" json:"unitPrice"`
	Quantity  int             `gorm:"not null;default:1" json:"quantity"`
}
