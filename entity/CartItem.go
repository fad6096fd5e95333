package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CartItem struct {
	gorm.Model
	CartID uint `gorm:"uniqueIndex:idx_cart_menu_item" json:"cartId"`
	Cart   Cart `json:"-"`

	ItemID uint     `gorm:"uniqueIndex:idx_cart_menu_item" json:"itemId"`
	Item   MenuItem `json:"-"`

	// UnitPrice is snapshotted from the menu item at add time so later
	// menu edits do not reprice lines already in the cart.
	UnitPrice decimal.Decimal `gorm:"type:decimal(8,2);not null" json:"unitPrice"`
	Quantity  int             `gorm:"not null;default:1" json:"quantity"`
}
