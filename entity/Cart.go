package entity

import (
	"gorm.io/gorm"
)

// Cart is the per-user staging area for an order. A non-empty cart only
// holds items from one restaurant; RestaurantID is 0 while the cart is
// empty and is re-tagged on the first add.
type Cart struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex" json:"userId"`
	User   User `json:"-"`

	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	Items []CartItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
}
