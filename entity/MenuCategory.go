package entity

import (
	"gorm.io/gorm"
)

type MenuCategory struct {
	gorm.Model
	RestaurantID uint       `gorm:"index;not null" json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	Name      string `gorm:"not null" json:"name"`
	SortOrder uint   `gorm:"default:0" json:"sortOrder"`

	Items []MenuItem `gorm:"foreignKey:CategoryID" json:"items,omitempty"`
}
