package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Role     string `gorm:"not null;default:customer" json:"role"`

	// flips after the email OTP is confirmed; unverified users cannot log in
	IsVerified bool `gorm:"default:false" json:"isVerified"`

	// relations, preload only where needed
	Addresses        []Address    `json:"-"`
	Orders           []Order      `json:"-"`
	RestaurantsOwned []Restaurant `gorm:"foreignKey:UserID" json:"-"`
}
