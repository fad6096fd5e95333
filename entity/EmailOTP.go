package entity

import (
	"time"

	"gorm.io/gorm"
)

// OTPLifetime is how long a code stays valid after it was issued.
const OTPLifetime = 5 * time.Minute

type EmailOTP struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex" json:"userId"`
	User   User `json:"-"`

	Code     string    `gorm:"size:6" json:"-"`
	IssuedAt time.Time `json:"issuedAt"`
}

func (o *EmailOTP) IsExpired() bool {
	return time.Now().After(o.IssuedAt.Add(OTPLifetime))
}
