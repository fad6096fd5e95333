package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Sandeepkd1824/tummy-tap/entity"
)

type OTPRepository struct{ DB *gorm.DB }

func NewOTPRepository(db *gorm.DB) *OTPRepository { return &OTPRepository{DB: db} }

// Upsert stores a fresh code for the user, replacing any previous one and
// restarting the expiry clock.
func (r *OTPRepository) Upsert(userID uint, code string) error {
	var otp entity.EmailOTP
	err := r.DB.Where("user_id = ?", userID).First(&otp).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		otp = entity.EmailOTP{UserID: userID, Code: code, IssuedAt: time.Now()}
		return r.DB.Create(&otp).Error
	}
	if err != nil {
		return err
	}
	otp.Code = code
	otp.IssuedAt = time.Now()
	return r.DB.Save(&otp).Error
}

func (r *OTPRepository) FindByUserAndCode(userID uint, code string) (*entity.EmailOTP, error) {
	var otp entity.EmailOTP
	if err := r.DB.Where("user_id = ? AND code = ?", userID, code).First(&otp).Error; err != nil {
		return nil, err
	}
	return &otp, nil
}

func (r *OTPRepository) Delete(userID uint) error {
	return r.DB.Unscoped().Where("user_id = ?", userID).Delete(&entity.EmailOTP{}).Error
}
