package repository

import (
	"gorm.io/gorm"

	"github.com/Sandeepkd1824/tummy-tap/entity"
)

type AddressRepository struct{ DB *gorm.DB }

func NewAddressRepository(db *gorm.DB) *AddressRepository { return &AddressRepository{DB: db} }

func (r *AddressRepository) ListForUser(userID uint) ([]entity.Address, error) {
	var addrs []entity.Address
	err := r.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&addrs).Error
	return addrs, err
}

// FindForUser scopes the lookup to the owner so one user can never read
// another's address by id.
func (r *AddressRepository) FindForUser(id, userID uint) (*entity.Address, error) {
	var a entity.Address
	if err := r.DB.Where("id = ? AND user_id = ?", id, userID).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AddressRepository) DefaultForUser(userID uint) (*entity.Address, error) {
	var a entity.Address
	if err := r.DB.Where("user_id = ? AND is_default = ?", userID, true).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AddressRepository) Create(a *entity.Address) error {
	return r.DB.Create(a).Error
}

func (r *AddressRepository) Save(a *entity.Address) error {
	return r.DB.Save(a).Error
}

func (r *AddressRepository) Delete(id, userID uint) (int64, error) {
	res := r.DB.Where("id = ? AND user_id = ?", id, userID).Delete(&entity.Address{})
	return res.RowsAffected, res.Error
}

// SetDefault clears every default of the user and flags one address, as a
// single transaction step.
func (r *AddressRepository) SetDefault(tx *gorm.DB, userID, addressID uint) error {
	if err := tx.Model(&entity.Address{}).
		Where("user_id = ?", userID).
		Update("is_default", false).Error; err != nil {
		return err
	}
	return tx.Model(&entity.Address{}).
		Where("id = ? AND user_id = ?", addressID, userID).
		Update("is_default", true).Error
}
