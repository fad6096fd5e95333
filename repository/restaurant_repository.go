package repository

import (
	"gorm.io/gorm"

	"github.com/Sandeepkd1824/tummy-tap/entity"
)

type RestaurantRepository struct{ DB *gorm.DB }

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

func (r *RestaurantRepository) FindAll() ([]entity.Restaurant, error) {
	var rests []entity.Restaurant
	err := r.DB.Find(&rests).Error
	return rests, err
}

func (r *RestaurantRepository) FindByID(id uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	err := r.DB.
		Preload("Categories", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order, name")
		}).
		Preload("Categories.Items").
		Preload("Items").
		First(&rest, id).Error
	if err != nil {
		return nil, err
	}
	return &rest, nil
}

// ListOpen feeds the proximity scan; only open restaurants are candidates.
func (r *RestaurantRepository) ListOpen() ([]entity.Restaurant, error) {
	var rests []entity.Restaurant
	err := r.DB.Where("is_open = ?", true).Find(&rests).Error
	return rests, err
}

func (r *RestaurantRepository) IsOwnedBy(restID, userID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.Restaurant{}).
		Where("id = ? AND user_id = ?", restID, userID).
		Count(&count).Error
	return count > 0, err
}
