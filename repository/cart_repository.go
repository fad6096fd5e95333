package repository

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Sandeepkd1824/tummy-tap/entity"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

// GetCartWithItems returns the user's cart with lines and their menu
// items preloaded. A user without a cart row gets an empty cart back so
// callers never special-case "no cart yet".
func (r *CartRepository) GetCartWithItems(db *gorm.DB, userID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := db.Where("user_id = ?", userID).
		Preload("Items").
		Preload("Items.Item").
		Preload("Items.Item.Restaurant").
		First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &entity.Cart{UserID: userID}, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetCartForUpdate is GetCartWithItems plus a row lock on the cart, used
// by checkout so two concurrent checkouts cannot both read the same
// lines. sqlite has no FOR UPDATE; its single-writer transaction lock
// serializes checkout there, so the clause is only added on postgres.
func (r *CartRepository) GetCartForUpdate(tx *gorm.DB, userID uint) (*entity.Cart, error) {
	q := tx
	if tx.Dialector.Name() == "postgres" {
		q = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var c entity.Cart
	err := q.
		Where("user_id = ?", userID).
		Preload("Items").
		Preload("Items.Item").
		First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &entity.Cart{UserID: userID}, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CartRepository) GetOrCreateCart(tx *gorm.DB, userID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := tx.Where("user_id = ?", userID).Preload("Items").First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c = entity.Cart{UserID: userID}
		if err := tx.Create(&c).Error; err != nil {
			return nil, err
		}
		return &c, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CartRepository) SetRestaurant(tx *gorm.DB, cartID, restaurantID uint) error {
	return tx.Model(&entity.Cart{}).Where("id = ?", cartID).
		Update("restaurant_id", restaurantID).Error
}

func (r *CartRepository) FindLine(tx *gorm.DB, cartID, itemID uint) (*entity.CartItem, error) {
	var line entity.CartItem
	if err := tx.Where("cart_id = ? AND item_id = ?", cartID, itemID).First(&line).Error; err != nil {
		return nil, err
	}
	return &line, nil
}

func (r *CartRepository) CreateLine(tx *gorm.DB, line *entity.CartItem) error {
	return tx.Create(line).Error
}

func (r *CartRepository) SaveLine(tx *gorm.DB, line *entity.CartItem) error {
	return tx.Save(line).Error
}

// Cart lines are transient; deletes are hard so the unique (cart, item)
// index never collides with a soft-deleted row.
func (r *CartRepository) DeleteLine(tx *gorm.DB, line *entity.CartItem) error {
	return tx.Unscoped().Delete(line).Error
}

// DeleteLineByID removes one line, scoped to the owner's cart. Returns
// rows affected so the service can report NotFound.
func (r *CartRepository) DeleteLineByID(tx *gorm.DB, userID, lineID uint) (int64, error) {
	res := tx.Unscoped().
		Where("id = ? AND cart_id IN (SELECT id FROM carts WHERE user_id = ?)", lineID, userID).
		Delete(&entity.CartItem{})
	return res.RowsAffected, res.Error
}

func (r *CartRepository) DeleteAllLines(tx *gorm.DB, cartID uint) error {
	return tx.Unscoped().Where("cart_id = ?", cartID).Delete(&entity.CartItem{}).Error
}

func (r *CartRepository) CountLines(tx *gorm.DB, cartID uint) (int64, error) {
	var count int64
	err := tx.Model(&entity.CartItem{}).Where("cart_id = ?", cartID).Count(&count).Error
	return count, err
}

// ClearCart drops every line and untags the restaurant so the cart is
// ready for a new one. Idempotent: clearing a missing cart is a no-op.
func (r *CartRepository) ClearCart(tx *gorm.DB, userID uint) error {
	var c entity.Cart
	if err := tx.Where("user_id = ?", userID).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	if err := r.DeleteAllLines(tx, c.ID); err != nil {
		return err
	}
	return tx.Model(&entity.Cart{}).Where("id = ?", c.ID).Update("restaurant_id", 0).Error
}
