package services

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Sandeepkd1824/tummy-tap/entity"
	"github.com/Sandeepkd1824/tummy-tap/repository"
)

type MenuService struct {
	Repo     *repository.MenuRepository
	RestRepo *repository.RestaurantRepository
}

func NewMenuService(repo *repository.MenuRepository, restRepo *repository.RestaurantRepository) *MenuService {
	return &MenuService{Repo: repo, RestRepo: restRepo}
}

type MenuItemIn struct {
	RestaurantID uint            `json:"restaurantId" binding:"required"`
	CategoryID   *uint           `json:"categoryId"`
	Name         string          `json:"name" binding:"required"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price" binding:"required"`
	Image        string          `json:"image"`
	IsAvailable  *bool           `json:"isAvailable"`
}

func (s *MenuService) CreateItem(actorID uint, role string, in *MenuItemIn) (*entity.MenuItem, error) {
	if err := s.checkOwner(actorID, role, in.RestaurantID); err != nil {
		return nil, err
	}

	item := &entity.MenuItem{
		RestaurantID: in.RestaurantID,
		CategoryID:   in.CategoryID,
		Name:         in.Name,
		Description:  in.Description,
		Price:        in.Price,
		Image:        in.Image,
		IsAvailable:  true,
	}
	if in.IsAvailable != nil {
		item.IsAvailable = *in.IsAvailable
	}
	if err := s.Repo.CreateItem(item); err != nil {
		return nil, err
	}
	return item, nil
}

// MenuItemUpdateIn is a partial patch; zero-valued fields are left alone.
type MenuItemUpdateIn struct {
	CategoryID  *uint           `json:"categoryId"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	IsAvailable *bool           `json:"isAvailable"`
}

func (s *MenuService) UpdateItem(actorID uint, role string, itemID uint, in *MenuItemUpdateIn) (*entity.MenuItem, error) {
	item, err := s.Repo.GetItem(itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := s.checkOwner(actorID, role, item.RestaurantID); err != nil {
		return nil, err
	}

	if in.Name != "" {
		item.Name = in.Name
	}
	if in.Description != "" {
		item.Description = in.Description
	}
	if !in.Price.IsZero() {
		item.Price = in.Price
	}
	if in.Image != "" {
		item.Image = in.Image
	}
	if in.CategoryID != nil {
		item.CategoryID = in.CategoryID
	}
	if in.IsAvailable != nil {
		item.IsAvailable = *in.IsAvailable
	}

	if err := s.Repo.SaveItem(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *MenuService) checkOwner(actorID uint, role string, restID uint) error {
	if role == "admin" {
		return nil
	}
	ok, err := s.RestRepo.IsOwnedBy(restID, actorID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrForbidden
	}
	return nil
}
