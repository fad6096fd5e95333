package services

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Sandeepkd1824/tummy-tap/entity"
	"github.com/Sandeepkd1824/tummy-tap/repository"
)

type AddressService struct {
	DB   *gorm.DB
	Repo *repository.AddressRepository
}

func NewAddressService(db *gorm.DB, repo *repository.AddressRepository) *AddressService {
	return &AddressService{DB: db, Repo: repo}
}

type AddressIn struct {
	Label      string          `json:"label"`
	Line1      string          `json:"line1" binding:"required"`
	Line2      string          `json:"line2"`
	City       string          `json:"city" binding:"required"`
	PostalCode string          `json:"postalCode"`
	Latitude   decimal.Decimal `json:"latitude"`
	Longitude  decimal.Decimal `json:"longitude"`
}

func (s *AddressService) List(userID uint) ([]entity.Address, error) {
	return s.Repo.ListForUser(userID)
}

func (s *AddressService) Get(userID, id uint) (*entity.Address, error) {
	a, err := s.Repo.FindForUser(id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

func (s *AddressService) Create(userID uint, in *AddressIn) (*entity.Address, error) {
	label := in.Label
	if label == "" {
		label = entity.AddressLabelHome
	}
	a := &entity.Address{
		UserID:     userID,
		Label:      label,
		Line1:      in.Line1,
		Line2:      in.Line2,
		City:       in.City,
		PostalCode: in.PostalCode,
		Latitude:   in.Latitude,
		Longitude:  in.Longitude,
	}
	if err := s.Repo.Create(a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *AddressService) Update(userID, id uint, in *AddressIn) (*entity.Address, error) {
	a, err := s.Get(userID, id)
	if err != nil {
		return nil, err
	}

	if in.Label != "" {
		a.Label = in.Label
	}
	a.Line1 = in.Line1
	a.Line2 = in.Line2
	a.City = in.City
	a.PostalCode = in.PostalCode
	a.Latitude = in.Latitude
	a.Longitude = in.Longitude

	if err := s.Repo.Save(a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *AddressService) Delete(userID, id uint) error {
	affected, err := s.Repo.Delete(id, userID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// SetDefault atomically moves the default flag; after it returns, the
// user has exactly one default address.
func (s *AddressService) SetDefault(userID, id uint) error {
	if _, err := s.Get(userID, id); err != nil {
		return err
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.SetDefault(tx, userID, id)
	})
}
