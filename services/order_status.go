package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Sandeepkd1824/tummy-tap/entity"
)

// UpdateStatus moves an order to a new status. Only the owner of the
// order's restaurant or an admin may do this. Any status can move to any
// other; there is deliberately no transition graph.
func (s *OrderService) UpdateStatus(actorID uint, role string, orderID uint, status entity.OrderStatus) (*entity.Order, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	o, err := s.Repo.Get(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if role != "admin" {
		ok, err := s.RestRepo.IsOwnedBy(o.RestaurantID, actorID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrForbidden
		}
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.UpdateStatus(tx, o.ID, status)
	})
	if err != nil {
		return nil, err
	}

	o.Status = status
	return o, nil
}
