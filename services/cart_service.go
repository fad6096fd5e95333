package services

import (
	"errors"
	"sort"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Sandeepkd1824/tummy-tap/entity"
	"github.com/Sandeepkd1824/tummy-tap/repository"
)

type CartService struct {
	DB       *gorm.DB
	CartRepo *repository.CartRepository
	MenuRepo *repository.MenuRepository
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, mr *repository.MenuRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr, MenuRepo: mr}
}

// ----- read model -----

type CartLineView struct {
	ID        uint            `json:"id"`
	ItemID    uint            `json:"itemId"`
	ItemName  string          `json:"itemName"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Quantity  int             `json:"quantity"`
	LineTotal decimal.Decimal `json:"lineTotal"`
}

type CartGroupView struct {
	RestaurantID    uint            `json:"restaurantId"`
	RestaurantName  string          `json:"restaurantName"`
	Items           []CartLineView  `json:"items"`
	RestaurantTotal decimal.Decimal `json:"restaurantTotal"`
}

type CartView struct {
	ID          uint            `json:"id"`
	Restaurants []CartGroupView `json:"restaurants"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// View groups lines by restaurant. With the single-restaurant add policy
// there is at most one group in steady state, but legacy mixed carts
// still render correctly. Groups come back in ascending restaurant id.
func (s *CartService) View(userID uint) (*CartView, error) {
	c, err := s.CartRepo.GetCartWithItems(s.DB, userID)
	if err != nil {
		return nil, err
	}
	return buildCartView(c), nil
}

func buildCartView(c *entity.Cart) *CartView {
	groups := map[uint]*CartGroupView{}
	ids := make([]uint, 0, 1)
	subtotal := decimal.Zero

	for _, line := range c.Items {
		rid := line.Item.RestaurantID
		g, ok := groups[rid]
		if !ok {
			g = &CartGroupView{
				RestaurantID:    rid,
				RestaurantName:  line.Item.Restaurant.Name,
				RestaurantTotal: decimal.Zero,
			}
			groups[rid] = g
			ids = append(ids, rid)
		}
		lineTotal := line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity)))
		g.Items = append(g.Items, CartLineView{
			ID:        line.ID,
			ItemID:    line.ItemID,
			ItemName:  line.Item.Name,
			UnitPrice: line.UnitPrice,
			Quantity:  line.Quantity,
			LineTotal: lineTotal,
		})
		g.RestaurantTotal = g.RestaurantTotal.Add(lineTotal)
		subtotal = subtotal.Add(lineTotal)
	}

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := &CartView{ID: c.ID, Restaurants: []CartGroupView{}, Subtotal: subtotal}
	for _, rid := range ids {
		out.Restaurants = append(out.Restaurants, *groups[rid])
	}
	return out
}

// ----- mutations -----

// AddItem enforces the single-restaurant cart: adding an item from a
// different restaurant clears the existing lines first. Re-adding the
// same item merges into one line.
func (s *CartService) AddItem(userID, itemID uint, quantity int) (*CartView, error) {
	if quantity < 1 {
		quantity = 1
	}

	item, err := s.MenuRepo.GetItem(itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !item.IsAvailable {
		return nil, ErrItemUnavailable
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		cart, err := s.CartRepo.GetOrCreateCart(tx, userID)
		if err != nil {
			return err
		}

		if len(cart.Items) > 0 && cart.RestaurantID != item.RestaurantID {
			if err := s.CartRepo.DeleteAllLines(tx, cart.ID); err != nil {
				return err
			}
		}
		if cart.RestaurantID != item.RestaurantID {
			if err := s.CartRepo.SetRestaurant(tx, cart.ID, item.RestaurantID); err != nil {
				return err
			}
		}

		line, err := s.CartRepo.FindLine(tx, cart.ID, item.ID)
		if err == nil {
			line.Quantity += quantity
			return s.CartRepo.SaveLine(tx, line)
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		return s.CartRepo.CreateLine(tx, &entity.CartItem{
			CartID:    cart.ID,
			ItemID:    item.ID,
			UnitPrice: item.Price,
			Quantity:  quantity,
		})
	})
	if err != nil {
		return nil, err
	}
	return s.View(userID)
}

// RemoveOneUnit takes one unit off the line and drops the line when the
// last unit goes.
func (s *CartService) RemoveOneUnit(userID, itemID uint) (*CartView, error) {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		cart, err := s.CartRepo.GetOrCreateCart(tx, userID)
		if err != nil {
			return err
		}
		line, err := s.CartRepo.FindLine(tx, cart.ID, itemID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if line.Quantity > 1 {
			line.Quantity--
			return s.CartRepo.SaveLine(tx, line)
		}
		if err := s.CartRepo.DeleteLine(tx, line); err != nil {
			return err
		}
		return s.untagIfEmpty(tx, cart.ID)
	})
	if err != nil {
		return nil, err
	}
	return s.View(userID)
}

// DeleteLine removes a line outright and reports the new subtotal.
func (s *CartService) DeleteLine(userID, lineID uint) (decimal.Decimal, error) {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.CartRepo.DeleteLineByID(tx, userID, lineID)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrNotFound
		}
		cart, err := s.CartRepo.GetOrCreateCart(tx, userID)
		if err != nil {
			return err
		}
		return s.untagIfEmpty(tx, cart.ID)
	})
	if err != nil {
		return decimal.Zero, err
	}

	v, err := s.View(userID)
	if err != nil {
		return decimal.Zero, err
	}
	return v.Subtotal, nil
}

func (s *CartService) Clear(userID uint) (*CartView, error) {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.ClearCart(tx, userID)
	})
	if err != nil {
		return nil, err
	}
	return s.View(userID)
}

func (s *CartService) untagIfEmpty(tx *gorm.DB, cartID uint) error {
	count, err := s.CartRepo.CountLines(tx, cartID)
	if err != nil {
		return err
	}
	if count == 0 {
		return s.CartRepo.SetRestaurant(tx, cartID, 0)
	}
	return nil
}
