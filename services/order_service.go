package services

import (
	"errors"
	"sort"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Sandeepkd1824/tummy-tap/entity"
	"github.com/Sandeepkd1824/tummy-tap/repository"
)

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	CartRepo *repository.CartRepository
	AddrRepo *repository.AddressRepository
	RestRepo *repository.RestaurantRepository
	CartSvc  *CartService
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	cartRepo *repository.CartRepository,
	addrRepo *repository.AddressRepository,
	restRepo *repository.RestaurantRepository,
	cartSvc *CartService,
) *OrderService {
	return &OrderService{
		DB: db, Repo: repo, CartRepo: cartRepo,
		AddrRepo: addrRepo, RestRepo: restRepo, CartSvc: cartSvc,
	}
}

// CheckoutSummary is what the client reviews before placing the order.
type CheckoutSummary struct {
	Cart           *CartView       `json:"cart"`
	DefaultAddress *entity.Address `json:"defaultAddress"`
	Subtotal       decimal.Decimal `json:"subtotal"`
}

func (s *OrderService) Checkout(userID uint) (*CheckoutSummary, error) {
	view, err := s.CartSvc.View(userID)
	if err != nil {
		return nil, err
	}

	out := &CheckoutSummary{Cart: view, Subtotal: view.Subtotal}
	addr, err := s.AddrRepo.DefaultForUser(userID)
	if err == nil {
		out.DefaultAddress = addr
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	return out, nil
}

// PlaceOrder converts the cart into one order per restaurant. The whole
// conversion, including the cart clear, runs in a single transaction with
// the cart row locked, so either every order lands or none does and a
// concurrent checkout cannot read the same lines twice.
//
// Lines are partitioned by restaurant id even though the add policy keeps
// carts single-restaurant; a legacy mixed cart checks out as several
// orders. Groups are processed in ascending restaurant id so the returned
// slice has a deterministic order.
func (s *OrderService) PlaceOrder(userID, addressID uint, method entity.PaymentMethod) ([]entity.Order, error) {
	if !method.Valid() {
		return nil, ErrInvalidPayment
	}

	addr, err := s.AddrRepo.FindForUser(addressID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAddressNotFound
		}
		return nil, err
	}

	var created []entity.Order
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		cart, err := s.CartRepo.GetCartForUpdate(tx, userID)
		if err != nil {
			return err
		}
		if len(cart.Items) == 0 {
			return ErrEmptyCart
		}

		groups := map[uint][]entity.CartItem{}
		restIDs := make([]uint, 0, 1)
		for _, line := range cart.Items {
			rid := line.Item.RestaurantID
			if _, ok := groups[rid]; !ok {
				restIDs = append(restIDs, rid)
			}
			groups[rid] = append(groups[rid], line)
		}
		sort.Slice(restIDs, func(i, j int) bool { return restIDs[i] < restIDs[j] })

		for _, rid := range restIDs {
			lines := groups[rid]

			total := decimal.Zero
			for _, l := range lines {
				total = total.Add(l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity))))
			}

			order := entity.Order{
				UserID:        userID,
				RestaurantID:  rid,
				Status:        entity.StatusPending,
				Total:         total,
				PaymentMethod: method,
				AddressLine1:  addr.Line1,
				AddressLine2:  addr.Line2,
				City:          addr.City,
				PostalCode:    addr.PostalCode,
				Latitude:      addr.Latitude,
				Longitude:     addr.Longitude,
			}
			if err := s.Repo.CreateOrder(tx, &order); err != nil {
				return err
			}

			for _, l := range lines {
				oi := entity.OrderItem{
					OrderID:   order.ID,
					ItemName:  l.Item.Name,
					UnitPrice: l.UnitPrice,
					Quantity:  l.Quantity,
				}
				if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
					return err
				}
				order.Items = append(order.Items, oi)
			}
			created = append(created, order)
		}

		return s.CartRepo.ClearCart(tx, userID)
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// ----- queries -----

func (s *OrderService) ListForUser(userID uint) ([]entity.Order, error) {
	return s.Repo.ListForUser(userID)
}

func (s *OrderService) DetailForUser(userID, orderID uint) (*entity.Order, error) {
	o, err := s.Repo.GetForUser(userID, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return o, nil
}

// ListForRestaurant serves the owner dashboard; only the restaurant's
// owner or an admin may read it.
func (s *OrderService) ListForRestaurant(actorID uint, role string, restID uint) ([]entity.Order, error) {
	if role != "admin" {
		ok, err := s.RestRepo.IsOwnedBy(restID, actorID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrForbidden
		}
	}
	return s.Repo.ListForRestaurant(restID)
}
