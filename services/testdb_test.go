package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Sandeepkd1824/tummy-tap/entity"
	"github.com/Sandeepkd1824/tummy-tap/repository"
)

// openTestDB gives each test its own named in-memory sqlite database.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entity.User{}, &entity.EmailOTP{},
		&entity.Address{},
		&entity.Restaurant{}, &entity.MenuCategory{}, &entity.MenuItem{},
		&entity.Cart{}, &entity.CartItem{},
		&entity.Order{}, &entity.OrderItem{},
	))
	return db
}

func newCartService(db *gorm.DB) *CartService {
	return NewCartService(db, repository.NewCartRepository(db), repository.NewMenuRepository(db))
}

func newOrderService(db *gorm.DB) *OrderService {
	cartSvc := newCartService(db)
	return NewOrderService(
		db,
		repository.NewOrderRepository(db),
		repository.NewCartRepository(db),
		repository.NewAddressRepository(db),
		repository.NewRestaurantRepository(db),
		cartSvc,
	)
}

func seedUser(t *testing.T, db *gorm.DB, username, role string) *entity.User {
	t.Helper()
	u := &entity.User{
		Username:   username,
		Email:      username + "@example.com",
		Password:   "x",
		Role:       role,
		IsVerified: true,
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func seedRestaurant(t *testing.T, db *gorm.DB, name string, lat, lng, radiusKm float64, open bool, ownerID uint) *entity.Restaurant {
	t.Helper()
	r := &entity.Restaurant{
		Name:            name,
		AddressLine1:    "1 " + name + " St",
		City:            "Testville",
		Latitude:        decimal.NewFromFloat(lat),
		Longitude:       decimal.NewFromFloat(lng),
		ServiceRadiusKm: decimal.NewFromFloat(radiusKm),
		IsOpen:          open,
		UserID:          ownerID,
	}
	require.NoError(t, db.Create(r).Error)
	return r
}

func seedMenuItem(t *testing.T, db *gorm.DB, restID uint, name, price string, available bool) *entity.MenuItem {
	t.Helper()
	item := &entity.MenuItem{
		RestaurantID: restID,
		Name:         name,
		Price:        decimal.RequireFromString(price),
		IsAvailable:  available,
	}
	require.NoError(t, db.Create(item).Error)
	return item
}

func seedAddress(t *testing.T, db *gorm.DB, userID uint, line1 string) *entity.Address {
	t.Helper()
	a := &entity.Address{
		UserID:    userID,
		Label:     entity.AddressLabelHome,
		Line1:     line1,
		City:      "Testville",
		Latitude:  decimal.RequireFromString("12.9716"),
		Longitude: decimal.RequireFromString("77.5946"),
	}
	require.NoError(t, db.Create(a).Error)
	return a
}

func requireDecimalEqual(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	require.True(t, decimal.RequireFromString(want).Equal(got),
		"want %s, got %s", want, got.String())
}
