package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Sandeepkd1824/tummy-tap/entity"
)

func TestPlaceOrderEmptyCart(t *testing.T) {
	db := openTestDB(t)
	svc := newOrderService(db)
	user := seedUser(t, db, "alice", "customer")
	addr := seedAddress(t, db, user.ID, "12 MG Road")

	_, err := svc.PlaceOrder(user.ID, addr.ID, entity.PaymentCOD)
	require.ErrorIs(t, err, ErrEmptyCart)

	var count int64
	require.NoError(t, db.Model(&entity.Order{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestPlaceOrderInvalidPaymentMethod(t *testing.T) {
	db := openTestDB(t)
	svc := newOrderService(db)
	user := seedUser(t, db, "alice", "customer")
	addr := seedAddress(t, db, user.ID, "12 MG Road")

	_, err := svc.PlaceOrder(user.ID, addr.ID, entity.PaymentMethod("barter"))
	require.ErrorIs(t, err, ErrInvalidPayment)
}

func TestPlaceOrderForeignAddress(t *testing.T) {
	db := openTestDB(t)
	svc := newOrderService(db)
	alice := seedUser(t, db, "alice", "customer")
	bob := seedUser(t, db, "bob", "customer")
	bobAddr := seedAddress(t, db, bob.ID, "9 Bob Lane")

	rest := seedRestaurant(t, db, "A", 0, 0, 5, true, 0)
	item := seedMenuItem(t, db, rest.ID, "Dosa", "60.00", true)
	_, err := svc.CartSvc.AddItem(alice.ID, item.ID, 1)
	require.NoError(t, err)

	_, err = svc.PlaceOrder(alice.ID, bobAddr.ID, entity.PaymentCOD)
	require.ErrorIs(t, err, ErrAddressNotFound)
}

func TestPlaceOrderSingleRestaurant(t *testing.T) {
	db := openTestDB(t)
	svc := newOrderService(db)
	user := seedUser(t, db, "alice", "customer")
	addr := seedAddress(t, db, user.ID, "12 MG Road")
	rest := seedRestaurant(t, db, "Curry House", 0, 0, 5, true, 0)
	dosa := seedMenuItem(t, db, rest.ID, "Dosa", "10.00", true)
	chai := seedMenuItem(t, db, rest.ID, "Chai", "5.50", true)

	_, err := svc.CartSvc.AddItem(user.ID, dosa.ID, 2)
	require.NoError(t, err)
	_, err = svc.CartSvc.AddItem(user.ID, chai.ID, 1)
	require.NoError(t, err)

	orders, err := svc.PlaceOrder(user.ID, addr.ID, entity.PaymentUPI)
	require.NoError(t, err)
	require.Len(t, orders, 1)

	o := orders[0]
	require.Equal(t, rest.ID, o.RestaurantID)
	require.Equal(t, entity.StatusPending, o.Status)
	require.Equal(t, entity.PaymentUPI, o.PaymentMethod)
	requireDecimalEqual(t, "25.50", o.Total)
	require.Len(t, o.Items, 2)

	// address snapshot copied, not referenced
	require.Equal(t, addr.Line1, o.AddressLine1)
	require.Equal(t, addr.City, o.City)

	// the cart is emptied
	view, err := svc.CartSvc.View(user.ID)
	require.NoError(t, err)
	require.Empty(t, view.Restaurants)

	var itemCount int64
	require.NoError(t, db.Model(&entity.OrderItem{}).Count(&itemCount).Error)
	require.EqualValues(t, 2, itemCount)
}

func TestPlaceOrderAddressSnapshotSurvivesEdit(t *testing.T) {
	db := openTestDB(t)
	svc := newOrderService(db)
	user := seedUser(t, db, "alice", "customer")
	addr := seedAddress(t, db, user.ID, "12 MG Road")
	rest := seedRestaurant(t, db, "A", 0, 0, 5, true, 0)
	item := seedMenuItem(t, db, rest.ID, "Dosa", "60.00", true)

	_, err := svc.CartSvc.AddItem(user.ID, item.ID, 1)
	require.NoError(t, err)
	orders, err := svc.PlaceOrder(user.ID, addr.ID, entity.PaymentCOD)
	require.NoError(t, err)

	require.NoError(t, db.Model(&entity.Address{}).Where("id = ?", addr.ID).
		Update("line1", "moved away").Error)

	got, err := svc.DetailForUser(user.ID, orders[0].ID)
	require.NoError(t, err)
	require.Equal(t, "12 MG Road", got.AddressLine1)
}

func TestPlaceOrderLegacyMixedCartGroupsByRestaurant(t *testing.T) {
	db := openTestDB(t)
	svc := newOrderService(db)
	user := seedUser(t, db, "alice", "customer")
	addr := seedAddress(t, db, user.ID, "12 MG Road")
	restA := seedRestaurant(t, db, "A", 0, 0, 5, true, 0)
	restB := seedRestaurant(t, db, "B", 0, 0, 5, true, 0)
	itemA := seedMenuItem(t, db, restA.ID, "Dosa", "60.00", true)
	itemB := seedMenuItem(t, db, restB.ID, "Biryani", "150.00", true)

	cart := &entity.Cart{UserID: user.ID, RestaurantID: restA.ID}
	require.NoError(t, db.Create(cart).Error)
	require.NoError(t, db.Create(&entity.CartItem{
		CartID: cart.ID, ItemID: itemB.ID, UnitPrice: itemB.Price, Quantity: 1,
	}).Error)
	require.NoError(t, db.Create(&entity.CartItem{
		CartID: cart.ID, ItemID: itemA.ID, UnitPrice: itemA.Price, Quantity: 2,
	}).Error)

	orders, err := svc.PlaceOrder(user.ID, addr.ID, entity.PaymentCOD)
	require.NoError(t, err)
	require.Len(t, orders, 2)

	// deterministic: ascending restaurant id regardless of insert order
	require.Equal(t, restA.ID, orders[0].RestaurantID)
	require.Equal(t, restB.ID, orders[1].RestaurantID)
	requireDecimalEqual(t, "120.00", orders[0].Total)
	requireDecimalEqual(t, "150.00", orders[1].Total)
}

func TestPlaceOrderIsAtomic(t *testing.T) {
	db := openTestDB(t)
	svc := newOrderService(db)
	user := seedUser(t, db, "alice", "customer")
	addr := seedAddress(t, db, user.ID, "12 MG Road")
	rest := seedRestaurant(t, db, "A", 0, 0, 5, true, 0)
	item := seedMenuItem(t, db, rest.ID, "Dosa", "60.00", true)

	_, err := svc.CartSvc.AddItem(user.ID, item.ID, 2)
	require.NoError(t, err)

	// sabotage order item creation; the whole checkout must roll back
	require.NoError(t, db.Migrator().DropTable(&entity.OrderItem{}))

	_, err = svc.PlaceOrder(user.ID, addr.ID, entity.PaymentCOD)
	require.Error(t, err)

	var orderCount int64
	require.NoError(t, db.Model(&entity.Order{}).Count(&orderCount).Error)
	require.Zero(t, orderCount)

	// the cart survives untouched
	view, err := svc.CartSvc.View(user.ID)
	require.NoError(t, err)
	require.Len(t, view.Restaurants, 1)
	require.Equal(t, 2, view.Restaurants[0].Items[0].Quantity)
}

func TestCheckoutSummaryIncludesDefaultAddress(t *testing.T) {
	db := openTestDB(t)
	svc := newOrderService(db)
	user := seedUser(t, db, "alice", "customer")
	rest := seedRestaurant(t, db, "A", 0, 0, 5, true, 0)
	item := seedMenuItem(t, db, rest.ID, "Dosa", "60.00", true)

	_, err := svc.CartSvc.AddItem(user.ID, item.ID, 1)
	require.NoError(t, err)

	// no default address yet
	summary, err := svc.Checkout(user.ID)
	require.NoError(t, err)
	require.Nil(t, summary.DefaultAddress)
	requireDecimalEqual(t, "60.00", summary.Subtotal)

	addr := seedAddress(t, db, user.ID, "12 MG Road")
	require.NoError(t, db.Model(&entity.Address{}).Where("id = ?", addr.ID).
		Update("is_default", true).Error)

	summary, err = svc.Checkout(user.ID)
	require.NoError(t, err)
	require.NotNil(t, summary.DefaultAddress)
	require.Equal(t, addr.ID, summary.DefaultAddress.ID)
}

func TestUpdateStatus(t *testing.T) {
	db := openTestDB(t)
	svc := newOrderService(db)
	owner := seedUser(t, db, "owner", "owner")
	stranger := seedUser(t, db, "stranger", "owner")
	admin := seedUser(t, db, "admin", "admin")
	customer := seedUser(t, db, "alice", "customer")
	addr := seedAddress(t, db, customer.ID, "12 MG Road")
	rest := seedRestaurant(t, db, "A", 0, 0, 5, true, owner.ID)
	item := seedMenuItem(t, db, rest.ID, "Dosa", "60.00", true)

	_, err := svc.CartSvc.AddItem(customer.ID, item.ID, 1)
	require.NoError(t, err)
	orders, err := svc.PlaceOrder(customer.ID, addr.ID, entity.PaymentCOD)
	require.NoError(t, err)
	orderID := orders[0].ID

	_, err = svc.UpdateStatus(owner.ID, "owner", orderID, entity.OrderStatus("teleported"))
	require.ErrorIs(t, err, ErrInvalidStatus)

	_, err = svc.UpdateStatus(stranger.ID, "owner", orderID, entity.StatusConfirmed)
	require.ErrorIs(t, err, ErrForbidden)

	_, err = svc.UpdateStatus(owner.ID, "owner", 999, entity.StatusConfirmed)
	require.ErrorIs(t, err, ErrNotFound)

	o, err := svc.UpdateStatus(owner.ID, "owner", orderID, entity.StatusConfirmed)
	require.NoError(t, err)
	require.Equal(t, entity.StatusConfirmed, o.Status)

	// no transition graph: any status may move to any other
	o, err = svc.UpdateStatus(admin.ID, "admin", orderID, entity.StatusCancelled)
	require.NoError(t, err)
	require.Equal(t, entity.StatusCancelled, o.Status)

	got, err := svc.DetailForUser(customer.ID, orderID)
	require.NoError(t, err)
	require.Equal(t, entity.StatusCancelled, got.Status)
}
