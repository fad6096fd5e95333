package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Sandeepkd1824/tummy-tap/entity"
)

func TestAddItemMergesQuantity(t *testing.T) {
	db := openTestDB(t)
	svc := newCartService(db)
	user := seedUser(t, db, "alice", "customer")
	rest := seedRestaurant(t, db, "Curry House", 0, 0, 5, true, 0)
	item := seedMenuItem(t, db, rest.ID, "Paneer Tikka", "120.00", true)

	_, err := svc.AddItem(user.ID, item.ID, 2)
	require.NoError(t, err)
	view, err := svc.AddItem(user.ID, item.ID, 3)
	require.NoError(t, err)

	require.Len(t, view.Restaurants, 1)
	require.Len(t, view.Restaurants[0].Items, 1)
	require.Equal(t, 5, view.Restaurants[0].Items[0].Quantity)
	requireDecimalEqual(t, "600.00", view.Subtotal)
}

func TestAddItemSnapshotsPrice(t *testing.T) {
	db := openTestDB(t)
	svc := newCartService(db)
	user := seedUser(t, db, "alice", "customer")
	rest := seedRestaurant(t, db, "Curry House", 0, 0, 5, true, 0)
	item := seedMenuItem(t, db, rest.ID, "Dal Fry", "80.00", true)

	_, err := svc.AddItem(user.ID, item.ID, 1)
	require.NoError(t, err)

	// menu edit after the add must not reprice the cart line
	require.NoError(t, db.Model(&entity.MenuItem{}).Where("id = ?", item.ID).
		Update("price", "95.00").Error)

	view, err := svc.View(user.ID)
	require.NoError(t, err)
	requireDecimalEqual(t, "80.00", view.Restaurants[0].Items[0].UnitPrice)
}

func TestAddItemFromOtherRestaurantClearsCart(t *testing.T) {
	db := openTestDB(t)
	svc := newCartService(db)
	user := seedUser(t, db, "alice", "customer")
	restA := seedRestaurant(t, db, "A", 0, 0, 5, true, 0)
	restB := seedRestaurant(t, db, "B", 0, 0, 5, true, 0)
	itemA := seedMenuItem(t, db, restA.ID, "Dosa", "60.00", true)
	itemB := seedMenuItem(t, db, restB.ID, "Biryani", "150.00", true)

	_, err := svc.AddItem(user.ID, itemA.ID, 2)
	require.NoError(t, err)
	view, err := svc.AddItem(user.ID, itemB.ID, 1)
	require.NoError(t, err)

	require.Len(t, view.Restaurants, 1)
	require.Equal(t, restB.ID, view.Restaurants[0].RestaurantID)
	require.Len(t, view.Restaurants[0].Items, 1)
	require.Equal(t, itemB.ID, view.Restaurants[0].Items[0].ItemID)

	// invariant: every line references the cart's restaurant
	var lines []entity.CartItem
	require.NoError(t, db.Preload("Item").Find(&lines).Error)
	for _, l := range lines {
		require.Equal(t, restB.ID, l.Item.RestaurantID)
	}
}

func TestAddItemErrors(t *testing.T) {
	db := openTestDB(t)
	svc := newCartService(db)
	user := seedUser(t, db, "alice", "customer")
	rest := seedRestaurant(t, db, "A", 0, 0, 5, true, 0)
	offItem := seedMenuItem(t, db, rest.ID, "Sold Out Special", "99.00", false)

	_, err := svc.AddItem(user.ID, 4242, 1)
	require.ErrorIs(t, err, ErrNotFound)

	_, err = svc.AddItem(user.ID, offItem.ID, 1)
	require.ErrorIs(t, err, ErrItemUnavailable)
}

func TestRemoveOneUnit(t *testing.T) {
	db := openTestDB(t)
	svc := newCartService(db)
	user := seedUser(t, db, "alice", "customer")
	rest := seedRestaurant(t, db, "A", 0, 0, 5, true, 0)
	item := seedMenuItem(t, db, rest.ID, "Dosa", "60.00", true)

	_, err := svc.AddItem(user.ID, item.ID, 2)
	require.NoError(t, err)

	view, err := svc.RemoveOneUnit(user.ID, item.ID)
	require.NoError(t, err)
	require.Equal(t, 1, view.Restaurants[0].Items[0].Quantity)

	view, err = svc.RemoveOneUnit(user.ID, item.ID)
	require.NoError(t, err)
	require.Empty(t, view.Restaurants)

	_, err = svc.RemoveOneUnit(user.ID, item.ID)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteLineReturnsSubtotal(t *testing.T) {
	db := openTestDB(t)
	svc := newCartService(db)
	user := seedUser(t, db, "alice", "customer")
	rest := seedRestaurant(t, db, "A", 0, 0, 5, true, 0)
	dosa := seedMenuItem(t, db, rest.ID, "Dosa", "60.00", true)
	chai := seedMenuItem(t, db, rest.ID, "Chai", "20.00", true)

	_, err := svc.AddItem(user.ID, dosa.ID, 1)
	require.NoError(t, err)
	view, err := svc.AddItem(user.ID, chai.ID, 2)
	require.NoError(t, err)

	var dosaLineID uint
	for _, l := range view.Restaurants[0].Items {
		if l.ItemID == dosa.ID {
			dosaLineID = l.ID
		}
	}

	subtotal, err := svc.DeleteLine(user.ID, dosaLineID)
	require.NoError(t, err)
	requireDecimalEqual(t, "40.00", subtotal)
}

func TestDeleteLineNotOwned(t *testing.T) {
	db := openTestDB(t)
	svc := newCartService(db)
	alice := seedUser(t, db, "alice", "customer")
	bob := seedUser(t, db, "bob", "customer")
	rest := seedRestaurant(t, db, "A", 0, 0, 5, true, 0)
	item := seedMenuItem(t, db, rest.ID, "Dosa", "60.00", true)

	view, err := svc.AddItem(alice.ID, item.ID, 1)
	require.NoError(t, err)
	lineID := view.Restaurants[0].Items[0].ID

	// bob cannot delete a line in alice's cart
	_, err = svc.DeleteLine(bob.ID, lineID)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestClearIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	svc := newCartService(db)
	user := seedUser(t, db, "alice", "customer")
	rest := seedRestaurant(t, db, "A", 0, 0, 5, true, 0)
	item := seedMenuItem(t, db, rest.ID, "Dosa", "60.00", true)

	_, err := svc.AddItem(user.ID, item.ID, 3)
	require.NoError(t, err)

	view, err := svc.Clear(user.ID)
	require.NoError(t, err)
	require.Empty(t, view.Restaurants)
	requireDecimalEqual(t, "0", view.Subtotal)

	// clearing an already-empty cart is fine
	_, err = svc.Clear(user.ID)
	require.NoError(t, err)

	// clearing with no cart row at all is fine too
	nobody := seedUser(t, db, "nobody", "customer")
	_, err = svc.Clear(nobody.ID)
	require.NoError(t, err)
}

func TestViewGroupsLegacyMixedCart(t *testing.T) {
	db := openTestDB(t)
	svc := newCartService(db)
	user := seedUser(t, db, "alice", "customer")
	restA := seedRestaurant(t, db, "A", 0, 0, 5, true, 0)
	restB := seedRestaurant(t, db, "B", 0, 0, 5, true, 0)
	itemA := seedMenuItem(t, db, restA.ID, "Dosa", "60.00", true)
	itemB := seedMenuItem(t, db, restB.ID, "Biryani", "150.00", true)

	// bypass the add policy to simulate a legacy mixed cart
	cart := &entity.Cart{UserID: user.ID, RestaurantID: restA.ID}
	require.NoError(t, db.Create(cart).Error)
	require.NoError(t, db.Create(&entity.CartItem{
		CartID: cart.ID, ItemID: itemA.ID, UnitPrice: itemA.Price, Quantity: 1,
	}).Error)
	require.NoError(t, db.Create(&entity.CartItem{
		CartID: cart.ID, ItemID: itemB.ID, UnitPrice: itemB.Price, Quantity: 2,
	}).Error)

	view, err := svc.View(user.ID)
	require.NoError(t, err)
	require.Len(t, view.Restaurants, 2)
	require.Equal(t, restA.ID, view.Restaurants[0].RestaurantID)
	require.Equal(t, restB.ID, view.Restaurants[1].RestaurantID)
	requireDecimalEqual(t, "60.00", view.Restaurants[0].RestaurantTotal)
	requireDecimalEqual(t, "300.00", view.Restaurants[1].RestaurantTotal)
	requireDecimalEqual(t, "360.00", view.Subtotal)
}
