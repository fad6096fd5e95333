package entity

// OrderStatus is a closed enumeration; values arriving from clients are
// validated with Valid before they touch the database.
type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusConfirmed  OrderStatus = "confirmed"
	StatusDispatched OrderStatus = "dispatched"
	StatusDelivered  OrderStatus = "delivered"
	StatusCancelled  OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusDispatched, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}
