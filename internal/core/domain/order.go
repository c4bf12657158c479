package domain

import (
	"time"
)

type OrderStatus string

const (
	OrderStatusPlaced    OrderStatus = "PLACED"
	OrderStatusConfirmed OrderStatus = "CONFIRMED"
	OrderStatusShipped   OrderStatus = "SHIPPED"
	OrderStatusDelivered OrderStatus = "DELIVERED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// validNext is the single source of truth for order status transitions,
// shared by the seller-facing and admin-facing entry points.
// DELIVERED and CANCELLED are terminal.
var validNext = map[OrderStatus]map[OrderStatus]bool{
	OrderStatusPlaced:    {OrderStatusConfirmed: true, OrderStatusCancelled: true},
	OrderStatusConfirmed: {OrderStatusShipped: true, OrderStatusCancelled: true},
	OrderStatusShipped:   {OrderStatusDelivered: true},
	OrderStatusDelivered: {},
	OrderStatusCancelled: {},
}

// CanTransition reports whether an order may move from one status to another.
// A status that is not a key of the table has no outgoing transitions.
func CanTransition(from, to OrderStatus) bool {
	return validNext[from][to]
}

// CanCancel reports whether an order in this status may still be cancelled.
// Stock was reserved at placement and not yet consumed by shipping, so these
// are also exactly the statuses that restock on cancellation.
func CanCancel(status OrderStatus) bool {
	return status == OrderStatusPlaced || status == OrderStatusConfirmed
}

type Order struct {
	ID          uint64
	BuyerEmail  string
	SellerEmail string
	Quantity    int
	Status      OrderStatus
	OrderDate   time.Time
	ProductID   uint64
	Product     *Product
}
