package model

import "time"

// OrderStatus describes order fulfillment lifecycle.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// statusTransitions holds the allowed moves of the fulfillment state machine.
// Delivered and cancelled are terminal.
var statusTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:   {OrderStatusConfirmed, OrderStatusCancelled},
	OrderStatusConfirmed: {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:   {OrderStatusDelivered},
	OrderStatusDelivered: {},
	OrderStatusCancelled: {},
}

// Valid reports whether the status is one of the known lifecycle states.
func (s OrderStatus) Valid() bool {
	_, ok := statusTransitions[s]
	return ok
}

// CanTransitionTo reports whether the fulfillment state machine allows moving
// from the current status to next.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// NextStatuses returns the statuses reachable from the current one.
func (s OrderStatus) NextStatuses() []OrderStatus {
	allowed := statusTransitions[s]
	out := make([]OrderStatus, len(allowed))
	copy(out, allowed)
	return out
}

// Terminal reports whether no further transition is possible.
func (s OrderStatus) Terminal() bool {
	return s.Valid() && len(statusTransitions[s]) == 0
}

// Order describes a customer purchase. Number is a sequential human-readable
// identifier assigned by the storage layer.
type Order struct {
	ID           string
	Number       int64
	CustomerID   string
	CustomerName string
	Phone        string
	Status       OrderStatus
	Items        []OrderItem
	CreatedAt    time.Time
}

// OrderItem is a single order line. Price is the unit price captured at order
// time; later product price changes must not affect historical orders.
type OrderItem struct {
	ID          string
	OrderID     string
	ProductID   string
	ProductName string
	Quantity    int
	Price       float64
}

// Total derives the order total from its line items.
func (o Order) Total() float64 {
	var total float64
	for _, item := range o.Items {
		total += float64(item.Quantity) * item.Price
	}
	return total
}

// CheckoutItem is an order line requested during checkout.
type CheckoutItem struct {
	ProductID string
	Quantity  int
	Price     float64
}

// CheckoutRequest carries everything needed to place an order.
type CheckoutRequest struct {
	Customer CustomerDetails
	Items    []CheckoutItem
}

// CustomerDetails holds untrusted checkout form data used for customer
// resolution.
type CustomerDetails struct {
	Name    string
	Phone   string
	Address string
}

// PlacedOrder is returned to the caller after successful checkout.
type PlacedOrder struct {
	OrderID    string
	Number     int64
	CustomerID string
}
