package model

import "time"

// Return records a post-sale return against an order.
type Return struct {
	ID          string
	OrderID     string
	OrderNumber int64
	Reason      string
	Items       []ReturnItem
	CreatedAt   time.Time
}

// ReturnItem references the original order line being returned.
type ReturnItem struct {
	ID          string
	ReturnID    string
	OrderItemID string
	ProductID   string
	Quantity    int
}

// ReturnRequest carries a return submission.
type ReturnRequest struct {
	OrderID string
	Reason  string
	Items   []ReturnRequestItem
}

// ReturnRequestItem is one returned line in a submission.
type ReturnRequestItem struct {
	OrderItemID string
	ProductID   string
	Quantity    int
}
