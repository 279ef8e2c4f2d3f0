package dto

import "time"

// ReturnItemRequest is one returned line in a submission.
type ReturnItemRequest struct {
	OrderItemID string `json:"order_item_id"`
	ProductID   string `json:"product_id"`
	Quantity    int    `json:"quantity"`
}

// ReturnRequest describes a return submission.
type ReturnRequest struct {
	OrderID string              `json:"order_id"`
	Reason  string              `json:"reason"`
	Items   []ReturnItemRequest `json:"items"`
}

// ReturnItemResponse is one processed return line.
type ReturnItemResponse struct {
	ID          string `json:"id"`
	OrderItemID string `json:"order_item_id"`
	ProductID   string `json:"product_id"`
	Quantity    int    `json:"quantity"`
}

// ReturnResponse describes a processed return.
type ReturnResponse struct {
	ID          string               `json:"id"`
	OrderID     string               `json:"order_id"`
	OrderNumber int64                `json:"order_number,omitempty"`
	Reason      string               `json:"reason,omitempty"`
	Items       []ReturnItemResponse `json:"items,omitempty"`
	CreatedAt   time.Time            `json:"created_at"`
}
