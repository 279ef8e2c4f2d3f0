package dto

import "time"

// CheckoutCustomer carries checkout form customer details.
type CheckoutCustomer struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// CheckoutItem is one requested order line.
type CheckoutItem struct {
	ProductID string  `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// CheckoutRequest describes an order placement payload.
type CheckoutRequest struct {
	Customer CheckoutCustomer `json:"customer"`
	Items    []CheckoutItem   `json:"items"`
}

// CheckoutResponse is returned after a successful placement.
type CheckoutResponse struct {
	OrderID     string `json:"order_id"`
	OrderNumber int64  `json:"order_number"`
}

// OrderItemResponse is one order line.
type OrderItemResponse struct {
	ID          string  `json:"id"`
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name,omitempty"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

// OrderResponse describes an order with its derived total.
type OrderResponse struct {
	ID           string              `json:"id"`
	Number       int64               `json:"order_number"`
	CustomerID   string              `json:"customer_id"`
	CustomerName string              `json:"customer_name,omitempty"`
	Phone        string              `json:"phone,omitempty"`
	Status       string              `json:"status"`
	Total        float64             `json:"total"`
	Items        []OrderItemResponse `json:"items,omitempty"`
	NextStatuses []string            `json:"next_statuses"`
	CreatedAt    time.Time           `json:"created_at"`
}

// StatusUpdateRequest asks for a fulfillment transition.
type StatusUpdateRequest struct {
	Status string `json:"status"`
}

// StatusUpdateResponse carries the updated order and the prefilled WhatsApp
// link for the status notification.
type StatusUpdateResponse struct {
	Order        OrderResponse `json:"order"`
	WhatsAppLink string        `json:"whatsapp_link,omitempty"`
}
