package dto

import "time"

// CustomerRequest describes customer creation payload.
type CustomerRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// CustomerResponse describes a customer directory entry.
type CustomerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// CustomerDetailResponse bundles a customer with their order history.
type CustomerDetailResponse struct {
	Customer CustomerResponse `json:"customer"`
	Orders   []OrderResponse  `json:"orders"`
}
