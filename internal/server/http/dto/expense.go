package dto

import "time"

// ExpenseRequest describes expense creation payload.
type ExpenseRequest struct {
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
}

// ExpenseResponse describes a bookkeeping entry.
type ExpenseResponse struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Category    string    `json:"category,omitempty"`
	Amount      float64   `json:"amount"`
	CreatedAt   time.Time `json:"created_at"`
}
