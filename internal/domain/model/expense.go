package model

import "time"

// Expense is a back-office bookkeeping entry.
type Expense struct {
	ID          string
	Description string
	Category    string
	Amount      float64
	CreatedAt   time.Time
}
