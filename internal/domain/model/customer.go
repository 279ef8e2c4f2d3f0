package model

import "time"

// Customer represents a buyer. Phone is the natural dedup key used during
// checkout find-or-create.
type Customer struct {
	ID        string
	Name      string
	Phone     string
	Email     string
	Address   string
	CreatedAt time.Time
}
