package model

import "time"

// Product describes a catalog entry. Stock is mutated only through the atomic
// adjustment primitive except for the admin manual overwrite.
type Product struct {
	ID          string
	SKU         string
	Name        string
	Description string
	Price       float64
	Stock       int
	ImageURLs   []string
	Colors      []string
	CreatedAt   time.Time
}
