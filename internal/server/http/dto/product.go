package dto

import "time"

// ProductRequest describes product create/update payload.
type ProductRequest struct {
	SKU         string   `json:"sku"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Stock       int      `json:"stock"`
	ImageURLs   []string `json:"image_urls"`
	Colors      []string `json:"colors"`
}

// ProductResponse describes a catalog entry.
type ProductResponse struct {
	ID          string    `json:"id"`
	SKU         string    `json:"sku"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"`
	Stock       int       `json:"stock"`
	ImageURLs   []string  `json:"image_urls,omitempty"`
	Colors      []string  `json:"colors,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// StockAdjustRequest applies a signed delta to product stock.
type StockAdjustRequest struct {
	Delta int `json:"delta"`
}

// StockSetRequest overwrites product stock.
type StockSetRequest struct {
	Stock int `json:"stock"`
}
