package domain

import "time"

// Product is a catalog item. The admin API only aggregates over products
// (dashboard counts); catalog browsing is served elsewhere.
type Product struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Price     float64   `json:"price"`
	CreatedAt time.Time `json:"created_at"`
}

// Order is a placed storefront order. Total is the amount charged, used for
// revenue aggregation.
type Order struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Total     float64   `json:"total"`
	CreatedAt time.Time `json:"created_at"`
}
