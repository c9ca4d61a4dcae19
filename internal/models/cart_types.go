package models

import "time"

// Cart is the model for the 'carts' table. One active cart per customer.
type Cart struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"userId" db:"user_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// CartItem is the model for the 'cart_items' table. Products live in the
// upstream product API, not in this database, so each line keeps a snapshot
// of the product fields needed to render the cart (name, image, price,
// variant label) alongside the upstream product/variant ids.
type CartItem struct {
	ID           int64     `json:"id" db:"id"`
	CartID       int64     `json:"cartId" db:"cart_id"`
	ProductID    string    `json:"productId" db:"product_id"`
	VariantID    string    `json:"variantId" db:"variant_id"`
	Name         string    `json:"name" db:"name"`
	Image        string    `json:"image" db:"image"`
	VariantLabel string    `json:"variantLabel" db:"variant_label"`
	Price        float64   `json:"price" db:"price"`
	Quantity     int       `json:"quantity" db:"quantity"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}
