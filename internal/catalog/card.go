package catalog

import "math"

// Card is the view model one product card renders from. It holds nothing but
// the product and the currently selected variant index; cart and wishlist
// actions are delegated to their collaborators with a CartLine payload.
type Card struct {
	Product         Product `json:"product"`
	SelectedVariant int     `json:"selectedVariant"`
}

// CartLine is the payload handed to the cart collaborator when the shopper
// adds the selected variant.
type CartLine struct {
	ProductID    string  `json:"product_id"`
	VariantID    string  `json:"variant_id"`
	Name         string  `json:"name"`
	Image        string  `json:"image"`
	VariantLabel string  `json:"variant_label"`
	Price        float64 `json:"price"`
	Quantity     int     `json:"quantity"`
}

// NewCard builds a card with the first variant selected.
func NewCard(p Product) Card {
	return Card{Product: p}
}

// SelectVariant switches the active variant; out-of-range indices are
// ignored rather than panicking on a stale UI event.
func (c *Card) SelectVariant(i int) {
	if i >= 0 && i < len(c.Product.Variants) {
		c.SelectedVariant = i
	}
}

// Variant returns the active variant. Normalization guarantees at least one.
func (c Card) Variant() Variant {
	if len(c.Product.Variants) == 0 {
		return Variant{ID: "default", Weight: "Default", Price: c.Product.Price, OriginalPrice: c.Product.OriginalPrice}
	}
	return c.Product.Variants[c.SelectedVariant]
}

// DiscountPercent is round(100 * (1 - price/originalPrice)) when the strike
// price actually beats the selling price, else 0.
func (c Card) DiscountPercent() int {
	v := c.Variant()
	if v.OriginalPrice <= v.Price || v.OriginalPrice <= 0 {
		return 0
	}
	return int(math.Round(100 * (1 - v.Price/v.OriginalPrice)))
}

// InStock reports whether the active variant can be bought.
func (c Card) InStock() bool {
	return c.Variant().Stock > 0
}

// CartLine builds the add-to-cart payload for the active variant.
func (c Card) CartLine(quantity int) CartLine {
	if quantity < 1 {
		quantity = 1
	}
	v := c.Variant()
	return CartLine{
		ProductID:    c.Product.ID,
		VariantID:    v.ID,
		Name:         c.Product.Name,
		Image:        c.Product.Image,
		VariantLabel: v.Weight,
		Price:        v.Price,
		Quantity:     quantity,
	}
}
