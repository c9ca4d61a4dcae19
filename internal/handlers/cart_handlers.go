package handlers

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pawmart/storefront-golang/internal/models"
)

//
// --- Cart Handlers ---
//
// Products are not in our database, so every cart line stores a snapshot of
// the upstream product fields it needs to render (name, image, price,
// variant label) next to the upstream ids.
//

// getOrCreateCartID finds a customer's active cart or creates one, inside
// the caller's transaction.
func (h *Handlers) getOrCreateCartID(tx *sql.Tx, userID int64) (int64, error) {
	var cartID int64
	err := tx.QueryRow("SELECT id FROM carts WHERE user_id = ?", userID).Scan(&cartID)
	if err == nil {
		return cartID, nil
	}
	if err != sql.ErrNoRows {
		return 0, err
	}

	now := time.Now()
	result, err := tx.Exec("INSERT INTO carts (user_id, created_at, updated_at) VALUES (?, ?, ?)", userID, now, now)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// AddToCartInput is the cart-line payload the product card constructs
// (snake_case to match the frontend cart service).
type AddToCartInput struct {
	ProductID    string  `json:"product_id" binding:"required"`
	VariantID    string  `json:"variant_id"`
	Name         string  `json:"name" binding:"required"`
	Image        string  `json:"image"`
	VariantLabel string  `json:"variant_label"`
	Price        float64 `json:"price" binding:"gte=0"`
	Quantity     int     `json:"quantity" binding:"required,gt=0"`
}

func (h *Handlers) AddToCart(c *gin.Context) {
	userIDRaw, _ := c.Get("userID")
	userID := userIDRaw.(int64)

	var input AddToCartInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	if input.VariantID == "" {
		input.VariantID = "default"
	}

	tx, err := h.DB.Begin()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Transaction failed"})
		return
	}
	defer tx.Rollback()

	cartID, err := h.getOrCreateCartID(tx, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cart initialization failed"})
		return
	}

	// Upsert on (cart_id, product_id, variant_id): adding the same variant
	// again bumps the quantity and refreshes the snapshot.
	_, err = tx.Exec(`
		INSERT INTO cart_items
			(cart_id, product_id, variant_id, name, image, variant_label, price, quantity, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, NOW(), NOW())
		ON DUPLICATE KEY UPDATE
			quantity = quantity + VALUES(quantity),
			name = VALUES(name),
			image = VALUES(image),
			variant_label = VALUES(variant_label),
			price = VALUES(price),
			updated_at = NOW()`,
		cartID, input.ProductID, input.VariantID,
		input.Name, input.Image, input.VariantLabel, input.Price, input.Quantity)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
		return
	}

	if err := tx.Commit(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Commit failed"})
		return
	}

	h.Events.AddedToCart(c.Request.Context(), userID, input.ProductID, input.Quantity)

	c.JSON(http.StatusCreated, gin.H{"message": "Item added to cart"})
}

// GetCart returns the customer's cart lines plus the item count and
// subtotal the header badge renders.
func (h *Handlers) GetCart(c *gin.Context) {
	userIDRaw, _ := c.Get("userID")
	userID := userIDRaw.(int64)

	rows, err := h.DB.Query(`
		SELECT ci.id, ci.cart_id, ci.product_id, ci.variant_id, ci.name,
		       ci.image, ci.variant_label, ci.price, ci.quantity,
		       ci.created_at, ci.updated_at
		FROM cart_items ci
		JOIN carts ca ON ca.id = ci.cart_id
		WHERE ca.user_id = ?
		ORDER BY ci.created_at`, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database query failed"})
		return
	}
	defer rows.Close()

	items := []models.CartItem{}
	itemCount := 0
	subtotal := 0.0
	for rows.Next() {
		var item models.CartItem
		if err := rows.Scan(
			&item.ID, &item.CartID, &item.ProductID, &item.VariantID, &item.Name,
			&item.Image, &item.VariantLabel, &item.Price, &item.Quantity,
			&item.CreatedAt, &item.UpdatedAt,
		); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to scan cart item"})
			return
		}
		itemCount += item.Quantity
		subtotal += item.Price * float64(item.Quantity)
		items = append(items, item)
	}

	c.JSON(http.StatusOK, gin.H{
		"items":     items,
		"itemCount": itemCount,
		"subtotal":  subtotal,
	})
}

type UpdateCartItemInput struct {
	Quantity int `json:"quantity" binding:"required,gt=0"`
}

// UpdateCartItem sets the quantity of one line, addressed by upstream
// product id (optionally narrowed by ?variant_id=).
func (h *Handlers) UpdateCartItem(c *gin.Context) {
	userIDRaw, _ := c.Get("userID")
	userID := userIDRaw.(int64)
	productID := c.Param("product_id")
	variantID := c.Query("variant_id")

	var input UpdateCartItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	query := `
		UPDATE cart_items ci
		JOIN carts ca ON ca.id = ci.cart_id
		SET ci.quantity = ?, ci.updated_at = NOW()
		WHERE ca.user_id = ? AND ci.product_id = ?`
	args := []interface{}{input.Quantity, userID, productID}
	if variantID != "" {
		query += " AND ci.variant_id = ?"
		args = append(args, variantID)
	}

	result, err := h.DB.Exec(query, args...)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
		return
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Cart item updated"})
}

// DeleteCartItem removes one line from the customer's cart.
func (h *Handlers) DeleteCartItem(c *gin.Context) {
	userIDRaw, _ := c.Get("userID")
	userID := userIDRaw.(int64)
	productID := c.Param("product_id")
	variantID := c.Query("variant_id")

	query := `
		DELETE ci FROM cart_items ci
		JOIN carts ca ON ca.id = ci.cart_id
		WHERE ca.user_id = ? AND ci.product_id = ?`
	args := []interface{}{userID, productID}
	if variantID != "" {
		query += " AND ci.variant_id = ?"
		args = append(args, variantID)
	}

	result, err := h.DB.Exec(query, args...)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove cart item"})
		return
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Item removed from cart"})
}
