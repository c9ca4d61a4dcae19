package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pawmart/storefront-golang/internal/models"
)

//
// --- Wishlist Handlers ---
//

// AddToWishlistInput is the payload the product card's wishlist toggle sends.
type AddToWishlistInput struct {
	ProductID string  `json:"product_id" binding:"required"`
	Name      string  `json:"name" binding:"required"`
	Image     string  `json:"image"`
	Price     float64 `json:"price" binding:"gte=0"`
}

func (h *Handlers) AddToWishlist(c *gin.Context) {
	userIDRaw, _ := c.Get("userID")
	userID := userIDRaw.(int64)

	var input AddToWishlistInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	// Re-saving an already wishlisted product just refreshes the snapshot.
	_, err := h.DB.Exec(`
		INSERT INTO wishlist_items (user_id, product_id, name, image, price, created_at)
		VALUES (?, ?, ?, ?, ?, NOW())
		ON DUPLICATE KEY UPDATE
			name = VALUES(name),
			image = VALUES(image),
			price = VALUES(price)`,
		userID, input.ProductID, input.Name, input.Image, input.Price)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save to wishlist"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Added to wishlist"})
}

func (h *Handlers) RemoveFromWishlist(c *gin.Context) {
	userIDRaw, _ := c.Get("userID")
	userID := userIDRaw.(int64)
	productID := c.Param("product_id")

	result, err := h.DB.Exec(
		"DELETE FROM wishlist_items WHERE user_id = ? AND product_id = ?",
		userID, productID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove from wishlist"})
		return
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not in wishlist"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Removed from wishlist"})
}

// GetWishlist returns the saved items plus a flat id list so the listing
// pages can paint their heart icons without a request per card.
func (h *Handlers) GetWishlist(c *gin.Context) {
	userIDRaw, _ := c.Get("userID")
	userID := userIDRaw.(int64)

	rows, err := h.DB.Query(`
		SELECT id, user_id, product_id, name, image, price, created_at
		FROM wishlist_items
		WHERE user_id = ?
		ORDER BY created_at DESC`, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database query failed"})
		return
	}
	defer rows.Close()

	items := []models.WishlistItem{}
	productIDs := []string{}
	for rows.Next() {
		var item models.WishlistItem
		if err := rows.Scan(
			&item.ID, &item.UserID, &item.ProductID,
			&item.Name, &item.Image, &item.Price, &item.CreatedAt,
		); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to scan wishlist item"})
			return
		}
		items = append(items, item)
		productIDs = append(productIDs, item.ProductID)
	}

	c.JSON(http.StatusOK, gin.H{
		"items":      items,
		"productIds": productIDs,
	})
}
