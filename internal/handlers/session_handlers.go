package handlers

import (
	"crypto/rand"
	"encoding/binary"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pawmart/storefront-golang/internal/auth"
)

// GuestSession issues a token for an anonymous shopper so the cart and
// wishlist work without an account. The identity is stateless: the cart row
// is created lazily on first add-to-cart. Account login lives in a separate
// service and is out of scope here.
func (h *Handlers) GuestSession(c *gin.Context) {
	userID, err := randomGuestID()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
		return
	}

	token, err := auth.GenerateToken(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"token":  token,
		"userId": userID,
	})
}

func randomGuestID() (int64, error) {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0, err
	}
	// Positive int63 so it fits the unsigned-ish id columns.
	return int64(binary.BigEndian.Uint64(buf[:]) >> 1), nil
}
