package handlers

import (
	"database/sql"

	"github.com/pawmart/storefront-golang/internal/cache"
	"github.com/pawmart/storefront-golang/internal/events"
	"github.com/pawmart/storefront-golang/internal/filters"
	"github.com/pawmart/storefront-golang/internal/productapi"
)

// Handlers holds all dependencies for the storefront endpoints.
type Handlers struct {
	DB       *sql.DB            // carts and wishlists
	Products *productapi.Loader // upstream product API (stale-guarded)
	Registry *filters.Registry  // per-page filter configuration
	Cache    *cache.Listing     // raw listing payload cache (may be disabled)
	Events   *events.Producer   // activity events (may be disabled)
	APIBase  string             // product API base URL, anchors image paths
}
