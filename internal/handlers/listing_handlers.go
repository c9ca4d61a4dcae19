package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pawmart/storefront-golang/internal/cache"
	"github.com/pawmart/storefront-golang/internal/catalog"
	"github.com/pawmart/storefront-golang/internal/filters"
	"github.com/pawmart/storefront-golang/internal/productapi"
)

// listingItem is one product card on a category listing page.
type listingItem struct {
	catalog.Product
	DiscountPercent int  `json:"discountPercent"`
	InStock         bool `json:"inStock"`
}

// GetStorefrontProducts is the handler for GET /v1/store/:pet/products.
// It drives every category listing page: fetch the raw payload (cache first,
// then upstream), normalize, run the shared filter engine with the page's
// selections from the query string, and respond with card view models.
func (h *Handlers) GetStorefrontProducts(c *gin.Context) {
	pet := c.Param("pet")
	category := c.DefaultQuery("category", pet)
	sub := c.Query("sub")

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		limit, _ = strconv.Atoi(raw)
	}

	// Selected facet state comes in as repeated query params keyed by the
	// section ids the registry defines for this page.
	cfg := h.Registry.Config(pet, sub)
	sel := filters.Selection{
		Facets: map[string][]string{},
		SortBy: c.Query("sortBy"),
	}
	for _, section := range cfg.Sections {
		if values := c.QueryArray(section.ID); len(values) > 0 {
			sel.Facets[section.ID] = values
		}
	}

	// 1. --- Raw payload: cache, then upstream ---
	notice := ""
	key := cache.Key(pet, category, sub)
	rows, hit := h.Cache.Get(c.Request.Context(), key)
	if !hit {
		fetched, latest, err := h.Products.Load(c.Request.Context(), key, productapi.Params{
			Type:     pet,
			Category: category,
			Sub:      sub,
			Limit:    limit,
		})
		if err != nil {
			// Fetch failure never blanks the page: fall back to the static
			// featured picks and tell the shopper (non-blocking notice).
			log.Printf("product fetch failed for %s: %v", key, err)
			rows = featuredPicks()
			notice = "We couldn't load the full catalogue right now, showing our featured picks instead."
		} else {
			rows = fetched
			if latest {
				h.Cache.Set(c.Request.Context(), key, rows)
			}
		}
	}

	// 2. --- Normalize + filter ---
	products := make([]catalog.Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, catalog.Normalize(row, h.APIBase))
	}
	filtered := filters.Apply(products, category, sub, sel)

	// 3. --- Card view models ---
	items := make([]listingItem, 0, len(filtered))
	for _, p := range filtered {
		card := catalog.NewCard(p)
		items = append(items, listingItem{
			Product:         p,
			DiscountPercent: card.DiscountPercent(),
			InStock:         card.InStock(),
		})
	}

	h.Events.ListingViewed(c.Request.Context(), pet, category, sub, len(items))

	resp := gin.H{
		"products":       items,
		"total":          len(items),
		"appliedFilters": sel.Facets,
		"sortBy":         sel.SortBy,
	}
	if notice != "" {
		resp["notice"] = notice
	}
	c.JSON(http.StatusOK, resp)
}

// GetStorefrontFilters is the handler for GET /v1/store/:pet/filters.
// The pages render their filter drawers from this instead of hardcoding
// the sections per page.
func (h *Handlers) GetStorefrontFilters(c *gin.Context) {
	pet := c.Param("pet")
	sub := c.Query("sub")

	cfg := h.Registry.Config(pet, sub)
	c.JSON(http.StatusOK, gin.H{
		"label":       cfg.Label,
		"topFilters":  cfg.TopFilters,
		"sections":    cfg.Sections,
		"sortOptions": cfg.SortOptions,
	})
}
