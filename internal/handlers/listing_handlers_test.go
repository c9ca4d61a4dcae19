package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pawmart/storefront-golang/internal/cache"
	"github.com/pawmart/storefront-golang/internal/events"
	"github.com/pawmart/storefront-golang/internal/filters"
	"github.com/pawmart/storefront-golang/internal/productapi"
)

type stubFetcher struct {
	rows []map[string]any
	err  error
}

func (s stubFetcher) GetCustomerProducts(ctx context.Context, p productapi.Params) ([]map[string]any, error) {
	return s.rows, s.err
}

func newTestHandlers(f productapi.Fetcher) *Handlers {
	return &Handlers{
		Products: productapi.NewLoader(f),
		Registry: filters.NewRegistry(),
		Cache:    cache.NewListing(nil, 0),
		Events:   events.NewProducer(),
		APIBase:  "http://api.pawmart.test",
	}
}

func newListingRouter(h *Handlers) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/v1/store/:pet/products", h.GetStorefrontProducts)
	r.GET("/v1/store/:pet/filters", h.GetStorefrontFilters)
	return r
}

type listingResponse struct {
	Products []struct {
		ID              string  `json:"id"`
		Name            string  `json:"name"`
		Image           string  `json:"image"`
		Price           float64 `json:"price"`
		DiscountPercent int     `json:"discountPercent"`
		InStock         bool    `json:"inStock"`
	} `json:"products"`
	Total  int    `json:"total"`
	Notice string `json:"notice"`
}

func doListing(t *testing.T, r *gin.Engine, url string) listingResponse {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var resp listingResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("undecodable response: %v", err)
	}
	return resp
}

func TestGetStorefrontProductsPipeline(t *testing.T) {
	fetcher := stubFetcher{rows: []map[string]any{
		{"id": "1", "name": "Pedigree Adult", "category": "dogs", "subcategory": "food",
			"brand": "Pedigree", "price": 432.0, "originalPrice": 499.0, "image": "a.jpg", "stockQuantity": 5.0},
		{"id": "2", "name": "Drools Puppy", "category": "Dog", "subcategory": "food",
			"brand": "Drools", "price": 800.0},
		{"id": "3", "name": "Whiskas Tuna", "category": "cats", "subcategory": "food",
			"brand": "Whiskas", "price": 315.0},
	}}
	r := newListingRouter(newTestHandlers(fetcher))

	t.Run("category page filters and builds cards", func(t *testing.T) {
		resp := doListing(t, r, "/v1/store/dogs/products")
		if resp.Total != 2 {
			t.Fatalf("total = %d, want the two dog products", resp.Total)
		}
		first := resp.Products[0]
		if first.DiscountPercent != 13 {
			t.Errorf("discount = %d, want 13", first.DiscountPercent)
		}
		if !first.InStock {
			t.Error("product with stock reported out of stock")
		}
		if want := "http://api.pawmart.test/admin/products/images/a.jpg"; first.Image != want {
			t.Errorf("image = %q, want resolved %q", first.Image, want)
		}
	})

	t.Run("brand facet from query params", func(t *testing.T) {
		resp := doListing(t, r, "/v1/store/dogs/products?brands=Drools")
		if resp.Total != 1 || resp.Products[0].ID != "2" {
			t.Errorf("brand-filtered products = %+v", resp.Products)
		}
	})

	t.Run("sortBy orders the page", func(t *testing.T) {
		resp := doListing(t, r, "/v1/store/dogs/products?sortBy=Price%3A+High+to+Low")
		if resp.Products[0].ID != "2" {
			t.Errorf("first product = %s, want the pricier one", resp.Products[0].ID)
		}
	})
}

func TestGetStorefrontProductsFallback(t *testing.T) {
	r := newListingRouter(newTestHandlers(stubFetcher{err: errors.New("upstream down")}))

	resp := doListing(t, r, "/v1/store/dogs/products")
	if resp.Notice == "" {
		t.Error("fetch failure should surface a notice")
	}
	if resp.Total == 0 {
		t.Error("fetch failure should fall back to the featured picks, not an empty page")
	}
	for _, p := range resp.Products {
		if p.ID == "featured-2" {
			t.Error("cat featured pick leaked onto the dogs page")
		}
	}
}

func TestGetStorefrontFilters(t *testing.T) {
	r := newListingRouter(newTestHandlers(stubFetcher{}))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/store/dogs/filters?sub=food", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var resp struct {
		Label       string            `json:"label"`
		Sections    []filters.Section `json:"sections"`
		SortOptions []string          `json:"sortOptions"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("undecodable response: %v", err)
	}
	if resp.Label != "Dog Food" {
		t.Errorf("label = %q, want the dogs/food config", resp.Label)
	}
	if len(resp.Sections) == 0 || len(resp.SortOptions) == 0 {
		t.Error("filters endpoint returned an empty panel")
	}

	// Unknown pages still answer with a valid shape.
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/store/ferrets/filters", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("unknown category status = %d", w.Code)
	}
}
