package catalog

import (
	"encoding/json"
	"reflect"
	"testing"
)

const testBase = "http://api.pawmart.test"

// roundTrip re-encodes a canonical product the way it would arrive back
// from JSON, so idempotence can be checked through the real decode path.
func roundTrip(t *testing.T, p Product) map[string]any {
	t.Helper()
	data, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal canonical product: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("unmarshal canonical product: %v", err)
	}
	return m
}

func TestNormalizeFieldFallbacks(t *testing.T) {
	tests := []struct {
		name string
		raw  map[string]any
		want func(t *testing.T, p Product)
	}{
		{
			name: "title fallback and salePrice",
			raw: map[string]any{
				"id":        "p1",
				"title":     "Drools Puppy Starter",
				"salePrice": 549.0,
			},
			want: func(t *testing.T, p Product) {
				if p.Name != "Drools Puppy Starter" {
					t.Errorf("name = %q, want title fallback", p.Name)
				}
				if p.Price != 549 {
					t.Errorf("price = %v, want salePrice 549", p.Price)
				}
			},
		},
		{
			name: "missing name becomes Unnamed",
			raw:  map[string]any{"id": 7.0},
			want: func(t *testing.T, p Product) {
				if p.Name != "Unnamed" {
					t.Errorf("name = %q, want Unnamed", p.Name)
				}
				if p.ID != "7" {
					t.Errorf("id = %q, want numeric id stringified", p.ID)
				}
			},
		},
		{
			name: "non-numeric price treated as zero",
			raw:  map[string]any{"id": "p2", "name": "X", "price": "not-a-number"},
			want: func(t *testing.T, p Product) {
				if p.Price != 0 {
					t.Errorf("price = %v, want 0", p.Price)
				}
			},
		},
		{
			name: "negative price clamped",
			raw:  map[string]any{"id": "p3", "name": "X", "price": -50.0},
			want: func(t *testing.T, p Product) {
				if p.Price != 0 {
					t.Errorf("price = %v, want clamp to 0", p.Price)
				}
			},
		},
		{
			name: "mrp feeds originalPrice",
			raw:  map[string]any{"id": "p4", "name": "X", "price": 400.0, "mrp": 500.0},
			want: func(t *testing.T, p Product) {
				if p.OriginalPrice != 500 {
					t.Errorf("originalPrice = %v, want mrp 500", p.OriginalPrice)
				}
			},
		},
		{
			name: "originalPrice defaults to price so discount is never negative",
			raw:  map[string]any{"id": "p5", "name": "X", "price": 400.0},
			want: func(t *testing.T, p Product) {
				if p.OriginalPrice != 400 {
					t.Errorf("originalPrice = %v, want price fallback 400", p.OriginalPrice)
				}
			},
		},
		{
			name: "brand falls back to filters.brands",
			raw: map[string]any{
				"id": "p6", "name": "X",
				"filters": map[string]any{"brands": []any{"Farmina", "Drools"}},
			},
			want: func(t *testing.T, p Product) {
				if p.Brand != "Farmina" {
					t.Errorf("brand = %q, want first filters.brands entry", p.Brand)
				}
			},
		},
		{
			name: "categoryId feeds subcategory",
			raw:  map[string]any{"id": "p7", "name": "X", "categoryId": "food"},
			want: func(t *testing.T, p Product) {
				if p.Subcategory != "food" {
					t.Errorf("subcategory = %q, want categoryId fallback", p.Subcategory)
				}
			},
		},
		{
			name: "string price parses",
			raw:  map[string]any{"id": "p8", "name": "X", "price": "329.50"},
			want: func(t *testing.T, p Product) {
				if p.Price != 329.5 {
					t.Errorf("price = %v, want 329.5", p.Price)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.want(t, Normalize(tt.raw, testBase))
		})
	}
}

func TestNormalizeVariants(t *testing.T) {
	t.Run("object variants keep own price and stock", func(t *testing.T) {
		p := Normalize(map[string]any{
			"id": "p1", "name": "Royal Canin Maxi", "price": 4000.0,
			"variants": []any{
				map[string]any{"id": "v-4kg", "weight": "4", "weightUnit": "kg", "price": 2050.0, "mrp": 2300.0, "stock": 3.0},
				map[string]any{"size": "XL", "price": 7600.0},
				map[string]any{"label": "Trial Pack"},
			},
		}, testBase)

		if len(p.Variants) != 3 {
			t.Fatalf("len(variants) = %d, want 3", len(p.Variants))
		}
		if got := p.Variants[0]; got.Weight != "4 kg" || got.Price != 2050 || got.OriginalPrice != 2300 || got.Stock != 3 {
			t.Errorf("variant 0 = %+v, want 4 kg / 2050 / 2300 / 3", got)
		}
		if got := p.Variants[1]; got.Weight != "XL" || got.Price != 7600 {
			t.Errorf("variant 1 = %+v, want size label XL at 7600", got)
		}
		if got := p.Variants[2]; got.Weight != "Trial Pack" || got.Price != 4000 {
			t.Errorf("variant 2 = %+v, want label with inherited price", got)
		}
	})

	t.Run("string variants inherit parent price and stock", func(t *testing.T) {
		p := Normalize(map[string]any{
			"id": "p2", "name": "Kong Classic", "price": 749.0,
			"stockQuantity": 8.0,
			"variants":      []any{"Small", "Medium", "Large"},
		}, testBase)

		if len(p.Variants) != 3 {
			t.Fatalf("len(variants) = %d, want 3", len(p.Variants))
		}
		for i, want := range []string{"Small", "Medium", "Large"} {
			v := p.Variants[i]
			if v.Weight != want || v.Price != 749 || v.Stock != 8 {
				t.Errorf("variant %d = %+v, want %s at parent price/stock", i, v, want)
			}
		}
	})

	t.Run("missing variants synthesize a default", func(t *testing.T) {
		p := Normalize(map[string]any{"id": "p3", "name": "X", "price": 100.0}, testBase)
		if len(p.Variants) != 1 {
			t.Fatalf("len(variants) = %d, want 1 synthetic", len(p.Variants))
		}
		v := p.Variants[0]
		if v.ID != "default" || v.Weight != "Default" || v.Price != 100 || v.Stock != 1 {
			t.Errorf("synthetic variant = %+v", v)
		}
	})

	t.Run("variant without label gets Variant N", func(t *testing.T) {
		p := Normalize(map[string]any{
			"id": "p4", "name": "X", "price": 100.0,
			"variants": []any{map[string]any{"price": 120.0}},
		}, testBase)
		if p.Variants[0].Weight != "Variant 1" {
			t.Errorf("label = %q, want Variant 1", p.Variants[0].Weight)
		}
	})
}

func TestNormalizeVariantsNeverEmpty(t *testing.T) {
	raws := []map[string]any{
		nil,
		{},
		{"id": "a"},
		{"id": "b", "variants": []any{}},
		{"id": "c", "variants": "garbage"},
		{"id": "d", "variants": []any{42.0, true}},
	}
	for i, raw := range raws {
		if p := Normalize(raw, testBase); len(p.Variants) == 0 {
			t.Errorf("raw %d: normalized product has no variants", i)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	raws := []map[string]any{
		{
			"id": "p1", "name": "Pedigree Adult", "price": 432.0, "originalPrice": 499.0,
			"brand": "Pedigree", "category": "dogs", "subcategory": "food",
			"image":     "photo.jpg",
			"lifeStage": "Adult",
			"filters":   map[string]any{"brands": []any{"Pedigree"}, "lifeStages": []any{"Adult"}},
			"variants": []any{
				map[string]any{"id": "v1", "weight": "3", "weightUnit": "kg", "price": 432.0, "mrp": 499.0, "stock": 5.0},
			},
		},
		{"id": 12.0, "title": "Bare Minimum"},
		{"id": "p3", "name": "Zero Price", "metadata": map[string]any{"images": []any{"/uploads/x.png"}}},
	}

	for i, raw := range raws {
		first := Normalize(raw, testBase)
		second := Normalize(roundTrip(t, first), testBase)
		if !reflect.DeepEqual(first, second) {
			t.Errorf("raw %d: normalize is not idempotent:\n first = %+v\nsecond = %+v", i, first, second)
		}
	}
}

func TestNormalizeImagePriority(t *testing.T) {
	t.Run("metadata images win over top-level", func(t *testing.T) {
		p := Normalize(map[string]any{
			"id": "p1", "name": "X",
			"metadata": map[string]any{"images": []any{"meta.jpg"}},
			"image":    "top.jpg",
		}, testBase)
		if want := testBase + "/admin/products/images/meta.jpg"; p.Image != want {
			t.Errorf("image = %q, want %q", p.Image, want)
		}
	})

	t.Run("unresolvable image yields placeholder", func(t *testing.T) {
		p := Normalize(map[string]any{"id": "p2", "name": "X"}, testBase)
		if p.Image != PlaceholderImage {
			t.Errorf("image = %q, want placeholder", p.Image)
		}
	})
}
