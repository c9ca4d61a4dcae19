package catalog

import (
	"fmt"
	"strconv"
	"strings"
)

// PlaceholderImage is served when no image reference on a record resolves.
const PlaceholderImage = "/images/no-image.png"

// Normalize converts one raw product record from the upstream API into the
// canonical Product shape. It never panics: every missing or wrong-typed
// field degrades to a documented default. Normalizing an already-canonical
// record yields the same record.
func Normalize(raw map[string]any, apiBase string) Product {
	if raw == nil {
		raw = map[string]any{}
	}

	p := Product{
		ID:          stringValue(raw["id"]),
		Name:        firstString(raw, "name", "title"),
		Brand:       stringField(raw, "brand"),
		Category:    stringField(raw, "category"),
		Subcategory: firstString(raw, "subcategory", "categoryId"),
		Filters:     filterMap(raw["filters"]),

		LifeStage:     stringField(raw, "lifeStage"),
		BreedSize:     stringField(raw, "breedSize"),
		ProductType:   stringField(raw, "productType"),
		SpecialDiet:   stringField(raw, "specialDiet"),
		ProteinSource: stringField(raw, "proteinSource"),
		Weight:        stringField(raw, "weight"),
		Size:          stringField(raw, "size"),
	}

	if p.Name == "" {
		p.Name = "Unnamed"
	}

	// price: price -> salePrice -> 0, clamped non-negative.
	p.Price = firstNumber(raw, "price", "salePrice")
	if p.Price < 0 {
		p.Price = 0
	}

	p.Variants = normalizeVariants(raw, p.Price)

	// originalPrice: originalPrice -> mrp -> variant-level equivalent -> the
	// resolved price itself, so "no discount" is the safe default.
	p.OriginalPrice = firstNumber(raw, "originalPrice", "mrp")
	if p.OriginalPrice <= 0 && len(p.Variants) > 0 {
		p.OriginalPrice = p.Variants[0].OriginalPrice
	}
	if p.OriginalPrice <= 0 {
		p.OriginalPrice = p.Price
	}

	// brand falls back to the first value of the brands facet.
	if p.Brand == "" {
		if brands, ok := p.Filters["brands"]; ok && len(brands) > 0 {
			p.Brand = brands[0]
		}
	}

	p.Image = resolveProductImage(raw, apiBase)

	return p
}

// resolveProductImage walks the image candidates in priority order:
// metadata.images[0], images[0], gallery[0], then the first scalar image-like
// field that resolves to a non-empty URL, then the placeholder.
func resolveProductImage(raw map[string]any, apiBase string) string {
	if meta, ok := raw["metadata"].(map[string]any); ok {
		if img := ResolveImageURL(meta["images"], apiBase); img != "" {
			return img
		}
	}
	for _, key := range []string{"images", "gallery", "imageUrl", "image", "thumbnailUrl", "thumbnail"} {
		candidate, ok := raw[key]
		if !ok {
			continue
		}
		// An already-normalized record round-trips its placeholder untouched.
		if s, ok := candidate.(string); ok && s == PlaceholderImage {
			return PlaceholderImage
		}
		if img := ResolveImageURL(candidate, apiBase); img != "" {
			return img
		}
	}
	return PlaceholderImage
}

// normalizeVariants maps raw.variants into canonical Variants. Object
// variants keep their own price/stock/label; bare string variants inherit
// the parent price/stock and use the string as the label. A product without
// variants gets exactly one synthetic "Default" variant.
func normalizeVariants(raw map[string]any, productPrice float64) []Variant {
	list, _ := raw["variants"].([]any)

	var out []Variant
	for i, entry := range list {
		switch v := entry.(type) {
		case string:
			out = append(out, Variant{
				ID:            fmt.Sprintf("v%d", i+1),
				Weight:        v,
				Price:         productPrice,
				OriginalPrice: variantFallbackOriginal(raw, productPrice),
				Stock:         intField(raw, "stockQuantity", 1),
			})
		case map[string]any:
			out = append(out, normalizeVariantObject(v, i, productPrice))
		}
	}

	if len(out) == 0 {
		out = []Variant{{
			ID:            "default",
			Weight:        "Default",
			Price:         productPrice,
			OriginalPrice: variantFallbackOriginal(raw, productPrice),
			Stock:         intField(raw, "stockQuantity", 1),
		}}
	}
	return out
}

func normalizeVariantObject(v map[string]any, index int, productPrice float64) Variant {
	price := firstNumber(v, "price", "salePrice")
	if price <= 0 {
		price = productPrice
	}
	original := firstNumber(v, "originalPrice", "mrp")
	if original <= 0 {
		original = price
	}

	id := stringValue(v["id"])
	if id == "" {
		id = fmt.Sprintf("v%d", index+1)
	}

	return Variant{
		ID:            id,
		Weight:        variantLabel(v, index),
		Price:         price,
		OriginalPrice: original,
		Stock:         intField(v, "stock", 1),
	}
}

// variantLabel builds the display label: weight+unit, else size+unit, else a
// bare label field, else "Variant N".
func variantLabel(v map[string]any, index int) string {
	if w := stringValue(v["weight"]); w != "" {
		if unit := stringValue(v["weightUnit"]); unit != "" {
			return w + " " + unit
		}
		return w
	}
	if s := stringValue(v["size"]); s != "" {
		if unit := stringValue(v["sizeUnit"]); unit != "" {
			return s + " " + unit
		}
		return s
	}
	if l := stringValue(v["label"]); l != "" {
		return l
	}
	return fmt.Sprintf("Variant %d", index+1)
}

// variantFallbackOriginal is the strike-through price for synthetic and
// string variants: product-level originalPrice/mrp, else the price itself.
func variantFallbackOriginal(raw map[string]any, price float64) float64 {
	if orig := firstNumber(raw, "originalPrice", "mrp"); orig > 0 {
		return orig
	}
	return price
}

// --- raw field coercion helpers ---

func stringField(raw map[string]any, key string) string {
	return strings.TrimSpace(stringValue(raw[key]))
}

func firstString(raw map[string]any, keys ...string) string {
	for _, key := range keys {
		if s := stringField(raw, key); s != "" {
			return s
		}
	}
	return ""
}

// stringValue renders scalar identifiers (the API sends ids as strings in
// some shapes and numbers in others). Non-scalar input yields "".
func stringValue(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case int:
		return strconv.Itoa(s)
	case int64:
		return strconv.FormatInt(s, 10)
	default:
		return ""
	}
}

// numberValue coerces price-like fields. Non-numeric input (objects, bad
// strings) is treated as 0.
func numberValue(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

func firstNumber(raw map[string]any, keys ...string) float64 {
	for _, key := range keys {
		if v, ok := raw[key]; ok {
			if n := numberValue(v); n != 0 {
				return n
			}
		}
	}
	return 0
}

func intField(raw map[string]any, key string, fallback int) int {
	if v, ok := raw[key]; ok {
		switch n := v.(type) {
		case float64:
			return int(n)
		case int:
			return n
		case int64:
			return int(n)
		case string:
			if parsed, err := strconv.Atoi(strings.TrimSpace(n)); err == nil {
				return parsed
			}
		}
	}
	return fallback
}

// filterMap parses the raw filters bag into facet-section id -> values.
// Tolerates both []any and []string value shapes; anything else is dropped.
func filterMap(v any) map[string][]string {
	raw, ok := v.(map[string]any)
	if !ok || len(raw) == 0 {
		return nil
	}
	out := make(map[string][]string, len(raw))
	for section, values := range raw {
		switch list := values.(type) {
		case []any:
			for _, entry := range list {
				if s := stringValue(entry); s != "" {
					out[section] = append(out[section], s)
				}
			}
		case []string:
			out[section] = append(out[section], list...)
		case string:
			if list != "" {
				out[section] = []string{list}
			}
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
