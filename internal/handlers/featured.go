package handlers

// featuredPicks is the static sample list shown when the product API is
// unreachable. Raw-record shape on purpose: it flows through the same
// normalize + filter pipeline as a live payload.
func featuredPicks() []map[string]any {
	return []map[string]any{
		{
			"id":            "featured-1",
			"name":          "Pedigree Adult Chicken & Vegetables",
			"price":         432.0,
			"originalPrice": 499.0,
			"image":         "/images/featured/pedigree-adult.jpg",
			"brand":         "Pedigree",
			"category":      "dogs",
			"subcategory":   "food",
			"lifeStage":     "Adult",
			"proteinSource": "Chicken",
			"variants": []any{
				map[string]any{"id": "f1-3kg", "weight": "3", "weightUnit": "kg", "price": 432.0, "originalPrice": 499.0, "stock": 12},
				map[string]any{"id": "f1-10kg", "weight": "10", "weightUnit": "kg", "price": 1299.0, "originalPrice": 1450.0, "stock": 4},
			},
		},
		{
			"id":            "featured-2",
			"name":          "Whiskas Ocean Fish Dry Cat Food",
			"price":         315.0,
			"originalPrice": 350.0,
			"image":         "/images/featured/whiskas-ocean-fish.jpg",
			"brand":         "Whiskas",
			"category":      "cats",
			"subcategory":   "food",
			"lifeStage":     "Adult",
			"proteinSource": "Fish",
			"stockQuantity": 20,
		},
		{
			"id":          "featured-3",
			"name":        "Kong Classic Chew Toy",
			"price":       749.0,
			"image":       "/images/featured/kong-classic.jpg",
			"brand":       "Kong",
			"category":    "dogs",
			"subcategory": "toys",
			"size":        "Medium",
			"variants":    []any{"Small", "Medium", "Large"},
			"stockQuantity": 8,
		},
		{
			"id":          "featured-4",
			"name":        "Oxbow Timothy Hay 1.13 kg",
			"price":       899.0,
			"image":       "/images/featured/oxbow-timothy-hay.jpg",
			"brand":       "Oxbow",
			"category":    "small-pets",
			"productType": "Hay",
			"stockQuantity": 6,
		},
	}
}
