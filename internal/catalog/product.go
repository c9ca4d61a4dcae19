package catalog

// Product is the canonical shape every listing page renders from.
// The upstream product API has gone through several backend rewrites, so the
// raw records it returns are wildly inconsistent (price vs salePrice, image
// vs imageUrl, variants as strings or objects...). Normalize() funnels all of
// those historical shapes into this one struct.
type Product struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Image         string  `json:"image"`
	Price         float64 `json:"price"`
	OriginalPrice float64 `json:"originalPrice"`

	Brand       string `json:"brand"`
	Category    string `json:"category"`
	Subcategory string `json:"subcategory"`

	// Variants is never empty after normalization: products without their own
	// variant list get a single synthetic "Default" variant.
	Variants []Variant `json:"variants"`

	// Filters maps a facet-section id (brands, lifeStages, priceRanges...) to
	// the facet values this product satisfies. Populated by the backend for
	// some shapes, empty for others.
	Filters map[string][]string `json:"filters,omitempty"`

	// Listing-page attributes. Only some categories use these; they default
	// to empty strings rather than being optional pointers.
	LifeStage     string `json:"lifeStage,omitempty"`
	BreedSize     string `json:"breedSize,omitempty"`
	ProductType   string `json:"productType,omitempty"`
	SpecialDiet   string `json:"specialDiet,omitempty"`
	ProteinSource string `json:"proteinSource,omitempty"`
	Weight        string `json:"weight,omitempty"`
	Size          string `json:"size,omitempty"`
}

// Variant is a purchasable sub-unit (a specific pack size / weight) carrying
// its own price and stock.
type Variant struct {
	ID            string  `json:"id"`
	Weight        string  `json:"weight"`
	Price         float64 `json:"price"`
	OriginalPrice float64 `json:"originalPrice"`
	Stock         int     `json:"stock"`
}
