package filters

import "github.com/gosimple/slug"

// Section describes one facet dimension shown on a listing page.
type Section struct {
	ID      string   `json:"id"`
	Label   string   `json:"label"`
	Options []string `json:"options"`
}

// SubcategoryConfig is the full filter panel for one (category, subcategory)
// listing page.
type SubcategoryConfig struct {
	Label       string    `json:"label"`
	TopFilters  []string  `json:"topFilters"`
	Sections    []Section `json:"sections"`
	SortOptions []string  `json:"sortOptions"`
}

// Registry is the read-only table mapping category/subcategory pairs to
// their filter panels. Built once at startup and injected into the handlers;
// lookups for unknown keys return empty-but-valid shapes, never nil panics.
type Registry struct {
	categories map[string]map[string]SubcategoryConfig
}

// defaultSortOptions is what every page offers unless its config overrides
// it, and what unknown categories fall back to.
var defaultSortOptions = []string{
	"Featured",
	"Price: Low to High",
	"Price: High to Low",
	"Alphabetically, A-Z",
	"Alphabetically, Z-A",
}

var priceRangeOptions = []string{
	"INR 0 - INR 500",
	"INR 501 - INR 1000",
	"INR 1001 - INR 2000",
	"INR 2000+",
}

// Config resolves the panel for a page, falling back to the category's
// "default" entry when the subcategory has no dedicated config, and to an
// empty panel when the category itself is unknown.
func (r *Registry) Config(category, subcategory string) SubcategoryConfig {
	subs, ok := r.categories[slug.Make(category)]
	if !ok {
		return SubcategoryConfig{Sections: []Section{}, SortOptions: defaultSortOptions}
	}
	if cfg, ok := subs[slug.Make(subcategory)]; ok {
		return cfg
	}
	if cfg, ok := subs["default"]; ok {
		return cfg
	}
	return SubcategoryConfig{Sections: []Section{}, SortOptions: defaultSortOptions}
}

// Sections returns the facet sections for a page.
func (r *Registry) Sections(category, subcategory string) []Section {
	return r.Config(category, subcategory).Sections
}

// SortOptions returns the sort dropdown entries for a page.
func (r *Registry) SortOptions(category, subcategory string) []string {
	return r.Config(category, subcategory).SortOptions
}

// NewRegistry builds the storefront's static filter configuration. The data
// mirrors the live listing pages: dogs, cats, small pets, outlet and the
// pet-parent essentials page.
func NewRegistry() *Registry {
	brandSection := func(options ...string) Section {
		return Section{ID: "brands", Label: "Brand", Options: options}
	}
	priceSection := Section{ID: "priceRanges", Label: "Price", Options: priceRangeOptions}

	dogsDefault := SubcategoryConfig{
		Label:      "All Dog Products",
		TopFilters: []string{"Food", "Toys", "Treats", "Walk Essentials", "Grooming"},
		Sections: []Section{
			brandSection("Pedigree", "Royal Canin", "Drools", "Farmina", "Acana", "Heads Up For Tails"),
			priceSection,
			{ID: "lifeStages", Label: "Life Stage", Options: []string{"Puppy", "Adult", "Senior"}},
			{ID: "breedSizes", Label: "Breed Size", Options: []string{"Small", "Medium", "Large", "Giant"}},
		},
		SortOptions: defaultSortOptions,
	}

	catsDefault := SubcategoryConfig{
		Label:      "All Cat Products",
		TopFilters: []string{"Food", "Litter", "Toys", "Treats", "Scratchers"},
		Sections: []Section{
			brandSection("Whiskas", "Sheba", "Me-O", "Royal Canin", "Farmina"),
			priceSection,
			{ID: "lifeStages", Label: "Life Stage", Options: []string{"Kitten", "Adult", "Senior"}},
		},
		SortOptions: defaultSortOptions,
	}

	reg := &Registry{categories: map[string]map[string]SubcategoryConfig{
		"dogs": {
			"default": dogsDefault,
			"food": {
				Label:      "Dog Food",
				TopFilters: []string{"Dry Food", "Wet Food", "Grain Free"},
				Sections: []Section{
					brandSection("Pedigree", "Royal Canin", "Drools", "Farmina", "Acana", "Orijen"),
					priceSection,
					{ID: "lifeStages", Label: "Life Stage", Options: []string{"Puppy", "Adult", "Senior"}},
					{ID: "proteinSources", Label: "Protein Source", Options: []string{"Chicken", "Lamb", "Fish", "Egg", "Vegetarian"}},
					{ID: "specialDiets", Label: "Special Diet", Options: []string{"Grain Free", "Weight Control", "Sensitive Digestion"}},
				},
				SortOptions: defaultSortOptions,
			},
			"toys": {
				Label:      "Dog Toys",
				TopFilters: []string{"Chew Toys", "Rope Toys", "Plush Toys", "Interactive"},
				Sections: []Section{
					brandSection("Kong", "Trixie", "Outward Hound", "Heads Up For Tails"),
					priceSection,
					{ID: "sizes", Label: "Toy Size", Options: []string{"Small", "Medium", "Large"}},
				},
				SortOptions: defaultSortOptions,
			},
			"treats": {
				Label:      "Dog Treats",
				TopFilters: []string{"Biscuits", "Jerky", "Dental", "Training"},
				Sections: []Section{
					brandSection("Pedigree", "Drools", "Dogsee", "JerHigh"),
					priceSection,
					{ID: "lifeStages", Label: "Life Stage", Options: []string{"Puppy", "Adult", "Senior"}},
				},
				SortOptions: defaultSortOptions,
			},
		},
		"cats": {
			"default": catsDefault,
			"food": {
				Label:      "Cat Food",
				TopFilters: []string{"Dry Food", "Wet Food", "Kitten"},
				Sections: []Section{
					brandSection("Whiskas", "Sheba", "Me-O", "Royal Canin"),
					priceSection,
					{ID: "lifeStages", Label: "Life Stage", Options: []string{"Kitten", "Adult", "Senior"}},
					{ID: "proteinSources", Label: "Protein Source", Options: []string{"Chicken", "Tuna", "Salmon", "Mackerel"}},
				},
				SortOptions: defaultSortOptions,
			},
			"litter": {
				Label:      "Cat Litter",
				TopFilters: []string{"Clumping", "Crystal", "Natural"},
				Sections: []Section{
					brandSection("Kit Cat", "Intersand", "Emily Pets"),
					priceSection,
					{ID: "sizes", Label: "Pack Size", Options: []string{"5 L", "10 L", "25 L"}},
				},
				SortOptions: defaultSortOptions,
			},
		},
		"small-pets": {
			"default": {
				Label:      "Rabbits & Small Pets",
				TopFilters: []string{"Food", "Hay", "Habitats", "Grooming"},
				Sections: []Section{
					brandSection("Oxbow", "Vitapol", "Versele-Laga"),
					priceSection,
					{ID: "productTypes", Label: "Product Type", Options: []string{"Food", "Hay", "Bedding", "Habitat"}},
				},
				SortOptions: defaultSortOptions,
			},
		},
		"outlet": {
			"default": {
				Label:      "Outlet",
				TopFilters: []string{"Dogs", "Cats", "Small Pets"},
				Sections: []Section{
					brandSection("Pedigree", "Whiskas", "Drools", "Trixie"),
					priceSection,
				},
				SortOptions: defaultSortOptions,
			},
		},
		"pet-parent": {
			"default": {
				Label:      "Pet Parent Essentials",
				TopFilters: []string{"Cleaning", "Feeding", "Travel", "Books"},
				Sections: []Section{
					brandSection("Heads Up For Tails", "Trixie", "Savic"),
					priceSection,
					{ID: "productTypes", Label: "Product Type", Options: []string{"Cleaning", "Feeding", "Travel", "Training"}},
				},
				SortOptions: defaultSortOptions,
			},
		},
	}}

	return reg
}
