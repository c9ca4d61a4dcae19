// Package filters is the shared faceted filtering engine behind every
// category listing page. Each page used to carry its own near-identical
// filter/sort block; they all funnel through Apply now, parameterized by the
// page's Registry configuration.
package filters

import (
	"sort"
	"strings"

	"github.com/pawmart/storefront-golang/internal/catalog"
)

// Selection is the shopper's current filter state on one listing page:
// facet-section id -> checked option values, plus an optional sort.
type Selection struct {
	Facets map[string][]string
	SortBy string
}

// Apply narrows products through the ordered stages: category, subcategory,
// facet sections, then an optional stable sort. No stage ever widens the
// previous stage's output.
func Apply(products []catalog.Product, pageCategory, activeSubcategory string, sel Selection) []catalog.Product {
	out := filterByCategory(products, pageCategory)
	out = filterBySubcategory(out, activeSubcategory)

	for section, values := range sel.Facets {
		if len(values) == 0 {
			continue
		}
		out = filterByFacet(out, section, values)
	}

	return sortProducts(out, sel.SortBy)
}

// filterByCategory keeps products whose category loosely matches the page's
// target. Matching is a bidirectional substring check over lower-cased,
// trimmed strings: the catalog data is inconsistently cased and worded
// ("Dog", "dogs", "Dog Food"), and every page depends on this tolerance.
func filterByCategory(products []catalog.Product, target string) []catalog.Product {
	out := make([]catalog.Product, 0, len(products))
	for _, p := range products {
		if looseMatch(p.Category, target) {
			out = append(out, p)
		}
	}
	return out
}

func filterBySubcategory(products []catalog.Product, sub string) []catalog.Product {
	if isAllSentinel(sub) {
		return products
	}
	out := make([]catalog.Product, 0, len(products))
	for _, p := range products {
		if looseMatch(p.Subcategory, sub) {
			out = append(out, p)
		}
	}
	return out
}

// isAllSentinel reports whether the active subcategory means "no narrowing":
// unset, or the page's "All ..." tab ("All Products", "All Dog Food").
func isAllSentinel(sub string) bool {
	n := normalize(sub)
	return n == "" || n == "all" || strings.HasPrefix(n, "all ")
}

// filterByFacet keeps products matching at least one selected value of the
// section (OR within a section; Apply gives AND across sections). A product
// with no attribute for the section fails it, it is not a free pass.
func filterByFacet(products []catalog.Product, section string, selected []string) []catalog.Product {
	out := make([]catalog.Product, 0, len(products))
	for _, p := range products {
		if matchesFacet(p, section, selected) {
			out = append(out, p)
		}
	}
	return out
}

func matchesFacet(p catalog.Product, section string, selected []string) bool {
	for _, value := range selected {
		if matchesFacetValue(p, section, value) {
			return true
		}
	}
	return false
}

func matchesFacetValue(p catalog.Product, section, value string) bool {
	switch normalize(section) {
	case "brands", "brand":
		return normalize(p.Brand) != "" && normalize(p.Brand) == normalize(value)
	case "priceranges", "price":
		return matchesPriceRange(p.Price, value)
	}

	// Attribute-backed sections fall back to the product's own filters bag
	// when the derived attribute is empty.
	if attr := facetAttribute(p, section); attr != "" && looseMatch(attr, value) {
		return true
	}
	for _, have := range p.Filters[section] {
		if looseMatch(have, value) {
			return true
		}
	}
	return false
}

// facetAttribute maps a facet-section id to the canonical product attribute
// it filters on.
func facetAttribute(p catalog.Product, section string) string {
	switch normalize(section) {
	case "lifestages", "lifestage":
		return p.LifeStage
	case "breedsizes", "breedsize":
		return p.BreedSize
	case "producttypes", "producttype":
		return p.ProductType
	case "specialdiets", "specialdiet":
		return p.SpecialDiet
	case "proteinsources", "protein":
		return p.ProteinSource
	case "sizes", "size":
		return p.Size
	case "weights", "weight":
		return p.Weight
	case "subcategories", "subcategory":
		return p.Subcategory
	default:
		return ""
	}
}

// sortProducts applies the optional sort stage. Unrecognized or unset sort
// values leave the incoming order untouched; sorting is stable throughout.
func sortProducts(products []catalog.Product, sortBy string) []catalog.Product {
	switch normalize(sortBy) {
	case "price: low to high", "price low to high":
		sort.SliceStable(products, func(i, j int) bool { return products[i].Price < products[j].Price })
	case "price: high to low", "price high to low":
		sort.SliceStable(products, func(i, j int) bool { return products[i].Price > products[j].Price })
	case "alphabetically, a-z", "alphabetically a-z":
		sort.SliceStable(products, func(i, j int) bool { return normalize(products[i].Name) < normalize(products[j].Name) })
	case "alphabetically, z-a", "alphabetically z-a":
		sort.SliceStable(products, func(i, j int) bool { return normalize(products[i].Name) > normalize(products[j].Name) })
	}
	return products
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// looseMatch is the bidirectional substring comparison used for category,
// subcategory and attribute facets.
func looseMatch(a, b string) bool {
	na, nb := normalize(a), normalize(b)
	return strings.Contains(na, nb) || strings.Contains(nb, na)
}
