// internal/catalog/query.go
package catalog

import (
	"sort"
	"strings"

	"github.com/shopease/shopease-backend/internal/models"
)

// Search filters and orders a catalog snapshot. It is a pure function: the
// input slice is never mutated and identical inputs yield identical output.
//
// Text matching splits the query on whitespace into case-insensitive terms;
// a product matches only when every term is a substring of its name,
// description, brand, or one of its tags. An empty query matches everything.
func Search(products []models.Product, query string, cfg models.FilterConfig) []models.Product {
	filtered := make([]models.Product, 0, len(products))

	terms := strings.Fields(strings.ToLower(query))

	for _, p := range products {
		if len(terms) > 0 && !matchesTerms(&p, terms) {
			continue
		}
		if cfg.Category != "" && cfg.Category != models.CategoryAll && p.Category != cfg.Category {
			continue
		}
		if cfg.PriceRange != nil && !cfg.PriceRange.Contains(p.Price) {
			continue
		}
		if cfg.InStockOnly && p.Stock <= 0 {
			continue
		}
		if cfg.OnSaleOnly && p.Discount <= 0 {
			continue
		}
		if len(cfg.Brands) > 0 && !containsString(cfg.Brands, p.Brand) {
			continue
		}
		filtered = append(filtered, p)
	}

	sortProducts(filtered, cfg.SortBy)
	return filtered
}

func matchesTerms(p *models.Product, terms []string) bool {
	name := strings.ToLower(p.Name)
	description := strings.ToLower(p.Description)
	brand := strings.ToLower(p.Brand)

	for _, term := range terms {
		if strings.Contains(name, term) ||
			strings.Contains(description, term) ||
			strings.Contains(brand, term) {
			continue
		}
		if !matchesAnyTag(p.Tags, term) {
			return false
		}
	}
	return true
}

func matchesAnyTag(tags []string, term string) bool {
	for _, tag := range tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}

func containsString(values []string, v string) bool {
	for _, value := range values {
		if value == v {
			return true
		}
	}
	return false
}

// sortProducts orders the slice in place. All sorts are stable so ties keep
// their relative catalog order. "popular" sorts by remaining stock, the only
// demand signal the dataset carries. "newest" and unknown keys leave catalog
// order untouched.
func sortProducts(products []models.Product, key models.SortKey) {
	switch key {
	case models.SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case models.SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	case models.SortRating:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Rating > products[j].Rating
		})
	case models.SortPopular:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Stock > products[j].Stock
		})
	}
}
