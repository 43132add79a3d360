package service

import (
	"sort"
	"strings"

	"github.com/pkorchagin/gocatalog/internal/query"
	"github.com/pkorchagin/gocatalog/internal/store"
)

// The helpers below are pure: they never mutate their input slice and are
// no-ops for absent parameters, so filters compose in any order.

func filterByCategory(items []store.Product, category string) []store.Product {
	if isBlank(category) {
		return items
	}
	out := make([]store.Product, 0, len(items))
	for _, p := range items {
		if strings.EqualFold(p.Category, category) {
			out = append(out, p)
		}
	}
	return out
}

func filterByStock(items []store.Product, inStock *bool) []store.Product {
	if inStock == nil {
		return items
	}
	out := make([]store.Product, 0, len(items))
	for _, p := range items {
		if p.InStock == *inStock {
			out = append(out, p)
		}
	}
	return out
}

func filterByPriceRange(items []store.Product, min, max *float64) []store.Product {
	if min == nil && max == nil {
		return items
	}
	out := make([]store.Product, 0, len(items))
	for _, p := range items {
		if min != nil && p.Price < *min {
			continue
		}
		if max != nil && p.Price > *max {
			continue
		}
		out = append(out, p)
	}
	return out
}

// searchProducts keeps products whose name or description contains q,
// case-insensitively. A blank query is a no-op.
func searchProducts(items []store.Product, q string) []store.Product {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return items
	}
	out := make([]store.Product, 0, len(items))
	for _, p := range items {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Description), q) {
			out = append(out, p)
		}
	}
	return out
}

// sortProducts returns a stably sorted copy. Numeric fields compare
// numerically, string fields case-insensitively. An unknown field name
// leaves the order unchanged.
func sortProducts(items []store.Product, s query.Sort) []store.Product {
	var less func(a, b store.Product) bool
	switch s.Field {
	case "id":
		less = func(a, b store.Product) bool { return a.ID < b.ID }
	case "price":
		less = func(a, b store.Product) bool { return a.Price < b.Price }
	case "name":
		less = func(a, b store.Product) bool {
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		}
	case "category":
		less = func(a, b store.Product) bool {
			return strings.ToLower(a.Category) < strings.ToLower(b.Category)
		}
	case "description":
		less = func(a, b store.Product) bool {
			return strings.ToLower(a.Description) < strings.ToLower(b.Description)
		}
	default:
		return items
	}

	out := make([]store.Product, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		if s.Desc {
			return less(out[j], out[i])
		}
		return less(out[i], out[j])
	})
	return out
}

// paginate returns the window [skip, skip+limit) clamped to the available
// length; empty when skip exceeds it.
func paginate(items []store.Product, skip, limit int) []store.Product {
	if skip < 0 {
		skip = 0
	}
	if skip >= len(items) {
		return []store.Product{}
	}
	end := skip + limit
	if limit <= 0 || end > len(items) {
		end = len(items)
	}
	return items[skip:end]
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
