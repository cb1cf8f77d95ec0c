package catalog

import (
	"sort"
	"strings"

	"github.com/kiwiflowai-ai/totalcare-website/models"
)

const (
	CategoryAll        = "all"
	CategoryHeatPumps  = "heat-pumps"
	CategoryEVChargers = "ev-chargers"
)

const (
	SortByName      = "name"
	SortByPriceLow  = "price-low"
	SortByPriceHigh = "price-high"
)

// The site carries exactly two product categories, split by brand: these
// brands are EV chargers, everything else is a heat pump.
var evChargerBrands = map[string]bool{
	"Wallbox": true,
	"Tesla":   true,
}

// Query holds the active filter and sort selections of the products page.
// The zero value (or "all" on any selector) applies no constraint.
type Query struct {
	Category   string
	Search     string
	Brand      string
	Series     string
	PriceRange string
	SortBy     string
}

// Apply filters then sorts. Every filter is a pure AND-composed predicate,
// so application order does not matter, but all of them run before the
// sort. The input list is never mutated.
func (q Query) Apply(list []models.Product) []models.Product {
	filtered := make([]models.Product, 0, len(list))
	for _, p := range list {
		if q.matches(p) {
			filtered = append(filtered, p)
		}
	}

	switch q.SortBy {
	case SortByPriceLow:
		sort.SliceStable(filtered, func(i, j int) bool {
			return PriceValue(filtered[i].Price) < PriceValue(filtered[j].Price)
		})
	case SortByPriceHigh:
		sort.SliceStable(filtered, func(i, j int) bool {
			return PriceValue(filtered[i].Price) > PriceValue(filtered[j].Price)
		})
	default: // name
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Name < filtered[j].Name
		})
	}
	return filtered
}

func (q Query) matches(p models.Product) bool {
	switch q.Category {
	case CategoryEVChargers:
		if !evChargerBrands[p.Brand] {
			return false
		}
	case CategoryHeatPumps:
		if evChargerBrands[p.Brand] {
			return false
		}
	}

	if q.Search != "" {
		term := strings.ToLower(q.Search)
		if !strings.Contains(strings.ToLower(p.Name), term) &&
			!strings.Contains(strings.ToLower(p.Brand), term) &&
			!strings.Contains(strings.ToLower(p.Model), term) {
			return false
		}
	}

	if q.Brand != "" && q.Brand != CategoryAll && p.Brand != q.Brand {
		return false
	}
	if q.Series != "" && q.Series != CategoryAll && p.Series != q.Series {
		return false
	}

	if q.PriceRange != "" && q.PriceRange != CategoryAll {
		if bucket, ok := BucketByLabel(q.PriceRange); ok {
			price := PriceValue(p.Price)
			if price < bucket.Min || price >= bucket.Max {
				return false
			}
		}
	}
	return true
}
