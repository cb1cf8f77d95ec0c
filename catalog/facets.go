package catalog

import (
	"math"
	"strings"

	"github.com/kiwiflowai-ai/totalcare-website/models"
	"github.com/samber/lo"
)

// Brands returns the distinct brand values present in the list, first-seen
// order, skipping blanks so the filter control never shows an empty option.
func Brands(list []models.Product) []string {
	return lo.Uniq(lo.FilterMap(list, func(p models.Product, _ int) (string, bool) {
		return p.Brand, strings.TrimSpace(p.Brand) != ""
	}))
}

// Series returns the distinct series values, same rules as Brands.
func Series(list []models.Product) []string {
	return lo.Uniq(lo.FilterMap(list, func(p models.Product, _ int) (string, bool) {
		return p.Series, strings.TrimSpace(p.Series) != ""
	}))
}

// PriceBucket is one option of the price filter. Min is inclusive, Max
// exclusive.
type PriceBucket struct {
	Label string `json:"label"`
	Min   int    `json:"min"`
	Max   int    `json:"max"`
}

var priceBuckets = []PriceBucket{
	{Label: "Under $2,000", Min: 0, Max: 2000},
	{Label: "$2,000 - $3,000", Min: 2000, Max: 3000},
	{Label: "$3,000 - $4,000", Min: 3000, Max: 4000},
	{Label: "Over $4,000", Min: 4000, Max: math.MaxInt},
}

// PriceBuckets returns the price filter options. The buckets are fixed
// constants, not derived from the catalog's actual min/max: a catalog priced
// entirely outside them just leaves some buckets empty.
func PriceBuckets() []PriceBucket {
	return lo.Map(priceBuckets, func(b PriceBucket, _ int) PriceBucket { return b })
}

// BucketByLabel resolves a selected price-range label back to its bounds.
func BucketByLabel(label string) (PriceBucket, bool) {
	return lo.Find(priceBuckets, func(b PriceBucket) bool { return b.Label == label })
}
