package models

import "strings"

// Product is the canonical shape every page works with. Rows coming out of
// the products collection are loosely typed and go through catalog.Normalize
// before they ever reach a handler; the static fallback list is authored
// directly in this shape.
type Product struct {
	ID              string   `bson:"_id" json:"id"`
	Name            string   `bson:"name" json:"name"`
	Brand           string   `bson:"brand" json:"brand"`
	Description     string   `bson:"description" json:"description"`
	Model           string   `bson:"model" json:"model"`
	Price           string   `bson:"price" json:"price"`
	Promotions      string   `bson:"promotions,omitempty" json:"promotions,omitempty"`
	CoolingCapacity string   `bson:"cooling_capacity" json:"coolingCapacity"`
	HeatingCapacity string   `bson:"heating_capacity" json:"heatingCapacity"`
	HasWifi         bool     `bson:"has_wifi" json:"hasWifi"`
	Series          string   `bson:"series" json:"series"`
	Image           string   `bson:"image" json:"image"`
	ProductImages   []string `bson:"product_images" json:"product_images"`
}

// DisplayImage picks the one image a card or detail page shows: the cover
// image when set, otherwise the first gallery entry, otherwise "".
func (p Product) DisplayImage() string {
	if strings.TrimSpace(p.Image) != "" {
		return p.Image
	}
	if len(p.ProductImages) > 0 {
		return p.ProductImages[0]
	}
	return ""
}

// HasPromotion reports whether the product carries a promotion banner.
// Normalization already maps whitespace-only and the literal "[]" to "".
func (p Product) HasPromotion() bool {
	return p.Promotions != ""
}
