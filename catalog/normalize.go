package catalog

import (
	"encoding/json"
	"log"
	"strings"
	"time"

	"github.com/kiwiflowai-ai/totalcare-website/models"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// InlineImagePrefix marks gallery entries that carry embedded image data.
// Anything else in product_images is an artifact of earlier imports and is
// dropped during normalization.
const InlineImagePrefix = "data:image/"

// RawProduct is the row shape the products collection actually contains.
// product_images is a schema-migration artifact: old rows store a
// JSON-encoded string, newer rows a native array, and entries may carry
// doubled escape sequences from a prior round of over-encoding. The union
// never leaves this package; Normalize folds both shapes into one.
type RawProduct struct {
	ID              string    `bson:"_id"`
	Name            string    `bson:"name"`
	Brand           string    `bson:"brand"`
	Description     string    `bson:"description"`
	Model           string    `bson:"model"`
	Price           string    `bson:"price"`
	Promotions      string    `bson:"promotions"`
	CoolingCapacity string    `bson:"cooling_capacity"`
	HeatingCapacity string    `bson:"heating_capacity"`
	HasWifi         bool      `bson:"has_wifi"`
	Series          string    `bson:"series"`
	Image           string    `bson:"image"`
	ProductImages   any       `bson:"product_images"`
	CreatedAt       time.Time `bson:"created_at"`
}

// Normalize converts one raw row into the canonical Product shape. Absent
// fields decode to their zero values already; the work here is the
// promotions sentinel and the product_images union. Nothing this function
// does can fail outward: malformed input degrades to empty fields.
func Normalize(raw RawProduct) models.Product {
	return models.Product{
		ID:              raw.ID,
		Name:            raw.Name,
		Brand:           raw.Brand,
		Description:     raw.Description,
		Model:           raw.Model,
		Price:           raw.Price,
		Promotions:      normalizePromotions(raw.Promotions),
		CoolingCapacity: raw.CoolingCapacity,
		HeatingCapacity: raw.HeatingCapacity,
		HasWifi:         raw.HasWifi,
		Series:          raw.Series,
		Image:           raw.Image,
		ProductImages:   NormalizeImages(raw.ProductImages),
	}
}

// normalizePromotions maps the "no promotion" encodings the store has
// accumulated (empty, whitespace-only, literal "[]") to "".
func normalizePromotions(s string) string {
	if strings.TrimSpace(s) == "" || s == "[]" {
		return ""
	}
	return s
}

// NormalizeImages accepts the product_images field in any of its historical
// shapes and returns the cleaned gallery: escape sequences repaired, only
// inline image data retained, source order preserved. Running it over an
// already-clean slice is a no-op, so normalization can be re-applied freely.
func NormalizeImages(v any) []string {
	var entries []any
	switch imgs := v.(type) {
	case nil:
	case string:
		if err := json.Unmarshal([]byte(imgs), &entries); err != nil {
			log.Printf("catalog: product_images is not a JSON list, dropping: %v", err)
			entries = nil
		}
	case []string:
		for _, s := range imgs {
			entries = append(entries, s)
		}
	case bson.A:
		entries = imgs
	case []any:
		entries = imgs
	}

	cleaned := make([]string, 0, len(entries))
	for _, e := range entries {
		s, ok := e.(string)
		if !ok {
			continue
		}
		s = strings.ReplaceAll(s, `\"`, `"`)
		s = strings.ReplaceAll(s, `\\`, `\`)
		if strings.HasPrefix(s, InlineImagePrefix) {
			cleaned = append(cleaned, s)
		}
	}
	return cleaned
}
