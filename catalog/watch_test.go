package catalog

import (
	"testing"

	"github.com/kiwiflowai-ai/totalcare-website/models"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestApplyPatchKnownFields(t *testing.T) {
	p := models.Product{
		ID:    "daikin-cora-ftxv25u",
		Name:  "Daikin Cora",
		Price: "$2125+GST",
	}

	ApplyPatch(&p, bson.M{
		"price":      "$2299+GST",
		"promotions": "Spring special",
		"has_wifi":   true,
	})

	assert.Equal(t, "$2299+GST", p.Price)
	assert.Equal(t, "Spring special", p.Promotions)
	assert.True(t, p.HasWifi)
	assert.Equal(t, "Daikin Cora", p.Name, "untouched fields keep their value")
}

func TestApplyPatchNormalizesImageColumns(t *testing.T) {
	p := models.Product{ID: "p1"}

	ApplyPatch(&p, bson.M{
		"image":          "https://example.com/cover.png",
		"product_images": bson.A{imgA, "https://example.com/skip.png", imgB},
	})

	assert.Equal(t, "https://example.com/cover.png", p.Image, "cover is taken verbatim")
	assert.Equal(t, []string{imgA, imgB}, p.ProductImages)
}

func TestApplyPatchPromotionsSentinel(t *testing.T) {
	p := models.Product{Promotions: "Old promo"}

	ApplyPatch(&p, bson.M{"promotions": "[]"})
	assert.Empty(t, p.Promotions)
}

func TestApplyPatchIgnoresUnknownAndIdentity(t *testing.T) {
	p := models.Product{ID: "p1", Name: "A"}

	ApplyPatch(&p, bson.M{
		"_id":        "p2",
		"created_at": "2024-01-01",
		"name":       42, // wrong type, skipped
	})

	assert.Equal(t, "p1", p.ID)
	assert.Equal(t, "A", p.Name)
}
