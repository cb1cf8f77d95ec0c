package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	imgA = "data:image/png;base64,AAA"
	imgB = "data:image/jpeg;base64,BBB"
)

func TestNormalizeImagesStringAndListAgree(t *testing.T) {
	asList := NormalizeImages([]any{imgA, imgB})
	asJSON := NormalizeImages(`["` + imgA + `","` + imgB + `"]`)

	require.Equal(t, []string{imgA, imgB}, asList)
	assert.Equal(t, asList, asJSON)
}

func TestNormalizeImagesBsonArray(t *testing.T) {
	got := NormalizeImages(bson.A{imgA, imgB})
	assert.Equal(t, []string{imgA, imgB}, got)
}

func TestNormalizeImagesRepairsEscapes(t *testing.T) {
	// doubled escapes from a prior over-encoding round
	raw := `data:image/png;base64,with\"quote\\and-backslash`
	got := NormalizeImages([]any{raw})

	require.Len(t, got, 1)
	assert.Equal(t, `data:image/png;base64,with"quote\and-backslash`, got[0])
}

func TestNormalizeImagesDropsNonInlineEntries(t *testing.T) {
	got := NormalizeImages([]any{
		"https://example.com/a.png",
		imgA,
		"",
		42,
		imgB,
	})
	assert.Equal(t, []string{imgA, imgB}, got, "order of surviving entries is preserved")
}

func TestNormalizeImagesIdempotent(t *testing.T) {
	once := NormalizeImages([]any{imgA, imgB})
	var asAny []any
	for _, s := range once {
		asAny = append(asAny, s)
	}
	twice := NormalizeImages(asAny)
	assert.Equal(t, once, twice)
}

func TestNormalizeImagesMalformedJSON(t *testing.T) {
	assert.Empty(t, NormalizeImages(`not json at all`))
	assert.Empty(t, NormalizeImages(nil))
}

func TestNormalizePromotionsSentinels(t *testing.T) {
	cases := map[string]string{
		"":               "",
		"   ":            "",
		"[]":             "",
		"Free install":   "Free install",
		" Free install ": " Free install ",
	}
	for in, want := range cases {
		assert.Equal(t, want, normalizePromotions(in), "input %q", in)
	}
}

func TestNormalizeProduct(t *testing.T) {
	p := Normalize(RawProduct{
		ID:            "daikin-cora-ftxv25u",
		Name:          "Daikin Cora",
		Brand:         "Daikin",
		Price:         "$2125+GST",
		Promotions:    "[]",
		ProductImages: `["` + imgA + `"]`,
	})

	assert.Equal(t, "daikin-cora-ftxv25u", p.ID)
	assert.Empty(t, p.Promotions, `"[]" means no promotion`)
	assert.Equal(t, []string{imgA}, p.ProductImages)
	assert.Equal(t, imgA, p.DisplayImage(), "cover falls back to first gallery entry")
}
