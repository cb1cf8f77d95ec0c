package catalog

import (
	"testing"

	"github.com/kiwiflowai-ai/totalcare-website/models"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallbackCarriesTheFullCatalog(t *testing.T) {
	list := Fallback()
	require.Len(t, list, 91)

	perBrand := lo.CountValuesBy(list, func(p models.Product) string { return p.Brand })
	assert.Equal(t, map[string]int{
		"Daikin":     36,
		"Midea":      5,
		"MHI":        5,
		"Samsung":    5,
		"Mitsubishi": 8,
		"Haire":      10,
		"LG":         7,
		"Panasonic":  14,
	}, perBrand)
}

func TestFallbackCatalogIsWellFormed(t *testing.T) {
	list := Fallback()
	require.NotEmpty(t, list)

	ids := lo.Map(list, func(p models.Product, _ int) string { return p.ID })
	assert.Len(t, lo.Uniq(ids), len(ids), "fallback ids are unique")

	for _, p := range list {
		assert.NotEmpty(t, p.Name, "product %s", p.ID)
		assert.NotEmpty(t, p.Brand, "product %s", p.ID)
		assert.NotEmpty(t, p.Price, "product %s", p.ID)
		assert.NotEqual(t, "[]", p.Promotions, "promotions sentinel must not survive in %s", p.ID)
	}
}

func TestFallbackReturnsACopy(t *testing.T) {
	a := Fallback()
	a[0].Name = "mutated"

	b := Fallback()
	assert.NotEqual(t, "mutated", b[0].Name)
}

func TestFallbackServedWhenUnconfigured(t *testing.T) {
	t.Setenv("MONGODB_URI", "")

	got := FetchCatalog(t.Context())
	assert.Equal(t, Fallback(), got)
}

func TestFetchProductScansFallbackWhenUnconfigured(t *testing.T) {
	t.Setenv("MONGODB_URI", "")

	want := Fallback()[0]
	got, ok := FetchProduct(t.Context(), want.ID)
	require.True(t, ok)
	assert.Equal(t, want, got)

	_, ok = FetchProduct(t.Context(), "no-such-product")
	assert.False(t, ok)
}
