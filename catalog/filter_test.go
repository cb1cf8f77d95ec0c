package catalog

import (
	"testing"

	"github.com/kiwiflowai-ai/totalcare-website/models"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProducts() []models.Product {
	return []models.Product{
		{ID: "p1", Name: "Cora Compact", Brand: "Daikin", Model: "FTXV25U", Series: "Cora", Price: "$1553+GST"},
		{ID: "p2", Name: "Cora Plus", Brand: "Daikin", Model: "FTXV50U", Series: "Cora", Price: "$2125+GST"},
		{ID: "p3", Name: "Alira X", Brand: "Daikin", Model: "FTXM35W", Series: "Alira", Price: "$3977+gst"},
		{ID: "p4", Name: "Pulsar Plus", Brand: "Wallbox", Model: "PLP1", Price: "$1450+GST"},
		{ID: "p5", Name: "Wall Connector", Brand: "Tesla", Model: "Gen 3", Price: "$950+GST"},
	}
}

func ids(list []models.Product) []string {
	return lo.Map(list, func(p models.Product, _ int) string { return p.ID })
}

func TestApplyPriceBucketFilter(t *testing.T) {
	q := Query{PriceRange: "$2,000 - $3,000"}
	got := q.Apply(sampleProducts())

	// $1553 is below, $3977 above; only $2125 sits in [2000, 3000)
	require.Len(t, got, 1)
	assert.Equal(t, "p2", got[0].ID)
}

func TestApplySearchMatchesAnyField(t *testing.T) {
	list := sampleProducts()

	assert.Equal(t, []string{"p3"}, ids(Query{Search: "alira"}.Apply(list)), "name, case-insensitive")
	assert.Equal(t, []string{"p5"}, ids(Query{Search: "TESLA"}.Apply(list)), "brand")
	assert.Equal(t, []string{"p3"}, ids(Query{Search: "ftxm"}.Apply(list)), "model")
	assert.Empty(t, Query{Search: "nonexistent"}.Apply(list))
}

func TestApplyCategoryPartition(t *testing.T) {
	list := sampleProducts()

	ev := Query{Category: CategoryEVChargers}.Apply(list)
	hp := Query{Category: CategoryHeatPumps}.Apply(list)
	all := Query{Category: CategoryAll}.Apply(list)

	assert.ElementsMatch(t, []string{"p4", "p5"}, ids(ev))
	assert.ElementsMatch(t, []string{"p1", "p2", "p3"}, ids(hp))
	assert.Len(t, all, len(list), "every product is in exactly one category")
}

func TestApplySorts(t *testing.T) {
	hp := Query{Category: CategoryHeatPumps, SortBy: SortByPriceLow}.Apply(sampleProducts())
	require.Len(t, hp, 3)
	assert.Equal(t, []string{"p1", "p2", "p3"}, ids(hp))

	high := Query{Category: CategoryHeatPumps, SortBy: SortByPriceHigh}.Apply(sampleProducts())
	assert.Equal(t, []string{"p3", "p2", "p1"}, ids(high))

	byName := Query{}.Apply(sampleProducts())
	assert.Equal(t, []string{"p3", "p1", "p2", "p4", "p5"}, ids(byName), "default sort is by name")
}

func TestApplyFiltersCompose(t *testing.T) {
	q := Query{Category: CategoryHeatPumps, Brand: "Daikin", Series: "Cora", PriceRange: "Under $2,000"}
	got := q.Apply(sampleProducts())

	require.Len(t, got, 1)
	assert.Equal(t, "p1", got[0].ID)
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	list := sampleProducts()
	original := ids(list)

	Query{SortBy: SortByPriceHigh}.Apply(list)

	assert.Equal(t, original, ids(list))
}

func TestApplyAllSelectorsAreNoops(t *testing.T) {
	list := sampleProducts()
	got := Query{Category: "all", Brand: "all", Series: "all", PriceRange: "all"}.Apply(list)
	assert.Len(t, got, len(list))
}
