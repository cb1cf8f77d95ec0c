package catalog

import (
	"testing"

	"github.com/kiwiflowai-ai/totalcare-website/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrandsSkipBlanksAndDedupe(t *testing.T) {
	list := []models.Product{
		{Brand: "Daikin"},
		{Brand: ""},
		{Brand: "  "},
		{Brand: "Mitsubishi"},
		{Brand: "Daikin"},
	}
	assert.Equal(t, []string{"Daikin", "Mitsubishi"}, Brands(list))
}

func TestSeriesFirstSeenOrder(t *testing.T) {
	list := []models.Product{
		{Series: "Cora"},
		{Series: "Alira"},
		{Series: ""},
		{Series: "Cora"},
	}
	assert.Equal(t, []string{"Cora", "Alira"}, Series(list))
}

func TestPriceBucketsAreFixed(t *testing.T) {
	buckets := PriceBuckets()
	require.Len(t, buckets, 4)

	labels := make([]string, 0, len(buckets))
	for _, b := range buckets {
		labels = append(labels, b.Label)
	}
	assert.Equal(t, []string{
		"Under $2,000",
		"$2,000 - $3,000",
		"$3,000 - $4,000",
		"Over $4,000",
	}, labels)

	// contiguous, no gap between buckets
	for i := 1; i < len(buckets); i++ {
		assert.Equal(t, buckets[i-1].Max, buckets[i].Min)
	}
}

func TestBucketByLabel(t *testing.T) {
	b, ok := BucketByLabel("$2,000 - $3,000")
	require.True(t, ok)
	assert.Equal(t, 2000, b.Min)
	assert.Equal(t, 3000, b.Max)

	_, ok = BucketByLabel("no such bucket")
	assert.False(t, ok)
}
