package cart

import (
	"testing"

	"github.com/kiwiflowai-ai/totalcare-website/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	heatPump = models.Product{ID: "hp1", Name: "Daikin Cora", Price: "$2125+GST"}
	charger  = models.Product{ID: "ev1", Name: "Pulsar Plus", Price: "$1450+GST"}
)

func TestAddIncrementsExistingLine(t *testing.T) {
	c := New()
	c.Add(heatPump)
	c.Add(heatPump)
	c.Add(charger)

	require.Len(t, c.Lines(), 2)
	assert.Equal(t, 2, c.Lines()[0].Quantity)
	assert.Equal(t, 3, c.TotalItems())
}

func TestUpdateQuantity(t *testing.T) {
	c := New()
	c.Add(heatPump)

	c.UpdateQuantity("hp1", 4)
	assert.Equal(t, 4, c.TotalItems())

	// zero or below removes the line
	c.UpdateQuantity("hp1", 0)
	assert.Empty(t, c.Lines())
}

func TestRemoveAndClear(t *testing.T) {
	c := New()
	c.Add(heatPump)
	c.Add(charger)

	c.Remove("hp1")
	require.Len(t, c.Lines(), 1)
	assert.Equal(t, "ev1", c.Lines()[0].Product.ID)

	c.Clear()
	assert.Empty(t, c.Lines())
	assert.Zero(t, c.TotalItems())
}

func TestTotalPriceUsesLeadingDollarAmount(t *testing.T) {
	c := New()
	c.Add(heatPump)
	c.UpdateQuantity("hp1", 2)
	c.Add(charger)

	// 2*2125 + 1450, GST suffixes ignored
	assert.Equal(t, 5700, c.TotalPrice())
}
