package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriceValue(t *testing.T) {
	cases := map[string]int{
		"$2125+GST":  2125,
		"$3977+gst":  3977,
		"$1,553+GST": 1553,
		"POA":        0,
		"":           0,
	}
	for in, want := range cases {
		assert.Equal(t, want, PriceValue(in), "input %q", in)
	}
}

func TestLeadingDollarAmount(t *testing.T) {
	cases := map[string]int{
		"$2125+GST":     2125,
		"from $950":     950,
		"2125+GST":      0, // no dollar sign
		"call for $$$s": 0,
		"":              0,
	}
	for in, want := range cases {
		assert.Equal(t, want, LeadingDollarAmount(in), "input %q", in)
	}
}
