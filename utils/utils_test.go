package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSlug(t *testing.T) {
	cases := map[string]string{
		"Daikin Cora 2.5kW":        "daikin-cora-2-5kw",
		"  Édition Spéciale  ":     "edition-speciale",
		"Wall---Connector":         "wall-connector",
		"LG Deluxe 8.5kW - 9.0kW!": "lg-deluxe-8-5kw-9-0kw",
	}
	for in, want := range cases {
		assert.Equal(t, want, GenerateSlug(in), "input %q", in)
	}
}

func TestProductID(t *testing.T) {
	assert.Equal(t, "daikin-cora-ftxv25u", ProductID("Daikin Cora", "FTXV25U"))
}

func TestParseIntDefault(t *testing.T) {
	assert.Equal(t, 7, ParseIntDefault("7", 1))
	assert.Equal(t, 1, ParseIntDefault("", 1))
	assert.Equal(t, 1, ParseIntDefault("seven", 1))
}

func TestParseBoolQuery(t *testing.T) {
	b, err := ParseBoolQuery("true")
	require.NoError(t, err)
	require.NotNil(t, b)
	assert.True(t, *b)

	b, err = ParseBoolQuery("")
	require.NoError(t, err)
	assert.Nil(t, b)

	_, err = ParseBoolQuery("maybe")
	assert.Error(t, err)
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)

	assert.NoError(t, CheckPassword(hash, "s3cret-pass"))
	assert.Error(t, CheckPassword(hash, "wrong"))
}

func TestObjectNameFromGCSPublicURL(t *testing.T) {
	name, err := ObjectNameFromGCSPublicURL("covers", "https://storage.googleapis.com/covers/products/p1/1.png")
	require.NoError(t, err)
	assert.Equal(t, "products/p1/1.png", name)

	name, err = ObjectNameFromGCSPublicURL("covers", "https://covers.storage.googleapis.com/products/p1/1.png")
	require.NoError(t, err)
	assert.Equal(t, "products/p1/1.png", name)

	_, err = ObjectNameFromGCSPublicURL("covers", "https://storage.googleapis.com/other-bucket/a.png")
	assert.Error(t, err)

	_, err = ObjectNameFromGCSPublicURL("covers", "https://example.com/a.png")
	assert.Error(t, err)
}

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateAccessToken("user-1", "admin@example.com", "ADMIN", AccessTTL())
	require.NoError(t, err)

	claims, err := ValidateToken(token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "admin@example.com", claims.Email)
	assert.Equal(t, "ADMIN", claims.Role)

	_, err = ValidateToken(token, "wrong-secret")
	assert.Error(t, err)
}
