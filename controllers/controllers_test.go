package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/kiwiflowai-ai/totalcare-website/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/products", GetProducts())
	r.GET("/products/:id", GetProduct())
	r.GET("/facets", GetFacets())
	r.POST("/quote-requests", CreateQuoteRequest())
	r.POST("/contact", Contact())
	r.POST("/service-inquiries", ServiceInquiry())
	r.POST("/checkout", Checkout())
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var parsed map[string]any
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parsed))
	}
	return w, parsed
}

func TestGetProductsServesFallbackWhenUnconfigured(t *testing.T) {
	t.Setenv("MONGODB_URI", "")
	r := newTestRouter()

	w, body := doJSON(t, r, http.MethodGet, "/products", "")
	require.Equal(t, http.StatusOK, w.Code)

	items := body["items"].([]any)
	assert.Len(t, items, len(catalog.Fallback()))
	assert.EqualValues(t, len(items), body["total"])
}

func TestGetProductsFilterAndSortParams(t *testing.T) {
	t.Setenv("MONGODB_URI", "")
	r := newTestRouter()

	w, body := doJSON(t, r, http.MethodGet, "/products?search=cora&sort=price-low", "")
	require.Equal(t, http.StatusOK, w.Code)

	items := body["items"].([]any)
	require.NotEmpty(t, items)
	prev := 0
	for _, raw := range items {
		p := raw.(map[string]any)
		assert.Contains(t, strings.ToLower(p["name"].(string)), "cora")
		price := catalog.PriceValue(p["price"].(string))
		assert.GreaterOrEqual(t, price, prev)
		prev = price
	}
}

func TestGetProduct(t *testing.T) {
	t.Setenv("MONGODB_URI", "")
	r := newTestRouter()

	known := catalog.Fallback()[0]
	w, body := doJSON(t, r, http.MethodGet, "/products/"+known.ID, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, known.Name, body["name"])

	w, _ = doJSON(t, r, http.MethodGet, "/products/no-such-product", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetFacets(t *testing.T) {
	t.Setenv("MONGODB_URI", "")
	r := newTestRouter()

	w, body := doJSON(t, r, http.MethodGet, "/facets", "")
	require.Equal(t, http.StatusOK, w.Code)

	assert.NotEmpty(t, body["brands"])
	assert.Len(t, body["priceBuckets"].([]any), 4)
}

func TestCreateQuoteRequest(t *testing.T) {
	t.Setenv("MONGODB_URI", "")
	hook := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer hook.Close()
	t.Setenv("MAKE_WEBHOOK_URL", hook.URL)
	r := newTestRouter()

	productID := catalog.Fallback()[0].ID
	w, body := doJSON(t, r, http.MethodPost, "/quote-requests",
		`{"name":"Jane","phone":"0211234567","location":"Wellington","productId":"`+productID+`"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, body["whatsappUrl"], "https://wa.me/")

	// missing required phone
	w, _ = doJSON(t, r, http.MethodPost, "/quote-requests",
		`{"name":"Jane","productId":"`+productID+`"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// unknown product
	w, _ = doJSON(t, r, http.MethodPost, "/quote-requests",
		`{"name":"Jane","phone":"0211234567","productId":"no-such-product"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestContactForms(t *testing.T) {
	hook := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer hook.Close()
	t.Setenv("MAKE_WEBHOOK_URL", hook.URL)
	r := newTestRouter()

	w, _ := doJSON(t, r, http.MethodPost, "/contact",
		`{"name":"Jane","phone":"0211234567","message":"Hello"}`)
	assert.Equal(t, http.StatusCreated, w.Code)

	w, _ = doJSON(t, r, http.MethodPost, "/service-inquiries",
		`{"name":"Jane","phone":"0211234567","service":"Servicing"}`)
	assert.Equal(t, http.StatusCreated, w.Code)

	w, _ = doJSON(t, r, http.MethodPost, "/contact", `{"name":"Jane"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code, "phone is required")
}

func TestContactReportsHookFailure(t *testing.T) {
	hook := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer hook.Close()
	t.Setenv("MAKE_WEBHOOK_URL", hook.URL)
	r := newTestRouter()

	w, _ := doJSON(t, r, http.MethodPost, "/contact",
		`{"name":"Jane","phone":"0211234567"}`)
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestCheckout(t *testing.T) {
	t.Setenv("MONGODB_URI", "")
	r := newTestRouter()

	p := catalog.Fallback()[0]
	valid := `{
		"firstName":"Jane","lastName":"Doe","email":"jane@example.com",
		"phone":"0211234567","address":"1 Lambton Quay","postcode":"6011",
		"propertyType":"house","agreeTerms":true,
		"items":[{"productId":"` + p.ID + `","quantity":2}]
	}`

	w, body := doJSON(t, r, http.MethodPost, "/checkout", valid)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.EqualValues(t, 2, body["totalItems"])
	assert.EqualValues(t, 2*catalog.LeadingDollarAmount(p.Price), body["totalPrice"])
	assert.NotEmpty(t, body["reference"])

	// unknown product id
	w, _ = doJSON(t, r, http.MethodPost, "/checkout", strings.Replace(valid, p.ID, "no-such-product", 1))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// terms not agreed
	w, _ = doJSON(t, r, http.MethodPost, "/checkout", strings.Replace(valid, `"agreeTerms":true`, `"agreeTerms":false`, 1))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// empty cart
	w, _ = doJSON(t, r, http.MethodPost, "/checkout", strings.Replace(valid,
		`"items":[{"productId":"`+p.ID+`","quantity":2}]`, `"items":[]`, 1))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCheckoutMergesDuplicateItems(t *testing.T) {
	t.Setenv("MONGODB_URI", "")
	r := newTestRouter()

	p := catalog.Fallback()[0]
	body := `{
		"firstName":"Jane","lastName":"Doe","email":"jane@example.com",
		"phone":"0211234567","address":"1 Lambton Quay","postcode":"6011",
		"propertyType":"house","agreeTerms":true,
		"items":[
			{"productId":"` + p.ID + `","quantity":1},
			{"productId":"` + p.ID + `","quantity":2}
		]
	}`

	w, resp := doJSON(t, r, http.MethodPost, "/checkout", body)
	require.Equal(t, http.StatusCreated, w.Code)

	// one merged line carrying the summed quantity
	assert.EqualValues(t, 3, resp["totalItems"])
	assert.EqualValues(t, 3*catalog.LeadingDollarAmount(p.Price), resp["totalPrice"])
}
