package webhook

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/kiwiflowai-ai/totalcare-website/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var product = models.Product{
	ID:     "daikin-cora-ftxv25u",
	Name:   "Daikin Cora",
	Brand:  "Daikin",
	Series: "Cora",
	Model:  "FTXV25U",
	Price:  "$2125+GST",
}

func TestSendDeliversQuotePayload(t *testing.T) {
	var received Payload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()
	t.Setenv("MAKE_WEBHOOK_URL", srv.URL)

	cust := Customer{Name: "Jane", Phone: "0211234567", Location: "Wellington"}
	err := Send(t.Context(), QuotePayload(product, cust))
	require.NoError(t, err)

	require.NotNil(t, received.Product)
	assert.Equal(t, "Daikin Cora", received.Product.Name)
	assert.Equal(t, "$2125+GST", received.Product.Price)
	assert.Equal(t, "Jane", received.Customer.Name)
	assert.Equal(t, SourceQuoteModal, received.Source)
	assert.NotEmpty(t, received.Timestamp)
}

func TestSendSourceTags(t *testing.T) {
	cust := Customer{Name: "Jane", Phone: "0211234567"}

	assert.Equal(t, SourceContactPage, ContactPayload(cust).Source)
	assert.Nil(t, ContactPayload(cust).Product, "form payloads carry no product")
	assert.Equal(t, SourceServiceInquiry, ServiceInquiryPayload(cust).Source)
}

func TestSendReportsHTTPErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()
	t.Setenv("MAKE_WEBHOOK_URL", srv.URL)

	err := Send(t.Context(), ContactPayload(Customer{Name: "Jane"}))
	assert.Error(t, err)
}

func TestWhatsAppLink(t *testing.T) {
	cust := Customer{Name: "Jane", Phone: "0211234567", Location: "Wellington", Description: "Two storey house"}
	link := WhatsAppLink(product, cust)

	require.True(t, strings.HasPrefix(link, "https://wa.me/64277500999?text="))

	u, err := url.Parse(link)
	require.NoError(t, err)
	message := u.Query().Get("text")
	assert.Contains(t, message, "Product: Daikin Cora")
	assert.Contains(t, message, "Price: $2125+GST")
	assert.Contains(t, message, "Name: Jane")
	assert.Contains(t, message, "Location: Wellington")
}

func TestWhatsAppLinkPhoneOverride(t *testing.T) {
	t.Setenv("WHATSAPP_PHONE", "64210000000")

	link := WhatsAppLink(product, Customer{Name: "Jane"})
	assert.True(t, strings.HasPrefix(link, "https://wa.me/64210000000?"))
}
