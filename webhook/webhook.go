// Package webhook forwards lead-gen form submissions to the Make.com
// automation scenario. Delivery is best effort: the site accepts the form
// either way and failures are only logged by the caller.
package webhook

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/kiwiflowai-ai/totalcare-website/models"
)

const defaultHookURL = "https://hook.us2.make.com/p2rf9okiehaj8scot6qdreachdilqvv7"

// Source tags identifying which form a payload came from, matched by the
// automation scenario on the other end.
const (
	SourceQuoteModal     = "website_quote_modal"
	SourceContactPage    = "contact_page_form"
	SourceServiceInquiry = "services_page_contact_form"
)

var client = resty.New().
	SetTimeout(10 * time.Second).
	SetRetryCount(2)

// ProductInfo is the product snapshot included with quote requests.
type ProductInfo struct {
	Name   string `json:"name"`
	Brand  string `json:"brand"`
	Price  string `json:"price"`
	Series string `json:"series"`
	Model  string `json:"model"`
}

// Customer carries the form fields. Each form fills a different subset.
type Customer struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Email       string `json:"email,omitempty"`
	Location    string `json:"location,omitempty"`
	ServiceType string `json:"service_type,omitempty"`
	Description string `json:"description,omitempty"`
}

// Payload is the ad hoc JSON shape the scenario expects.
type Payload struct {
	Product   *ProductInfo `json:"product,omitempty"`
	Customer  Customer     `json:"customer"`
	Timestamp string       `json:"timestamp"`
	Source    string       `json:"source"`
}

func QuotePayload(p models.Product, cust Customer) Payload {
	return Payload{
		Product: &ProductInfo{
			Name:   p.Name,
			Brand:  p.Brand,
			Price:  p.Price,
			Series: p.Series,
			Model:  p.Model,
		},
		Customer:  cust,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Source:    SourceQuoteModal,
	}
}

func ContactPayload(cust Customer) Payload {
	return Payload{
		Customer:  cust,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Source:    SourceContactPage,
	}
}

func ServiceInquiryPayload(cust Customer) Payload {
	return Payload{
		Customer:  cust,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Source:    SourceServiceInquiry,
	}
}

func hookURL() string {
	if v := os.Getenv("MAKE_WEBHOOK_URL"); v != "" {
		return v
	}
	return defaultHookURL
}

// Send posts the payload. Only the HTTP status matters; no response body is
// consumed.
func Send(ctx context.Context, p Payload) error {
	resp, err := client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(p).
		Post(hookURL())
	if err != nil {
		return fmt.Errorf("webhook post: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("webhook returned %s", resp.Status())
	}
	return nil
}
