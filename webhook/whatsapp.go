package webhook

import (
	"fmt"
	"net/url"
	"os"

	"github.com/kiwiflowai-ai/totalcare-website/models"
)

const defaultWhatsAppPhone = "64277500999"

// WhatsAppLink builds the wa.me deep link a quote submission opens, with
// the product and customer details pre-filled in the chat message.
func WhatsAppLink(p models.Product, cust Customer) string {
	message := fmt.Sprintf(`Hi! I'm interested in getting a quote for:

Product: %s
Brand: %s
Price: %s

My Details:
Name: %s
Phone: %s
Location: %s

Description: %s

Please contact me for a free quote.`,
		p.Name, p.Brand, p.Price,
		cust.Name, cust.Phone, cust.Location, cust.Description)

	phone := os.Getenv("WHATSAPP_PHONE")
	if phone == "" {
		phone = defaultWhatsAppPhone
	}
	return "https://wa.me/" + phone + "?text=" + url.QueryEscape(message)
}
