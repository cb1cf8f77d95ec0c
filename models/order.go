package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// OrderLine is one cart line frozen at checkout time. UnitPrice is the
// leading dollar amount of the product's price string (GST suffix dropped).
type OrderLine struct {
	ProductID   string `bson:"productId" json:"productId"`
	ProductName string `bson:"productName" json:"productName"`
	Brand       string `bson:"brand" json:"brand"`
	Price       string `bson:"price" json:"price"`
	UnitPrice   int    `bson:"unitPrice" json:"unitPrice"`
	Quantity    int    `bson:"quantity" json:"quantity"`
}

type Order struct {
	ID bson.ObjectID `bson:"_id,omitempty" json:"id"`

	// Reference is the customer-facing order number, quoted back in
	// confirmation messages instead of the store id.
	Reference string `bson:"reference" json:"reference"`

	FirstName string `bson:"firstName" json:"firstName"`
	LastName  string `bson:"lastName" json:"lastName"`
	Email     string `bson:"email" json:"email"`
	Phone     string `bson:"phone" json:"phone"`

	Address      string `bson:"address" json:"address"`
	Suburb       string `bson:"suburb,omitempty" json:"suburb,omitempty"`
	Postcode     string `bson:"postcode" json:"postcode"`
	PropertyType string `bson:"propertyType" json:"propertyType"`
	Notes        string `bson:"notes,omitempty" json:"notes,omitempty"`

	Lines      []OrderLine `bson:"lines" json:"lines"`
	TotalItems int         `bson:"totalItems" json:"totalItems"`
	TotalPrice int         `bson:"totalPrice" json:"totalPrice"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
