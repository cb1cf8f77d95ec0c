package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type QuoteRequestStatus string

const (
	QuoteStatusNew        QuoteRequestStatus = "NEW"
	QuoteStatusInProgress QuoteRequestStatus = "IN_PROGRESS"
	QuoteStatusQuoted     QuoteRequestStatus = "QUOTED"
	QuoteStatusClosed     QuoteRequestStatus = "CLOSED"
)

// QuoteProduct is the snapshot of the product a quote was requested for,
// copied at submission time so the quote survives later catalog edits.
type QuoteProduct struct {
	ProductID string `bson:"productId" json:"productId"`
	Name      string `bson:"name" json:"name"`
	Brand     string `bson:"brand" json:"brand"`
	Series    string `bson:"series,omitempty" json:"series,omitempty"`
	Model     string `bson:"model,omitempty" json:"model,omitempty"`
	Price     string `bson:"price" json:"price"`
}

type QuoteRequest struct {
	ID bson.ObjectID `bson:"_id,omitempty" json:"id"`

	Name        string `bson:"name" json:"name"`
	Phone       string `bson:"phone" json:"phone"`
	Location    string `bson:"location,omitempty" json:"location,omitempty"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`

	Product QuoteProduct `bson:"product" json:"product"`

	Status   QuoteRequestStatus `bson:"status" json:"status"`
	QuotedAt *time.Time         `bson:"quotedAt,omitempty" json:"quotedAt,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
