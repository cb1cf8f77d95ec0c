package catalog

import (
	"context"
	"errors"
	"log"

	"github.com/kiwiflowai-ai/totalcare-website/database"
	"github.com/kiwiflowai-ai/totalcare-website/models"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// FetchCatalog is the single entry point every page reads products through.
// It queries the remote store newest-first and normalizes each row. Any
// failure along the way (unconfigured store, connection error, bad cursor,
// empty result) degrades to the static fallback list. Callers always get a
// usable list and never an error.
func FetchCatalog(ctx context.Context) []models.Product {
	if !database.Configured() {
		return Fallback()
	}

	col, err := database.OpenCollection("products")
	if err != nil {
		log.Println("catalog: remote store unavailable, using fallback:", err)
		return Fallback()
	}

	findOpts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := col.Find(ctx, bson.M{}, findOpts)
	if err != nil {
		log.Println("catalog: query failed, using fallback:", err)
		return Fallback()
	}
	defer cursor.Close(ctx)

	products := make([]models.Product, 0)
	for cursor.Next(ctx) {
		var raw RawProduct
		if err := cursor.Decode(&raw); err != nil {
			log.Println("catalog: skipping undecodable row:", err)
			continue
		}
		products = append(products, Normalize(raw))
	}
	if err := cursor.Err(); err != nil {
		log.Println("catalog: cursor failed, using fallback:", err)
		return Fallback()
	}
	if len(products) == 0 {
		log.Println("catalog: remote store returned no products, using fallback")
		return Fallback()
	}
	return products
}

// FetchProduct looks a single product up by id. A healthy remote store that
// simply lacks the id reports not-found; a broken or unconfigured store
// falls back to scanning the static list.
func FetchProduct(ctx context.Context, id string) (models.Product, bool) {
	if database.Configured() {
		col, err := database.OpenCollection("products")
		if err == nil {
			var raw RawProduct
			err := col.FindOne(ctx, bson.M{"_id": id}).Decode(&raw)
			if err == nil {
				return Normalize(raw), true
			}
			if errors.Is(err, mongo.ErrNoDocuments) {
				return models.Product{}, false
			}
			log.Println("catalog: lookup failed, scanning fallback:", err)
		} else {
			log.Println("catalog: remote store unavailable, scanning fallback:", err)
		}
	}

	for _, p := range Fallback() {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}
