package database

import (
	"context"
	"os"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

var (
	clientMu sync.Mutex
	client   *mongo.Client
)

// Configured reports whether a remote store is set up at all. The catalog
// falls back to its static data when this is false, without ever dialing.
func Configured() bool {
	return os.Getenv("MONGODB_URI") != ""
}

// Connect returns the shared client, dialing on first use. Only a working
// client is cached: a failed dial or ping is returned to the caller and the
// next call tries again, so a store that was down at boot is picked up once
// it recovers. The catalog path treats any failure here as "use the static
// fallback".
func Connect() (*mongo.Client, error) {
	clientMu.Lock()
	defer clientMu.Unlock()

	if client != nil {
		return client, nil
	}

	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	uri := os.Getenv("MONGODB_URI")
	opts := options.Client().ApplyURI(uri).SetServerAPIOptions(serverAPI)

	c, err := mongo.Connect(opts)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := c.Ping(ctx, readpref.Primary()); err != nil {
		_ = c.Disconnect(context.Background())
		return nil, err
	}

	client = c
	return client, nil
}

// OpenCollection returns a handle on a collection in the configured database.
func OpenCollection(collectionName string) (*mongo.Collection, error) {
	c, err := Connect()
	if err != nil {
		return nil, err
	}
	databaseName := os.Getenv("DATABASE_NAME")
	if databaseName == "" {
		databaseName = "totalcare"
	}
	return c.Database(databaseName).Collection(collectionName), nil
}
