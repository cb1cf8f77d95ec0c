package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

func TestConfigured(t *testing.T) {
	t.Setenv("MONGODB_URI", "")
	assert.False(t, Configured())

	t.Setenv("MONGODB_URI", "mongodb://localhost:27017")
	assert.True(t, Configured())
}

func TestConnectDoesNotCacheFailures(t *testing.T) {
	clientMu.Lock()
	client = nil
	clientMu.Unlock()
	t.Cleanup(func() {
		clientMu.Lock()
		client = nil
		clientMu.Unlock()
	})

	t.Setenv("MONGODB_URI", "bogus://not-a-mongo-uri")
	_, err := Connect()
	require.Error(t, err)

	// Once a client exists (here injected, normally a recovered store),
	// Connect must hand it out instead of replaying the old failure.
	recovered := &mongo.Client{}
	clientMu.Lock()
	client = recovered
	clientMu.Unlock()

	got, err := Connect()
	require.NoError(t, err)
	assert.Same(t, recovered, got)
}
