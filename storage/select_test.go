package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// lazyClient builds a client without dialing; the driver connects on first
// operation, which these tests never perform.
func lazyClient(t *testing.T) *mongo.Client {
	t.Helper()
	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI("mongodb://localhost:27017"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })
	return client
}

func TestSelectCheckinStore(t *testing.T) {
	t.Parallel()

	assert.IsType(t, &MemoryCheckinStore{}, SelectCheckinStore(nil))
	assert.IsType(t, &MongoCheckinStore{}, SelectCheckinStore(lazyClient(t)))
}

func TestSelectDiaryStore(t *testing.T) {
	t.Parallel()

	assert.IsType(t, &MemoryDiaryStore{}, SelectDiaryStore(nil))
	assert.IsType(t, &MongoDiaryStore{}, SelectDiaryStore(lazyClient(t)))
}
