package storage

import (
	"go.mongodb.org/mongo-driver/mongo"
)

// dbName is the Mongo database backing all durable stores.
const dbName = "mindtune"

// SelectCheckinStore picks the check-in store for the process: durable when
// a connected client is available, transient in-memory otherwise. Called
// exactly once at startup; the choice never changes mid-request.
func SelectCheckinStore(client *mongo.Client) CheckinStore {
	if client == nil {
		return NewMemoryCheckinStore()
	}
	return NewMongoCheckinStore(client.Database(dbName))
}

// SelectDiaryStore is the diary counterpart of SelectCheckinStore.
func SelectDiaryStore(client *mongo.Client) DiaryStore {
	if client == nil {
		return NewMemoryDiaryStore()
	}
	return NewMongoDiaryStore(client.Database(dbName))
}
