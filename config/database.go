package config

import (
	"context"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var Client *mongo.Client

// ConnectDB attempts the MongoDB connection once at startup. An unreachable
// database is not fatal unless MINDTUNE_REQUIRE_DB is set: the caller falls
// back to the in-memory check-in store for the lifetime of the process.
func ConnectDB() *mongo.Client {

	log.Println("Attempting to connect to MongoDB...")

	mongoURI := os.Getenv("MONGO_URI")

	// Fallback for local development
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}

	clientOptions := options.Client().ApplyURI(mongoURI)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err == nil {
		if err = client.Ping(ctx, nil); err != nil {
			// Release the driver's connection pool before discarding the client.
			if derr := client.Disconnect(ctx); derr != nil {
				log.Printf("WARNING: could not disconnect unreachable MongoDB client: %v", derr)
			}
		}
	}
	if err != nil {
		if RequireDB() {
			log.Fatalf("MongoDB is not reachable and MINDTUNE_REQUIRE_DB is set: %v", err)
		}
		log.Printf("WARNING: MongoDB is not reachable (%v); check-ins will be kept in memory and lost on restart", err)
		return nil
	}

	log.Println("Successfully connected to MongoDB!")
	Client = client
	return client
}

// RequireDB reports whether degraded in-memory operation is forbidden.
func RequireDB() bool {
	return os.Getenv("MINDTUNE_REQUIRE_DB") != ""
}

func OpenCollection(collectionName string) *mongo.Collection {

	if Client == nil {
		log.Fatal("MongoDB client is not initialized.")
	}

	return Client.Database("mindtune").Collection(collectionName)
}

// Port returns the listen address, ":8080" unless PORT overrides it.
func Port() string {
	if p := os.Getenv("PORT"); p != "" {
		return ":" + p
	}
	return ":8080"
}
