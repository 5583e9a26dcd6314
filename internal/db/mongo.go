package db

import (
	"context"
	"fmt"
	"log"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"artileaf-backend-go/internal/config"
)

// Connect establishes a MongoDB client using the connection URI from the
// application configuration. The client is pinned to Stable API v1 in strict
// mode. The caller owns the returned client and must Disconnect it on
// shutdown.
func Connect(ctx context.Context, appConfig *config.Config) (*mongo.Client, error) {
	if appConfig == nil {
		return nil, fmt.Errorf("db.Connect: appConfig cannot be nil")
	}

	serverAPI := options.ServerAPI(options.ServerAPIVersion1).
		SetStrict(true).
		SetDeprecationErrors(true)
	clientOpts := options.Client().
		ApplyURI(appConfig.MongoURI).
		SetServerAPIOptions(serverAPI)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("mongo.Connect: %w", err)
	}

	// Connect is lazy; ping to surface credential and reachability problems
	// at startup instead of on the first request.
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		if discErr := client.Disconnect(ctx); discErr != nil {
			log.Printf("Error disconnecting MongoDB client after failed ping: %v", discErr)
		}
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	log.Println("MongoDB client connected successfully.")
	return client, nil
}

// Disconnect closes the MongoDB client. Intended for deferred use during
// process shutdown.
func Disconnect(ctx context.Context, client *mongo.Client) {
	if client == nil {
		return
	}
	if err := client.Disconnect(ctx); err != nil {
		log.Printf("Error disconnecting MongoDB client: %v", err)
	}
}
