// config/db.go
package config

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	connectAttempts = 3
	connectBackoff  = 2 * time.Second
)

// ConnectDB builds the MongoDB client and runs the bounded retry loop.
// Connection failure is never fatal; the availability flag decides how
// requests are served afterwards.
func ConnectDB(avail *Availability, log *zerolog.Logger) *mongo.Client {
	mongoURI := os.Getenv("MONGODB_URI")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}

	log.Info().Str("uri", maskMongoURI(mongoURI)).Msg("connecting to MongoDB")

	clientOptions := options.Client().
		ApplyURI(mongoURI).
		SetServerSelectionTimeout(5 * time.Second).
		SetSocketTimeout(45 * time.Second).
		SetMaxPoolSize(10).
		SetServerMonitor(avail.ServerMonitor())

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		// Only malformed options reach this branch; an unreachable server
		// is handled by the retry loop below.
		log.Fatal().Err(err).Msg("MongoDB client setup failed")
	}

	connected := avail.ConnectWithRetry(ctx, connectAttempts, connectBackoff, func(ctx context.Context) error {
		pingCtx, pingCancel := context.WithTimeout(ctx, 5*time.Second)
		defer pingCancel()
		return client.Ping(pingCtx, nil)
	})
	if connected {
		setupIndexes(client, log)
	}

	return client
}

// GetDatabase returns the application database handle.
func GetDatabase(client *mongo.Client) *mongo.Database {
	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		dbName = "studio"
	}
	return client.Database(dbName)
}

// setupIndexes creates the unique email indexes for users and admins.
func setupIndexes(client *mongo.Client, log *zerolog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db := GetDatabase(client)
	for _, collName := range []string{"users", "admins"} {
		coll := db.Collection(collName)
		indexModel := mongo.IndexModel{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		}
		if _, err := coll.Indexes().CreateOne(ctx, indexModel); err != nil {
			log.Error().Err(err).Str("collection", collName).Msg("error creating email index")
		}
	}
}

// maskMongoURI hides the password portion of the URI for logging.
func maskMongoURI(uri string) string {
	if idx := strings.Index(uri, "@"); idx > 0 {
		if colonIdx := strings.LastIndex(uri[:idx], ":"); colonIdx > 0 {
			return uri[:colonIdx+1] + "***" + uri[idx:]
		}
	}
	return uri
}
