package db

import (
	"context"
	"time"

	"taskshelf/internal/logger"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// ConnectMongo connects to MongoDB and returns the named database.
// Failures are fatal.
func ConnectMongo(url, database string) *mongo.Database {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(url))
	if err != nil {
		logger.Fatal("failed to connect to mongodb", "error", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		logger.Fatal("failed to ping mongodb", "error", err)
	}

	logger.Info("mongodb connected", "database", database)
	return client.Database(database)
}
