package db

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/larderlog/backend/internal/logger"
)

// MongoDB connection instance
var (
	MongoClient *mongo.Client
	database    string
)

// ConnectMongoDB initializes the database connection
func ConnectMongoDB(uri, dbName string) *mongo.Database {
	clientOptions := options.Client().ApplyURI(uri)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		logger.L.Fatalf("MongoDB connection failed: %v", err)
	}

	// Ping the database to verify connection
	if err := client.Ping(ctx, nil); err != nil {
		logger.L.Fatalf("MongoDB ping failed: %v", err)
	}

	logger.L.Infow("connected to MongoDB", "database", dbName)
	MongoClient = client
	database = dbName
	return client.Database(dbName)
}

// GetCollection returns a MongoDB collection
func GetCollection(collectionName string) *mongo.Collection {
	return MongoClient.Database(database).Collection(collectionName)
}
