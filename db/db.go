package db

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	Client *mongo.Client

	UserCollection         *mongo.Collection
	BusinessCollection     *mongo.Collection
	BookingCollection      *mongo.Collection
	PreferencesCollection  *mongo.Collection
	NotificationCollection *mongo.Collection
)

// Init connects to MongoDB and wires up the collection handles. Called once
// from main before any routes are served.
func Init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}
	dbName := os.Getenv("MONGO_DB")
	if dbName == "" {
		dbName = "grabgood"
	}

	var err error
	Client, err = mongo.Connect(context.TODO(), options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := Client.Ping(ctx, nil); err != nil {
		log.Printf("MongoDB ping failed (continuing, driver will retry): %v", err)
	}

	database := Client.Database(dbName)
	UserCollection = database.Collection("users")
	BusinessCollection = database.Collection("businesses")
	BookingCollection = database.Collection("bookings")
	PreferencesCollection = database.Collection("preferences")
	NotificationCollection = database.Collection("notifications")
}

// Close releases the client. Used during graceful shutdown.
func Close(ctx context.Context) {
	if Client == nil {
		return
	}
	if err := Client.Disconnect(ctx); err != nil {
		log.Printf("MongoDB disconnect error: %v", err)
	}
}
