package database

import (
	"context"
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var (
	client     *mongo.Client
	once       sync.Once // prevents ConnectMongoDB() from running twice
	connectErr error

	StudentCollection        *mongo.Collection
	AttendanceCollection     *mongo.Collection
	AssessmentCollection     *mongo.Collection
	FeeCollection            *mongo.Collection
	RiskAssessmentCollection *mongo.Collection
	NotificationCollection   *mongo.Collection
	UserCollection           *mongo.Collection
)

// DatabaseName - resolved from DB_NAME, with a development fallback
func DatabaseName() string {
	if name := os.Getenv("DB_NAME"); name != "" {
		return name
	}
	return "EduPredictDB"
}

// ConnectMongoDB connects to MongoDB exactly once and binds the collections.
func ConnectMongoDB() error {

	// Load environment variables from .env
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Warning: No .env file found")
	}

	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		log.Fatal("❌ MONGO_URI environment variable not set. Please create a .env file and set it.")
	}

	once.Do(func() {
		clientOptions := options.Client().ApplyURI(mongoURI)

		client, connectErr = mongo.Connect(context.TODO(), clientOptions)
		if connectErr != nil {
			log.Fatal("❌ Failed to connect to MongoDB:", connectErr)
			return
		}

		connectErr = client.Ping(context.TODO(), readpref.Primary())
		if connectErr != nil {
			log.Fatal("❌ MongoDB ping failed:", connectErr)
			return
		}

		dbName := DatabaseName()
		StudentCollection = GetCollection(dbName, "students")
		AttendanceCollection = GetCollection(dbName, "attendance")
		AssessmentCollection = GetCollection(dbName, "assessments")
		FeeCollection = GetCollection(dbName, "fees")
		RiskAssessmentCollection = GetCollection(dbName, "risk_assessments")
		NotificationCollection = GetCollection(dbName, "notifications")
		UserCollection = GetCollection(dbName, "users")

		log.Println("✅ MongoDB connected successfully")
	})

	return connectErr
}

// GetCollection returns a collection handle from the shared client.
func GetCollection(dbName, collectionName string) *mongo.Collection {
	if client == nil {
		log.Fatal("❌ MongoDB client is nil")
	}
	return client.Database(dbName).Collection(collectionName)
}

// Disconnect closes the shared client. Used on shutdown.
func Disconnect(ctx context.Context) error {
	if client == nil {
		return nil
	}
	return client.Disconnect(ctx)
}
