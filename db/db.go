package db

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	UserCollection      *mongo.Collection
	CompaniesCollection *mongo.Collection
	TripsCollection     *mongo.Collection
	VehiclesCollection  *mongo.Collection
	TicketsCollection   *mongo.Collection
	RentalsCollection   *mongo.Collection
	Client              *mongo.Client
)

// Initialize MongoDB connection
func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	var err error
	Client, err = mongo.Connect(context.TODO(), options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	UserCollection = Client.Database("billetdb").Collection("users")
	CompaniesCollection = Client.Database("billetdb").Collection("companies")
	TripsCollection = Client.Database("billetdb").Collection("trips")
	VehiclesCollection = Client.Database("billetdb").Collection("vehicles")
	TicketsCollection = Client.Database("billetdb").Collection("tickets")
	RentalsCollection = Client.Database("billetdb").Collection("rentals")
}
