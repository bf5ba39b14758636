package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/eventpix/luckydraw-backend/internal/models"
	"github.com/eventpix/luckydraw-backend/internal/utils"
	"github.com/eventpix/luckydraw-backend/pkg/mongodb"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Bulk-imports contest entries from a CSV file. Expected columns:
// eventId,configId,fingerprint,participantName — fingerprint may be empty,
// in which case a random one is generated (anonymous kiosk submissions).
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	mongoURI := os.Getenv("MONGODB_URI")
	if mongoURI == "" {
		log.Fatal("MONGODB_URI environment variable is required")
	}

	dbName := os.Getenv("MONGODB_DATABASE")
	if dbName == "" {
		dbName = "luckydraw"
	}

	if len(os.Args) < 2 {
		log.Fatal("CSV file path is required as a command line argument")
	}
	csvFilePath := os.Args[1]

	client, err := mongodb.NewClient(mongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(context.Background())

	db := client.Database(dbName)

	if err := importEntries(db, csvFilePath); err != nil {
		log.Fatalf("Failed to import entries: %v", err)
	}

	log.Println("Entries imported successfully")
}

// importEntries imports entries from a CSV file into MongoDB
func importEntries(db *mongo.Database, csvFilePath string) error {
	file, err := os.Open(csvFilePath)
	if err != nil {
		return fmt.Errorf("failed to open CSV file: %v", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return fmt.Errorf("failed to parse CSV file: %v", err)
	}

	if len(records) < 2 {
		return fmt.Errorf("CSV file is empty or has only header")
	}

	entriesCollection := db.Collection("entries")
	configsCollection := db.Collection("draw_configs")

	for i, record := range records {
		// Skip header
		if i == 0 {
			continue
		}

		if len(record) < 3 {
			log.Printf("Warning: Record %d has less than 3 fields, skipping", i)
			continue
		}

		eventID, err := primitive.ObjectIDFromHex(record[0])
		if err != nil {
			log.Printf("Warning: Record %d has an invalid event ID, skipping", i)
			continue
		}
		configID, err := primitive.ObjectIDFromHex(record[1])
		if err != nil {
			log.Printf("Warning: Record %d has an invalid config ID, skipping", i)
			continue
		}

		fingerprint := record[2]
		if fingerprint == "" {
			fingerprint, err = utils.GenerateRandomString(32)
			if err != nil {
				log.Printf("Warning: Failed to generate fingerprint for record %d: %v", i, err)
				continue
			}
		}

		participantName := ""
		if len(record) > 3 {
			participantName = record[3]
		}

		entry := models.Entry{
			EventID:         eventID,
			ConfigID:        configID,
			Fingerprint:     fingerprint,
			ParticipantName: participantName,
			IsWinner:        false,
			CreatedAt:       time.Now(),
			UpdatedAt:       time.Now(),
		}
		if _, err := entriesCollection.InsertOne(context.Background(), entry); err != nil {
			log.Printf("Warning: Failed to create entry for record %d: %v", i, err)
			continue
		}

		_, err = configsCollection.UpdateOne(
			context.Background(),
			bson.M{"_id": configID},
			bson.M{
				"$inc": bson.M{"totalEntries": 1},
				"$set": bson.M{"updatedAt": time.Now()},
			},
		)
		if err != nil {
			log.Printf("Warning: Failed to update entry counter for record %d: %v", i, err)
			continue
		}
	}

	return nil
}
