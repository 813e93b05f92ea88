package main

import (
	"context"
	"encoding/csv"
	"io"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/opengrants/hackhub-backend/internal/environment"
	"github.com/opengrants/hackhub-backend/internal/models"
	mongorepo "github.com/opengrants/hackhub-backend/internal/repositories/mongodb"
	"github.com/opengrants/hackhub-backend/pkg/mongodb"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Imports participant registrations from a CSV file. Expected columns:
// hackathonId, organizationId, userId, participationType, teamName, rank
// (rank may be empty). IMPORT_DRY_RUN=true parses and reports without
// writing; IMPORT_TIMEOUT_SECONDS bounds the whole run.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	mongoURI := environment.GetEnv("MONGODB_URI", "mongodb://localhost:27017")
	dbName := environment.GetEnv("MONGODB_DATABASE", "hackhub")
	dryRun := environment.GetEnvAsBool("IMPORT_DRY_RUN", false)
	timeoutSeconds := environment.GetEnvAsInt("IMPORT_TIMEOUT_SECONDS", 120)

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
	participantRepo := mongorepo.NewParticipantRepository(db)

	file, err := os.Open(csvFilePath)
	if err != nil {
		log.Fatalf("Failed to open CSV file: %v", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)

	// Skip the header row
	if _, err := reader.Read(); err != nil {
		log.Fatalf("Failed to read CSV header: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeoutSeconds)*time.Second)
	defer cancel()

	imported := 0
	skipped := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Fatalf("Failed to read CSV record: %v", err)
		}
		if len(record) < 5 {
			log.Printf("Skipping short record: %v", record)
			skipped++
			continue
		}

		hackathonID, err := primitive.ObjectIDFromHex(record[0])
		if err != nil {
			log.Printf("Skipping record with invalid hackathonId %q: %v", record[0], err)
			skipped++
			continue
		}
		orgID, err := primitive.ObjectIDFromHex(record[1])
		if err != nil {
			log.Printf("Skipping record with invalid organizationId %q: %v", record[1], err)
			skipped++
			continue
		}
		userID, err := primitive.ObjectIDFromHex(record[2])
		if err != nil {
			log.Printf("Skipping record with invalid userId %q: %v", record[2], err)
			skipped++
			continue
		}

		participationType := record[3]
		if participationType != models.ParticipationIndividual && participationType != models.ParticipationTeam {
			participationType = models.ParticipationIndividual
		}

		participant := &models.Participant{
			HackathonID:       hackathonID,
			OrganizationID:    orgID,
			UserID:            userID,
			ParticipationType: participationType,
			TeamName:          record[4],
		}

		if len(record) > 5 && record[5] != "" {
			rank, err := strconv.Atoi(record[5])
			if err != nil || rank < 1 {
				log.Printf("Skipping record with invalid rank %q", record[5])
				skipped++
				continue
			}
			participant.Rank = &rank
		}

		if dryRun {
			imported++
			continue
		}
		if err := participantRepo.Create(ctx, participant); err != nil {
			log.Fatalf("Failed to insert participant: %v", err)
		}
		imported++
	}

	if dryRun {
		log.Printf("Dry run complete: %d records would be imported, %d skipped", imported, skipped)
		return
	}
	log.Printf("Import complete: %d participants imported, %d records skipped", imported, skipped)
}
