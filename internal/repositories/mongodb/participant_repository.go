package mongodb

import (
	"context"
	"time"

	"github.com/opengrants/hackhub-backend/internal/models"
	"github.com/opengrants/hackhub-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ParticipantRepository implements the repositories.ParticipantRepository interface
type ParticipantRepository struct {
	collection *mongo.Collection
}

// NewParticipantRepository creates a new ParticipantRepository
func NewParticipantRepository(db *mongo.Database) repositories.ParticipantRepository {
	return &ParticipantRepository{
		collection: db.Collection("participants"),
	}
}

// Create creates a new participant
func (r *ParticipantRepository) Create(ctx context.Context, participant *models.Participant) error {
	participant.CreatedAt = time.Now()
	participant.UpdatedAt = time.Now()
	res, err := r.collection.InsertOne(ctx, participant)
	if err != nil {
		return err
	}
	participant.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// FindByID finds a participant by ID
func (r *ParticipantRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Participant, error) {
	var participant models.Participant
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&participant)
	if err != nil {
		return nil, err
	}
	return &participant, nil
}

// FindByIDs finds the participants with the given IDs scoped to one
// hackathon and organization. Out-of-scope IDs simply do not come back;
// callers compare counts to detect them.
func (r *ParticipantRepository) FindByIDs(ctx context.Context, hackathonID, orgID primitive.ObjectID, ids []primitive.ObjectID) ([]*models.Participant, error) {
	filter := bson.M{
		"_id":            bson.M{"$in": ids},
		"hackathonId":    hackathonID,
		"organizationId": orgID,
	}
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var participants []*models.Participant
	if err := cursor.All(ctx, &participants); err != nil {
		return nil, err
	}
	if participants == nil {
		participants = []*models.Participant{}
	}
	return participants, nil
}

// FindByHackathon finds all participants of a hackathon
func (r *ParticipantRepository) FindByHackathon(ctx context.Context, hackathonID, orgID primitive.ObjectID) ([]*models.Participant, error) {
	filter := bson.M{
		"hackathonId":    hackathonID,
		"organizationId": orgID,
	}
	opts := options.Find().SetSort(bson.M{"createdAt": 1})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var participants []*models.Participant
	if err := cursor.All(ctx, &participants); err != nil {
		return nil, err
	}
	if participants == nil {
		participants = []*models.Participant{}
	}
	return participants, nil
}

// ClearRanks unsets the rank field on participants of the hackathon holding
// any of the given ranks, excluding the given IDs.
func (r *ParticipantRepository) ClearRanks(ctx context.Context, hackathonID primitive.ObjectID, ranks []int, excludeIDs []primitive.ObjectID) (int64, error) {
	filter := bson.M{
		"hackathonId": hackathonID,
		"rank":        bson.M{"$in": ranks},
	}
	if len(excludeIDs) > 0 {
		filter["_id"] = bson.M{"$nin": excludeIDs}
	}
	update := bson.M{
		"$unset": bson.M{"rank": ""},
		"$set":   bson.M{"updatedAt": time.Now()},
	}
	res, err := r.collection.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

// SetRank sets the rank field on one participant
func (r *ParticipantRepository) SetRank(ctx context.Context, id primitive.ObjectID, rank int) error {
	update := bson.M{
		"$set": bson.M{
			"rank":      rank,
			"updatedAt": time.Now(),
		},
	}
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	return err
}
