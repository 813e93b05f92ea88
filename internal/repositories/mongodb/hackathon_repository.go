package mongodb

import (
	"context"
	"time"

	"github.com/opengrants/hackhub-backend/internal/models"
	"github.com/opengrants/hackhub-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// HackathonRepository implements the repositories.HackathonRepository interface
type HackathonRepository struct {
	collection *mongo.Collection
}

// NewHackathonRepository creates a new HackathonRepository
func NewHackathonRepository(db *mongo.Database) repositories.HackathonRepository {
	return &HackathonRepository{
		collection: db.Collection("hackathons"),
	}
}

// Create creates a new hackathon
func (r *HackathonRepository) Create(ctx context.Context, hackathon *models.Hackathon) error {
	hackathon.CreatedAt = time.Now()
	hackathon.UpdatedAt = time.Now()
	res, err := r.collection.InsertOne(ctx, hackathon)
	if err != nil {
		return err
	}
	hackathon.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// FindByID finds a hackathon by ID
func (r *HackathonRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Hackathon, error) {
	var hackathon models.Hackathon
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&hackathon)
	if err != nil {
		return nil, err
	}
	return &hackathon, nil
}

// FindByIDAndOrg finds a hackathon by ID scoped to an organization
func (r *HackathonRepository) FindByIDAndOrg(ctx context.Context, id, orgID primitive.ObjectID) (*models.Hackathon, error) {
	var hackathon models.Hackathon
	filter := bson.M{"_id": id, "organizationId": orgID}
	err := r.collection.FindOne(ctx, filter).Decode(&hackathon)
	if err != nil {
		return nil, err // mongo.ErrNoDocuments when out of scope
	}
	return &hackathon, nil
}

// Update updates a hackathon
func (r *HackathonRepository) Update(ctx context.Context, hackathon *models.Hackathon) error {
	hackathon.UpdatedAt = time.Now()
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": hackathon.ID}, hackathon)
	return err
}

// SetWinnersAnnounced marks the hackathon's winners as announced in a single
// document update.
func (r *HackathonRepository) SetWinnersAnnounced(ctx context.Context, id primitive.ObjectID, announcedAt time.Time, announcement string) error {
	set := bson.M{
		"winnersAnnounced":   true,
		"winnersAnnouncedAt": announcedAt,
		"updatedAt":          time.Now(),
	}
	if announcement != "" {
		set["winnersAnnouncement"] = announcement
	}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
