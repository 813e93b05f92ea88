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

// OrganizationRepository implements the repositories.OrganizationRepository interface
type OrganizationRepository struct {
	collection *mongo.Collection
}

// NewOrganizationRepository creates a new OrganizationRepository
func NewOrganizationRepository(db *mongo.Database) repositories.OrganizationRepository {
	return &OrganizationRepository{
		collection: db.Collection("organizations"),
	}
}

// Create creates a new organization
func (r *OrganizationRepository) Create(ctx context.Context, org *models.Organization) error {
	org.CreatedAt = time.Now()
	org.UpdatedAt = time.Now()
	res, err := r.collection.InsertOne(ctx, org)
	if err != nil {
		return err
	}
	org.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// FindByID finds an organization by ID
func (r *OrganizationRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Organization, error) {
	var org models.Organization
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&org)
	if err != nil {
		return nil, err
	}
	return &org, nil
}

// Update updates an organization
func (r *OrganizationRepository) Update(ctx context.Context, org *models.Organization) error {
	org.UpdatedAt = time.Now()
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": org.ID}, org)
	return err
}
