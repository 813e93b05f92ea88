package repositories

import (
	"context"
	"time"

	"github.com/opengrants/hackhub-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TxRunner abstracts the persistence layer's transaction primitive. The
// callback runs inside one transaction; returning an error aborts it and
// rolls back every write made through the callback's context.
type TxRunner interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// OrganizationRepository defines the interface for organization data operations
type OrganizationRepository interface {
	Create(ctx context.Context, org *models.Organization) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Organization, error)
	Update(ctx context.Context, org *models.Organization) error
}

// HackathonRepository defines the interface for hackathon data operations
type HackathonRepository interface {
	Create(ctx context.Context, hackathon *models.Hackathon) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Hackathon, error)
	FindByIDAndOrg(ctx context.Context, id, orgID primitive.ObjectID) (*models.Hackathon, error)
	Update(ctx context.Context, hackathon *models.Hackathon) error
	SetWinnersAnnounced(ctx context.Context, id primitive.ObjectID, announcedAt time.Time, announcement string) error
}

// ParticipantRepository defines the interface for participant data operations
type ParticipantRepository interface {
	Create(ctx context.Context, participant *models.Participant) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Participant, error)
	FindByIDs(ctx context.Context, hackathonID, orgID primitive.ObjectID, ids []primitive.ObjectID) ([]*models.Participant, error)
	FindByHackathon(ctx context.Context, hackathonID, orgID primitive.ObjectID) ([]*models.Participant, error)
	// ClearRanks unsets the rank field on participants of the hackathon that
	// currently hold one of the given rank values and are not excluded.
	ClearRanks(ctx context.Context, hackathonID primitive.ObjectID, ranks []int, excludeIDs []primitive.ObjectID) (int64, error)
	SetRank(ctx context.Context, id primitive.ObjectID, rank int) error
}

// UserRepository defines the interface for organizer account operations
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
}
