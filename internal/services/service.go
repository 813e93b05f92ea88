package services

import (
	"context"
	"time"

	"github.com/opengrants/hackhub-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RankAssignment is one (participant, rank) pair of an assignment batch.
type RankAssignment struct {
	ParticipantID primitive.ObjectID
	Rank          int
}

// WinnerMilestone is one winner entry of a milestone-validation batch.
type WinnerMilestone struct {
	ParticipantID primitive.ObjectID
	Rank          int
	WalletAddress string
}

// AnnouncedWinner is one winner entry of an announcement batch. SubmissionID
// is the participant carrying the winning submission.
type AnnouncedWinner struct {
	SubmissionID primitive.ObjectID
	Rank         int
}

// EscrowSnapshot is the escrow view returned to organizers.
type EscrowSnapshot struct {
	EscrowAddress string                `json:"escrowAddress,omitempty"`
	ContractID    string                `json:"contractId,omitempty"`
	State         models.EscrowState    `json:"state"`
	Details       *models.EscrowDetails `json:"details,omitempty"`
	LiveBalance   *float64              `json:"liveBalance,omitempty"`
}

// RewardService defines the interface for the rank and reward workflow
type RewardService interface {
	// AssignRanks validates and atomically applies a batch of rank
	// assignments, clearing conflicting holders inside the same transaction.
	AssignRanks(ctx context.Context, hackathonID, orgID primitive.ObjectID, requesterEmail string, ranks []RankAssignment) (int, error)

	// CreateWinnerMilestones validates a winners batch against the escrow
	// funding state, prize tiers and persisted ranks. It never writes escrow
	// state itself; milestone creation is deferred to the chain integration.
	CreateWinnerMilestones(ctx context.Context, hackathonID, orgID primitive.ObjectID, requesterEmail string, winners []WinnerMilestone) (int, error)

	// AnnounceWinners marks the hackathon's winners as announced.
	AnnounceWinners(ctx context.Context, hackathonID, orgID primitive.ObjectID, requesterEmail string, winners []AnnouncedWinner, announcement string) (time.Time, error)

	// GetEscrowSnapshot returns the hackathon's escrow state, refreshed
	// best-effort through the escrow client.
	GetEscrowSnapshot(ctx context.Context, hackathonID, orgID primitive.ObjectID, requesterEmail string) (*EscrowSnapshot, error)
}

// HackathonService defines the interface for hackathon read operations
type HackathonService interface {
	GetHackathon(ctx context.Context, hackathonID, orgID primitive.ObjectID) (*models.Hackathon, error)
	ListParticipants(ctx context.Context, hackathonID, orgID primitive.ObjectID) ([]*models.Participant, error)
	GetHackathonStats(ctx context.Context, hackathonID, orgID primitive.ObjectID) (*models.HackathonStats, error)
}

// OrganizationService defines the interface for organization capability checks
type OrganizationService interface {
	// CanManageHackathons reports whether email holds an owner/admin role on
	// the organization, returning the organization for downstream use.
	CanManageHackathons(ctx context.Context, orgID primitive.ObjectID, email string) (bool, *models.Organization, error)
}

// AuthService defines the interface for organizer authentication
type AuthService interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
}
