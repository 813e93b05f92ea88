package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Hackathon statuses
const (
	HackathonStatusDraft     = "DRAFT"
	HackathonStatusPublished = "PUBLISHED"
	HackathonStatusJudging   = "JUDGING"
	HackathonStatusCompleted = "COMPLETED"
)

// EscrowState describes the funding state of a hackathon's prize escrow.
type EscrowState string

const (
	EscrowStateNone     EscrowState = "NO_ESCROW"
	EscrowStateUnfunded EscrowState = "UNFUNDED"
	EscrowStateFunded   EscrowState = "FUNDED"
)

// PrizeTier maps a contest position to a payout amount.
type PrizeTier struct {
	Position int     `bson:"position" json:"position"` // 1-based rank this tier pays out
	Amount   float64 `bson:"amount" json:"amount"`
	Currency string  `bson:"currency" json:"currency"`
}

// Milestone is a payout checkpoint tied to a winner's rank. Milestone
// documents are written by the external escrow integration, never by this
// service.
type Milestone struct {
	ParticipantID primitive.ObjectID `bson:"participantId" json:"participantId"`
	Rank          int                `bson:"rank" json:"rank"`
	Amount        float64            `bson:"amount" json:"amount"`
	WalletAddress string             `bson:"walletAddress" json:"walletAddress"`
	Status        string             `bson:"status" json:"status"` // PENDING, RELEASED
}

// EscrowDetails mirrors the on-chain escrow state as last reported by the
// escrow integration.
type EscrowDetails struct {
	IsFunded   bool        `bson:"isFunded" json:"isFunded"`
	Balance    float64     `bson:"balance" json:"balance"`
	FundedAt   time.Time   `bson:"fundedAt,omitempty" json:"fundedAt,omitempty"`
	Milestones []Milestone `bson:"milestones,omitempty" json:"milestones,omitempty"`
}

// Hackathon represents one hackathon run by an organization.
type Hackathon struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	OrganizationID primitive.ObjectID `bson:"organizationId" json:"organizationId"`
	Title          string             `bson:"title" json:"title"`
	Slug           string             `bson:"slug,omitempty" json:"slug,omitempty"`
	Description    string             `bson:"description,omitempty" json:"description,omitempty"`
	Status         string             `bson:"status" json:"status"`
	StartDate      time.Time          `bson:"startDate,omitempty" json:"startDate,omitempty"`
	EndDate        time.Time          `bson:"endDate,omitempty" json:"endDate,omitempty"`

	PrizeTiers []PrizeTier `bson:"prizeTiers,omitempty" json:"prizeTiers,omitempty"`

	EscrowAddress string         `bson:"escrowAddress,omitempty" json:"escrowAddress,omitempty"`
	ContractID    string         `bson:"contractId,omitempty" json:"contractId,omitempty"`
	EscrowDetails *EscrowDetails `bson:"escrowDetails,omitempty" json:"escrowDetails,omitempty"`

	WinnersAnnounced    bool      `bson:"winnersAnnounced" json:"winnersAnnounced"`
	WinnersAnnouncedAt  time.Time `bson:"winnersAnnouncedAt,omitempty" json:"winnersAnnouncedAt,omitempty"`
	WinnersAnnouncement string    `bson:"winnersAnnouncement,omitempty" json:"winnersAnnouncement,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// EscrowState reports where the hackathon sits in the escrow funding
// lifecycle: NO_ESCROW -> UNFUNDED -> FUNDED.
func (h *Hackathon) EscrowState() EscrowState {
	if h.EscrowAddress == "" && h.ContractID == "" {
		return EscrowStateNone
	}
	if h.EscrowDetails != nil && h.EscrowDetails.IsFunded {
		return EscrowStateFunded
	}
	return EscrowStateUnfunded
}

// HackathonStats is the in-memory reduction over a hackathon's participants.
type HackathonStats struct {
	TotalParticipants    int            `json:"totalParticipants"`
	IndividualCount      int            `json:"individualCount"`
	TeamCount            int            `json:"teamCount"`
	DistinctTeams        int            `json:"distinctTeams"`
	SubmissionCount      int            `json:"submissionCount"`
	SubmissionsByStatus  map[string]int `json:"submissionsByStatus"`
	RankedParticipants   int            `json:"rankedParticipants"`
	SubmissionRatio      float64        `json:"submissionRatio"`
}
