package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/opengrants/hackhub-backend/internal/cache"
	"github.com/opengrants/hackhub-backend/internal/models"
	"github.com/opengrants/hackhub-backend/internal/repositories"
	"github.com/opengrants/hackhub-backend/pkg/escrow"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/exp/slog"
)

// Compile-time check to ensure RewardServiceImpl implements RewardService
var _ RewardService = (*RewardServiceImpl)(nil)

// RewardServiceImpl handles the rank assignment, milestone validation and
// winner announcement workflow
type RewardServiceImpl struct {
	orgService      OrganizationService
	hackathonRepo   repositories.HackathonRepository
	participantRepo repositories.ParticipantRepository
	txRunner        repositories.TxRunner
	escrowClient    escrow.Client
	responseCache   *cache.Cache
	cacheTTL        time.Duration
}

// NewRewardService creates a new RewardServiceImpl
func NewRewardService(
	orgService OrganizationService,
	hackathonRepo repositories.HackathonRepository,
	participantRepo repositories.ParticipantRepository,
	txRunner repositories.TxRunner,
	escrowClient escrow.Client,
	responseCache *cache.Cache,
	cacheTTL time.Duration,
) *RewardServiceImpl {
	return &RewardServiceImpl{
		orgService:      orgService,
		hackathonRepo:   hackathonRepo,
		participantRepo: participantRepo,
		txRunner:        txRunner,
		escrowClient:    escrowClient,
		responseCache:   responseCache,
		cacheTTL:        cacheTTL,
	}
}

// authorize checks the requester's capability and resolves the hackathon
// within the organization scope.
func (s *RewardServiceImpl) authorize(ctx context.Context, hackathonID, orgID primitive.ObjectID, requesterEmail string) (*models.Hackathon, error) {
	canManage, _, err := s.orgService.CanManageHackathons(ctx, orgID, requesterEmail)
	if err != nil {
		return nil, err
	}
	if !canManage {
		return nil, models.ErrForbidden
	}

	hackathon, err := s.hackathonRepo.FindByIDAndOrg(ctx, hackathonID, orgID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("hackathon: %w", models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load hackathon: %w", err)
	}
	return hackathon, nil
}

// AssignRanks validates a batch of (participant, rank) pairs and applies it
// inside one transaction. A rank moving to a new participant is cleared from
// whoever held it before; on any failure the transaction aborts and no
// partial rank state is observable.
func (s *RewardServiceImpl) AssignRanks(ctx context.Context, hackathonID, orgID primitive.ObjectID, requesterEmail string, ranks []RankAssignment) (int, error) {
	hackathon, err := s.authorize(ctx, hackathonID, orgID, requesterEmail)
	if err != nil {
		return 0, err
	}

	if len(ranks) == 0 {
		return 0, models.NewValidationError("ranks must not be empty")
	}

	seenRanks := make(map[int]bool, len(ranks))
	seenIDs := make(map[primitive.ObjectID]bool, len(ranks))
	rankValues := make([]int, 0, len(ranks))
	batchIDs := make([]primitive.ObjectID, 0, len(ranks))
	for _, assignment := range ranks {
		if assignment.Rank < 1 {
			return 0, models.NewValidationError("rank must be a positive integer, got %d", assignment.Rank)
		}
		if seenRanks[assignment.Rank] {
			return 0, models.NewValidationError("duplicate rank value %d in batch", assignment.Rank)
		}
		if seenIDs[assignment.ParticipantID] {
			return 0, models.NewValidationError("duplicate participant id %s in batch", assignment.ParticipantID.Hex())
		}
		seenRanks[assignment.Rank] = true
		seenIDs[assignment.ParticipantID] = true
		rankValues = append(rankValues, assignment.Rank)
		batchIDs = append(batchIDs, assignment.ParticipantID)
	}

	err = s.txRunner.WithTransaction(ctx, func(txCtx context.Context) error {
		// The referential check reads through the transaction context so the
		// resolve and the writes see one snapshot.
		resolved, err := s.participantRepo.FindByIDs(txCtx, hackathonID, orgID, batchIDs)
		if err != nil {
			return fmt.Errorf("failed to resolve participants: %w", err)
		}
		if len(resolved) != len(ranks) {
			return models.NewValidationError("one or more participants do not belong to this hackathon (requested %d, found %d)", len(ranks), len(resolved))
		}

		// Clear the requested rank values from participants outside the
		// batch before applying, so the per-hackathon uniqueness invariant
		// holds at commit.
		cleared, err := s.participantRepo.ClearRanks(txCtx, hackathonID, rankValues, batchIDs)
		if err != nil {
			return fmt.Errorf("failed to clear conflicting ranks: %w", err)
		}
		if cleared > 0 {
			slog.Info("Cleared conflicting rank holders", "hackathonId", hackathonID, "cleared", cleared)
		}

		for _, assignment := range ranks {
			if err := s.participantRepo.SetRank(txCtx, assignment.ParticipantID, assignment.Rank); err != nil {
				return fmt.Errorf("failed to set rank %d on participant %s: %w", assignment.Rank, assignment.ParticipantID.Hex(), err)
			}
		}
		return nil
	})
	if err != nil {
		slog.Error("Rank assignment transaction aborted", "error", err, "hackathonId", hackathonID)
		return 0, err
	}

	slog.Info("Ranks assigned", "hackathonId", hackathon.ID, "updated", len(ranks))
	return len(ranks), nil
}

// CreateWinnerMilestones validates a winners batch against the escrow
// funding state. Validation is fail-fast and happens before any mutation;
// the actual on-chain milestone creation is deferred to the escrow
// integration, which owns escrowDetails.
func (s *RewardServiceImpl) CreateWinnerMilestones(ctx context.Context, hackathonID, orgID primitive.ObjectID, requesterEmail string, winners []WinnerMilestone) (int, error) {
	hackathon, err := s.authorize(ctx, hackathonID, orgID, requesterEmail)
	if err != nil {
		return 0, err
	}

	switch hackathon.EscrowState() {
	case models.EscrowStateNone:
		return 0, models.NewValidationError("create escrow first: hackathon has no escrow address or contract")
	case models.EscrowStateFunded:
		return 0, fmt.Errorf("escrow is already funded, milestones are locked: %w", models.ErrConflict)
	}

	if len(winners) == 0 {
		return 0, models.NewValidationError("winners must not be empty")
	}

	ids := make([]primitive.ObjectID, 0, len(winners))
	for _, winner := range winners {
		ids = append(ids, winner.ParticipantID)
	}

	resolved, err := s.participantRepo.FindByIDs(ctx, hackathonID, orgID, ids)
	if err != nil {
		return 0, fmt.Errorf("failed to resolve winners: %w", err)
	}
	if len(resolved) != len(winners) {
		return 0, models.NewValidationError("one or more winners do not belong to this hackathon (requested %d, found %d)", len(winners), len(resolved))
	}
	byID := make(map[primitive.ObjectID]*models.Participant, len(resolved))
	for _, participant := range resolved {
		byID[participant.ID] = participant
	}

	seenAddresses := make(map[string]bool, len(winners))
	for _, winner := range winners {
		if !escrow.IsValidAddress(winner.WalletAddress) {
			return 0, models.NewValidationError("invalid wallet address %q", winner.WalletAddress)
		}
		if seenAddresses[winner.WalletAddress] {
			return 0, models.NewValidationError("duplicate wallet address %q across winners", winner.WalletAddress)
		}
		seenAddresses[winner.WalletAddress] = true
	}

	if len(hackathon.PrizeTiers) == 0 {
		return 0, models.NewValidationError("hackathon has no prize tiers configured")
	}

	amounts := make(map[primitive.ObjectID]float64, len(winners))
	for _, winner := range winners {
		amount, ok := MapRankToPrizeAmount(winner.Rank, hackathon.PrizeTiers)
		if !ok {
			return 0, models.NewValidationError("no prize tier configured for rank %d", winner.Rank)
		}
		amounts[winner.ParticipantID] = amount
	}

	for _, winner := range winners {
		participant := byID[winner.ParticipantID]
		if participant.Rank == nil || *participant.Rank != winner.Rank {
			return 0, models.NewValidationError("rank %d for participant %s does not match the assigned rank", winner.Rank, winner.ParticipantID.Hex())
		}
		slog.Debug("Winner milestone validated", "participantId", winner.ParticipantID, "rank", winner.Rank, "amount", amounts[winner.ParticipantID])
	}

	slog.Info("Winner milestones validated", "hackathonId", hackathon.ID, "count", len(winners))
	return len(winners), nil
}

// AnnounceWinners verifies that every announced winner carries a submission
// and its persisted rank, then marks the hackathon announced in a single
// document update.
func (s *RewardServiceImpl) AnnounceWinners(ctx context.Context, hackathonID, orgID primitive.ObjectID, requesterEmail string, winners []AnnouncedWinner, announcement string) (time.Time, error) {
	_, err := s.authorize(ctx, hackathonID, orgID, requesterEmail)
	if err != nil {
		return time.Time{}, err
	}

	if len(winners) == 0 {
		return time.Time{}, models.NewValidationError("winners must not be empty")
	}

	ids := make([]primitive.ObjectID, 0, len(winners))
	for _, winner := range winners {
		ids = append(ids, winner.SubmissionID)
	}

	resolved, err := s.participantRepo.FindByIDs(ctx, hackathonID, orgID, ids)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to resolve winning submissions: %w", err)
	}
	if len(resolved) != len(winners) {
		return time.Time{}, models.NewValidationError("one or more submissions do not belong to this hackathon (requested %d, found %d)", len(winners), len(resolved))
	}
	byID := make(map[primitive.ObjectID]*models.Participant, len(resolved))
	for _, participant := range resolved {
		byID[participant.ID] = participant
	}

	for _, winner := range winners {
		participant := byID[winner.SubmissionID]
		if participant.Submission == nil {
			return time.Time{}, models.NewValidationError("participant %s has no submission", winner.SubmissionID.Hex())
		}
		if participant.Rank == nil || *participant.Rank != winner.Rank {
			return time.Time{}, models.NewValidationError("rank %d for submission %s does not match the assigned rank", winner.Rank, winner.SubmissionID.Hex())
		}
	}

	announcedAt := time.Now()
	if err := s.hackathonRepo.SetWinnersAnnounced(ctx, hackathonID, announcedAt, announcement); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return time.Time{}, fmt.Errorf("hackathon: %w", models.ErrNotFound)
		}
		slog.Error("Failed to persist winner announcement", "error", err, "hackathonId", hackathonID)
		return time.Time{}, fmt.Errorf("failed to announce winners: %w", err)
	}

	if s.responseCache != nil {
		s.responseCache.Invalidate(escrowCacheKey(hackathonID))
		s.responseCache.Invalidate(hackathonCacheKey(hackathonID, orgID))
	}

	slog.Info("Winners announced", "hackathonId", hackathonID, "winners", len(winners))
	return announcedAt, nil
}

// GetEscrowSnapshot returns the persisted escrow view, refreshed best-effort
// with the live account balance. A failing escrow lookup degrades to the
// stored snapshot instead of failing the read.
func (s *RewardServiceImpl) GetEscrowSnapshot(ctx context.Context, hackathonID, orgID primitive.ObjectID, requesterEmail string) (*EscrowSnapshot, error) {
	hackathon, err := s.authorize(ctx, hackathonID, orgID, requesterEmail)
	if err != nil {
		return nil, err
	}

	key := escrowCacheKey(hackathonID)
	if s.responseCache != nil {
		if cached, ok := s.responseCache.Get(key); ok {
			return cached.(*EscrowSnapshot), nil
		}
	}

	snapshot := &EscrowSnapshot{
		EscrowAddress: hackathon.EscrowAddress,
		ContractID:    hackathon.ContractID,
		State:         hackathon.EscrowState(),
		Details:       hackathon.EscrowDetails,
	}

	if s.escrowClient != nil && hackathon.EscrowAddress != "" {
		account, err := s.escrowClient.GetAccount(ctx, hackathon.EscrowAddress)
		if err != nil {
			slog.Warn("Escrow account lookup failed, serving stored snapshot", "error", err, "hackathonId", hackathonID)
		} else {
			snapshot.LiveBalance = &account.Balance
		}
	}

	if s.responseCache != nil {
		s.responseCache.Set(key, snapshot, s.cacheTTL)
	}
	return snapshot, nil
}

func escrowCacheKey(hackathonID primitive.ObjectID) string {
	return "escrow:" + hackathonID.Hex()
}

// Cache keys for hackathon reads carry the organization scope so a warm
// entry can never be served across tenants.
func hackathonCacheKey(hackathonID, orgID primitive.ObjectID) string {
	return "hackathon:" + orgID.Hex() + ":" + hackathonID.Hex()
}
