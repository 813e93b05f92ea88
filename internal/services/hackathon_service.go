package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/opengrants/hackhub-backend/internal/cache"
	"github.com/opengrants/hackhub-backend/internal/models"
	"github.com/opengrants/hackhub-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/exp/slog"
)

// Compile-time check to ensure HackathonServiceImpl implements HackathonService
var _ HackathonService = (*HackathonServiceImpl)(nil)

// HackathonServiceImpl handles hackathon read operations and statistics
type HackathonServiceImpl struct {
	hackathonRepo   repositories.HackathonRepository
	participantRepo repositories.ParticipantRepository
	responseCache   *cache.Cache
	cacheTTL        time.Duration
}

// NewHackathonService creates a new HackathonServiceImpl
func NewHackathonService(
	hackathonRepo repositories.HackathonRepository,
	participantRepo repositories.ParticipantRepository,
	responseCache *cache.Cache,
	cacheTTL time.Duration,
) *HackathonServiceImpl {
	return &HackathonServiceImpl{
		hackathonRepo:   hackathonRepo,
		participantRepo: participantRepo,
		responseCache:   responseCache,
		cacheTTL:        cacheTTL,
	}
}

// GetHackathon retrieves a hackathon scoped to an organization.
func (s *HackathonServiceImpl) GetHackathon(ctx context.Context, hackathonID, orgID primitive.ObjectID) (*models.Hackathon, error) {
	key := hackathonCacheKey(hackathonID, orgID)
	if s.responseCache != nil {
		if cached, ok := s.responseCache.Get(key); ok {
			return cached.(*models.Hackathon), nil
		}
	}

	hackathon, err := s.hackathonRepo.FindByIDAndOrg(ctx, hackathonID, orgID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("hackathon: %w", models.ErrNotFound)
		}
		slog.Error("Failed to load hackathon", "error", err, "hackathonId", hackathonID)
		return nil, fmt.Errorf("failed to load hackathon: %w", err)
	}

	if s.responseCache != nil {
		s.responseCache.Set(key, hackathon, s.cacheTTL)
	}
	return hackathon, nil
}

// ListParticipants returns all participants of a hackathon.
func (s *HackathonServiceImpl) ListParticipants(ctx context.Context, hackathonID, orgID primitive.ObjectID) ([]*models.Participant, error) {
	participants, err := s.participantRepo.FindByHackathon(ctx, hackathonID, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to list participants: %w", err)
	}
	return participants, nil
}

// GetHackathonStats computes participation statistics as an explicit query
// plus in-memory reduction: group by participation type and submission
// status, count ranked participants and distinct teams.
func (s *HackathonServiceImpl) GetHackathonStats(ctx context.Context, hackathonID, orgID primitive.ObjectID) (*models.HackathonStats, error) {
	participants, err := s.participantRepo.FindByHackathon(ctx, hackathonID, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to load participants for stats: %w", err)
	}

	stats := &models.HackathonStats{
		SubmissionsByStatus: make(map[string]int),
	}
	teams := make(map[primitive.ObjectID]bool)

	for _, participant := range participants {
		stats.TotalParticipants++
		if participant.ParticipationType == models.ParticipationTeam {
			stats.TeamCount++
			if !participant.TeamID.IsZero() {
				teams[participant.TeamID] = true
			}
		} else {
			stats.IndividualCount++
		}
		if participant.Submission != nil {
			stats.SubmissionCount++
			stats.SubmissionsByStatus[participant.Submission.Status]++
		}
		if participant.Rank != nil {
			stats.RankedParticipants++
		}
	}

	stats.DistinctTeams = len(teams)
	if stats.TotalParticipants > 0 {
		stats.SubmissionRatio = float64(stats.SubmissionCount) / float64(stats.TotalParticipants)
	}
	return stats, nil
}
