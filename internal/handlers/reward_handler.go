package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/opengrants/hackhub-backend/internal/services"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RewardHandler handles rank, milestone and announcement HTTP requests
type RewardHandler struct {
	rewardService services.RewardService
}

// NewRewardHandler creates a new RewardHandler
func NewRewardHandler(rewardService services.RewardService) *RewardHandler {
	return &RewardHandler{
		rewardService: rewardService,
	}
}

// scopeIDs parses the orgId and hackathonId path params.
func scopeIDs(c *gin.Context) (hackathonID, orgID primitive.ObjectID, ok bool) {
	orgID, err := primitive.ObjectIDFromHex(c.Param("orgId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid organization ID format"})
		return primitive.NilObjectID, primitive.NilObjectID, false
	}
	hackathonID, err = primitive.ObjectIDFromHex(c.Param("hackathonId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid hackathon ID format"})
		return primitive.NilObjectID, primitive.NilObjectID, false
	}
	return hackathonID, orgID, true
}

// AssignRanks handles POST /organizations/:orgId/hackathons/:hackathonId/rewards/ranks
type AssignRanksRequest struct {
	Ranks []struct {
		ParticipantID string `json:"participantId" binding:"required"`
		Rank          int    `json:"rank" binding:"required"`
	} `json:"ranks" binding:"required"`
}

func (h *RewardHandler) AssignRanks(c *gin.Context) {
	hackathonID, orgID, ok := scopeIDs(c)
	if !ok {
		return
	}
	email, ok := requesterEmail(c)
	if !ok {
		return
	}

	var request AssignRanksRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ranks := make([]services.RankAssignment, 0, len(request.Ranks))
	for _, entry := range request.Ranks {
		participantID, err := primitive.ObjectIDFromHex(entry.ParticipantID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid participant ID format: " + entry.ParticipantID})
			return
		}
		ranks = append(ranks, services.RankAssignment{ParticipantID: participantID, Rank: entry.Rank})
	}

	updated, err := h.rewardService.AssignRanks(c.Request.Context(), hackathonID, orgID, email, ranks)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": updated})
}

// CreateWinnerMilestones handles POST /organizations/:orgId/hackathons/:hackathonId/rewards/milestones
type CreateMilestonesRequest struct {
	Winners []struct {
		ParticipantID string `json:"participantId" binding:"required"`
		Rank          int    `json:"rank" binding:"required"`
		WalletAddress string `json:"walletAddress" binding:"required"`
	} `json:"winners" binding:"required"`
}

func (h *RewardHandler) CreateWinnerMilestones(c *gin.Context) {
	hackathonID, orgID, ok := scopeIDs(c)
	if !ok {
		return
	}
	email, ok := requesterEmail(c)
	if !ok {
		return
	}

	var request CreateMilestonesRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	winners := make([]services.WinnerMilestone, 0, len(request.Winners))
	for _, entry := range request.Winners {
		participantID, err := primitive.ObjectIDFromHex(entry.ParticipantID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid participant ID format: " + entry.ParticipantID})
			return
		}
		winners = append(winners, services.WinnerMilestone{
			ParticipantID: participantID,
			Rank:          entry.Rank,
			WalletAddress: entry.WalletAddress,
		})
	}

	created, err := h.rewardService.CreateWinnerMilestones(c.Request.Context(), hackathonID, orgID, email, winners)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"milestonesCreated": created, "success": true})
}

// GetEscrow handles GET /organizations/:orgId/hackathons/:hackathonId/escrow
func (h *RewardHandler) GetEscrow(c *gin.Context) {
	hackathonID, orgID, ok := scopeIDs(c)
	if !ok {
		return
	}
	email, ok := requesterEmail(c)
	if !ok {
		return
	}

	snapshot, err := h.rewardService.GetEscrowSnapshot(c.Request.Context(), hackathonID, orgID, email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// AnnounceWinners handles POST /organizations/:orgId/hackathons/:hackathonId/winners/announce
type AnnounceWinnersRequest struct {
	Winners []struct {
		SubmissionID string `json:"submissionId" binding:"required"`
		Rank         int    `json:"rank" binding:"required"`
	} `json:"winners" binding:"required"`
	Announcement string `json:"announcement"`
}

func (h *RewardHandler) AnnounceWinners(c *gin.Context) {
	hackathonID, orgID, ok := scopeIDs(c)
	if !ok {
		return
	}
	email, ok := requesterEmail(c)
	if !ok {
		return
	}

	var request AnnounceWinnersRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	winners := make([]services.AnnouncedWinner, 0, len(request.Winners))
	for _, entry := range request.Winners {
		submissionID, err := primitive.ObjectIDFromHex(entry.SubmissionID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid submission ID format: " + entry.SubmissionID})
			return
		}
		winners = append(winners, services.AnnouncedWinner{SubmissionID: submissionID, Rank: entry.Rank})
	}

	announcedAt, err := h.rewardService.AnnounceWinners(c.Request.Context(), hackathonID, orgID, email, winners, request.Announcement)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"announcedAt": announcedAt})
}
