package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/opengrants/hackhub-backend/internal/services"
)

// HackathonHandler handles hackathon read HTTP requests
type HackathonHandler struct {
	hackathonService services.HackathonService
}

// NewHackathonHandler creates a new HackathonHandler
func NewHackathonHandler(hackathonService services.HackathonService) *HackathonHandler {
	return &HackathonHandler{
		hackathonService: hackathonService,
	}
}

// GetHackathon handles GET /organizations/:orgId/hackathons/:hackathonId
func (h *HackathonHandler) GetHackathon(c *gin.Context) {
	hackathonID, orgID, ok := scopeIDs(c)
	if !ok {
		return
	}

	hackathon, err := h.hackathonService.GetHackathon(c.Request.Context(), hackathonID, orgID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, hackathon)
}

// ListParticipants handles GET /organizations/:orgId/hackathons/:hackathonId/participants
func (h *HackathonHandler) ListParticipants(c *gin.Context) {
	hackathonID, orgID, ok := scopeIDs(c)
	if !ok {
		return
	}

	participants, err := h.hackathonService.ListParticipants(c.Request.Context(), hackathonID, orgID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, participants)
}

// GetStats handles GET /organizations/:orgId/hackathons/:hackathonId/stats
func (h *HackathonHandler) GetStats(c *gin.Context) {
	hackathonID, orgID, ok := scopeIDs(c)
	if !ok {
		return
	}

	stats, err := h.hackathonService.GetHackathonStats(c.Request.Context(), hackathonID, orgID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
