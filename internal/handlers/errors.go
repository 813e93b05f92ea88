package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/opengrants/hackhub-backend/internal/models"
	"go.mongodb.org/mongo-driver/mongo"
)

// respondError maps service errors onto HTTP status codes.
func respondError(c *gin.Context, err error) {
	var validationErr *models.ValidationError
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Msg})
	case errors.Is(err, models.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
	case errors.Is(err, models.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "You do not have permission to manage this organization's hackathons"})
	case errors.Is(err, models.ErrNotFound), errors.Is(err, mongo.ErrNoDocuments):
		c.JSON(http.StatusNotFound, gin.H{"error": "Resource not found"})
	case errors.Is(err, models.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error: " + err.Error()})
	}
}

// requesterEmail returns the identity resolved by the auth middleware.
func requesterEmail(c *gin.Context) (string, bool) {
	email := c.GetString("userEmail")
	if email == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No authenticated identity"})
		return "", false
	}
	return email, true
}
