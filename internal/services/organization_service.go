package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/opengrants/hackhub-backend/internal/models"
	"github.com/opengrants/hackhub-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Compile-time check to ensure OrganizationServiceImpl implements OrganizationService
var _ OrganizationService = (*OrganizationServiceImpl)(nil)

// OrganizationServiceImpl handles organization capability checks
type OrganizationServiceImpl struct {
	orgRepo repositories.OrganizationRepository
}

// NewOrganizationService creates a new OrganizationServiceImpl
func NewOrganizationService(orgRepo repositories.OrganizationRepository) *OrganizationServiceImpl {
	return &OrganizationServiceImpl{orgRepo: orgRepo}
}

// CanManageHackathons reports whether email holds an owner or admin role on
// the organization.
func (s *OrganizationServiceImpl) CanManageHackathons(ctx context.Context, orgID primitive.ObjectID, email string) (bool, *models.Organization, error) {
	org, err := s.orgRepo.FindByID(ctx, orgID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil, fmt.Errorf("organization: %w", models.ErrNotFound)
		}
		return false, nil, fmt.Errorf("failed to load organization: %w", err)
	}

	switch org.MemberRole(email) {
	case models.OrgRoleOwner, models.OrgRoleAdmin:
		return true, org, nil
	default:
		return false, org, nil
	}
}
