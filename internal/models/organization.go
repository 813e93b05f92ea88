package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Organization member roles
const (
	OrgRoleOwner  = "owner"
	OrgRoleAdmin  = "admin"
	OrgRoleMember = "member"
)

// OrgMember is one member entry of an organization.
type OrgMember struct {
	Email string `bson:"email" json:"email"`
	Role  string `bson:"role" json:"role"`
}

// Organization represents a tenant that runs hackathons.
type Organization struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name      string             `bson:"name" json:"name"`
	Slug      string             `bson:"slug,omitempty" json:"slug,omitempty"`
	Members   []OrgMember        `bson:"members" json:"members"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// MemberRole returns the role held by email, or "" when email is not a member.
func (o *Organization) MemberRole(email string) string {
	for _, m := range o.Members {
		if m.Email == email {
			return m.Role
		}
	}
	return ""
}
