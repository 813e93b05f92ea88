package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Participation types
const (
	ParticipationIndividual = "individual"
	ParticipationTeam       = "team"
)

// Submission statuses
const (
	SubmissionStatusSubmitted    = "SUBMITTED"
	SubmissionStatusShortlisted  = "SHORTLISTED"
	SubmissionStatusDisqualified = "DISQUALIFIED"
)

// TeamMember is one member of a team registration.
type TeamMember struct {
	UserID primitive.ObjectID `bson:"userId,omitempty" json:"userId,omitempty"`
	Name   string             `bson:"name" json:"name"`
	Role   string             `bson:"role,omitempty" json:"role,omitempty"`
}

// Submission holds a participant's project entry and its review state.
type Submission struct {
	ProjectName  string             `bson:"projectName" json:"projectName"`
	ProjectURL   string             `bson:"projectUrl,omitempty" json:"projectUrl,omitempty"`
	RepoURL      string             `bson:"repoUrl,omitempty" json:"repoUrl,omitempty"`
	Description  string             `bson:"description,omitempty" json:"description,omitempty"`
	Status       string             `bson:"status" json:"status"`
	VoteCount    int                `bson:"voteCount" json:"voteCount"`
	CommentCount int                `bson:"commentCount" json:"commentCount"`
	SubmittedAt  time.Time          `bson:"submittedAt" json:"submittedAt"`
	ReviewedBy   primitive.ObjectID `bson:"reviewedBy,omitempty" json:"reviewedBy,omitempty"`
	ReviewedAt   time.Time          `bson:"reviewedAt,omitempty" json:"reviewedAt,omitempty"`
}

// Participant is one user's (or team's) registration within a hackathon.
// Rank is a pointer so an unranked participant carries no rank field at all;
// rank values are unique per hackathon among participants that have one.
type Participant struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	HackathonID       primitive.ObjectID `bson:"hackathonId" json:"hackathonId"`
	OrganizationID    primitive.ObjectID `bson:"organizationId" json:"organizationId"`
	UserID            primitive.ObjectID `bson:"userId" json:"userId"`
	ParticipationType string             `bson:"participationType" json:"participationType"`
	TeamID            primitive.ObjectID `bson:"teamId,omitempty" json:"teamId,omitempty"`
	TeamName          string             `bson:"teamName,omitempty" json:"teamName,omitempty"`
	TeamMembers       []TeamMember       `bson:"teamMembers,omitempty" json:"teamMembers,omitempty"`
	Submission        *Submission        `bson:"submission,omitempty" json:"submission,omitempty"`
	Rank              *int               `bson:"rank,omitempty" json:"rank,omitempty"`
	CreatedAt         time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time          `bson:"updatedAt" json:"updatedAt"`
}
