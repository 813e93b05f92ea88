package services

import (
	"context"
	"time"

	"github.com/opengrants/hackhub-backend/internal/models"
	"github.com/opengrants/hackhub-backend/pkg/escrow"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// In-memory fakes backing the service tests.

type fakeOrgService struct {
	canManage bool
	org       *models.Organization
	err       error
}

func (f *fakeOrgService) CanManageHackathons(ctx context.Context, orgID primitive.ObjectID, email string) (bool, *models.Organization, error) {
	return f.canManage, f.org, f.err
}

type fakeHackathonRepo struct {
	hackathons  map[primitive.ObjectID]*models.Hackathon
	announceErr error
}

func newFakeHackathonRepo() *fakeHackathonRepo {
	return &fakeHackathonRepo{hackathons: make(map[primitive.ObjectID]*models.Hackathon)}
}

func (f *fakeHackathonRepo) Create(ctx context.Context, hackathon *models.Hackathon) error {
	if hackathon.ID.IsZero() {
		hackathon.ID = primitive.NewObjectID()
	}
	f.hackathons[hackathon.ID] = hackathon
	return nil
}

func (f *fakeHackathonRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Hackathon, error) {
	hackathon, ok := f.hackathons[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return hackathon, nil
}

func (f *fakeHackathonRepo) FindByIDAndOrg(ctx context.Context, id, orgID primitive.ObjectID) (*models.Hackathon, error) {
	hackathon, ok := f.hackathons[id]
	if !ok || hackathon.OrganizationID != orgID {
		return nil, mongo.ErrNoDocuments
	}
	return hackathon, nil
}

func (f *fakeHackathonRepo) Update(ctx context.Context, hackathon *models.Hackathon) error {
	if _, ok := f.hackathons[hackathon.ID]; !ok {
		return mongo.ErrNoDocuments
	}
	f.hackathons[hackathon.ID] = hackathon
	return nil
}

func (f *fakeHackathonRepo) SetWinnersAnnounced(ctx context.Context, id primitive.ObjectID, announcedAt time.Time, announcement string) error {
	if f.announceErr != nil {
		return f.announceErr
	}
	hackathon, ok := f.hackathons[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	hackathon.WinnersAnnounced = true
	hackathon.WinnersAnnouncedAt = announcedAt
	hackathon.WinnersAnnouncement = announcement
	return nil
}

type fakeParticipantRepo struct {
	participants map[primitive.ObjectID]*models.Participant
	setRankErrOn map[primitive.ObjectID]error
}

func newFakeParticipantRepo() *fakeParticipantRepo {
	return &fakeParticipantRepo{
		participants: make(map[primitive.ObjectID]*models.Participant),
		setRankErrOn: make(map[primitive.ObjectID]error),
	}
}

func (f *fakeParticipantRepo) Create(ctx context.Context, participant *models.Participant) error {
	if participant.ID.IsZero() {
		participant.ID = primitive.NewObjectID()
	}
	f.participants[participant.ID] = participant
	return nil
}

func (f *fakeParticipantRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Participant, error) {
	participant, ok := f.participants[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return participant, nil
}

func (f *fakeParticipantRepo) FindByIDs(ctx context.Context, hackathonID, orgID primitive.ObjectID, ids []primitive.ObjectID) ([]*models.Participant, error) {
	var result []*models.Participant
	for _, id := range ids {
		participant, ok := f.participants[id]
		if !ok {
			continue
		}
		if participant.HackathonID != hackathonID || participant.OrganizationID != orgID {
			continue
		}
		result = append(result, participant)
	}
	return result, nil
}

func (f *fakeParticipantRepo) FindByHackathon(ctx context.Context, hackathonID, orgID primitive.ObjectID) ([]*models.Participant, error) {
	var result []*models.Participant
	for _, participant := range f.participants {
		if participant.HackathonID == hackathonID && participant.OrganizationID == orgID {
			result = append(result, participant)
		}
	}
	return result, nil
}

func (f *fakeParticipantRepo) ClearRanks(ctx context.Context, hackathonID primitive.ObjectID, ranks []int, excludeIDs []primitive.ObjectID) (int64, error) {
	rankSet := make(map[int]bool, len(ranks))
	for _, r := range ranks {
		rankSet[r] = true
	}
	excluded := make(map[primitive.ObjectID]bool, len(excludeIDs))
	for _, id := range excludeIDs {
		excluded[id] = true
	}

	var cleared int64
	for _, participant := range f.participants {
		if participant.HackathonID != hackathonID || excluded[participant.ID] {
			continue
		}
		if participant.Rank != nil && rankSet[*participant.Rank] {
			participant.Rank = nil
			cleared++
		}
	}
	return cleared, nil
}

func (f *fakeParticipantRepo) SetRank(ctx context.Context, id primitive.ObjectID, rank int) error {
	if err := f.setRankErrOn[id]; err != nil {
		return err
	}
	participant, ok := f.participants[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	r := rank
	participant.Rank = &r
	return nil
}

func (f *fakeParticipantRepo) snapshotRanks() map[primitive.ObjectID]*int {
	snapshot := make(map[primitive.ObjectID]*int, len(f.participants))
	for id, participant := range f.participants {
		if participant.Rank != nil {
			r := *participant.Rank
			snapshot[id] = &r
		} else {
			snapshot[id] = nil
		}
	}
	return snapshot
}

func (f *fakeParticipantRepo) restoreRanks(snapshot map[primitive.ObjectID]*int) {
	for id, rank := range snapshot {
		if participant, ok := f.participants[id]; ok {
			participant.Rank = rank
		}
	}
}

// fakeTxRunner simulates transactional semantics by restoring the rank state
// captured before the callback whenever the callback fails.
type fakeTxRunner struct {
	repo  *fakeParticipantRepo
	calls int
}

func (f *fakeTxRunner) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	snapshot := f.repo.snapshotRanks()
	if err := fn(ctx); err != nil {
		f.repo.restoreRanks(snapshot)
		return err
	}
	return nil
}

type fakeEscrowClient struct {
	snapshot *escrow.AccountSnapshot
	err      error
	calls    int
}

func (f *fakeEscrowClient) GetAccount(ctx context.Context, address string) (*escrow.AccountSnapshot, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.snapshot, nil
}

type fakeUserRepo struct {
	users     map[string]*models.User
	updateErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	f.users[user.Email] = user
	return nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	user, ok := f.users[email]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return user, nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	for _, user := range f.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeUserRepo) Update(ctx context.Context, user *models.User) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.users[user.Email] = user
	return nil
}

func intPtr(v int) *int {
	return &v
}
