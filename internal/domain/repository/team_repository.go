package repository

import (
	"context"
	"strconv"
	"sync"

	"codearena/internal/common"
	"codearena/internal/domain/model"
)

type TeamRepository interface {
	List(ctx context.Context) ([]model.Team, error)
	FindByID(ctx context.Context, id string) (*model.Team, error)
	// Create assigns the next sequential team ID before storing.
	Create(ctx context.Context, team *model.Team) error
	// AddMember enforces set semantics keyed by user ID: adding an existing
	// member is a no-op.
	AddMember(ctx context.Context, teamID string, member model.TeamMember) error
	RemoveMember(ctx context.Context, teamID, userID string) error
	CreateInvite(ctx context.Context, invite *model.TeamInvite) error
	FindInvite(ctx context.Context, id string) (*model.TeamInvite, error)
	DeleteInvite(ctx context.Context, id string) error
	ListInvitesForUser(ctx context.Context, userID string) ([]model.TeamInvite, error)
}

type memoryTeamRepository struct {
	mu      sync.RWMutex
	teams   []*model.Team
	invites []*model.TeamInvite
	nextID  int
}

func NewMemoryTeamRepository(seed []*model.Team) TeamRepository {
	r := &memoryTeamRepository{nextID: 1}
	for _, t := range seed {
		r.teams = append(r.teams, cloneTeam(t))
		if n, err := strconv.Atoi(t.ID); err == nil && n >= r.nextID {
			r.nextID = n + 1
		}
	}
	return r
}

func cloneTeam(t *model.Team) *model.Team {
	out := *t
	out.Members = append([]model.TeamMember(nil), t.Members...)
	out.SolvedProblems = append([]string(nil), t.SolvedProblems...)
	return &out
}

func (r *memoryTeamRepository) find(id string) *model.Team {
	for _, t := range r.teams {
		if t.ID == id {
			return t
		}
	}
	return nil
}

func (r *memoryTeamRepository) List(_ context.Context) ([]model.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Team, 0, len(r.teams))
	for _, t := range r.teams {
		out = append(out, *cloneTeam(t))
	}
	return out, nil
}

func (r *memoryTeamRepository) FindByID(_ context.Context, id string) (*model.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t := r.find(id)
	if t == nil {
		return nil, common.ErrNotFound
	}
	return cloneTeam(t), nil
}

func (r *memoryTeamRepository) Create(_ context.Context, team *model.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	team.ID = strconv.Itoa(r.nextID)
	r.nextID++
	r.teams = append(r.teams, cloneTeam(team))
	return nil
}

func (r *memoryTeamRepository) AddMember(_ context.Context, teamID string, member model.TeamMember) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t := r.find(teamID)
	if t == nil {
		return common.ErrNotFound
	}
	if t.HasMember(member.ID) {
		return nil
	}
	t.Members = append(t.Members, member)
	return nil
}

func (r *memoryTeamRepository) RemoveMember(_ context.Context, teamID, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t := r.find(teamID)
	if t == nil {
		return common.ErrNotFound
	}
	kept := t.Members[:0]
	for _, m := range t.Members {
		if m.ID != userID {
			kept = append(kept, m)
		}
	}
	t.Members = kept
	return nil
}

func (r *memoryTeamRepository) CreateInvite(_ context.Context, invite *model.TeamInvite) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *invite
	r.invites = append(r.invites, &stored)
	return nil
}

func (r *memoryTeamRepository) FindInvite(_ context.Context, id string) (*model.TeamInvite, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, inv := range r.invites {
		if inv.ID == id {
			out := *inv
			return &out, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *memoryTeamRepository) DeleteInvite(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, inv := range r.invites {
		if inv.ID == id {
			r.invites = append(r.invites[:i], r.invites[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *memoryTeamRepository) ListInvitesForUser(_ context.Context, userID string) ([]model.TeamInvite, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []model.TeamInvite
	for _, inv := range r.invites {
		if inv.InvitedUserID == userID {
			out = append(out, *inv)
		}
	}
	return out, nil
}
