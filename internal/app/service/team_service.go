package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"codearena/internal/common"
	"codearena/internal/domain/model"
	"codearena/internal/domain/repository"
)

// TeamService owns team membership and the invitation workflow.
type TeamService struct {
	teamRepo repository.TeamRepository
	auth     *AuthService
}

func NewTeamService(teamRepo repository.TeamRepository, auth *AuthService) *TeamService {
	return &TeamService{teamRepo: teamRepo, auth: auth}
}

func (s *TeamService) Teams(ctx context.Context) ([]model.Team, error) {
	return s.teamRepo.List(ctx)
}

// UserTeams returns the teams the current principal belongs to.
func (s *TeamService) UserTeams(ctx context.Context) ([]model.Team, error) {
	user := s.auth.CurrentUser()
	if user == nil {
		return nil, nil
	}
	all, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	var mine []model.Team
	for _, t := range all {
		if t.HasMember(user.ID) {
			mine = append(mine, t)
		}
	}
	return mine, nil
}

func (s *TeamService) Invites(ctx context.Context) ([]model.TeamInvite, error) {
	user := s.auth.CurrentUser()
	if user == nil {
		return nil, nil
	}
	return s.teamRepo.ListInvitesForUser(ctx, user.ID)
}

func (s *TeamService) CreateTeam(ctx context.Context, name, description string) (*model.Team, error) {
	user := s.auth.CurrentUser()
	if user == nil {
		return nil, fmt.Errorf("must be logged in to create a team: %w", common.ErrUnauthorized)
	}
	if name == "" {
		return nil, fmt.Errorf("team name is required: %w", common.ErrBadRequest)
	}

	team := &model.Team{
		Name:        name,
		Description: description,
		CreatedBy:   user.Username,
		CreatedAt:   time.Now().UTC(),
		Members: []model.TeamMember{
			{
				ID:       user.ID,
				Username: user.Username,
				Role:     model.TeamRoleLeader,
				JoinedAt: time.Now().UTC(),
			},
		},
		SolvedProblems: []string{},
	}
	if err := s.teamRepo.Create(ctx, team); err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}
	return team, nil
}

// JoinTeam adds the caller as a member. Membership is a set keyed by user
// ID, so joining a team the caller already belongs to is a no-op.
func (s *TeamService) JoinTeam(ctx context.Context, teamID string) error {
	user := s.auth.CurrentUser()
	if user == nil {
		return fmt.Errorf("must be logged in to join a team: %w", common.ErrUnauthorized)
	}
	member := model.TeamMember{
		ID:       user.ID,
		Username: user.Username,
		Role:     model.TeamRoleMember,
		JoinedAt: time.Now().UTC(),
	}
	return s.teamRepo.AddMember(ctx, teamID, member)
}

// LeaveTeam removes every membership entry matching the caller.
func (s *TeamService) LeaveTeam(ctx context.Context, teamID string) error {
	user := s.auth.CurrentUser()
	if user == nil {
		return fmt.Errorf("must be logged in to leave a team: %w", common.ErrUnauthorized)
	}
	return s.teamRepo.RemoveMember(ctx, teamID, user.ID)
}

func (s *TeamService) InviteMember(ctx context.Context, teamID, userID string) (*model.TeamInvite, error) {
	user := s.auth.CurrentUser()
	if user == nil {
		return nil, fmt.Errorf("must be logged in to invite members: %w", common.ErrUnauthorized)
	}
	team, err := s.teamRepo.FindByID(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("team not found: %w", err)
	}

	invite := &model.TeamInvite{
		ID:            uuid.NewString(),
		TeamID:        team.ID,
		TeamName:      team.Name,
		InvitedBy:     user.Username,
		InvitedUserID: userID,
		Status:        model.InvitePending,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.teamRepo.CreateInvite(ctx, invite); err != nil {
		return nil, fmt.Errorf("failed to create invite: %w", err)
	}
	return invite, nil
}

// RespondToInvite joins the caller to the invite's team when accepted.
// The invite is removed whether it was accepted or rejected.
func (s *TeamService) RespondToInvite(ctx context.Context, inviteID string, accept bool) error {
	invite, err := s.teamRepo.FindInvite(ctx, inviteID)
	if err != nil {
		return fmt.Errorf("invite not found: %w", err)
	}

	if accept {
		if err := s.JoinTeam(ctx, invite.TeamID); err != nil {
			if !errors.Is(err, common.ErrNotFound) {
				return err
			}
			// The team disappeared after the invite was sent; the invite is
			// stale either way.
			logrus.Warnf("invite %s references missing team %s", invite.ID, invite.TeamID)
		}
	}
	return s.teamRepo.DeleteInvite(ctx, inviteID)
}
