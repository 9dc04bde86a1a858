package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"codearena/internal/common"
	"codearena/internal/domain/model"
)

func TestCreateTeamRequiresAuth(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.teams.CreateTeam(context.Background(), "Solo Squad", "no members yet")
	assert.ErrorIs(t, err, common.ErrUnauthorized)
}

func TestCreateTeamMakesCreatorLeader(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.loginAs(t, "user")

	team, err := env.teams.CreateTeam(ctx, "Night Shift", "late night grinding")
	assert.NoError(t, err)
	assert.Equal(t, "3", team.ID) // two seeded teams, next sequential ID
	assert.Equal(t, "user", team.CreatedBy)
	assert.Len(t, team.Members, 1)
	assert.Equal(t, model.TeamRoleLeader, team.Members[0].Role)
	assert.Empty(t, team.SolvedProblems)

	mine, err := env.teams.UserTeams(ctx)
	assert.NoError(t, err)
	assert.Len(t, mine, 1)
}

func TestJoinTeamTwiceKeepsSingleMembership(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.loginAs(t, "user")

	assert.NoError(t, env.teams.JoinTeam(ctx, "1"))
	assert.NoError(t, env.teams.JoinTeam(ctx, "1"))

	team, err := env.teamRepo.FindByID(ctx, "1")
	assert.NoError(t, err)
	entries := 0
	for _, m := range team.Members {
		if m.ID == "3" { // demo account "user"
			entries++
		}
	}
	assert.Equal(t, 1, entries)
}

func TestJoinTeamUnknownTeam(t *testing.T) {
	env := newTestEnv(t)
	env.loginAs(t, "user")

	err := env.teams.JoinTeam(context.Background(), "404")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestLeaveTeam(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.loginAs(t, "user")

	assert.NoError(t, env.teams.JoinTeam(ctx, "2"))
	assert.NoError(t, env.teams.LeaveTeam(ctx, "2"))

	team, err := env.teamRepo.FindByID(ctx, "2")
	assert.NoError(t, err)
	assert.False(t, team.HasMember("3"))
}

func TestInviteMemberUnknownTeam(t *testing.T) {
	env := newTestEnv(t)
	env.loginAs(t, "admin")

	_, err := env.teams.InviteMember(context.Background(), "404", "3")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestRespondToInviteAccept(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.loginAs(t, "admin")
	invite, err := env.teams.InviteMember(ctx, "2", "3")
	assert.NoError(t, err)
	assert.Equal(t, model.InvitePending, invite.Status)
	assert.Equal(t, "Study Group", invite.TeamName)

	// The invited user responds.
	env.loginAs(t, "user")
	assert.NoError(t, env.teams.RespondToInvite(ctx, invite.ID, true))

	team, err := env.teamRepo.FindByID(ctx, "2")
	assert.NoError(t, err)
	assert.True(t, team.HasMember("3"))

	// The invite is removed once responded to.
	_, err = env.teamRepo.FindInvite(ctx, invite.ID)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestRespondToInviteReject(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.loginAs(t, "admin")
	invite, err := env.teams.InviteMember(ctx, "1", "3")
	assert.NoError(t, err)

	env.loginAs(t, "user")
	assert.NoError(t, env.teams.RespondToInvite(ctx, invite.ID, false))

	team, err := env.teamRepo.FindByID(ctx, "1")
	assert.NoError(t, err)
	assert.False(t, team.HasMember("3"))

	_, err = env.teamRepo.FindInvite(ctx, invite.ID)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestRespondToInviteNotFound(t *testing.T) {
	env := newTestEnv(t)
	env.loginAs(t, "user")

	err := env.teams.RespondToInvite(context.Background(), "no-such-invite", true)
	assert.ErrorIs(t, err, common.ErrNotFound)
}
