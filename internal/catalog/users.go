package catalog

import (
	"time"

	"codearena/internal/domain/model"
)

// DefaultUsers is the demo account registry the session store starts from.
func DefaultUsers() []*model.User {
	return []*model.User{
		{
			ID:             "1",
			Username:       "admin",
			Email:          "admin@codearena.com",
			Role:           model.RoleAdmin,
			SolvedProblems: []string{"1", "2", "3", "5"},
			Badges:         []string{"first-solve", "streak-7", "problem-creator"},
			CreatedAt:      time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:             "2",
			Username:       "owner",
			Email:          "owner@codearena.com",
			Role:           model.RoleOwner,
			SolvedProblems: []string{"1", "2", "3", "4", "5", "10", "15"},
			Badges:         []string{"first-solve", "streak-30", "problem-creator", "contest-winner"},
			CreatedAt:      time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:             "3",
			Username:       "user",
			Email:          "user@example.com",
			Role:           model.RoleUser,
			SolvedProblems: []string{"1", "2"},
			Badges:         []string{"first-solve"},
			CreatedAt:      time.Date(2023, time.January, 15, 0, 0, 0, 0, time.UTC),
		},
	}
}

// DefaultTeams seeds the team registry with the demo teams.
func DefaultTeams() []*model.Team {
	return []*model.Team{
		{
			ID:          "1",
			Name:        "Contest Squad",
			Description: "A team focused on algorithm contest training",
			CreatedBy:   "admin",
			CreatedAt:   time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
			Members: []model.TeamMember{
				{
					ID:       "1",
					Username: "admin",
					Role:     model.TeamRoleLeader,
					JoinedAt: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
				},
			},
			SolvedProblems: []string{"1", "2", "3", "4", "5"},
		},
		{
			ID:          "2",
			Name:        "Study Group",
			Description: "Learning to program together",
			CreatedBy:   "owner",
			CreatedAt:   time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC),
			Members: []model.TeamMember{
				{
					ID:       "2",
					Username: "owner",
					Role:     model.TeamRoleLeader,
					JoinedAt: time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC),
				},
			},
			SolvedProblems: []string{"1", "2"},
		},
	}
}
