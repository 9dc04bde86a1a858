package model

import "time"

type TeamRole string

const (
	TeamRoleLeader TeamRole = "leader"
	TeamRoleMember TeamRole = "member"
)

type InviteStatus string

const (
	InvitePending  InviteStatus = "pending"
	InviteAccepted InviteStatus = "accepted"
	InviteRejected InviteStatus = "rejected"
)

type TeamMember struct {
	ID       string    `json:"id"`
	Username string    `json:"username"`
	Role     TeamRole  `json:"role"`
	JoinedAt time.Time `json:"joined_at"`
}

type Team struct {
	ID             string       `json:"id"`
	Name           string       `json:"name"`
	Description    string       `json:"description"`
	CreatedBy      string       `json:"created_by"`
	CreatedAt      time.Time    `json:"created_at"`
	Members        []TeamMember `json:"members"`
	SolvedProblems []string     `json:"solved_problems"`
	Avatar         string       `json:"avatar,omitempty"`
}

func (t *Team) HasMember(userID string) bool {
	for _, m := range t.Members {
		if m.ID == userID {
			return true
		}
	}
	return false
}

type TeamInvite struct {
	ID            string       `json:"id"`
	TeamID        string       `json:"team_id"`
	TeamName      string       `json:"team_name"`
	InvitedBy     string       `json:"invited_by"`
	InvitedUserID string       `json:"invited_user_id"`
	Status        InviteStatus `json:"status"`
	CreatedAt     time.Time    `json:"created_at"`
}
