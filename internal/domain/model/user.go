package model

import (
	"time"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
	RoleOwner = "owner"
)

type User struct {
	ID             string    `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	Role           string    `json:"role"`
	SolvedProblems []string  `json:"solved_problems"`
	Badges         []string  `json:"badges"`
	CreatedAt      time.Time `json:"created_at"`
}

func (u *User) HasSolved(problemID string) bool {
	for _, id := range u.SolvedProblems {
		if id == problemID {
			return true
		}
	}
	return false
}

func (u *User) HasBadge(badgeID string) bool {
	for _, id := range u.Badges {
		if id == badgeID {
			return true
		}
	}
	return false
}
