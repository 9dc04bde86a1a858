package repository

import (
	"context"
	"fmt"
	"sync"

	"codearena/internal/common"
	"codearena/internal/domain/model"
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id string) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	// RecordSolve appends problemID to the user's solved set; already-solved
	// problems are a no-op.
	RecordSolve(ctx context.Context, userID, problemID string) error
	AwardBadge(ctx context.Context, userID, badgeID string) error
	Count(ctx context.Context) (int, error)
}

type memoryUserRepository struct {
	mu    sync.RWMutex
	users []*model.User
}

// NewMemoryUserRepository seeds the registry; the repository is the sole
// owner of the user records, callers always receive copies.
func NewMemoryUserRepository(seed []*model.User) UserRepository {
	users := make([]*model.User, 0, len(seed))
	for _, u := range seed {
		users = append(users, cloneUser(u))
	}
	return &memoryUserRepository{users: users}
}

func cloneUser(u *model.User) *model.User {
	out := *u
	out.SolvedProblems = append([]string(nil), u.SolvedProblems...)
	out.Badges = append([]string(nil), u.Badges...)
	return &out
}

func (r *memoryUserRepository) Create(_ context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Username == user.Username || existing.Email == user.Email {
			return fmt.Errorf("user with given username or email already exists: %w", common.ErrConflict)
		}
	}
	r.users = append(r.users, cloneUser(user))
	return nil
}

func (r *memoryUserRepository) FindByID(_ context.Context, id string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *memoryUserRepository) FindByUsername(_ context.Context, username string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Username == username {
			return cloneUser(u), nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *memoryUserRepository) FindByEmail(_ context.Context, email string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *memoryUserRepository) RecordSolve(_ context.Context, userID, problemID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ID != userID {
			continue
		}
		if !u.HasSolved(problemID) {
			u.SolvedProblems = append(u.SolvedProblems, problemID)
		}
		return nil
	}
	return common.ErrNotFound
}

func (r *memoryUserRepository) AwardBadge(_ context.Context, userID, badgeID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ID != userID {
			continue
		}
		if !u.HasBadge(badgeID) {
			u.Badges = append(u.Badges, badgeID)
		}
		return nil
	}
	return common.ErrNotFound
}

func (r *memoryUserRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users), nil
}
