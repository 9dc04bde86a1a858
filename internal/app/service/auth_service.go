package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"codearena/internal/common"
	"codearena/internal/domain/model"
	"codearena/internal/domain/repository"
	"codearena/internal/platform/storage"
)

const sessionRecordKey = "session"

// AuthService owns the current principal. States: uninitialized until
// Initialize runs, then authenticated or anonymous. Consumers must not read
// the principal before IsInitialized reports true.
type AuthService struct {
	userRepo repository.UserRepository
	sessions storage.Store

	mu          sync.RWMutex
	initialized bool
	current     *model.User
}

func NewAuthService(userRepo repository.UserRepository, sessions storage.Store) *AuthService {
	return &AuthService{userRepo: userRepo, sessions: sessions}
}

// Initialize restores a persisted session, once. A malformed record is
// discarded and the store starts anonymous; corruption is never fatal.
func (s *AuthService) Initialize(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.initialized {
		return
	}
	s.initialized = true

	data, err := s.sessions.Get(ctx, sessionRecordKey)
	if err != nil {
		if !errors.Is(err, common.ErrNotFound) {
			logrus.Warnf("failed to read session record: %v", err)
		}
		return
	}

	var user model.User
	if err := json.Unmarshal(data, &user); err != nil || user.ID == "" {
		logrus.Warnf("discarding malformed session record: %v", fmt.Errorf("%v: %w", err, common.ErrCorruptRecord))
		if err := s.sessions.Delete(ctx, sessionRecordKey); err != nil {
			logrus.Warnf("failed to delete malformed session record: %v", err)
		}
		return
	}
	s.current = &user
}

func (s *AuthService) IsInitialized() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.initialized
}

func (s *AuthService) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current != nil
}

// CurrentUser returns a copy of the authenticated principal, or nil.
func (s *AuthService) CurrentUser() *model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	out := *s.current
	out.SolvedProblems = append([]string(nil), s.current.SolvedProblems...)
	out.Badges = append([]string(nil), s.current.Badges...)
	return &out
}

// Login authenticates by username lookup. The demo registry stores no
// credentials, so the password is accepted without verification.
func (s *AuthService) Login(ctx context.Context, username, password string) (*model.User, error) {
	if username == "" || password == "" {
		return nil, common.ErrBadRequest
	}

	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, fmt.Errorf("invalid username or password: %w", common.ErrUnauthorized)
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	s.setCurrent(ctx, user)
	return s.CurrentUser(), nil
}

// Register creates a new account with role user and empty progress sets.
// Username and email must be unique (case-sensitive exact match).
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*model.User, error) {
	if username == "" || email == "" || password == "" {
		return nil, common.ErrBadRequest
	}

	user := &model.User{
		ID:             uuid.NewString(),
		Username:       username,
		Email:          email,
		Role:           model.RoleUser,
		SolvedProblems: []string{},
		Badges:         []string{},
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.setCurrent(ctx, user)
	return s.CurrentUser(), nil
}

// Logout clears the principal and the durable record. Idempotent.
func (s *AuthService) Logout(ctx context.Context) {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()
	if err := s.sessions.Delete(ctx, sessionRecordKey); err != nil {
		logrus.Warnf("failed to delete session record: %v", err)
	}
}

// setCurrent swaps the principal and synchronously mirrors it to the durable
// session record.
func (s *AuthService) setCurrent(ctx context.Context, user *model.User) {
	s.mu.Lock()
	s.current = user
	s.mu.Unlock()
	s.persistSession(ctx, user)
}

func (s *AuthService) persistSession(ctx context.Context, user *model.User) {
	data, err := json.Marshal(user)
	if err != nil {
		logrus.Warnf("failed to encode session record: %v", err)
		return
	}
	if err := s.sessions.Set(ctx, sessionRecordKey, data); err != nil {
		logrus.Warnf("failed to write session record: %v", err)
	}
}

// refreshPrincipal reloads the principal from the registry after progress
// mutations (solves, badges) so session reads stay consistent.
func (s *AuthService) refreshPrincipal(ctx context.Context) {
	current := s.CurrentUser()
	if current == nil {
		return
	}
	user, err := s.userRepo.FindByID(ctx, current.ID)
	if err != nil {
		logrus.Warnf("failed to refresh principal %s: %v", current.ID, err)
		return
	}
	s.setCurrent(ctx, user)
}
