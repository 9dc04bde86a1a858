package service

import (
	"context"
	"testing"

	"codearena/internal/app/judge"
	"codearena/internal/catalog"
	"codearena/internal/domain/repository"
	"codearena/internal/platform/storage"
)

const testCatalogSize = 40

type testEnv struct {
	store          storage.Store
	userRepo       repository.UserRepository
	problemRepo    repository.ProblemRepository
	submissionRepo repository.SubmissionRepository
	teamRepo       repository.TeamRepository
	auth           *AuthService
	achievements   *AchievementService
	problems       *ProblemService
	teams          *TeamService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()

	store := storage.NewMemoryStore()
	env := &testEnv{
		store:          store,
		userRepo:       repository.NewMemoryUserRepository(catalog.DefaultUsers()),
		problemRepo:    repository.NewMemoryProblemRepository(catalog.NewGenerator(testCatalogSize, 7).Generate()),
		submissionRepo: repository.NewMemorySubmissionRepository(ctx, store),
		teamRepo:       repository.NewMemoryTeamRepository(catalog.DefaultTeams()),
	}
	env.auth = NewAuthService(env.userRepo, store)
	env.auth.Initialize(ctx)
	env.achievements = NewAchievementService(env.userRepo, env.problemRepo)
	env.problems = NewProblemService(
		env.problemRepo, env.submissionRepo, env.userRepo, env.auth,
		judge.SubstringStrategy{}, env.achievements,
	)
	env.teams = NewTeamService(env.teamRepo, env.auth)
	return env
}

func (env *testEnv) loginAs(t *testing.T, username string) {
	t.Helper()
	if _, err := env.auth.Login(context.Background(), username, "password"); err != nil {
		t.Fatalf("login as %s failed: %v", username, err)
	}
}
