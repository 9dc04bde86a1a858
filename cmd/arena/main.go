package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"codearena/internal/app/judge"
	"codearena/internal/app/service"
	"codearena/internal/catalog"
	"codearena/internal/domain/model"
	"codearena/internal/domain/repository"
	"codearena/internal/platform/config"
	"codearena/internal/platform/logging"
	"codearena/internal/platform/storage"
)

func main() {
	// 1. Load configuration
	config.Load()
	logging.Init(config.AppConfig.LogLevel)
	logrus.Info("Configuration loaded.")

	// 2. Open the durable-record backend
	store, err := openStore(config.AppConfig)
	if err != nil {
		logrus.Fatalf("Could not open %s storage backend: %v", config.AppConfig.StorageBackend, err)
	}
	defer store.Close()
	logrus.Infof("Storage backend %s ready.", config.AppConfig.StorageBackend)

	ctx := context.Background()

	// 3. Generate the problem catalog
	generator := catalog.NewGenerator(config.AppConfig.CatalogSize, config.AppConfig.CatalogSeed)
	problems := generator.Generate()
	logrus.Infof("Catalog generated: %d problems.", len(problems))

	// 4. Initialize repositories
	userRepo := repository.NewMemoryUserRepository(catalog.DefaultUsers())
	problemRepo := repository.NewMemoryProblemRepository(problems)
	submissionRepo := repository.NewMemorySubmissionRepository(ctx, store)
	teamRepo := repository.NewMemoryTeamRepository(catalog.DefaultTeams())

	// 5. Initialize services
	authService := service.NewAuthService(userRepo, store)
	achievementService := service.NewAchievementService(userRepo, problemRepo)
	problemService := service.NewProblemService(
		problemRepo, submissionRepo, userRepo, authService,
		judge.SubstringStrategy{}, achievementService,
	)
	teamService := service.NewTeamService(teamRepo, authService)

	// 6. Restore a persisted session, if any
	authService.Initialize(ctx)
	if user := authService.CurrentUser(); user != nil {
		logrus.Infof("Session restored for %s (%s).", user.Username, user.Role)
	} else {
		logrus.Info("No stored session, starting anonymous.")
	}

	easy, easyTotal, _ := problemService.ListProblems(ctx, 1, 1, model.DifficultyEasy, "")
	teams, _ := teamService.Teams(ctx)
	first := ""
	if len(easy) > 0 {
		first = easy[0].Title
	}
	logrus.Infof("Core ready: %d easy problems (first %q), %d teams, %d badges.",
		easyTotal, first, len(teams), len(catalog.Badges))
}

func openStore(cfg *config.Config) (storage.Store, error) {
	switch cfg.StorageBackend {
	case "memory":
		return storage.NewMemoryStore(), nil
	case "redis":
		return storage.NewRedisStore(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	case "postgres":
		return storage.NewPgStore(cfg.DBConnStr)
	default:
		return storage.NewFileStore(cfg.DataDir)
	}
}
