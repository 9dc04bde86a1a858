package service

import (
	"context"
	"fmt"
	"math/rand"

	"codearena/internal/catalog"
	"codearena/internal/common"
	"codearena/internal/domain/model"
	"codearena/internal/domain/repository"
)

var masterBadgeByDifficulty = map[model.ProblemDifficulty]string{
	model.DifficultyEasy:   "easy-master",
	model.DifficultyMedium: "medium-master",
	model.DifficultyHard:   "hard-master",
	model.DifficultyExpert: "expert-master",
}

// AchievementService evaluates badge criteria after solve events and backs
// the daily-reward lottery.
type AchievementService struct {
	userRepo    repository.UserRepository
	problemRepo repository.ProblemRepository
}

func NewAchievementService(userRepo repository.UserRepository, problemRepo repository.ProblemRepository) *AchievementService {
	return &AchievementService{userRepo: userRepo, problemRepo: problemRepo}
}

// EvaluateSolve runs the criteria that can be decided from the user's solved
// set and returns any newly earned badges. The caller passes the user state
// as of after the solve was recorded.
func (s *AchievementService) EvaluateSolve(ctx context.Context, user *model.User, problem *model.Problem) ([]model.Badge, error) {
	var earned []model.Badge
	award := func(badgeID string) error {
		if user.HasBadge(badgeID) {
			return nil
		}
		badge, ok := catalog.BadgeByID(badgeID)
		if !ok {
			return nil
		}
		if err := s.userRepo.AwardBadge(ctx, user.ID, badgeID); err != nil {
			return fmt.Errorf("failed to award badge %s: %w", badgeID, err)
		}
		user.Badges = append(user.Badges, badgeID)
		earned = append(earned, *badge)
		return nil
	}

	if len(user.SolvedProblems) >= 1 {
		if err := award("first-solve"); err != nil {
			return earned, err
		}
	}
	if len(user.SolvedProblems) >= 100 {
		if err := award("centennial"); err != nil {
			return earned, err
		}
	}

	done, err := s.solvedAllOfDifficulty(ctx, user, problem.Difficulty)
	if err != nil {
		return earned, err
	}
	if done {
		if err := award(masterBadgeByDifficulty[problem.Difficulty]); err != nil {
			return earned, err
		}
	}
	return earned, nil
}

func (s *AchievementService) solvedAllOfDifficulty(ctx context.Context, user *model.User, difficulty model.ProblemDifficulty) (bool, error) {
	total, err := s.problemRepo.CountByDifficulty(ctx, difficulty)
	if err != nil {
		return false, err
	}
	if total == 0 {
		return false, nil
	}
	solved := 0
	for _, id := range user.SolvedProblems {
		p, err := s.problemRepo.FindByID(ctx, id)
		if err != nil {
			continue // solved problem since deleted from the catalog
		}
		if p.Difficulty == difficulty {
			solved++
		}
	}
	return solved >= total, nil
}

// AwardRandomBadge implements the daily-reward lottery: a uniform random
// pick among the badges the user has not earned yet.
func (s *AchievementService) AwardRandomBadge(ctx context.Context, userID string) (*model.Badge, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	var pool []model.Badge
	for _, badge := range catalog.Badges {
		if !user.HasBadge(badge.ID) {
			pool = append(pool, badge)
		}
	}
	if len(pool) == 0 {
		return nil, fmt.Errorf("no badges left to award: %w", common.ErrNotFound)
	}

	badge := pool[rand.Intn(len(pool))]
	if err := s.userRepo.AwardBadge(ctx, userID, badge.ID); err != nil {
		return nil, fmt.Errorf("failed to award badge %s: %w", badge.ID, err)
	}
	return &badge, nil
}
