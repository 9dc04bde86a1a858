package service

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/gosimple/slug"
	"github.com/sirupsen/logrus"

	"codearena/internal/app/judge"
	"codearena/internal/catalog"
	"codearena/internal/common"
	"codearena/internal/domain/model"
	"codearena/internal/domain/repository"
)

// ProblemService is the single source of truth for the catalog and for
// grading. All mutations are role-gated; failures are checked before any
// state changes.
type ProblemService struct {
	problemRepo    repository.ProblemRepository
	submissionRepo repository.SubmissionRepository
	userRepo       repository.UserRepository
	auth           *AuthService
	grader         judge.Strategy
	achievements   *AchievementService
}

func NewProblemService(
	problemRepo repository.ProblemRepository,
	submissionRepo repository.SubmissionRepository,
	userRepo repository.UserRepository,
	auth *AuthService,
	grader judge.Strategy,
	achievements *AchievementService,
) *ProblemService {
	return &ProblemService{
		problemRepo:    problemRepo,
		submissionRepo: submissionRepo,
		userRepo:       userRepo,
		auth:           auth,
		grader:         grader,
		achievements:   achievements,
	}
}

func (s *ProblemService) GetProblem(ctx context.Context, id string) (*model.Problem, error) {
	return s.problemRepo.FindByID(ctx, id)
}

func (s *ProblemService) GetProblemBySlug(ctx context.Context, problemSlug string) (*model.Problem, error) {
	return s.problemRepo.FindBySlug(ctx, problemSlug)
}

func (s *ProblemService) ListProblems(ctx context.Context, page, pageSize int, difficulty model.ProblemDifficulty, category model.ProblemCategory) ([]model.Problem, int, error) {
	limit := pageSize
	offset := (page - 1) * pageSize
	if offset < 0 {
		offset = 0
	}
	return s.problemRepo.List(ctx, limit, offset, difficulty, category)
}

func (s *ProblemService) Submissions(ctx context.Context, problemID string) ([]model.Submission, error) {
	return s.submissionRepo.ListByProblem(ctx, problemID)
}

// SubmitSolution grades the code against the problem and appends the attempt
// to the problem's history. The status is final; there is no re-judging.
func (s *ProblemService) SubmitSolution(ctx context.Context, problemID, code, language string) (*model.Submission, error) {
	user := s.auth.CurrentUser()
	if user == nil {
		return nil, fmt.Errorf("must be logged in to submit a solution: %w", common.ErrUnauthorized)
	}

	problem, err := s.problemRepo.FindByID(ctx, problemID)
	if err != nil {
		return nil, fmt.Errorf("problem not found: %w", err)
	}

	status := s.grader.Grade(code, problem)

	submission := &model.Submission{
		ID:        strconv.FormatInt(time.Now().UnixNano(), 10),
		ProblemID: problemID,
		UserID:    user.ID,
		Username:  user.Username,
		Language:  language,
		Code:      code,
		Status:    status,
		// Synthetic display values; no code is actually executed.
		ExecutionTime: rand.Intn(500) + 50,
		MemoryUsed:    rand.Intn(10000) + 1000,
		SubmittedAt:   time.Now().UTC(),
	}

	if err := s.submissionRepo.Append(ctx, submission); err != nil {
		return nil, fmt.Errorf("failed to record submission: %w", err)
	}

	if status == model.StatusAccepted {
		s.recordSolve(ctx, user.ID, problem)
	}
	return submission, nil
}

// recordSolve updates the user's progress and runs the achievement
// evaluator. Progress bookkeeping failures are logged, not surfaced: the
// submission itself already succeeded.
func (s *ProblemService) recordSolve(ctx context.Context, userID string, problem *model.Problem) {
	if err := s.userRepo.RecordSolve(ctx, userID, problem.ID); err != nil {
		logrus.Warnf("failed to record solve of %s for user %s: %v", problem.ID, userID, err)
		return
	}
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		logrus.Warnf("failed to reload user %s: %v", userID, err)
		return
	}
	if s.achievements != nil {
		if _, err := s.achievements.EvaluateSolve(ctx, user, problem); err != nil {
			logrus.Warnf("achievement evaluation failed for user %s: %v", userID, err)
		}
	}
	s.auth.refreshPrincipal(ctx)
}

type CreateProblemRequest struct {
	Title          string                  `json:"title"`
	Description    string                  `json:"description"`
	Difficulty     model.ProblemDifficulty `json:"difficulty"`
	Categories     []model.ProblemCategory `json:"categories"`
	Constraints    string                  `json:"constraints"`
	InputFormat    string                  `json:"input_format"`
	OutputFormat   string                  `json:"output_format"`
	SampleInput    string                  `json:"sample_input"`
	SampleOutput   string                  `json:"sample_output"`
	Explanation    string                  `json:"explanation,omitempty"`
	TestCases      []model.TestCase        `json:"test_cases"`
	TimeLimit      int                     `json:"time_limit_ms"`
	MemoryLimit    int                     `json:"memory_limit_kb"`
	ExpectedOutput string                  `json:"expected_output"`
}

type UpdateProblemRequest struct {
	Title          *string                  `json:"title,omitempty"`
	Description    *string                  `json:"description,omitempty"`
	Difficulty     *model.ProblemDifficulty `json:"difficulty,omitempty"`
	Categories     *[]model.ProblemCategory `json:"categories,omitempty"`
	Constraints    *string                  `json:"constraints,omitempty"`
	InputFormat    *string                  `json:"input_format,omitempty"`
	OutputFormat   *string                  `json:"output_format,omitempty"`
	SampleInput    *string                  `json:"sample_input,omitempty"`
	SampleOutput   *string                  `json:"sample_output,omitempty"`
	Explanation    *string                  `json:"explanation,omitempty"`
	TestCases      *[]model.TestCase        `json:"test_cases,omitempty"`
	TimeLimit      *int                     `json:"time_limit_ms,omitempty"`
	MemoryLimit    *int                     `json:"memory_limit_kb,omitempty"`
	ExpectedOutput *string                  `json:"expected_output,omitempty"`
}

func (s *ProblemService) AddProblem(ctx context.Context, req CreateProblemRequest) (*model.Problem, error) {
	if err := requireRole(s.auth.CurrentUser(), model.RoleAdmin, model.RoleOwner); err != nil {
		return nil, err
	}
	if req.Title == "" || req.Description == "" || req.Difficulty == "" ||
		len(req.Categories) == 0 || len(req.TestCases) == 0 || req.ExpectedOutput == "" {
		return nil, fmt.Errorf("missing required fields for problem creation: %w", common.ErrBadRequest)
	}

	user := s.auth.CurrentUser()
	problem := &model.Problem{
		Title:          req.Title,
		Slug:           slug.Make(req.Title),
		Description:    req.Description,
		Difficulty:     req.Difficulty,
		Categories:     req.Categories,
		Constraints:    req.Constraints,
		InputFormat:    req.InputFormat,
		OutputFormat:   req.OutputFormat,
		SampleInput:    req.SampleInput,
		SampleOutput:   req.SampleOutput,
		Explanation:    req.Explanation,
		TestCases:      req.TestCases,
		TimeLimit:      req.TimeLimit,
		MemoryLimit:    req.MemoryLimit,
		CreatedBy:      user.Username,
		CreatedAt:      time.Now().UTC(),
		ExpectedOutput: req.ExpectedOutput,
	}
	if problem.TimeLimit == 0 {
		problem.TimeLimit = catalog.TimeLimitFor(req.Difficulty)
	}
	if problem.MemoryLimit == 0 {
		problem.MemoryLimit = catalog.MemoryLimitFor(req.Difficulty)
	}
	if problem.Constraints == "" {
		problem.Constraints = catalog.ConstraintsFor(req.Difficulty)
	}

	if err := s.problemRepo.Create(ctx, problem); err != nil {
		return nil, fmt.Errorf("failed to create problem: %w", err)
	}
	return problem, nil
}

func (s *ProblemService) UpdateProblem(ctx context.Context, id string, req UpdateProblemRequest) (*model.Problem, error) {
	if err := requireRole(s.auth.CurrentUser(), model.RoleAdmin, model.RoleOwner); err != nil {
		return nil, err
	}

	problem, err := s.problemRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		problem.Title = *req.Title
		problem.Slug = slug.Make(*req.Title)
	}
	if req.Description != nil {
		problem.Description = *req.Description
	}
	if req.Difficulty != nil {
		problem.Difficulty = *req.Difficulty
	}
	if req.Categories != nil {
		problem.Categories = *req.Categories
	}
	if req.Constraints != nil {
		problem.Constraints = *req.Constraints
	}
	if req.InputFormat != nil {
		problem.InputFormat = *req.InputFormat
	}
	if req.OutputFormat != nil {
		problem.OutputFormat = *req.OutputFormat
	}
	if req.SampleInput != nil {
		problem.SampleInput = *req.SampleInput
	}
	if req.SampleOutput != nil {
		problem.SampleOutput = *req.SampleOutput
	}
	if req.Explanation != nil {
		problem.Explanation = *req.Explanation
	}
	if req.TestCases != nil {
		problem.TestCases = *req.TestCases
	}
	if req.TimeLimit != nil {
		problem.TimeLimit = *req.TimeLimit
	}
	if req.MemoryLimit != nil {
		problem.MemoryLimit = *req.MemoryLimit
	}
	if req.ExpectedOutput != nil {
		problem.ExpectedOutput = *req.ExpectedOutput
	}
	now := time.Now().UTC()
	problem.UpdatedAt = &now

	if err := s.problemRepo.Update(ctx, problem); err != nil {
		return nil, fmt.Errorf("failed to update problem: %w", err)
	}
	return problem, nil
}

// DeleteProblem removes the entry if present; deleting an unknown ID
// completes without error.
func (s *ProblemService) DeleteProblem(ctx context.Context, id string) error {
	if err := requireRole(s.auth.CurrentUser(), model.RoleAdmin, model.RoleOwner); err != nil {
		return err
	}
	return s.problemRepo.Delete(ctx, id)
}
