package service

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"codearena/internal/catalog"
	"codearena/internal/common"
	"codearena/internal/domain/model"
)

func TestGetProblemNotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.problems.GetProblem(context.Background(), "99999")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestGetProblemIdempotent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	first, err := env.problems.GetProblem(ctx, "1")
	assert.NoError(t, err)
	second, err := env.problems.GetProblem(ctx, "1")
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestListProblemsPaging(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	page, total, err := env.problems.ListProblems(ctx, 1, 10, "", "")
	assert.NoError(t, err)
	assert.Equal(t, testCatalogSize, total)
	assert.Len(t, page, 10)
	assert.Equal(t, "1", page[0].ID)

	easy, easyTotal, err := env.problems.ListProblems(ctx, 1, testCatalogSize, model.DifficultyEasy, "")
	assert.NoError(t, err)
	assert.Equal(t, easyTotal, len(easy))
	for _, p := range easy {
		assert.Equal(t, model.DifficultyEasy, p.Difficulty)
	}
}

func TestSubmitSolutionRequiresAuth(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.problems.SubmitSolution(context.Background(), "1", "return [1,2]", "cpp")
	assert.ErrorIs(t, err, common.ErrUnauthorized)
}

func TestSubmitSolutionUnknownProblem(t *testing.T) {
	env := newTestEnv(t)
	env.loginAs(t, "user")

	_, err := env.problems.SubmitSolution(context.Background(), "99999", "code", "go")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestSubmitSolutionAccepted(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.loginAs(t, "user")

	before, err := env.submissionRepo.CountByProblem(ctx, "1")
	assert.NoError(t, err)

	// Seed problem 1 grades on the "return [" pattern.
	sub, err := env.problems.SubmitSolution(ctx, "1", "return [1,2]", "cpp")
	assert.NoError(t, err)
	assert.Equal(t, model.StatusAccepted, sub.Status)
	assert.Equal(t, "user", sub.Username)
	assert.Equal(t, "cpp", sub.Language)
	assert.NotEmpty(t, sub.ID)

	assert.GreaterOrEqual(t, sub.ExecutionTime, 50)
	assert.Less(t, sub.ExecutionTime, 550)
	assert.GreaterOrEqual(t, sub.MemoryUsed, 1000)
	assert.Less(t, sub.MemoryUsed, 11000)

	after, err := env.submissionRepo.CountByProblem(ctx, "1")
	assert.NoError(t, err)
	assert.Equal(t, before+1, after)
}

func TestSubmitSolutionWrongAnswer(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.loginAs(t, "user")

	sub, err := env.problems.SubmitSolution(ctx, "1", "print(42)", "python")
	assert.NoError(t, err)
	assert.Equal(t, model.StatusWrongAnswer, sub.Status)

	// Status depends only on substring containment: same code, same verdict.
	again, err := env.problems.SubmitSolution(ctx, "1", "print(42)", "python")
	assert.NoError(t, err)
	assert.Equal(t, sub.Status, again.Status)

	history, err := env.problems.Submissions(ctx, "1")
	assert.NoError(t, err)
	assert.Len(t, history, 2)
}

func TestAcceptedSubmissionRecordsSolve(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.auth.Register(ctx, "bob", "bob@x.com", "pw")
	assert.NoError(t, err)

	_, err = env.problems.SubmitSolution(ctx, "2", "s = reverse(s)", "go")
	assert.NoError(t, err)

	principal := env.auth.CurrentUser()
	assert.True(t, principal.HasSolved("2"))
	assert.True(t, principal.HasBadge("first-solve"))

	stored, err := env.userRepo.FindByID(ctx, principal.ID)
	assert.NoError(t, err)
	assert.True(t, stored.HasSolved("2"))
}

func TestCatalogMutationsForbiddenForUserRole(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.loginAs(t, "user")

	before, _ := env.problemRepo.Count(ctx)

	_, err := env.problems.AddProblem(ctx, validCreateRequest())
	assert.ErrorIs(t, err, common.ErrForbidden)

	title := "New Title"
	_, err = env.problems.UpdateProblem(ctx, "1", UpdateProblemRequest{Title: &title})
	assert.ErrorIs(t, err, common.ErrForbidden)

	err = env.problems.DeleteProblem(ctx, "1")
	assert.ErrorIs(t, err, common.ErrForbidden)

	after, _ := env.problemRepo.Count(ctx)
	assert.Equal(t, before, after)
}

func TestCatalogMutationsRequireAuth(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.problems.AddProblem(context.Background(), validCreateRequest())
	assert.ErrorIs(t, err, common.ErrUnauthorized)
}

func validCreateRequest() CreateProblemRequest {
	return CreateProblemRequest{
		Title:       "Count Inversions",
		Description: "Count the number of inversions in an array.",
		Difficulty:  model.DifficultyMedium,
		Categories:  []model.ProblemCategory{model.CategoryArrays, model.CategorySorting},
		TestCases: []model.TestCase{
			{Input: "3\n3 1 2", Output: "2"},
		},
		ExpectedOutput: "merge",
	}
}

func TestAddProblemAssignsSequentialID(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.loginAs(t, "admin")

	problem, err := env.problems.AddProblem(ctx, validCreateRequest())
	assert.NoError(t, err)
	assert.Equal(t, strconv.Itoa(testCatalogSize+1), problem.ID)
	assert.Equal(t, "admin", problem.CreatedBy)
	assert.Equal(t, "count-inversions", problem.Slug)
	assert.False(t, problem.CreatedAt.IsZero())

	// Limits default from the difficulty table when omitted.
	assert.Equal(t, catalog.TimeLimitFor(model.DifficultyMedium), problem.TimeLimit)
	assert.Equal(t, catalog.MemoryLimitFor(model.DifficultyMedium), problem.MemoryLimit)

	stored, err := env.problems.GetProblem(ctx, problem.ID)
	assert.NoError(t, err)
	assert.Equal(t, problem.Title, stored.Title)
}

func TestAddProblemValidatesRequiredFields(t *testing.T) {
	env := newTestEnv(t)
	env.loginAs(t, "owner")

	req := validCreateRequest()
	req.TestCases = nil
	_, err := env.problems.AddProblem(context.Background(), req)
	assert.ErrorIs(t, err, common.ErrBadRequest)
}

func TestUpdateProblemStampsUpdatedAt(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.loginAs(t, "owner")

	title := "Renamed Problem"
	updated, err := env.problems.UpdateProblem(ctx, "5", UpdateProblemRequest{Title: &title})
	assert.NoError(t, err)
	assert.Equal(t, "Renamed Problem", updated.Title)
	assert.Equal(t, "renamed-problem", updated.Slug)
	assert.NotNil(t, updated.UpdatedAt)

	stored, err := env.problems.GetProblem(ctx, "5")
	assert.NoError(t, err)
	assert.Equal(t, "Renamed Problem", stored.Title)
}

func TestUpdateProblemNotFound(t *testing.T) {
	env := newTestEnv(t)
	env.loginAs(t, "admin")

	title := "Anything"
	_, err := env.problems.UpdateProblem(context.Background(), "99999", UpdateProblemRequest{Title: &title})
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestDeleteProblem(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.loginAs(t, "owner")

	before, _ := env.problemRepo.Count(ctx)
	assert.NoError(t, env.problems.DeleteProblem(ctx, "3"))
	after, _ := env.problemRepo.Count(ctx)
	assert.Equal(t, before-1, after)

	_, err := env.problems.GetProblem(ctx, "3")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestDeleteMissingProblemIsNoop(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.loginAs(t, "owner")

	before, _ := env.problemRepo.Count(ctx)
	assert.NoError(t, env.problems.DeleteProblem(ctx, "999"))
	after, _ := env.problemRepo.Count(ctx)
	assert.Equal(t, before, after)
}
