package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"codearena/internal/domain/model"
	"codearena/internal/platform/storage"
)

func testSubmission(problemID string) *model.Submission {
	return &model.Submission{
		ID:          "1700000000000000001",
		ProblemID:   problemID,
		UserID:      "3",
		Username:    "user",
		Language:    "go",
		Code:        "return [1,2]",
		Status:      model.StatusAccepted,
		SubmittedAt: time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestSubmissionHistoryMirrorsToStore(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()

	repo := NewMemorySubmissionRepository(ctx, store)
	assert.NoError(t, repo.Append(ctx, testSubmission("1")))
	assert.NoError(t, repo.Append(ctx, testSubmission("1")))

	// A fresh repository over the same store restores the full history.
	restored := NewMemorySubmissionRepository(ctx, store)
	history, err := restored.ListByProblem(ctx, "1")
	assert.NoError(t, err)
	assert.Len(t, history, 2)
	assert.Equal(t, model.StatusAccepted, history[0].Status)

	count, err := restored.CountByProblem(ctx, "1")
	assert.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestSubmissionMirrorMalformedRecordDiscarded(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	assert.NoError(t, store.Set(ctx, submissionsRecordKey, []byte("][ nonsense")))

	repo := NewMemorySubmissionRepository(ctx, store)
	history, err := repo.ListByProblem(ctx, "1")
	assert.NoError(t, err)
	assert.Empty(t, history)

	// The repository stays usable after discarding the bad mirror.
	assert.NoError(t, repo.Append(ctx, testSubmission("1")))
	count, err := repo.CountByProblem(ctx, "1")
	assert.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestHistoryIsNeverTrimmedOrDeduplicated(t *testing.T) {
	ctx := context.Background()
	repo := NewMemorySubmissionRepository(ctx, storage.NewMemoryStore())

	for i := 0; i < 5; i++ {
		assert.NoError(t, repo.Append(ctx, testSubmission("7")))
	}
	count, err := repo.CountByProblem(ctx, "7")
	assert.NoError(t, err)
	assert.Equal(t, 5, count)
}
