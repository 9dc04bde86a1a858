package repository

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/sirupsen/logrus"

	"codearena/internal/common"
	"codearena/internal/domain/model"
	"codearena/internal/platform/storage"
)

const submissionsRecordKey = "submissions"

type SubmissionRepository interface {
	// Append adds one graded attempt to the problem's ordered history.
	// History is never trimmed or deduplicated.
	Append(ctx context.Context, submission *model.Submission) error
	ListByProblem(ctx context.Context, problemID string) ([]model.Submission, error)
	CountByProblem(ctx context.Context, problemID string) (int, error)
}

type memorySubmissionRepository struct {
	mu        sync.RWMutex
	byProblem map[string][]model.Submission
	mirror    storage.Store
}

// NewMemorySubmissionRepository restores the submission history from the
// durable mirror once at construction. A malformed mirror record is
// discarded, not repaired.
func NewMemorySubmissionRepository(ctx context.Context, mirror storage.Store) SubmissionRepository {
	r := &memorySubmissionRepository{
		byProblem: make(map[string][]model.Submission),
		mirror:    mirror,
	}
	data, err := mirror.Get(ctx, submissionsRecordKey)
	if err != nil {
		if !errors.Is(err, common.ErrNotFound) {
			logrus.Warnf("failed to read submission mirror: %v", err)
		}
		return r
	}
	if err := json.Unmarshal(data, &r.byProblem); err != nil {
		logrus.Warnf("discarding malformed submission mirror: %v", err)
		r.byProblem = make(map[string][]model.Submission)
	}
	return r
}

func (r *memorySubmissionRepository) Append(ctx context.Context, submission *model.Submission) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byProblem[submission.ProblemID] = append(r.byProblem[submission.ProblemID], *submission)
	r.persist(ctx)
	return nil
}

// persist mirrors the whole map; a mirror write failure degrades durability
// but never fails the submission itself.
func (r *memorySubmissionRepository) persist(ctx context.Context) {
	data, err := json.Marshal(r.byProblem)
	if err != nil {
		logrus.Warnf("failed to encode submission mirror: %v", err)
		return
	}
	if err := r.mirror.Set(ctx, submissionsRecordKey, data); err != nil {
		logrus.Warnf("failed to write submission mirror: %v", err)
	}
}

func (r *memorySubmissionRepository) ListByProblem(_ context.Context, problemID string) ([]model.Submission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]model.Submission(nil), r.byProblem[problemID]...), nil
}

func (r *memorySubmissionRepository) CountByProblem(_ context.Context, problemID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byProblem[problemID]), nil
}
