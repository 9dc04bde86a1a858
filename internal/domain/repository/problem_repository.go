package repository

import (
	"context"
	"strconv"
	"sync"

	"codearena/internal/common"
	"codearena/internal/domain/model"
)

type ProblemRepository interface {
	FindByID(ctx context.Context, id string) (*model.Problem, error)
	FindBySlug(ctx context.Context, slug string) (*model.Problem, error)
	// List returns a page of the catalog in insertion order together with
	// the total count matching the filters. Zero-valued filters match all.
	List(ctx context.Context, limit, offset int, difficulty model.ProblemDifficulty, category model.ProblemCategory) ([]model.Problem, int, error)
	// Create assigns the next dense sequential ID before storing.
	Create(ctx context.Context, problem *model.Problem) error
	Update(ctx context.Context, problem *model.Problem) error
	// Delete removes the problem; deleting an absent ID is a no-op.
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
	CountByDifficulty(ctx context.Context, difficulty model.ProblemDifficulty) (int, error)
}

type memoryProblemRepository struct {
	mu     sync.RWMutex
	byID   map[string]*model.Problem
	order  []string
	nextID int
}

// NewMemoryProblemRepository takes ownership of the generated catalog; no
// other component retains a separate copy.
func NewMemoryProblemRepository(catalog []model.Problem) ProblemRepository {
	r := &memoryProblemRepository{
		byID:   make(map[string]*model.Problem, len(catalog)),
		order:  make([]string, 0, len(catalog)),
		nextID: 1,
	}
	for i := range catalog {
		p := cloneProblem(&catalog[i])
		r.byID[p.ID] = p
		r.order = append(r.order, p.ID)
		if n, err := strconv.Atoi(p.ID); err == nil && n >= r.nextID {
			r.nextID = n + 1
		}
	}
	return r
}

func cloneProblem(p *model.Problem) *model.Problem {
	out := *p
	out.Categories = append([]model.ProblemCategory(nil), p.Categories...)
	out.TestCases = append([]model.TestCase(nil), p.TestCases...)
	if p.UpdatedAt != nil {
		t := *p.UpdatedAt
		out.UpdatedAt = &t
	}
	return &out
}

func (r *memoryProblemRepository) FindByID(_ context.Context, id string) (*model.Problem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.byID[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return cloneProblem(p), nil
}

func (r *memoryProblemRepository) FindBySlug(_ context.Context, slug string) (*model.Problem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, id := range r.order {
		if p := r.byID[id]; p != nil && p.Slug == slug {
			return cloneProblem(p), nil
		}
	}
	return nil, common.ErrNotFound
}

func matchesFilters(p *model.Problem, difficulty model.ProblemDifficulty, category model.ProblemCategory) bool {
	if difficulty != "" && p.Difficulty != difficulty {
		return false
	}
	if category != "" {
		found := false
		for _, c := range p.Categories {
			if c == category {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func (r *memoryProblemRepository) List(_ context.Context, limit, offset int, difficulty model.ProblemDifficulty, category model.ProblemCategory) ([]model.Problem, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]*model.Problem, 0, len(r.order))
	for _, id := range r.order {
		if p := r.byID[id]; p != nil && matchesFilters(p, difficulty, category) {
			matched = append(matched, p)
		}
	}
	total := len(matched)

	if offset < 0 {
		offset = 0
	}
	if offset > total {
		offset = total
	}
	end := total
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}

	page := make([]model.Problem, 0, end-offset)
	for _, p := range matched[offset:end] {
		page = append(page, *cloneProblem(p))
	}
	return page, total, nil
}

func (r *memoryProblemRepository) Create(_ context.Context, problem *model.Problem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	problem.ID = strconv.Itoa(r.nextID)
	r.nextID++
	r.byID[problem.ID] = cloneProblem(problem)
	r.order = append(r.order, problem.ID)
	return nil
}

func (r *memoryProblemRepository) Update(_ context.Context, problem *model.Problem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[problem.ID]; !ok {
		return common.ErrNotFound
	}
	r.byID[problem.ID] = cloneProblem(problem)
	return nil
}

func (r *memoryProblemRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return nil
	}
	delete(r.byID, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *memoryProblemRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID), nil
}

func (r *memoryProblemRepository) CountByDifficulty(_ context.Context, difficulty model.ProblemDifficulty) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	count := 0
	for _, p := range r.byID {
		if p.Difficulty == difficulty {
			count++
		}
	}
	return count, nil
}
