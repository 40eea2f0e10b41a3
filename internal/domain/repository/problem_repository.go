package repository

import (
	"context"
	"fmt"

	"algoarena/internal/common"
	"algoarena/internal/domain/model"
)

type ProblemRepository interface {
	ListProblems(ctx context.Context) ([]model.Problem, error)
	FindProblemByID(ctx context.Context, id int) (*model.Problem, error)
	FindProblemBySlug(ctx context.Context, slug string) (*model.Problem, error)
}

// memProblemRepository serves the fixed demo catalog. One table backs both
// the list and detail views so the two can never drift apart; the list view
// is derived by blanking WorkingSolution.
type memProblemRepository struct {
	problems []model.Problem
	byID     map[int]int
	bySlug   map[string]int
}

func NewMemProblemRepository() ProblemRepository {
	problems := demoCatalog()
	byID := make(map[int]int, len(problems))
	bySlug := make(map[string]int, len(problems))
	for i, p := range problems {
		byID[p.ID] = i
		bySlug[p.Slug] = i
	}
	return &memProblemRepository{problems: problems, byID: byID, bySlug: bySlug}
}

func (r *memProblemRepository) ListProblems(ctx context.Context) ([]model.Problem, error) {
	summaries := make([]model.Problem, len(r.problems))
	for i, p := range r.problems {
		p.WorkingSolution = ""
		summaries[i] = p
	}
	return summaries, nil
}

func (r *memProblemRepository) FindProblemByID(ctx context.Context, id int) (*model.Problem, error) {
	i, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("problem %d: %w", id, common.ErrNotFound)
	}
	p := r.problems[i]
	return &p, nil
}

func (r *memProblemRepository) FindProblemBySlug(ctx context.Context, slug string) (*model.Problem, error) {
	i, ok := r.bySlug[slug]
	if !ok {
		return nil, fmt.Errorf("problem %q: %w", slug, common.ErrNotFound)
	}
	p := r.problems[i]
	return &p, nil
}
