package service

import (
	"context"
	"strconv"

	"algoarena/internal/common"
	"algoarena/internal/domain/model"
	"algoarena/internal/domain/repository"
)

type ProblemService struct {
	problemRepo repository.ProblemRepository
}

func NewProblemService(problemRepo repository.ProblemRepository) *ProblemService {
	return &ProblemService{problemRepo: problemRepo}
}

func (s *ProblemService) ListProblems(ctx context.Context) ([]model.Problem, error) {
	return s.problemRepo.ListProblems(ctx)
}

// GetProblemByID resolves a raw path parameter. A non-numeric id cannot
// match any catalog entry, so it is reported as not found rather than as a
// bad request.
func (s *ProblemService) GetProblemByID(ctx context.Context, idParam string) (*model.Problem, error) {
	id, err := strconv.Atoi(idParam)
	if err != nil {
		return nil, common.Errorf("problem %q: %w", idParam, common.ErrNotFound)
	}
	return s.problemRepo.FindProblemByID(ctx, id)
}

func (s *ProblemService) GetProblemBySlug(ctx context.Context, slug string) (*model.Problem, error) {
	return s.problemRepo.FindProblemBySlug(ctx, slug)
}
