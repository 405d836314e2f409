package usecase

import (
	"context"
	"errors"

	"svw.info/sudokugen/internal/board"
	"svw.info/sudokugen/internal/domain"
	"svw.info/sudokugen/internal/ports"
)

// Service is the facade collaborators talk to; it only forwards to the
// wired ports.
type Service struct {
	Solver    ports.Solver
	Generator ports.Generator
	Grader    ports.Grader
	Validator ports.Validator
	Hinter    ports.Hinter
	Storage   ports.Storage
}

func NewService(s ports.Solver, g ports.Generator, gr ports.Grader, v ports.Validator, h ports.Hinter, st ports.Storage) *Service {
	return &Service{Solver: s, Generator: g, Grader: gr, Validator: v, Hinter: h, Storage: st}
}

var errNotConfigured = errors.New("usecase dependency not configured")

func (u *Service) Solve(ctx context.Context, b board.Board) (board.Board, bool, ports.Stats, error) {
	if u.Solver == nil {
		return nil, false, ports.Stats{}, errNotConfigured
	}
	return u.Solver.Solve(ctx, b)
}

func (u *Service) CountSolutions(ctx context.Context, b board.Board, limit int) (int, ports.Stats, error) {
	if u.Solver == nil {
		return 0, ports.Stats{}, errNotConfigured
	}
	return u.Solver.CountSolutions(ctx, b, limit)
}

func (u *Service) Generate(ctx context.Context, opts domain.GenerateOptions) (*domain.Puzzle, ports.Stats, error) {
	if u.Generator == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Generator.Generate(ctx, opts)
}

func (u *Service) GenerateBatch(ctx context.Context, count int, opts domain.GenerateOptions) ([]*domain.Puzzle, error) {
	if u.Generator == nil {
		return nil, errNotConfigured
	}
	return u.Generator.GenerateBatch(ctx, count, opts)
}

func (u *Service) Grade(ctx context.Context, b board.Board) (domain.Grade, error) {
	if u.Grader == nil {
		return domain.Grade{}, errNotConfigured
	}
	return u.Grader.Grade(ctx, b)
}

func (u *Service) Validate(ctx context.Context, b board.Board) (domain.ValidationResult, error) {
	if u.Validator == nil {
		return domain.ValidationResult{}, errNotConfigured
	}
	return u.Validator.Board(ctx, b)
}

func (u *Service) ValidateCell(ctx context.Context, b board.Board, i, v int) ([]int, error) {
	if u.Validator == nil {
		return nil, errNotConfigured
	}
	return u.Validator.Cell(ctx, b, i, v)
}

func (u *Service) Hint(ctx context.Context, b board.Board, opts domain.HintOptions) (domain.Hint, bool, error) {
	if u.Hinter == nil {
		return domain.Hint{}, false, errNotConfigured
	}
	return u.Hinter.Hint(ctx, b, opts)
}

// Persistence
func (u *Service) Save(ctx context.Context, p *domain.Puzzle) error {
	if u.Storage == nil {
		return errNotConfigured
	}
	return u.Storage.Save(ctx, p)
}

func (u *Service) Load(ctx context.Context, id string) (*domain.Puzzle, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.Load(ctx, id)
}

func (u *Service) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.List(ctx)
}
