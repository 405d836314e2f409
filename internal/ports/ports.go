package ports

import (
	"context"
	"time"

	"svw.info/sudokugen/internal/board"
	"svw.info/sudokugen/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Solver completes boards and counts solutions up to a cap. Unsolvable
// input is a normal solved=false / zero-count result, never an error.
type Solver interface {
	Solve(ctx context.Context, b board.Board) (board.Board, bool, Stats, error)
	CountSolutions(ctx context.Context, b board.Board, limit int) (int, Stats, error)
	UniqueSolution(ctx context.Context, b board.Board) (board.Board, bool, Stats, error)
}

// Generator creates new puzzles at a target difficulty.
type Generator interface {
	Generate(ctx context.Context, opts domain.GenerateOptions) (*domain.Puzzle, Stats, error)
	GenerateBatch(ctx context.Context, count int, opts domain.GenerateOptions) ([]*domain.Puzzle, error)
}

// Grader scores a board by simulating a human solve.
type Grader interface {
	Grade(ctx context.Context, b board.Board) (domain.Grade, error)
}

// Hinter returns the first applicable deduction with its justification.
type Hinter interface {
	Hint(ctx context.Context, b board.Board, opts domain.HintOptions) (domain.Hint, bool, error)
}

// Validator performs conflict, completeness, and tamper checks.
type Validator interface {
	Board(ctx context.Context, b board.Board) (domain.ValidationResult, error)
	Cell(ctx context.Context, b board.Board, i, v int) ([]int, error)
	VerifySolution(player, solution board.Board) bool
	CheckGivens(player, original board.Board) ([]int, error)
}

// Storage persists and retrieves puzzles as JSON.
type Storage interface {
	Save(ctx context.Context, p *domain.Puzzle) error
	Load(ctx context.Context, id string) (*domain.Puzzle, error)
	List(ctx context.Context) ([]domain.PuzzleMeta, error)
}
