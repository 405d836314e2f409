package solver

import (
	"context"
	"time"

	"svw.info/sudokugen/internal/board"
	"svw.info/sudokugen/internal/ports"
)

// UniquenessLimit is the solution cap that distinguishes "unique" from
// "more than one" without enumerating everything.
const UniquenessLimit = 2

// CountSolutions runs the same search as Solve but keeps going past the
// first completion, stopping as soon as limit solutions are seen. The cap
// keeps under-constrained boards (a nearly empty grid has billions of
// completions) affordable. limit < 1 falls back to UniquenessLimit.
func (s *BacktrackingSolver) CountSolutions(ctx context.Context, b board.Board, limit int) (int, ports.Stats, error) {
	n, _, st, err := s.countSolutions(ctx, b, limit, false)
	return n, st, err
}

// UniqueSolution returns the completion only when exactly one exists.
func (s *BacktrackingSolver) UniqueSolution(ctx context.Context, b board.Board) (board.Board, bool, ports.Stats, error) {
	n, first, st, err := s.countSolutions(ctx, b, UniquenessLimit, true)
	if err != nil {
		return nil, false, st, err
	}
	if n != 1 {
		return nil, false, st, nil
	}
	return first, true, st, nil
}

// HasUniqueSolution reports whether exactly one completion exists.
func (s *BacktrackingSolver) HasUniqueSolution(ctx context.Context, b board.Board) (bool, ports.Stats, error) {
	n, st, err := s.CountSolutions(ctx, b, UniquenessLimit)
	return n == 1, st, err
}

func (s *BacktrackingSolver) countSolutions(ctx context.Context, b board.Board, limit int, keepFirst bool) (int, board.Board, ports.Stats, error) {
	start := time.Now()
	if err := board.Check(b); err != nil {
		return 0, nil, ports.Stats{}, err
	}
	if limit < 1 {
		limit = UniquenessLimit
	}
	grid := b.Clone()
	nodes := 0
	count := 0
	var first board.Board

	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil || count >= limit {
			return true // stop early
		}
		i, cands, found, dead := mrvCell(grid)
		if !found {
			count++
			if keepFirst && count == 1 {
				first = grid.Clone()
			}
			return count >= limit
		}
		if dead {
			return false
		}
		for _, v := range cands.Digits() {
			nodes++
			grid[i] = v
			if dfs() {
				return true
			}
			grid[i] = board.Empty
		}
		return false
	}
	_ = dfs()
	return count, first, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}
