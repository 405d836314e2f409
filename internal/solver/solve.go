package solver

import (
	"context"
	"time"

	"svw.info/sudokugen/internal/board"
	"svw.info/sudokugen/internal/ports"
)

// Solve completes the board if possible. On failure the caller's board is
// returned unchanged with solved=false; unsolvable input is not an error.
func (s *BacktrackingSolver) Solve(ctx context.Context, b board.Board) (board.Board, bool, ports.Stats, error) {
	start := time.Now()
	if err := board.Check(b); err != nil {
		return nil, false, ports.Stats{}, err
	}
	grid := b.Clone()
	nodes := 0
	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil {
			return false
		}
		i, cands, found, dead := mrvCell(grid)
		if !found {
			return true
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
	if !dfs() {
		return b, false, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
	}
	return grid, true, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}
