package generator

import (
	"context"
	"errors"

	"svw.info/sudokugen/internal/board"
)

// Solution fills an empty grid into a complete valid solution. The search
// is the solver's MRV backtracking, except each cell's candidates are
// tried in shuffled order so repeated calls diversify.
func (g *Generator) Solution(ctx context.Context) (board.Board, error) {
	grid := board.New()
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
		digits := cands.Digits()
		g.rng.Shuffle(len(digits), func(a, b int) { digits[a], digits[b] = digits[b], digits[a] })
		for _, v := range digits {
			grid[i] = v
			if dfs() {
				return true
			}
			grid[i] = board.Empty
		}
		return false
	}
	if !dfs() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return nil, errors.New("could not fill an empty grid")
	}
	return grid, nil
}

// mrvCell mirrors the solver's most-constrained-cell scan locally for the
// generator's randomized fill.
func mrvCell(b board.Board) (cell int, cands board.DigitSet, found, dead bool) {
	best := -1
	bestCount := board.Size + 1
	var bestSet board.DigitSet
	for i := 0; i < board.Cells; i++ {
		if b[i] != board.Empty {
			continue
		}
		s := board.Candidates(b, i)
		n := s.Count()
		if n == 0 {
			return i, 0, true, true
		}
		if n < bestCount {
			best, bestCount, bestSet = i, n, s
		}
	}
	if best < 0 {
		return 0, 0, false, false
	}
	return best, bestSet, true, false
}
