// Package solver implements exhaustive search over the candidate model:
// depth-first backtracking that always branches on the most constrained
// cell (MRV) and tries digits in ascending order.
package solver

import "svw.info/sudokugen/internal/board"

// BacktrackingSolver is a straightforward recursive solver.
type BacktrackingSolver struct{}

func NewBacktrackingSolver() *BacktrackingSolver { return &BacktrackingSolver{} }

// mrvCell scans every empty cell and returns the one with the fewest
// candidates, ties broken by index order. dead is true when some empty
// cell has zero candidates, which forces an immediate backtrack.
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
