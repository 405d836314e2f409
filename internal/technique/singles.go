package technique

import (
	"fmt"

	"svw.info/sudokugen/internal/board"
	"svw.info/sudokugen/internal/domain"
)

// findNakedSingle returns the first cell (index order) whose candidate set
// has shrunk to one digit.
func findNakedSingle(s *State) (Step, bool) {
	for i := 0; i < board.Cells; i++ {
		set, ok := s.Cands[i]
		if !ok {
			continue
		}
		if d, one := set.Single(); one {
			return Step{
				Technique:   domain.NakedSingle,
				Placements:  []Placement{{Cell: i, Digit: d}},
				Target:      i,
				Explanation: fmt.Sprintf("%s has only one candidate left: %d", cellName(i), d),
			}, true
		}
	}
	return Step{}, false
}

// findHiddenSingle returns the first (unit order, then digit ascending)
// digit that fits exactly one cell of a unit.
func findHiddenSingle(s *State) (Step, bool) {
	for u := 0; u < len(board.Units); u++ {
		for d := 1; d <= board.Size; d++ {
			cells := s.digitCells(board.Units[u], d)
			if len(cells) != 1 {
				continue
			}
			target := cells[0]
			if set := s.Cands[target]; set.Count() == 1 {
				// already a naked single, let that finder claim it
				continue
			}
			var related []int
			for _, c := range s.emptyCells(board.Units[u]) {
				if c != target {
					related = append(related, c)
				}
			}
			return Step{
				Technique:   domain.HiddenSingle,
				Placements:  []Placement{{Cell: target, Digit: d}},
				Target:      target,
				Related:     related,
				Explanation: fmt.Sprintf("in %s, %d can only go in %s", unitName(u), d, cellName(target)),
			}, true
		}
	}
	return Step{}, false
}
