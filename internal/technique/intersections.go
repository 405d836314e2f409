package technique

import (
	"fmt"

	"svw.info/sudokugen/internal/board"
	"svw.info/sudokugen/internal/domain"
)

// findPointingPair scans each box for a digit whose 2-3 candidate cells
// share a row or column; the digit then cannot appear elsewhere in that
// line. Only instances with at least one real elimination are reported.
func findPointingPair(s *State) (Step, bool) {
	for x := 0; x < board.Size; x++ {
		unit := board.BoxUnit(x)
		for d := 1; d <= board.Size; d++ {
			cells := s.digitCells(unit, d)
			if len(cells) < 2 || len(cells) > 3 {
				continue
			}
			if r, same := sameRow(cells); same {
				if step, ok := pointingStep(s, d, cells, board.RowUnit(r), x,
					fmt.Sprintf("in box %d, %d is confined to row %d, so it can be removed from the rest of the row", x+1, d, r+1)); ok {
					return step, true
				}
			}
			if c, same := sameCol(cells); same {
				if step, ok := pointingStep(s, d, cells, board.ColUnit(c), x,
					fmt.Sprintf("in box %d, %d is confined to column %d, so it can be removed from the rest of the column", x+1, d, c+1)); ok {
					return step, true
				}
			}
		}
	}
	return Step{}, false
}

func pointingStep(s *State, d int, pattern []int, line [board.Size]int, box int, why string) (Step, bool) {
	var elims []Elimination
	for _, c := range line {
		if board.BoxOf(c) == box {
			continue
		}
		if set, ok := s.Cands[c]; ok && set.Has(d) {
			elims = append(elims, Elimination{Cell: c, Digits: []int{d}})
		}
	}
	if len(elims) == 0 {
		return Step{}, false
	}
	return Step{
		Technique:    domain.PointingPair,
		Eliminations: elims,
		Target:       elims[0].Cell,
		Related:      pattern,
		Explanation:  why,
	}, true
}

// findBoxLineReduction scans each row and column for a digit confined to a
// single box; the digit is then removed from the rest of that box.
func findBoxLineReduction(s *State) (Step, bool) {
	// rows first, then columns, matching the unit ordering
	for u := 0; u < 2*board.Size; u++ {
		unit := board.Units[u]
		for d := 1; d <= board.Size; d++ {
			cells := s.digitCells(unit, d)
			if len(cells) < 2 {
				continue
			}
			x, same := sameBox(cells)
			if !same {
				continue
			}
			var elims []Elimination
			for _, c := range board.BoxUnit(x) {
				if inLine(c, u) {
					continue
				}
				if set, ok := s.Cands[c]; ok && set.Has(d) {
					elims = append(elims, Elimination{Cell: c, Digits: []int{d}})
				}
			}
			if len(elims) == 0 {
				continue
			}
			return Step{
				Technique:    domain.BoxLineReduction,
				Eliminations: elims,
				Target:       elims[0].Cell,
				Related:      cells,
				Explanation: fmt.Sprintf("in %s, %d only appears in box %d, so it can be removed from the rest of the box",
					unitName(u), d, x+1),
			}, true
		}
	}
	return Step{}, false
}

func sameRow(cells []int) (int, bool) {
	r := board.RowOf(cells[0])
	for _, c := range cells[1:] {
		if board.RowOf(c) != r {
			return 0, false
		}
	}
	return r, true
}

func sameCol(cells []int) (int, bool) {
	c0 := board.ColOf(cells[0])
	for _, c := range cells[1:] {
		if board.ColOf(c) != c0 {
			return 0, false
		}
	}
	return c0, true
}

func sameBox(cells []int) (int, bool) {
	x := board.BoxOf(cells[0])
	for _, c := range cells[1:] {
		if board.BoxOf(c) != x {
			return 0, false
		}
	}
	return x, true
}

// inLine reports whether cell c lies on line unit u (row for u<9,
// column otherwise).
func inLine(c, u int) bool {
	if u < board.Size {
		return board.RowOf(c) == u
	}
	return board.ColOf(c) == u-board.Size
}
