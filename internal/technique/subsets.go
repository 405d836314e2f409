package technique

import (
	"fmt"

	"svw.info/sudokugen/internal/board"
	"svw.info/sudokugen/internal/domain"
)

// forEachCombo visits the k-element combinations of items in lexicographic
// order, stopping when fn reports done.
func forEachCombo(items []int, k int, fn func([]int) bool) bool {
	combo := make([]int, k)
	var rec func(start, depth int) bool
	rec = func(start, depth int) bool {
		if depth == k {
			return fn(combo)
		}
		for i := start; i <= len(items)-(k-depth); i++ {
			combo[depth] = items[i]
			if rec(i+1, depth+1) {
				return true
			}
		}
		return false
	}
	return rec(0, 0)
}

// findNakedSubset looks for k cells of a unit whose combined candidates
// are exactly k digits; those digits then leave every other cell of the
// unit. k=2 is a naked pair, k=3 a naked triple.
func findNakedSubset(k int, tag domain.Technique) func(*State) (Step, bool) {
	return func(s *State) (Step, bool) {
		for u := 0; u < len(board.Units); u++ {
			empty := s.emptyCells(board.Units[u])
			if len(empty) <= k {
				continue // subset covering the whole unit eliminates nothing
			}
			var eligible []int
			for _, c := range empty {
				if n := s.Cands[c].Count(); n >= 2 && n <= k {
					eligible = append(eligible, c)
				}
			}
			if len(eligible) < k {
				continue
			}
			var found Step
			ok := forEachCombo(eligible, k, func(combo []int) bool {
				var union board.DigitSet
				for _, c := range combo {
					union |= s.Cands[c]
				}
				if union.Count() != k {
					return false
				}
				var elims []Elimination
				for _, c := range empty {
					if contains(combo, c) {
						continue
					}
					if hit := s.Cands[c] & union; hit != 0 {
						elims = append(elims, Elimination{Cell: c, Digits: hit.Digits()})
					}
				}
				if len(elims) == 0 {
					return false
				}
				found = Step{
					Technique:    tag,
					Eliminations: elims,
					Target:       elims[0].Cell,
					Related:      append([]int(nil), combo...),
					Explanation: fmt.Sprintf("%s lock digits %s in %s, removing them from the rest of the unit",
						cellNames(combo), digitList(union.Digits()), unitName(u)),
				}
				return true
			})
			if ok {
				return found, true
			}
		}
		return Step{}, false
	}
}

// findHiddenSubset looks for k digits confined to the same k cells of a
// unit; those cells then hold nothing but the k digits. k=2 is a hidden
// pair, k=3 a hidden triple.
func findHiddenSubset(k int, tag domain.Technique) func(*State) (Step, bool) {
	return func(s *State) (Step, bool) {
		for u := 0; u < len(board.Units); u++ {
			unit := board.Units[u]
			cellsFor := make(map[int][]int, board.Size)
			var digits []int
			for d := 1; d <= board.Size; d++ {
				cells := s.digitCells(unit, d)
				if len(cells) >= 2 && len(cells) <= k {
					cellsFor[d] = cells
					digits = append(digits, d)
				}
			}
			if len(digits) < k {
				continue
			}
			var found Step
			ok := forEachCombo(digits, k, func(combo []int) bool {
				cellSet := map[int]bool{}
				for _, d := range combo {
					for _, c := range cellsFor[d] {
						cellSet[c] = true
					}
				}
				if len(cellSet) != k {
					return false
				}
				var keep board.DigitSet
				for _, d := range combo {
					keep = keep.Add(d)
				}
				var cells []int
				for _, c := range unit {
					if cellSet[c] {
						cells = append(cells, c)
					}
				}
				var elims []Elimination
				for _, c := range cells {
					if extra := s.Cands[c] &^ keep; extra != 0 {
						elims = append(elims, Elimination{Cell: c, Digits: extra.Digits()})
					}
				}
				if len(elims) == 0 {
					return false
				}
				found = Step{
					Technique:    tag,
					Eliminations: elims,
					Target:       elims[0].Cell,
					Related:      cells,
					Explanation: fmt.Sprintf("digits %s are confined to %s in %s, so those cells hold nothing else",
						digitList(combo), cellNames(cells), unitName(u)),
				}
				return true
			})
			if ok {
				return found, true
			}
		}
		return Step{}, false
	}
}

func contains(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}
