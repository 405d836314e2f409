package technique

import (
	"fmt"
	"math/bits"

	"svw.info/sudokugen/internal/board"
	"svw.info/sudokugen/internal/domain"
)

// findFish looks for a digit whose candidates in k base lines are confined
// to the same k cover lines, which removes the digit from the cover lines
// outside the base set. k=2 is an X-Wing, k=3 a swordfish. Rows are tried
// as the base family before columns, digits ascending within each.
func findFish(k int, tag domain.Technique) func(*State) (Step, bool) {
	return func(s *State) (Step, bool) {
		for _, rowsAsBase := range []bool{true, false} {
			for d := 1; d <= board.Size; d++ {
				if step, ok := fishForDigit(s, k, tag, d, rowsAsBase); ok {
					return step, true
				}
			}
		}
		return Step{}, false
	}
}

func fishForDigit(s *State, k int, tag domain.Technique, d int, rowsAsBase bool) (Step, bool) {
	// coverMask[base] = bitmask of cover-line positions holding d
	var eligible []int
	coverMask := make(map[int]uint16, board.Size)
	for base := 0; base < board.Size; base++ {
		var mask uint16
		for cover := 0; cover < board.Size; cover++ {
			c := fishCell(base, cover, rowsAsBase)
			if set, ok := s.Cands[c]; ok && set.Has(d) {
				mask |= 1 << uint(cover)
			}
		}
		if n := bits.OnesCount16(mask); n >= 2 && n <= k {
			eligible = append(eligible, base)
			coverMask[base] = mask
		}
	}
	if len(eligible) < k {
		return Step{}, false
	}
	var found Step
	ok := forEachCombo(eligible, k, func(combo []int) bool {
		var union uint16
		for _, base := range combo {
			union |= coverMask[base]
		}
		if bits.OnesCount16(union) != k {
			return false
		}
		var elims []Elimination
		for cover := 0; cover < board.Size; cover++ {
			if union&(1<<uint(cover)) == 0 {
				continue
			}
			for base := 0; base < board.Size; base++ {
				if contains(combo, base) {
					continue
				}
				c := fishCell(base, cover, rowsAsBase)
				if set, ok := s.Cands[c]; ok && set.Has(d) {
					elims = append(elims, Elimination{Cell: c, Digits: []int{d}})
				}
			}
		}
		if len(elims) == 0 {
			return false
		}
		var pattern []int
		for _, base := range combo {
			for cover := 0; cover < board.Size; cover++ {
				if coverMask[base]&(1<<uint(cover)) != 0 {
					pattern = append(pattern, fishCell(base, cover, rowsAsBase))
				}
			}
		}
		found = Step{
			Technique:    tag,
			Eliminations: elims,
			Target:       elims[0].Cell,
			Related:      pattern,
			Explanation:  fishExplanation(tag, d, combo, union, rowsAsBase),
		}
		return true
	})
	return found, ok
}

func fishCell(base, cover int, rowsAsBase bool) int {
	if rowsAsBase {
		return board.Index(base, cover)
	}
	return board.Index(cover, base)
}

func fishExplanation(tag domain.Technique, d int, combo []int, union uint16, rowsAsBase bool) string {
	baseName, coverName := "rows", "columns"
	if !rowsAsBase {
		baseName, coverName = "columns", "rows"
	}
	var covers []int
	for cover := 0; cover < board.Size; cover++ {
		if union&(1<<uint(cover)) != 0 {
			covers = append(covers, cover+1)
		}
	}
	ones := make([]int, len(combo))
	for i, b := range combo {
		ones[i] = b + 1
	}
	name := "X-Wing"
	if tag == domain.Swordfish {
		name = "Swordfish"
	}
	return fmt.Sprintf("%s: %d in %s %s is confined to %s %s, so it can be removed from those %s elsewhere",
		name, d, baseName, digitList(ones), coverName, digitList(covers), coverName)
}
