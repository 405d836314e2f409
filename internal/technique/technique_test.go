package technique

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/sudokugen/internal/board"
	"svw.info/sudokugen/internal/domain"
)

// emptyState returns a state over the empty board, where every cell still
// offers all nine digits. Tests then carve the candidate pattern they
// need and invoke a finder directly.
func emptyState() *State {
	return NewState(board.New())
}

func strike(s *State, cell int, digits ...int) {
	set := s.Cands[cell]
	for _, d := range digits {
		set = set.Remove(d)
	}
	s.Cands[cell] = set
}

func elimCells(step Step) []int {
	out := make([]int, 0, len(step.Eliminations))
	for _, e := range step.Eliminations {
		out = append(out, e.Cell)
	}
	return out
}

func TestPlaceKeepsBoardAndMapInSync(t *testing.T) {
	s := emptyState()
	s.Place(0, 7)

	assert.Equal(t, 7, s.Board[0])
	_, ok := s.Cands[0]
	assert.False(t, ok, "placed cell must leave the map")
	for _, p := range board.Peers[0] {
		assert.False(t, s.Cands[p].Has(7), "peer %d still offers 7", p)
	}
	assert.True(t, s.Cands[80].Has(7), "non-peer lost a candidate")
}

func TestFindNakedSingle(t *testing.T) {
	s := emptyState()
	strike(s, 40, 1, 2, 3, 4, 5, 6, 7, 8) // only 9 remains

	step, ok := findNakedSingle(s)
	require.True(t, ok)
	assert.Equal(t, domain.NakedSingle, step.Technique)
	assert.Equal(t, []Placement{{Cell: 40, Digit: 9}}, step.Placements)
	assert.Equal(t, 40, step.Target)
}

func TestFindNakedSingleNone(t *testing.T) {
	_, ok := findNakedSingle(emptyState())
	assert.False(t, ok)
}

func TestFindHiddenSingle(t *testing.T) {
	s := emptyState()
	// digit 9 confined to R1C5 within row 1
	for _, c := range []int{0, 1, 2, 3, 5, 6, 7, 8} {
		strike(s, c, 9)
	}

	step, ok := findHiddenSingle(s)
	require.True(t, ok)
	assert.Equal(t, domain.HiddenSingle, step.Technique)
	assert.Equal(t, []Placement{{Cell: 4, Digit: 9}}, step.Placements)
	assert.Contains(t, step.Explanation, "row 1")
	assert.Contains(t, step.Explanation, "9")
}

func TestFindPointingPair(t *testing.T) {
	s := emptyState()
	// digit 5 in box 1 only at R1C1 and R1C2
	for _, c := range []int{2, 9, 10, 11, 18, 19, 20} {
		strike(s, c, 5)
	}

	step, ok := findPointingPair(s)
	require.True(t, ok)
	assert.Equal(t, domain.PointingPair, step.Technique)
	assert.Equal(t, []int{0, 1}, step.Related)
	assert.Equal(t, []int{3, 4, 5, 6, 7, 8}, elimCells(step), "rest of row 1 outside the box")
	for _, e := range step.Eliminations {
		assert.Equal(t, []int{5}, e.Digits)
	}
}

func TestFindBoxLineReduction(t *testing.T) {
	s := emptyState()
	// digit 4 in row 1 only within box 1
	for c := 3; c < 9; c++ {
		strike(s, c, 4)
	}

	step, ok := findBoxLineReduction(s)
	require.True(t, ok)
	assert.Equal(t, domain.BoxLineReduction, step.Technique)
	assert.Equal(t, []int{0, 1, 2}, step.Related)
	assert.Equal(t, []int{9, 10, 11, 18, 19, 20}, elimCells(step), "rest of the box outside row 1")
}

func TestFindNakedPair(t *testing.T) {
	s := emptyState()
	s.Cands[0] = board.DigitSet(0).Add(1).Add(2)
	s.Cands[1] = board.DigitSet(0).Add(1).Add(2)

	step, ok := findNakedSubset(2, domain.NakedPair)(s)
	require.True(t, ok)
	assert.Equal(t, domain.NakedPair, step.Technique)
	assert.Equal(t, []int{0, 1}, step.Related)
	assert.Len(t, step.Eliminations, 7, "1 and 2 leave the seven other row cells")
	for _, e := range step.Eliminations {
		assert.Equal(t, []int{1, 2}, e.Digits)
	}
}

func TestFindNakedTriple(t *testing.T) {
	s := emptyState()
	s.Cands[0] = board.DigitSet(0).Add(1).Add(2)
	s.Cands[1] = board.DigitSet(0).Add(2).Add(3)
	s.Cands[2] = board.DigitSet(0).Add(1).Add(3)

	step, ok := findNakedSubset(3, domain.NakedTriple)(s)
	require.True(t, ok)
	assert.Equal(t, domain.NakedTriple, step.Technique)
	assert.Equal(t, []int{0, 1, 2}, step.Related)
	assert.Equal(t, []int{3, 4, 5, 6, 7, 8}, elimCells(step))
}

func TestFindHiddenPair(t *testing.T) {
	s := emptyState()
	// digits 8 and 9 confined to R1C4 and R1C5 within row 1
	for _, c := range []int{0, 1, 2, 5, 6, 7, 8} {
		strike(s, c, 8, 9)
	}

	step, ok := findHiddenSubset(2, domain.HiddenPair)(s)
	require.True(t, ok)
	assert.Equal(t, domain.HiddenPair, step.Technique)
	assert.Equal(t, []int{3, 4}, step.Related)
	assert.Equal(t, []int{3, 4}, elimCells(step))
	for _, e := range step.Eliminations {
		assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, e.Digits, "the pair cells keep only 8 and 9")
	}
}

func TestFindHiddenTriple(t *testing.T) {
	s := emptyState()
	// digits 7, 8, 9 confined to the first three cells of row 1
	for c := 3; c < 9; c++ {
		strike(s, c, 7, 8, 9)
	}

	step, ok := findHiddenSubset(3, domain.HiddenTriple)(s)
	require.True(t, ok)
	assert.Equal(t, domain.HiddenTriple, step.Technique)
	assert.Equal(t, []int{0, 1, 2}, step.Related)
	assert.Equal(t, []int{0, 1, 2}, elimCells(step))
}

func TestFindXWing(t *testing.T) {
	s := emptyState()
	// digit 7 in rows 2 and 5 confined to columns 3 and 7
	for _, r := range []int{1, 4} {
		for c := 0; c < board.Size; c++ {
			if c != 2 && c != 6 {
				strike(s, board.Index(r, c), 7)
			}
		}
	}

	step, ok := findFish(2, domain.XWing)(s)
	require.True(t, ok)
	assert.Equal(t, domain.XWing, step.Technique)
	assert.Len(t, step.Eliminations, 14, "7 leaves both columns outside the base rows")
	for _, e := range step.Eliminations {
		assert.Equal(t, []int{7}, e.Digits)
		col := board.ColOf(e.Cell)
		assert.Contains(t, []int{2, 6}, col)
		assert.NotContains(t, []int{1, 4}, board.RowOf(e.Cell))
	}
	assert.Equal(t, []int{board.Index(1, 2), board.Index(1, 6), board.Index(4, 2), board.Index(4, 6)}, step.Related)
}

func TestFindSwordfish(t *testing.T) {
	s := emptyState()
	// digit 2 in rows 1, 3, 5 confined to columns 2, 5, 8
	for _, r := range []int{0, 2, 4} {
		for c := 0; c < board.Size; c++ {
			if c != 1 && c != 4 && c != 7 {
				strike(s, board.Index(r, c), 2)
			}
		}
	}

	step, ok := findFish(3, domain.Swordfish)(s)
	require.True(t, ok)
	assert.Equal(t, domain.Swordfish, step.Technique)
	assert.Len(t, step.Eliminations, 18)
}

func TestFindersReportNothingOnOpenBoard(t *testing.T) {
	// with every candidate still open, no pattern is confined anywhere
	for _, f := range Catalog {
		_, ok := f.Find(emptyState())
		assert.False(t, ok, "%s fired on a fully open board", f.ID)
	}
}

func TestCatalogOrderIsAscending(t *testing.T) {
	last := 0
	for _, f := range Catalog {
		assert.GreaterOrEqual(t, f.Score, last, "%s breaks the ascending order", f.ID)
		last = f.Score
	}
	require.Len(t, Catalog, 10)
	assert.Equal(t, domain.NakedSingle, Catalog[0].ID)
	assert.Equal(t, domain.Swordfish, Catalog[9].ID)
}

func TestApplyEliminations(t *testing.T) {
	s := emptyState()
	s.Apply(Step{Eliminations: []Elimination{{Cell: 10, Digits: []int{3, 4}}}})
	assert.False(t, s.Cands[10].Has(3))
	assert.False(t, s.Cands[10].Has(4))
	assert.Equal(t, 7, s.Cands[10].Count())
}
