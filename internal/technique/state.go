// Package technique holds the catalog of logical-deduction techniques used
// by both the grader and the hint engine. The catalog is an ordered table
// of tagged finders over a shared candidate state, so the two consumers
// differ only in selection policy: the grader restarts from the easiest
// technique after every bit of progress, the hint engine takes the first
// applicable instance and stops.
//
// Every finder scans deterministically: units in order, digits ascending,
// cells in index order. Callers get reproducible output for a given board.
package technique

import "svw.info/sudokugen/internal/board"

// State is a working board plus the candidate map that persists across
// technique applications. Eliminations must accumulate here; rebuilding
// the map between calls would silently undo prior deductions.
type State struct {
	Board board.Board
	Cands board.CandidateMap
}

// NewState clones the board and computes its candidates. The caller's
// board is never touched afterwards.
func NewState(b board.Board) *State {
	grid := b.Clone()
	return &State{Board: grid, Cands: board.AllCandidates(grid)}
}

// Place writes a digit: board update, map removal, and peer elimination in
// one routine so board and candidate map cannot drift apart.
func (s *State) Place(i, d int) {
	s.Board[i] = d
	delete(s.Cands, i)
	for _, p := range board.Peers[i] {
		if set, ok := s.Cands[p]; ok {
			s.Cands[p] = set.Remove(d)
		}
	}
}

// Eliminate removes a candidate digit, reporting whether it was present.
func (s *State) Eliminate(i, d int) bool {
	set, ok := s.Cands[i]
	if !ok || !set.Has(d) {
		return false
	}
	s.Cands[i] = set.Remove(d)
	return true
}

// Solved reports whether every cell has received a value.
func (s *State) Solved() bool { return len(s.Cands) == 0 }

// emptyCells returns the cells of a unit that still have candidates,
// in unit order.
func (s *State) emptyCells(unit [board.Size]int) []int {
	out := make([]int, 0, board.Size)
	for _, c := range unit {
		if _, ok := s.Cands[c]; ok {
			out = append(out, c)
		}
	}
	return out
}

// digitCells returns the cells of a unit holding d as a candidate.
func (s *State) digitCells(unit [board.Size]int, d int) []int {
	var out []int
	for _, c := range unit {
		if set, ok := s.Cands[c]; ok && set.Has(d) {
			out = append(out, c)
		}
	}
	return out
}
