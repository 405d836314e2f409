package board

// CandidateMap maps each empty cell to its remaining candidates. It is
// built fresh per operation and mutated in place; a cell leaves the map
// exactly when it receives a value.
type CandidateMap map[int]DigitSet

// Candidates returns the legal digits for cell i: 1-9 minus the values
// held by its 20 peers. A filled cell has no candidates.
func Candidates(b Board, i int) DigitSet {
	if b[i] != Empty {
		return 0
	}
	s := FullSet()
	for _, p := range Peers[i] {
		if v := b[p]; v != Empty {
			s = s.Remove(v)
		}
	}
	return s
}

// AllCandidates builds the candidate map over every empty cell.
func AllCandidates(b Board) CandidateMap {
	m := make(CandidateMap, b.EmptyCount())
	for i := 0; i < Cells; i++ {
		if b[i] == Empty {
			m[i] = Candidates(b, i)
		}
	}
	return m
}
