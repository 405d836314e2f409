package technique

import (
	"fmt"

	"svw.info/sudokugen/internal/board"
	"svw.info/sudokugen/internal/domain"
)

// Placement assigns a digit to a cell.
type Placement struct {
	Cell  int
	Digit int
}

// Elimination strips candidate digits from a cell.
type Elimination struct {
	Cell   int
	Digits []int
}

// Step is one applied instance of a technique. Target is the cell a hint
// should point at; Related are the pattern cells justifying the deduction.
// Finders only report steps with an actual effect: a placement, or at
// least one candidate really removed.
type Step struct {
	Technique    domain.Technique
	Placements   []Placement
	Eliminations []Elimination
	Target       int
	Related      []int
	Explanation  string
}

// Apply mutates the state with the step's placements and eliminations.
func (s *State) Apply(st Step) {
	for _, p := range st.Placements {
		s.Place(p.Cell, p.Digit)
	}
	for _, e := range st.Eliminations {
		for _, d := range e.Digits {
			s.Eliminate(e.Cell, d)
		}
	}
}

// unitName renders a unit index as its human name, 1-based.
func unitName(u int) string {
	switch {
	case u < board.Size:
		return fmt.Sprintf("row %d", u+1)
	case u < 2*board.Size:
		return fmt.Sprintf("column %d", u-board.Size+1)
	default:
		return fmt.Sprintf("box %d", u-2*board.Size+1)
	}
}

// cellName renders a cell index as R#C#, 1-based.
func cellName(i int) string {
	return fmt.Sprintf("R%dC%d", board.RowOf(i)+1, board.ColOf(i)+1)
}

func cellNames(cells []int) string {
	out := ""
	for k, c := range cells {
		if k > 0 {
			out += ", "
		}
		out += cellName(c)
	}
	return out
}

func digitList(digits []int) string {
	out := ""
	for k, d := range digits {
		if k > 0 {
			out += ", "
		}
		out += fmt.Sprint(d)
	}
	return out
}
