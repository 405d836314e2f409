// Package board holds the grid geometry and the candidate model shared by
// the solver, grader, and hint engine. All constants are computed once at
// package init and never mutated.
package board

import (
	"errors"
	"fmt"
)

const (
	// Size is the side length of the grid.
	Size = 9
	// Cells is the total cell count.
	Cells = 81
	// Empty marks an unfilled cell.
	Empty = 0
)

// Board is the flat wire form: 81 values, each 0-9, row-major.
type Board []int

// ErrMalformed reports a board that is not 81 cells of 0-9.
var ErrMalformed = errors.New("malformed board")

// Check validates shape and value range. Every public entry point that
// receives a caller board runs this before indexing into it.
func Check(b Board) error {
	if len(b) != Cells {
		return fmt.Errorf("%w: got %d cells, want %d", ErrMalformed, len(b), Cells)
	}
	for i, v := range b {
		if v < 0 || v > Size {
			return fmt.Errorf("%w: cell %d holds %d", ErrMalformed, i, v)
		}
	}
	return nil
}

// New returns an all-empty board.
func New() Board { return make(Board, Cells) }

// Clone returns a copy that shares no storage with b.
func (b Board) Clone() Board {
	out := make(Board, len(b))
	copy(out, b)
	return out
}

// GivenCount counts filled cells.
func (b Board) GivenCount() int {
	n := 0
	for _, v := range b {
		if v != Empty {
			n++
		}
	}
	return n
}

// EmptyCount counts unfilled cells.
func (b Board) EmptyCount() int { return Cells - b.GivenCount() }

// Full reports whether every cell holds a value.
func (b Board) Full() bool { return b.EmptyCount() == 0 }
