// Package validator implements conflict, completeness, and tamper checks.
// It never mutates its input.
package validator

import (
	"context"
	"fmt"
	"sort"

	"svw.info/sudokugen/internal/board"
	"svw.info/sudokugen/internal/domain"
)

type RuleValidator struct{}

func New() *RuleValidator { return &RuleValidator{} }

// Board checks all 27 units for duplicate digits. Every cell sharing a
// duplicated digit in a unit is flagged, not just later occurrences.
func (v *RuleValidator) Board(ctx context.Context, b board.Board) (domain.ValidationResult, error) {
	if err := board.Check(b); err != nil {
		return domain.ValidationResult{}, err
	}
	flagged := make(map[int]bool)
	for u := 0; u < len(board.Units); u++ {
		var cellsByDigit [board.Size + 1][]int
		for _, c := range board.Units[u] {
			if d := b[c]; d != board.Empty {
				cellsByDigit[d] = append(cellsByDigit[d], c)
			}
		}
		for d := 1; d <= board.Size; d++ {
			if len(cellsByDigit[d]) > 1 {
				for _, c := range cellsByDigit[d] {
					flagged[c] = true
				}
			}
		}
	}
	conflicts := make([]int, 0, len(flagged))
	for c := range flagged {
		conflicts = append(conflicts, c)
	}
	sort.Ints(conflicts)
	valid := len(conflicts) == 0
	return domain.ValidationResult{
		Valid:     valid,
		Conflicts: conflicts,
		Complete:  valid && b.Full(),
	}, nil
}

// Cell returns the peers of i that already hold v. An empty result means
// placing v at i is legal; v=0 (clearing) is always legal.
func (v *RuleValidator) Cell(ctx context.Context, b board.Board, i, val int) ([]int, error) {
	if err := board.Check(b); err != nil {
		return nil, err
	}
	if i < 0 || i >= board.Cells {
		return nil, fmt.Errorf("%w: cell index %d", board.ErrMalformed, i)
	}
	if val < 0 || val > board.Size {
		return nil, fmt.Errorf("%w: value %d", board.ErrMalformed, val)
	}
	if val == board.Empty {
		return nil, nil
	}
	var hits []int
	for _, p := range board.Peers[i] {
		if b[p] == val {
			hits = append(hits, p)
		}
	}
	return hits, nil
}

// VerifySolution is a strict 81-cell comparison. Any length mismatch is
// simply false, never an error.
func (v *RuleValidator) VerifySolution(player, solution board.Board) bool {
	if len(player) != board.Cells || len(solution) != board.Cells {
		return false
	}
	for i := range player {
		if player[i] != solution[i] {
			return false
		}
	}
	return true
}

// CheckGivens flags the indices where an original given was altered.
func (v *RuleValidator) CheckGivens(player, original board.Board) ([]int, error) {
	if err := board.Check(player); err != nil {
		return nil, err
	}
	if err := board.Check(original); err != nil {
		return nil, err
	}
	var tampered []int
	for i, given := range original {
		if given != board.Empty && player[i] != given {
			tampered = append(tampered, i)
		}
	}
	return tampered, nil
}
