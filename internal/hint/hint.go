// Package hint finds the single next deduction for a board and explains
// it. Unlike the grader it never loops: the first applicable instance of
// the easiest technique wins, and the caller's board is never mutated.
package hint

import (
	"context"
	"fmt"

	"svw.info/sudokugen/internal/board"
	"svw.info/sudokugen/internal/domain"
	"svw.info/sudokugen/internal/technique"
)

type Engine struct{}

func New() *Engine { return &Engine{} }

// Hint returns the first applicable deduction, or found=false when the
// board has no empty cells. Boards beyond the hint catalog get a
// brute-force pointer at the most constrained cell.
func (e *Engine) Hint(ctx context.Context, b board.Board, opts domain.HintOptions) (domain.Hint, bool, error) {
	if err := board.Check(b); err != nil {
		return domain.Hint{}, false, err
	}
	if b.Full() {
		return domain.Hint{}, false, nil
	}
	if err := ctx.Err(); err != nil {
		return domain.Hint{}, false, err
	}

	st := technique.NewState(b)
	for _, f := range technique.HintCatalog {
		step, ok := f.Find(st)
		if !ok {
			continue
		}
		return fromStep(step, opts), true, nil
	}
	return fallback(st), true, nil
}

func fromStep(step technique.Step, opts domain.HintOptions) domain.Hint {
	h := hintAt(step.Target)
	h.Technique = step.Technique
	h.Explanation = step.Explanation
	h.RelatedCells = step.Related
	if opts.Reveal && len(step.Placements) > 0 {
		h.Value = step.Placements[0].Digit
	}
	return h
}

// fallback points at the empty cell with the fewest candidates, ties by
// index order, and names no value: the board needs swordfish-level logic
// or trial and error.
func fallback(st *technique.State) domain.Hint {
	best, bestCount := -1, board.Size+1
	for i := 0; i < board.Cells; i++ {
		if set, ok := st.Cands[i]; ok && set.Count() < bestCount {
			best, bestCount = i, set.Count()
		}
	}
	h := hintAt(best)
	h.Technique = domain.BruteForce
	h.Explanation = fmt.Sprintf("no cataloged technique applies; %s has the fewest candidates (%d) and is the best cell to try",
		cellLabel(best), bestCount)
	return h
}

func hintAt(i int) domain.Hint {
	return domain.Hint{
		CellIndex: i,
		Row:       board.RowOf(i),
		Col:       board.ColOf(i),
		Box:       board.BoxOf(i),
	}
}

func cellLabel(i int) string {
	return fmt.Sprintf("R%dC%d", board.RowOf(i)+1, board.ColOf(i)+1)
}
