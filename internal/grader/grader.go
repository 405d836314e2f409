// Package grader scores boards by simulating a human working through the
// technique catalog over persistent candidate state.
package grader

import (
	"context"

	"svw.info/sudokugen/internal/board"
	"svw.info/sudokugen/internal/domain"
	"svw.info/sudokugen/internal/technique"
)

// Tier thresholds for the accumulated score.
const (
	easyMax   = 20
	mediumMax = 45
	hardMax   = 80
)

// HumanGrader replays the catalog against a private clone of the board.
// Grading the same board twice yields identical results.
type HumanGrader struct{}

func New() *HumanGrader { return &HumanGrader{} }

// Grade simulates the solve. After every successful application it
// restarts from the easiest technique, since placements and eliminations
// routinely unlock cheaper moves. Cells the catalog never cracks are
// charged as brute force.
func (g *HumanGrader) Grade(ctx context.Context, b board.Board) (domain.Grade, error) {
	if err := board.Check(b); err != nil {
		return domain.Grade{}, err
	}
	st := technique.NewState(b)
	score := 0
	used := make(map[domain.Technique]bool)

	for !st.Solved() && ctx.Err() == nil {
		progress := false
		for _, f := range technique.Catalog {
			step, ok := f.Find(st)
			if !ok {
				continue
			}
			st.Apply(step)
			score += f.Score
			used[f.ID] = true
			progress = true
			break // restart from the top
		}
		if !progress {
			break
		}
	}

	if remaining := len(st.Cands); remaining > 0 {
		score += remaining * technique.BruteForceScore
		used[domain.BruteForce] = true
	}

	return domain.Grade{
		Score:      score,
		Difficulty: tierFor(score),
		Techniques: usedList(used),
	}, nil
}

func tierFor(score int) domain.Difficulty {
	switch {
	case score <= easyMax:
		return domain.Easy
	case score <= mediumMax:
		return domain.Medium
	case score <= hardMax:
		return domain.Hard
	default:
		return domain.Expert
	}
}

// usedList reports the de-duplicated techniques in catalog order, with
// brute_force last, so the set is stable across runs.
func usedList(used map[domain.Technique]bool) []domain.Technique {
	out := make([]domain.Technique, 0, len(used))
	for _, f := range technique.Catalog {
		if used[f.ID] {
			out = append(out, f.ID)
		}
	}
	if used[domain.BruteForce] {
		out = append(out, domain.BruteForce)
	}
	return out
}
