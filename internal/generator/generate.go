package generator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"svw.info/sudokugen/internal/board"
	"svw.info/sudokugen/internal/domain"
	"svw.info/sudokugen/internal/ports"
)

// ErrExhausted marks a generation run that used up its attempt budget.
var ErrExhausted = errors.New("generation attempts exhausted")

// ExhaustedError carries the tier and budget that could not be met.
type ExhaustedError struct {
	Difficulty domain.Difficulty
	Attempts   int
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("could not generate a %s puzzle within %d attempts", e.Difficulty, e.Attempts)
}

func (e *ExhaustedError) Unwrap() error { return ErrExhausted }

// errDigMissed reports a dig that stalled too far from its target.
var errDigMissed = errors.New("dig stalled short of target given count")

// digHoles removes givens from a solved grid while the puzzle keeps a
// unique solution. The target given count is drawn uniformly from the
// tier's band; cells are visited in random order and restored whenever a
// removal breaks uniqueness. A final count more than 3 above target is a
// failure, which the caller answers with a brand-new solution.
func (g *Generator) digHoles(ctx context.Context, solution board.Board, tier domain.Difficulty) (board.Board, int, error) {
	band := givenRange[tier]
	target := band[0] + g.rng.Intn(band[1]-band[0]+1)

	puz := solution.Clone()
	count := board.Cells
	for _, i := range g.rng.Perm(board.Cells) {
		if count <= target {
			break
		}
		if err := ctx.Err(); err != nil {
			return nil, 0, err
		}
		old := puz[i]
		puz[i] = board.Empty
		n, _, err := g.solver.CountSolutions(ctx, puz, 2)
		if err != nil {
			return nil, 0, err
		}
		if n != 1 {
			puz[i] = old
			continue
		}
		count--
	}
	if count-target > 3 {
		return nil, 0, fmt.Errorf("%w: reached %d givens, wanted %d", errDigMissed, count, target)
	}
	return puz, count, nil
}

// Generate builds a fresh solution, digs it, and grades the result, up to
// opts.MaxAttempts times. A dig is accepted when the graded tier lands
// within one tier of the request; anything further off is discarded along
// with its solution.
func (g *Generator) Generate(ctx context.Context, opts domain.GenerateOptions) (*domain.Puzzle, ports.Stats, error) {
	start := time.Now()
	maxAttempts := opts.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	if _, ok := givenRange[opts.Difficulty]; !ok {
		return nil, ports.Stats{}, fmt.Errorf("unknown difficulty %d", opts.Difficulty)
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, ports.Stats{}, err
		}
		solution, err := g.Solution(ctx)
		if err != nil {
			return nil, ports.Stats{}, err
		}
		puz, givens, err := g.digHoles(ctx, solution, opts.Difficulty)
		if errors.Is(err, errDigMissed) {
			continue
		}
		if err != nil {
			return nil, ports.Stats{}, err
		}
		grade, err := g.grader.Grade(ctx, puz)
		if err != nil {
			return nil, ports.Stats{}, err
		}
		if grade.Difficulty.Distance(opts.Difficulty) > 1 {
			continue
		}
		return &domain.Puzzle{
			Board:      puz,
			Solution:   solution,
			Difficulty: grade.Difficulty,
			Score:      grade.Score,
			GivenCount: givens,
			Techniques: grade.Techniques,
			Seed:       g.seed,
			CreatedAt:  time.Now().UnixNano(),
		}, ports.Stats{Duration: time.Since(start)}, nil
	}
	return nil, ports.Stats{Duration: time.Since(start)}, &ExhaustedError{Difficulty: opts.Difficulty, Attempts: maxAttempts}
}

// GenerateBatch keeps generating until count puzzles succeed or count*5
// whole runs have failed. Individual failures are swallowed; a short
// batch comes back with a warning instead of an error.
func (g *Generator) GenerateBatch(ctx context.Context, count int, opts domain.GenerateOptions) ([]*domain.Puzzle, error) {
	if count <= 0 {
		return nil, fmt.Errorf("batch count must be positive, got %d", count)
	}
	out := make([]*domain.Puzzle, 0, count)
	failures := 0
	for len(out) < count && failures < count*5 {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		p, _, err := g.Generate(ctx, opts)
		if err != nil {
			failures++
			continue
		}
		out = append(out, p)
	}
	if len(out) < count {
		g.log.Warn("puzzle batch came up short",
			"requested", count,
			"generated", len(out),
			"failures", failures,
			"difficulty", opts.Difficulty.String(),
		)
	}
	return out, nil
}
