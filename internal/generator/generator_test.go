package generator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/sudokugen/internal/board"
	"svw.info/sudokugen/internal/domain"
	"svw.info/sudokugen/internal/grader"
	"svw.info/sudokugen/internal/ports"
	"svw.info/sudokugen/internal/solver"
)

func newSeeded(t *testing.T, seed int64) *Generator {
	t.Helper()
	return New(solver.NewBacktrackingSolver(), grader.New(), WithSeed(seed))
}

func TestSolutionIsCompleteAndValid(t *testing.T) {
	g := newSeeded(t, 1)
	sol, err := g.Solution(context.Background())
	require.NoError(t, err)
	require.NoError(t, board.Check(sol))
	assert.True(t, sol.Full())

	// every unit holds each digit exactly once
	for _, unit := range board.Units {
		seen := board.DigitSet(0)
		for _, c := range unit {
			require.False(t, seen.Has(sol[c]))
			seen = seen.Add(sol[c])
		}
	}
}

func TestSolutionVariesWithSeed(t *testing.T) {
	a, err := newSeeded(t, 1).Solution(context.Background())
	require.NoError(t, err)
	b, err := newSeeded(t, 2).Solution(context.Background())
	require.NoError(t, err)
	assert.NotEqual(t, a, b)

	c, err := newSeeded(t, 1).Solution(context.Background())
	require.NoError(t, err)
	assert.Equal(t, a, c, "same seed reproduces the grid")
}

func TestGenerateAllTiers(t *testing.T) {
	ctx := context.Background()
	s := solver.NewBacktrackingSolver()

	for _, tier := range domain.Difficulties {
		tier := tier
		t.Run(tier.String(), func(t *testing.T) {
			g := newSeeded(t, 42)
			p, _, err := g.Generate(ctx, domain.GenerateOptions{Difficulty: tier})
			require.NoError(t, err)

			require.NoError(t, board.Check(p.Board))
			require.NoError(t, board.Check(p.Solution))
			assert.True(t, p.Solution.Full())

			// the board is the solution with holes
			givens := 0
			for i, v := range p.Board {
				if v != board.Empty {
					givens++
					assert.Equal(t, p.Solution[i], v, "given %d disagrees with the solution", i)
				}
			}
			assert.Equal(t, givens, p.GivenCount)

			// solving the puzzle reproduces the recorded solution
			out, solved, _, err := s.Solve(ctx, p.Board)
			require.NoError(t, err)
			require.True(t, solved)
			assert.Equal(t, p.Solution, out)

			unique, _, err := s.HasUniqueSolution(ctx, p.Board)
			require.NoError(t, err)
			assert.True(t, unique)

			// graded tier is what the dig produced, within a band of the ask
			assert.LessOrEqual(t, p.Difficulty.Distance(tier), 1)
			assert.NotEmpty(t, p.Techniques)
			assert.Positive(t, p.Score)
			assert.Equal(t, int64(42), p.Seed)
			assert.NotZero(t, p.CreatedAt)
		})
	}
}

func TestGenerateUnknownDifficulty(t *testing.T) {
	g := newSeeded(t, 1)
	_, _, err := g.Generate(context.Background(), domain.GenerateOptions{Difficulty: domain.Difficulty(99)})
	assert.Error(t, err)
}

// rejectGrader fails every dig so the attempt budget always runs out.
type rejectGrader struct{}

func (rejectGrader) Grade(ctx context.Context, b board.Board) (domain.Grade, error) {
	return domain.Grade{Score: 9999, Difficulty: domain.Expert}, nil
}

func TestGenerateExhaustsAttempts(t *testing.T) {
	g := New(solver.NewBacktrackingSolver(), rejectGrader{}, WithSeed(7))
	_, _, err := g.Generate(context.Background(), domain.GenerateOptions{
		Difficulty:  domain.Easy, // expert grades are always >1 tier away
		MaxAttempts: 3,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExhausted)

	var exhausted *ExhaustedError
	require.ErrorAs(t, err, &exhausted)
	assert.Equal(t, domain.Easy, exhausted.Difficulty)
	assert.Equal(t, 3, exhausted.Attempts)
	assert.Contains(t, err.Error(), "easy")
	assert.Contains(t, err.Error(), "3")
}

func TestGenerateBatch(t *testing.T) {
	g := newSeeded(t, 11)
	puzzles, err := g.GenerateBatch(context.Background(), 3, domain.GenerateOptions{Difficulty: domain.Easy})
	require.NoError(t, err)
	require.Len(t, puzzles, 3)
	for _, p := range puzzles {
		assert.NoError(t, board.Check(p.Board))
	}
}

func TestGenerateBatchComesUpShort(t *testing.T) {
	g := New(solver.NewBacktrackingSolver(), rejectGrader{}, WithSeed(3))
	puzzles, err := g.GenerateBatch(context.Background(), 2, domain.GenerateOptions{
		Difficulty:  domain.Easy,
		MaxAttempts: 1,
	})
	require.NoError(t, err, "a short batch is a warning, not an error")
	assert.Empty(t, puzzles)
}

func TestGenerateBatchRejectsBadCount(t *testing.T) {
	g := newSeeded(t, 1)
	_, err := g.GenerateBatch(context.Background(), 0, domain.GenerateOptions{Difficulty: domain.Easy})
	assert.Error(t, err)
}

func TestGenerateHonorsContext(t *testing.T) {
	g := newSeeded(t, 1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := g.Generate(ctx, domain.GenerateOptions{Difficulty: domain.Easy})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDigHolesKeepsUniqueness(t *testing.T) {
	g := newSeeded(t, 5)
	sol, err := g.Solution(context.Background())
	require.NoError(t, err)

	puz, givens, err := g.digHoles(context.Background(), sol, domain.Easy)
	require.NoError(t, err)

	band := givenRange[domain.Easy]
	assert.GreaterOrEqual(t, givens, band[0])
	assert.LessOrEqual(t, givens, band[1]+3)

	unique, _, err := solver.NewBacktrackingSolver().HasUniqueSolution(context.Background(), puz)
	require.NoError(t, err)
	assert.True(t, unique)
}

var _ ports.Grader = rejectGrader{}
