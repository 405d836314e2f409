package validator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/sudokugen/internal/board"
)

var solved = board.Board{
	5, 3, 4, 6, 7, 8, 9, 1, 2,
	6, 7, 2, 1, 9, 5, 3, 4, 8,
	1, 9, 8, 3, 4, 2, 5, 6, 7,
	8, 5, 9, 7, 6, 1, 4, 2, 3,
	4, 2, 6, 8, 5, 3, 7, 9, 1,
	7, 1, 3, 9, 2, 4, 8, 5, 6,
	9, 6, 1, 5, 3, 7, 2, 8, 4,
	2, 8, 7, 4, 1, 9, 6, 3, 5,
	3, 4, 5, 2, 8, 6, 1, 7, 9,
}

func TestBoardFlagsAllDuplicates(t *testing.T) {
	v := New()
	ctx := context.Background()

	// digit 5 at both ends of the first row, otherwise empty
	b := board.New()
	b[0], b[8] = 5, 5

	res, err := v.Board(ctx, b)
	require.NoError(t, err)
	assert.False(t, res.Valid)
	assert.False(t, res.Complete)
	assert.Equal(t, []int{0, 8}, res.Conflicts, "both occurrences must be flagged")
}

func TestBoardValidStates(t *testing.T) {
	v := New()
	ctx := context.Background()

	tests := []struct {
		name     string
		board    board.Board
		valid    bool
		complete bool
	}{
		{"empty board is valid but incomplete", board.New(), true, false},
		{"solved board is complete", solved, true, true},
		{"solved board with a hole", func() board.Board {
			b := solved.Clone()
			b[40] = 0
			return b
		}(), true, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res, err := v.Board(ctx, tc.board)
			require.NoError(t, err)
			assert.Equal(t, tc.valid, res.Valid)
			assert.Equal(t, tc.complete, res.Complete)
			if res.Complete {
				assert.True(t, res.Valid, "complete implies valid")
			}
		})
	}
}

func TestBoxDuplicateFlagged(t *testing.T) {
	v := New()
	b := board.New()
	b[0], b[10] = 7, 7 // same box, different row and column
	res, err := v.Board(context.Background(), b)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 10}, res.Conflicts)
}

func TestCell(t *testing.T) {
	v := New()
	ctx := context.Background()

	b := board.New()
	b[0], b[8] = 5, 5

	// placing another 5 in the same row collides with both
	hits, err := v.Cell(ctx, b, 4, 5)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 8}, hits)

	// a digit no peer holds is legal
	hits, err = v.Cell(ctx, b, 4, 1)
	require.NoError(t, err)
	assert.Empty(t, hits)

	// clearing is always legal
	hits, err = v.Cell(ctx, b, 0, 0)
	require.NoError(t, err)
	assert.Empty(t, hits)

	_, err = v.Cell(ctx, b, 81, 1)
	assert.ErrorIs(t, err, board.ErrMalformed)
	_, err = v.Cell(ctx, b, 0, 10)
	assert.ErrorIs(t, err, board.ErrMalformed)
}

func TestVerifySolution(t *testing.T) {
	v := New()
	assert.True(t, v.VerifySolution(solved, solved))

	flipped := solved.Clone()
	flipped[17] = flipped[17]%9 + 1
	assert.False(t, v.VerifySolution(flipped, solved))

	assert.False(t, v.VerifySolution(solved[:80], solved), "length mismatch is false, not an error")
}

func TestCheckGivens(t *testing.T) {
	v := New()

	original := board.New()
	original[3], original[42] = 9, 2

	player := original.Clone()
	player[10] = 4 // filling an empty cell is not tampering
	tampered, err := v.CheckGivens(player, original)
	require.NoError(t, err)
	assert.Empty(t, tampered)

	player[3] = 1
	player[42] = 0
	tampered, err = v.CheckGivens(player, original)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 42}, tampered)

	_, err = v.CheckGivens(make(board.Board, 3), original)
	assert.ErrorIs(t, err, board.ErrMalformed)
}
