package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/sudokugen/internal/board"
	"svw.info/sudokugen/internal/domain"
)

func samplePuzzle() *domain.Puzzle {
	b := board.New()
	b[0], b[40] = 5, 3
	return &domain.Puzzle{
		Board:      b,
		Solution:   board.New(),
		Difficulty: domain.Medium,
		Score:      30,
		GivenCount: 2,
		Techniques: []domain.Technique{domain.NakedSingle},
		Seed:       42,
		CreatedAt:  1724572800000000000,
		Name:       "sample",
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	s := NewFS(t.TempDir())
	ctx := context.Background()

	p := samplePuzzle()
	p.ID = "fixed-id"
	require.NoError(t, s.Save(ctx, p))

	got, err := s.Load(ctx, "fixed-id")
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestSaveMintsID(t *testing.T) {
	s := NewFS(t.TempDir())
	p := samplePuzzle()
	require.NoError(t, s.Save(context.Background(), p))

	require.NotEmpty(t, p.ID)
	_, err := uuid.Parse(p.ID)
	assert.NoError(t, err, "minted IDs are UUIDs")
}

func TestSaveBucketsByDifficulty(t *testing.T) {
	dir := t.TempDir()
	s := NewFS(dir)
	p := samplePuzzle()
	p.ID = "abc"
	p.Difficulty = domain.Expert
	require.NoError(t, s.Save(context.Background(), p))

	_, err := os.Stat(filepath.Join(dir, "expert", "abc.json"))
	assert.NoError(t, err)
}

func TestLoadMissing(t *testing.T) {
	s := NewFS(t.TempDir())
	_, err := s.Load(context.Background(), "nope")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestListSkipsMalformed(t *testing.T) {
	dir := t.TempDir()
	s := NewFS(dir)
	ctx := context.Background()

	first := samplePuzzle()
	first.ID = "one"
	require.NoError(t, s.Save(ctx, first))

	second := samplePuzzle()
	second.ID = "two"
	second.Difficulty = domain.Hard
	require.NoError(t, s.Save(ctx, second))

	// junk alongside the real entries must not break the scan
	require.NoError(t, os.WriteFile(filepath.Join(dir, "medium", "junk.json"), []byte("not json"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "medium", "notes.txt"), []byte("x"), 0o644))

	metas, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, metas, 2)

	byID := map[string]domain.PuzzleMeta{}
	for _, m := range metas {
		byID[m.ID] = m
	}
	assert.Equal(t, domain.Medium, byID["one"].Difficulty)
	assert.Equal(t, domain.Hard, byID["two"].Difficulty)
	assert.Equal(t, "sample", byID["one"].Name)
	assert.Equal(t, 2, byID["one"].GivenCount)
}

func TestListEmptyStore(t *testing.T) {
	s := NewFS(t.TempDir())
	metas, err := s.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, metas)
}
