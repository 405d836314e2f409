package domain

import "svw.info/sudokugen/internal/board"

// Puzzle is a generated Sudoku with its unique solution and grading
// metadata. Every nonzero Board[i] equals Solution[i].
type Puzzle struct {
	ID         string      `json:"id,omitempty"`
	Board      board.Board `json:"board"`
	Solution   board.Board `json:"solution"`
	Difficulty Difficulty  `json:"difficulty"`
	Score      int         `json:"score"`
	GivenCount int         `json:"givenCount"`
	Techniques []Technique `json:"techniques"`
	Seed       int64       `json:"seed,omitempty"`
	CreatedAt  int64       `json:"createdAt,omitempty"`
	// Optional user metadata
	Name  string `json:"name,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// PuzzleMeta is a lightweight listing entry.
type PuzzleMeta struct {
	ID         string     `json:"id"`
	Name       string     `json:"name,omitempty"`
	Difficulty Difficulty `json:"difficulty"`
	GivenCount int        `json:"givenCount,omitempty"`
	CreatedAt  int64      `json:"createdAt"`
}

// Hint is one applicable deduction plus its justification.
// Value is zero for elimination-only techniques and when the caller
// declined a reveal.
type Hint struct {
	CellIndex    int       `json:"cellIndex"`
	Row          int       `json:"row"`
	Col          int       `json:"col"`
	Box          int       `json:"box"`
	Value        int       `json:"value,omitempty"`
	Technique    Technique `json:"technique"`
	Explanation  string    `json:"explanation"`
	RelatedCells []int     `json:"relatedCells,omitempty"`
}

// Grade is the outcome of simulating a human solve.
type Grade struct {
	Score      int         `json:"score"`
	Difficulty Difficulty  `json:"difficulty"`
	Techniques []Technique `json:"techniques"`
}

// ValidationResult reports conflicts and completeness for a board.
// Conflicts holds every cell participating in a duplicate, not just
// second occurrences.
type ValidationResult struct {
	Valid     bool  `json:"valid"`
	Conflicts []int `json:"conflicts,omitempty"`
	Complete  bool  `json:"complete"`
}

// GenerateOptions configures puzzle generation.
type GenerateOptions struct {
	Difficulty  Difficulty
	MaxAttempts int // 0 means the default of 100
}

// HintOptions configures hint lookup.
type HintOptions struct {
	// Reveal allows single-cell techniques to include the digit itself.
	Reveal bool
}
