package domain

import (
	"fmt"
	"strings"
)

// Difficulty labels target puzzle generation & grading.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
	Expert
)

// Difficulties lists the tiers in ascending order.
var Difficulties = []Difficulty{Easy, Medium, Hard, Expert}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	case Expert:
		return "expert"
	}
	return fmt.Sprintf("difficulty(%d)", int(d))
}

// ParseDifficulty maps a tier name to its Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	case "expert":
		return Expert, nil
	}
	return Easy, fmt.Errorf("unknown difficulty %q", s)
}

// Distance returns how many tiers apart two difficulties are.
func (d Difficulty) Distance(o Difficulty) int {
	if d < o {
		return int(o - d)
	}
	return int(d - o)
}

// MarshalText renders the tier name, so JSON and storage stay readable.
func (d Difficulty) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

func (d *Difficulty) UnmarshalText(text []byte) error {
	parsed, err := ParseDifficulty(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Technique tags a logical-deduction step.
type Technique string

const (
	NakedSingle      Technique = "naked_single"
	HiddenSingle     Technique = "hidden_single"
	PointingPair     Technique = "pointing_pair"
	BoxLineReduction Technique = "box_line_reduction"
	NakedPair        Technique = "naked_pair"
	NakedTriple      Technique = "naked_triple"
	HiddenPair       Technique = "hidden_pair"
	HiddenTriple     Technique = "hidden_triple"
	XWing            Technique = "x_wing"
	Swordfish        Technique = "swordfish"
	BruteForce       Technique = "brute_force"
)
