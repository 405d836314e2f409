package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"svw.info/sudokugen/internal/domain"
)

var (
	genDifficulty string
	genAttempts   int
	genCount      int
	genSeed       int64
	genSave       bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate one or more puzzles at a target difficulty",
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&genDifficulty, "difficulty", "d", "", "easy|medium|hard|expert (default from config)")
	generateCmd.Flags().IntVar(&genAttempts, "max-attempts", 0, "attempt budget per puzzle (default from config)")
	generateCmd.Flags().IntVarP(&genCount, "count", "n", 1, "number of puzzles")
	generateCmd.Flags().Int64Var(&genSeed, "seed", 0, "fixed random seed for reproducible output")
	generateCmd.Flags().BoolVar(&genSave, "save", false, "persist generated puzzles to the data directory")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	name := genDifficulty
	if name == "" {
		name = cfg.Difficulty
	}
	diff, err := domain.ParseDifficulty(name)
	if err != nil {
		return err
	}
	attempts := genAttempts
	if attempts <= 0 {
		attempts = cfg.MaxAttempts
	}
	opts := domain.GenerateOptions{Difficulty: diff, MaxAttempts: attempts}

	svc := newService(genSeed)
	ctx := context.Background()

	var puzzles []*domain.Puzzle
	if genCount > 1 {
		if puzzles, err = svc.GenerateBatch(ctx, genCount, opts); err != nil {
			return err
		}
		if len(puzzles) < genCount {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: generated %d of %d puzzles\n", len(puzzles), genCount)
		}
	} else {
		p, _, err := svc.Generate(ctx, opts)
		if err != nil {
			return err
		}
		puzzles = []*domain.Puzzle{p}
	}

	for k, p := range puzzles {
		if k > 0 {
			fmt.Fprintln(cmd.OutOrStdout())
		}
		printPuzzle(cmd, p)
		if genSave {
			p.CreatedAt = time.Now().UnixNano()
			if err := svc.Save(ctx, p); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "saved as %s\n", p.ID)
		}
	}
	return nil
}

func printPuzzle(cmd *cobra.Command, p *domain.Puzzle) {
	out := cmd.OutOrStdout()
	fmt.Fprint(out, renderBoard(p.Board, p.Board, nil))
	fmt.Fprintf(out, "difficulty: %s  score: %d  givens: %d\n", p.Difficulty, p.Score, p.GivenCount)
	fmt.Fprintf(out, "techniques: %s\n", techniqueList(p.Techniques))
	fmt.Fprintf(out, "board: %s\n", boardString(p.Board))
}

func techniqueList(ts []domain.Technique) string {
	if len(ts) == 0 {
		return "none"
	}
	s := ""
	for i, t := range ts {
		if i > 0 {
			s += ", "
		}
		s += string(t)
	}
	return s
}
