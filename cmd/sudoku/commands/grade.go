package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var gradeCmd = &cobra.Command{
	Use:   "grade <board>",
	Short: "Score a board by simulating a human solve",
	Args:  cobra.ExactArgs(1),
	RunE:  runGrade,
}

func init() {
	rootCmd.AddCommand(gradeCmd)
}

func runGrade(cmd *cobra.Command, args []string) error {
	b, err := parseBoard(args[0])
	if err != nil {
		return err
	}
	svc := newService(0)
	grade, err := svc.Grade(context.Background(), b)
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "difficulty: %s\n", grade.Difficulty)
	fmt.Fprintf(w, "score: %d\n", grade.Score)
	fmt.Fprintf(w, "techniques: %s\n", techniqueList(grade.Techniques))
	return nil
}
