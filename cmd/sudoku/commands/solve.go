package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var solveCmd = &cobra.Command{
	Use:   "solve <board>",
	Short: "Solve a board and report whether its solution is unique",
	Args:  cobra.ExactArgs(1),
	RunE:  runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	b, err := parseBoard(args[0])
	if err != nil {
		return err
	}
	svc := newService(0)
	ctx := context.Background()

	out, solved, st, err := svc.Solve(ctx, b)
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	if !solved {
		fmt.Fprintln(w, "no solution")
		return nil
	}
	fmt.Fprint(w, renderBoard(out, b, nil))
	n, _, err := svc.CountSolutions(ctx, b, 2)
	if err != nil {
		return err
	}
	unique := "unique"
	if n > 1 {
		unique = "not unique"
	}
	fmt.Fprintf(w, "solution: %s  nodes: %d  time: %s\n", unique, st.Nodes, st.Duration.Round(0))
	return nil
}
