package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"svw.info/sudokugen/internal/domain"
)

var hintNoReveal bool

var hintCmd = &cobra.Command{
	Use:   "hint <board>",
	Short: "Explain the next logical step for a board",
	Args:  cobra.ExactArgs(1),
	RunE:  runHint,
}

func init() {
	hintCmd.Flags().BoolVar(&hintNoReveal, "no-reveal", false, "point at the cell without naming the digit")
	rootCmd.AddCommand(hintCmd)
}

func runHint(cmd *cobra.Command, args []string) error {
	b, err := parseBoard(args[0])
	if err != nil {
		return err
	}
	svc := newService(0)
	h, found, err := svc.Hint(context.Background(), b, domain.HintOptions{Reveal: !hintNoReveal})
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	if !found {
		fmt.Fprintln(w, "the board is already complete")
		return nil
	}
	fmt.Fprint(w, renderBoard(b, nil, append([]int{h.CellIndex}, h.RelatedCells...)))
	fmt.Fprintf(w, "technique: %s\n", h.Technique)
	fmt.Fprintf(w, "cell: R%dC%d\n", h.Row+1, h.Col+1)
	if h.Value != 0 {
		fmt.Fprintf(w, "value: %d\n", h.Value)
	}
	fmt.Fprintf(w, "why: %s\n", h.Explanation)
	return nil
}
