package commands

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <board>",
	Short: "Check a board for conflicts and completeness",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	b, err := parseBoard(args[0])
	if err != nil {
		return err
	}
	svc := newService(0)
	res, err := svc.Validate(context.Background(), b)
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	fmt.Fprint(w, renderBoard(b, nil, res.Conflicts))
	switch {
	case res.Complete:
		color.New(color.FgGreen).Fprintln(w, "complete: no conflicts, all cells filled")
	case res.Valid:
		fmt.Fprintln(w, "valid so far, not complete")
	default:
		color.New(color.FgRed).Fprintf(w, "invalid: %d conflicting cells %v\n", len(res.Conflicts), res.Conflicts)
	}
	return nil
}
