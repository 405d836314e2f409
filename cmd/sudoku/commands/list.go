package commands

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List puzzles saved in the data directory",
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	svc := newService(0)
	metas, err := svc.List(context.Background())
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	if len(metas) == 0 {
		fmt.Fprintln(w, "no saved puzzles")
		return nil
	}
	sort.Slice(metas, func(i, j int) bool { return metas[i].CreatedAt > metas[j].CreatedAt })
	for _, m := range metas {
		created := "-"
		if m.CreatedAt != 0 {
			created = time.Unix(0, m.CreatedAt).Format(time.DateTime)
		}
		fmt.Fprintf(w, "%s  %-6s  %2d givens  %s\n", m.ID, m.Difficulty, m.GivenCount, created)
	}
	return nil
}
