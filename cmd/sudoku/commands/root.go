package commands

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"svw.info/sudokugen/internal/config"
	"svw.info/sudokugen/internal/generator"
	"svw.info/sudokugen/internal/grader"
	"svw.info/sudokugen/internal/hint"
	"svw.info/sudokugen/internal/infrastructure/storage"
	"svw.info/sudokugen/internal/solver"
	"svw.info/sudokugen/internal/usecase"
	"svw.info/sudokugen/internal/validator"
)

var (
	cfgPath string
	cfg     *config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "sudoku",
	Short: "Generate, solve, grade, and explain Sudoku puzzles",
	Long: `sudoku is the command-line front end of the puzzle engine.

Boards are passed as 81-character strings read row by row, with 0 or .
marking empty cells. Generated puzzles can be kept in a local data
directory and listed or reloaded later.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cfgPath == "" {
			cfg = config.Default()
			return nil
		}
		loaded, err := config.Load(cfgPath)
		if err != nil {
			return err
		}
		cfg = loaded
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to a YAML config file with defaults")
}

// newService wires the full engine the way cmd/sudoku-server does, with a
// quieter logger since CLI output is the point here.
func newService(seed int64) *usecase.Service {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	s := solver.NewBacktrackingSolver()
	gr := grader.New()
	genOpts := []generator.Option{generator.WithLogger(logger)}
	if seed != 0 {
		genOpts = append(genOpts, generator.WithSeed(seed))
	}
	g := generator.New(s, gr, genOpts...)
	v := validator.New()
	st := storage.NewFS(cfg.DataDir)
	hin := hint.New()
	return usecase.NewService(s, g, gr, v, hin, st)
}
