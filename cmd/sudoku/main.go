package main

import (
	"os"

	"svw.info/sudokugen/cmd/sudoku/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
