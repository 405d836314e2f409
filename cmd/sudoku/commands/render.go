package commands

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"svw.info/sudokugen/internal/board"
)

// parseBoard reads an 81-character board string, row by row; 0 and .
// mark empty cells. Whitespace is ignored so grids can be pasted with
// line breaks.
func parseBoard(s string) (board.Board, error) {
	var cells []int
	for _, r := range s {
		switch {
		case r == '.' || r == '0':
			cells = append(cells, board.Empty)
		case r >= '1' && r <= '9':
			cells = append(cells, int(r-'0'))
		case r == ' ' || r == '\n' || r == '\t' || r == '\r' || r == '|' || r == '-' || r == '+':
			// grid decoration
		default:
			return nil, fmt.Errorf("unexpected character %q in board string", r)
		}
	}
	b := board.Board(cells)
	if err := board.Check(b); err != nil {
		return nil, err
	}
	return b, nil
}

var (
	givenColor  = color.New(color.Bold)
	markedColor = color.New(color.FgYellow, color.Bold)
)

// renderBoard prints the grid with box separators. Cells listed in mark
// are highlighted; when givens is non-nil its filled cells are bolded.
func renderBoard(b board.Board, givens board.Board, mark []int) string {
	marked := make(map[int]bool, len(mark))
	for _, i := range mark {
		marked[i] = true
	}
	var sb strings.Builder
	for r := 0; r < board.Size; r++ {
		if r > 0 && r%3 == 0 {
			sb.WriteString("------+-------+------\n")
		}
		for c := 0; c < board.Size; c++ {
			if c > 0 && c%3 == 0 {
				sb.WriteString("| ")
			}
			i := board.Index(r, c)
			cell := "."
			if b[i] != board.Empty {
				cell = fmt.Sprint(b[i])
			}
			switch {
			case marked[i]:
				cell = markedColor.Sprint(cell)
			case givens != nil && givens[i] != board.Empty:
				cell = givenColor.Sprint(cell)
			}
			sb.WriteString(cell)
			sb.WriteString(" ")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// boardString flattens a board back to its 81-character wire form.
func boardString(b board.Board) string {
	var sb strings.Builder
	for _, v := range b {
		if v == board.Empty {
			sb.WriteByte('.')
		} else {
			sb.WriteByte(byte('0' + v))
		}
	}
	return sb.String()
}
